package classifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/joseph-ayodele/docuvault/constants"
)

// rulesetConfig is the on-disk shape of an external rule table. Array order
// is significant: it becomes the registration (and tie-break) order.
type rulesetConfig struct {
	Categories []categoryConfig `json:"categories"`
}

type categoryConfig struct {
	Name             string   `json:"name"`
	FilenameKeywords []string `json:"filename_keywords,omitempty"`
	TextPhrases      []string `json:"text_phrases,omitempty"`
	Keywords         []string `json:"keywords,omitempty"`
	KeyPhrases       []string `json:"key_phrases,omitempty"`
}

// rulesetSchema constrains external rule tables. Category names are free
// strings on purpose: adding a category must not require a code change.
func rulesetSchema() map[string]any {
	stringArray := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string", "minLength": 1},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"categories"},
		"properties": map[string]any{
			"categories": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"name"},
					"properties": map[string]any{
						"name":              map[string]any{"type": "string", "minLength": 1},
						"filename_keywords": stringArray,
						"text_phrases":      stringArray,
						"keywords":          stringArray,
						"key_phrases":       stringArray,
					},
				},
			},
		},
	}
}

// LoadRuleset reads and validates a JSON rule table and compiles it.
func LoadRuleset(path string) (*Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ruleset: %w", err)
	}
	return ParseRuleset(data)
}

// ParseRuleset validates raw JSON against the ruleset schema and compiles it.
func ParseRuleset(data []byte) (*Ruleset, error) {
	if err := validateAgainstSchema(rulesetSchema(), data); err != nil {
		return nil, err
	}

	var cfg rulesetConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal ruleset: %w", err)
	}

	b := NewRulesetBuilder()
	for _, cat := range cfg.Categories {
		b.Add(constants.Category(cat.Name), CategoryRules{
			FilenameKeywords: cat.FilenameKeywords,
			TextPhrases:      cat.TextPhrases,
			Keywords:         cat.Keywords,
			KeyPhrases:       cat.KeyPhrases,
		})
	}
	return b.Build()
}

func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("ruleset.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("ruleset.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("ruleset does not match schema: %w", err)
	}
	return nil
}
