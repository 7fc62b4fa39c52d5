package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joseph-ayodele/docuvault/constants"
)

const customRuleset = `{
  "categories": [
    {
      "name": "tax-form",
      "filename_keywords": ["itr", "taxform"],
      "text_phrases": ["income tax return"],
      "keywords": ["income", "deduction", "assessment"],
      "key_phrases": ["assessment year", "taxable income"]
    },
    {
      "name": "invoice",
      "filename_keywords": ["invoice"],
      "keywords": ["invoice", "total", "amount"]
    }
  ]
}`

func TestParseRulesetCompilesCustomCategories(t *testing.T) {
	rs, err := ParseRuleset([]byte(customRuleset))
	if err != nil {
		t.Fatalf("ParseRuleset: %v", err)
	}

	order := rs.Categories()
	if len(order) != 2 || order[0] != constants.Category("tax-form") || order[1] != constants.Invoice {
		t.Fatalf("category order = %v, want [tax-form invoice]", order)
	}

	c := NewClassifier(rs, nil)
	got := c.Classify("itr_2025.pdf", "")
	if got.Category != constants.Category("tax-form") || got.Confidence != 0.8 {
		t.Fatalf("got {%s %v}, want {tax-form 0.8}", got.Category, got.Confidence)
	}

	got = c.Classify("doc01.pdf", "please find the attached income tax return for review")
	if got.Category != constants.Category("tax-form") || got.Confidence != 0.6 {
		t.Fatalf("got {%s %v}, want {tax-form 0.6}", got.Category, got.Confidence)
	}
}

func TestParseRulesetRejectsInvalidConfig(t *testing.T) {
	cases := map[string]string{
		"not json":           `{"categories": [`,
		"missing categories": `{}`,
		"empty categories":   `{"categories": []}`,
		"missing name":       `{"categories": [{"keywords": ["a"]}]}`,
		"unknown field":      `{"categories": [{"name": "x", "regexes": ["a"]}]}`,
		"empty keyword":      `{"categories": [{"name": "x", "keywords": [""]}]}`,
	}
	for label, data := range cases {
		if _, err := ParseRuleset([]byte(data)); err == nil {
			t.Errorf("%s: expected error, got none", label)
		}
	}
}

func TestLoadRulesetFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ruleset.json")
	if err := os.WriteFile(path, []byte(customRuleset), 0o644); err != nil {
		t.Fatal(err)
	}

	rs, err := LoadRuleset(path)
	if err != nil {
		t.Fatalf("LoadRuleset: %v", err)
	}
	if len(rs.Categories()) != 2 {
		t.Fatalf("got %d categories, want 2", len(rs.Categories()))
	}
}

func TestDefaultRulesetCoversTaxonomy(t *testing.T) {
	rs := DefaultRuleset()

	want := make(map[constants.Category]bool)
	for _, cat := range constants.AllCategories() {
		if cat != constants.Unclassified {
			want[cat] = true
		}
	}
	for _, cat := range rs.Categories() {
		delete(want, cat)
	}
	if len(want) != 0 {
		t.Fatalf("default ruleset missing categories: %v", want)
	}
}
