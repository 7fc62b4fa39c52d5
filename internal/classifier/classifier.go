// Package classifier assigns a document category and a heuristic confidence
// from the original filename and the OCR-extracted text. Three stages run in
// strict order, first match wins: filename keyword rules, text phrase rules,
// then a single-document term-frequency score over the category keyword
// tables.
package classifier

import (
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joseph-ayodele/docuvault/constants"
)

// Classification is the classifier's only output. Confidence is a heuristic
// score in [0,1], not a calibrated probability.
type Classification struct {
	Category   constants.Category
	Confidence float64
}

const (
	// Fixed confidences for the two rule stages.
	filenameConfidence = 0.8
	textConfidence     = 0.6

	// Statistical stage tuning. The fraud thresholds downstream were tuned
	// against this exact arithmetic; changing it is a behavior change.
	keywordPresenceBonus = 3.0
	phraseBonus          = 10.0
	phraseTokenBonus     = 2.0
	scoreThreshold       = 5.0
	scoreScale           = 50.0

	minTokenLen       = 3 // tokens shorter than this are discarded
	minPhraseTokenLen = 4 // phrase tokens counted for the co-occurrence bonus
)

var reToken = regexp.MustCompile(`[a-zA-Z]+`)

type Classifier struct {
	rules  *Ruleset
	logger *slog.Logger
}

func NewClassifier(rules *Ruleset, logger *slog.Logger) *Classifier {
	if rules == nil {
		rules = DefaultRuleset()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{rules: rules, logger: logger}
}

// Classify never fails: worst case it returns Unclassified with confidence 0.
// The OCR failure sentinel flows through like ordinary text.
func (c *Classifier) Classify(filename, extractedText string) Classification {
	if cat, ok := c.matchFilename(filename); ok {
		c.logger.Debug("classified by filename rule", "filename", filename, "category", cat)
		return Classification{Category: cat, Confidence: filenameConfidence}
	}

	lower := strings.ToLower(extractedText)
	if cat, ok := c.matchText(lower); ok {
		c.logger.Debug("classified by text rule", "category", cat)
		return Classification{Category: cat, Confidence: textConfidence}
	}

	cat, conf := c.scoreStatistical(lower)
	c.logger.Debug("classified statistically", "category", cat, "confidence", conf)
	return Classification{Category: cat, Confidence: conf}
}

// matchFilename runs stage 1 over the base filename, stripped of path and
// extension.
func (c *Classifier) matchFilename(filename string) (constants.Category, bool) {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" {
		return constants.Unclassified, false
	}
	for _, r := range c.rules.filenameRules {
		if r.re.MatchString(base) {
			return r.category, true
		}
	}
	return constants.Unclassified, false
}

// matchText runs stage 2: ordered literal phrase containment.
func (c *Classifier) matchText(lowerText string) (constants.Category, bool) {
	if lowerText == "" {
		return constants.Unclassified, false
	}
	for _, r := range c.rules.textRules {
		for _, phrase := range r.phrases {
			if strings.Contains(lowerText, phrase) {
				return r.category, true
			}
		}
	}
	return constants.Unclassified, false
}

// scoreStatistical runs stage 3. With a single document the IDF term
// degenerates to a constant, so this is a weighted term-frequency score, not
// true corpus TF-IDF. Ties go to the earlier category in registration order.
func (c *Classifier) scoreStatistical(lowerText string) (constants.Category, float64) {
	freq := termFrequencies(lowerText)

	best := constants.Unclassified
	bestScore := 0.0
	for _, cat := range c.rules.order {
		score := c.scoreCategory(c.rules.profiles[cat], lowerText, freq)
		if score > bestScore {
			best, bestScore = cat, score
		}
	}

	if bestScore < scoreThreshold {
		return constants.Unclassified, 0
	}
	conf := bestScore / scoreScale
	if conf > 1 {
		conf = 1
	}
	return best, conf
}

func (c *Classifier) scoreCategory(rules CategoryRules, lowerText string, freq map[string]int) float64 {
	score := 0.0
	for _, kw := range rules.Keywords {
		if n := freq[kw]; n > 0 {
			score += float64(n) // idf is constant with one document
			score += keywordPresenceBonus
		}
	}
	for _, phrase := range rules.KeyPhrases {
		if strings.Contains(lowerText, phrase) {
			score += phraseBonus
		}
		matched := 0
		for _, tok := range reToken.FindAllString(phrase, -1) {
			if len(tok) >= minPhraseTokenLen && freq[tok] > 0 {
				matched++
			}
		}
		if matched > 1 {
			score += float64(matched) * phraseTokenBonus
		}
	}
	return score
}

// termFrequencies tokenizes lower-cased text into alphabetic tokens and
// counts those of length >= minTokenLen.
func termFrequencies(lowerText string) map[string]int {
	freq := make(map[string]int)
	for _, tok := range reToken.FindAllString(lowerText, -1) {
		if len(tok) < minTokenLen {
			continue
		}
		freq[tok]++
	}
	return freq
}
