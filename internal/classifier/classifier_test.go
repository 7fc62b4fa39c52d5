package classifier

import (
	"strings"
	"testing"

	"github.com/joseph-ayodele/docuvault/constants"
)

func newDefault(t *testing.T) *Classifier {
	t.Helper()
	return NewClassifier(DefaultRuleset(), nil)
}

func TestFilenameStageWinsOverTextStage(t *testing.T) {
	c := newDefault(t)

	// Filename matches the question-paper rules; the text matches the
	// bank-statement text rules. Stage 1 must short-circuit stage 2.
	got := c.Classify("final_exam_paper.pdf", "account statement for the period ending march")
	if got.Category != constants.QuestionPaper {
		t.Fatalf("category = %s, want %s", got.Category, constants.QuestionPaper)
	}
	if got.Confidence != 0.8 {
		t.Fatalf("confidence = %v, want exactly 0.8", got.Confidence)
	}
}

func TestFilenameStageIgnoresPathAndExtension(t *testing.T) {
	c := newDefault(t)

	// "pdf" in the extension or a keyword in the directory must not trigger
	// a match; only the base name counts.
	got := c.Classify("/tmp/invoices/scan001.pdf", "")
	if got.Category == constants.Invoice {
		t.Fatal("directory name must not participate in filename matching")
	}
}

func TestTextStageConfidence(t *testing.T) {
	c := newDefault(t)

	got := c.Classify("scan001.pdf", "NOTICE IS HEREBY GIVEN that the office will remain closed")
	if got.Category != constants.Notice {
		t.Fatalf("category = %s, want %s", got.Category, constants.Notice)
	}
	if got.Confidence != 0.6 {
		t.Fatalf("confidence = %v, want exactly 0.6", got.Confidence)
	}
}

func TestStatisticalStageScoresKeywords(t *testing.T) {
	c := newDefault(t)

	// No filename or text rule fires; keyword frequency decides.
	// invoice x2 -> 2+3, five more present keywords -> 4 each: 25. The
	// "total amount" key phrase is not contained, but both of its tokens
	// appear independently, adding 2 per token: 29 total.
	got := c.Classify("doc01.pdf", "invoice invoice total payment amount quantity subtotal")
	if got.Category != constants.Invoice {
		t.Fatalf("category = %s, want %s", got.Category, constants.Invoice)
	}
	if got.Confidence != 29.0/50.0 {
		t.Fatalf("confidence = %v, want %v", got.Confidence, 29.0/50.0)
	}
}

func TestStatisticalFloor(t *testing.T) {
	c := newDefault(t)

	for _, text := range []string{
		"",
		"zebra xylophone qqq www",
		"OCR Extraction Failed", // the extraction sentinel flows through like any text
	} {
		got := c.Classify("doc01.pdf", text)
		if got.Category != constants.Unclassified || got.Confidence != 0 {
			t.Fatalf("Classify(%q) = {%s %v}, want {unclassified 0}", text, got.Category, got.Confidence)
		}
	}
}

func TestStatisticalBelowThresholdIsUnclassified(t *testing.T) {
	c := newDefault(t)

	// A single keyword hit scores 1+3 = 4, under the threshold of 5; the
	// confidence must be exactly 0, not 4/50.
	got := c.Classify("doc01.pdf", "invoice")
	if got.Category != constants.Unclassified || got.Confidence != 0 {
		t.Fatalf("got {%s %v}, want {unclassified 0}", got.Category, got.Confidence)
	}
}

func TestStatisticalConfidenceBounded(t *testing.T) {
	c := newDefault(t)

	inputs := []string{
		strings.Repeat("invoice ", 500), // saturates the linear scale
		strings.Repeat("patient diagnosis treatment hospital ", 100),
		"notice notice notice hereby hereby informed informed informed",
	}
	for _, text := range inputs {
		got := c.Classify("doc01.pdf", text)
		if got.Confidence < 0 || got.Confidence > 1 {
			t.Fatalf("confidence %v out of [0,1] for %.40q", got.Confidence, text)
		}
	}
}

func TestStatisticalKeyPhraseBonus(t *testing.T) {
	c := newDefault(t)

	// "roll number" and "reporting time" are admit-card key phrases;
	// phrase bonuses clear the threshold even with few keyword hits.
	got := c.Classify("doc01.pdf", "roll number 48112 for candidate venue allocation, reporting time 9am")
	if got.Category != constants.AdmitCard {
		t.Fatalf("category = %s, want %s", got.Category, constants.AdmitCard)
	}
	if got.Confidence <= 0 || got.Confidence > 1 {
		t.Fatalf("confidence %v out of range", got.Confidence)
	}
}

func TestStatisticalTieBreaksByRegistrationOrder(t *testing.T) {
	rs, err := NewRulesetBuilder().
		Add(constants.Category("alpha"), CategoryRules{Keywords: []string{"zephyr"}}).
		Add(constants.Category("beta"), CategoryRules{Keywords: []string{"zephyr"}}).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	c := NewClassifier(rs, nil)

	// Both categories score identically; the earlier registration must win,
	// deterministically, on every call.
	for i := 0; i < 10; i++ {
		got := c.Classify("doc01.pdf", "zephyr zephyr zephyr")
		if got.Category != constants.Category("alpha") {
			t.Fatalf("tie broken to %s, want alpha", got.Category)
		}
	}
}

func TestClassifierNeverFailsOnArbitraryInput(t *testing.T) {
	c := newDefault(t)

	inputs := []struct{ filename, text string }{
		{"", ""},
		{"....", "\x00\xff binary-ish \x7f"},
		{strings.Repeat("x", 1000) + ".pdf", strings.Repeat("\n", 1000)},
	}
	for _, in := range inputs {
		got := c.Classify(in.filename, in.text)
		if got.Confidence < 0 || got.Confidence > 1 {
			t.Fatalf("confidence %v out of [0,1]", got.Confidence)
		}
	}
}
