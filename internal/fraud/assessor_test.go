package fraud

import (
	"strings"
	"testing"

	"github.com/joseph-ayodele/docuvault/constants"
)

// longText is clean filler comfortably over the length floor.
func longText(extra string) string {
	return strings.Repeat("legitimate document content ", 5) + extra
}

func TestShortTextRejectedBeforeAnyOtherRule(t *testing.T) {
	// 50 chars of id-card text with high confidence: the length rule fires
	// first, so the outcome is rejected, never suspicious.
	text := strings.Repeat("x", 50)
	got := Assess(text, constants.IDCard, 0.9)
	if got.Status != constants.FraudStatusRejected {
		t.Fatalf("status = %s, want rejected", got.Status)
	}
	if got.Reason != "Text too short to be legitimate" {
		t.Fatalf("reason = %q", got.Reason)
	}
}

func TestKnownFakePhrasesRejected(t *testing.T) {
	for _, marker := range []string{"DUMMY", "dummy", "This is a Test Document for QA"} {
		got := Assess(longText(marker), constants.Invoice, 0.9)
		if got.Status != constants.FraudStatusRejected {
			t.Fatalf("text with %q: status = %s, want rejected", marker, got.Status)
		}
		if got.Reason != "Contains known fake phrases" {
			t.Fatalf("reason = %q", got.Reason)
		}
	}
}

func TestIDCardWithoutIDPatternSuspicious(t *testing.T) {
	got := Assess(longText("name and address but no number runs"), constants.IDCard, 0.9)
	if got.Status != constants.FraudStatusSuspicious {
		t.Fatalf("status = %s, want suspicious", got.Status)
	}
	if got.Reason != "Missing valid ID pattern" {
		t.Fatalf("reason = %q", got.Reason)
	}
}

func TestIDCardWithIDPatternPasses(t *testing.T) {
	got := Assess(longText("identity number 482915673401"), constants.IDCard, 0.9)
	if got.Status != constants.FraudStatusVerified {
		t.Fatalf("status = %s, want verified", got.Status)
	}
	if got.Reason != "" {
		t.Fatalf("verified assessment must carry no reason, got %q", got.Reason)
	}
}

func TestIDPatternOnlyAppliesToIDCards(t *testing.T) {
	// Same digit-free text, non-id-card category: rule 3 is skipped.
	got := Assess(longText("no digits here at all"), constants.Invoice, 0.9)
	if got.Status != constants.FraudStatusVerified {
		t.Fatalf("status = %s, want verified", got.Status)
	}
}

func TestLowConfidenceSuspicious(t *testing.T) {
	got := Assess(longText(""), constants.Invoice, 0.39999)
	if got.Status != constants.FraudStatusSuspicious {
		t.Fatalf("status = %s, want suspicious", got.Status)
	}
	if got.Reason != "Low classification confidence" {
		t.Fatalf("reason = %q", got.Reason)
	}
}

func TestConfidenceBoundaryIsStrict(t *testing.T) {
	// Exactly 0.4 passes: the comparison is strictly less-than.
	got := Assess(longText(""), constants.Invoice, 0.4)
	if got.Status != constants.FraudStatusVerified {
		t.Fatalf("confidence 0.4: status = %s, want verified", got.Status)
	}
}

func TestVerifiedOutcome(t *testing.T) {
	got := Assess(longText(""), constants.Report, 0.8)
	if got.Status != constants.FraudStatusVerified || got.Reason != "" {
		t.Fatalf("got {%s %q}, want {verified \"\"}", got.Status, got.Reason)
	}
}
