// Package fraud screens freshly ingested documents with an ordered chain of
// heuristic checks. The chain is order-sensitive: exactly one rule fires
// per document.
package fraud

import (
	"regexp"
	"strings"

	"github.com/joseph-ayodele/docuvault/constants"
)

// Assessment is the screening outcome. Reason is set whenever the status is
// not verified.
type Assessment struct {
	Status constants.FraudStatus
	Reason string
}

const (
	minTextLength       = 100
	minConfidence       = 0.4
	reasonShortText     = "Text too short to be legitimate"
	reasonFakePhrases   = "Contains known fake phrases"
	reasonMissingID     = "Missing valid ID pattern"
	reasonLowConfidence = "Low classification confidence"
)

// National ID numbers carry a 12-digit run.
var reIDNumber = regexp.MustCompile(`\d{12}`)

// Assess runs the checks top to bottom and returns on the first match. The
// ordering is part of the contract: a short id-card document is rejected for
// its length, never flagged for its missing ID pattern.
func Assess(extractedText string, category constants.Category, confidence float64) Assessment {
	textLower := strings.ToLower(extractedText)

	// 1. Very short OCR text
	if len(extractedText) < minTextLength {
		return Assessment{Status: constants.FraudStatusRejected, Reason: reasonShortText}
	}

	// 2. Obvious fake content
	if strings.Contains(textLower, "dummy") || strings.Contains(textLower, "test document") {
		return Assessment{Status: constants.FraudStatusRejected, Reason: reasonFakePhrases}
	}

	// 3. Missing required patterns for specific types
	if category == constants.IDCard && !reIDNumber.MatchString(textLower) {
		return Assessment{Status: constants.FraudStatusSuspicious, Reason: reasonMissingID}
	}

	// 4. Low classification confidence
	if confidence < minConfidence {
		return Assessment{Status: constants.FraudStatusSuspicious, Reason: reasonLowConfidence}
	}

	return Assessment{Status: constants.FraudStatusVerified}
}
