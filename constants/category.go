package constants

import (
	"strings"
)

type Category string

const (
	QuestionPaper     Category = "question-paper"
	Notice            Category = "notice"
	Notification      Category = "notification"
	ScoreCard         Category = "score-card"
	Certificate       Category = "certificate"
	Invoice           Category = "invoice"
	IDCard            Category = "id-card"
	MedicalRecord     Category = "medical-record"
	BankStatement     Category = "bank-statement"
	Report            Category = "report"
	AdmitCard         Category = "admit-card"
	ContractAgreement Category = "contract-agreement"
	SalarySlip        Category = "salary-slip"
	Unclassified      Category = "unclassified"
)

// allCategories is the declared order of the taxonomy. The classifier breaks
// statistical-stage ties with this order, so it must stay stable.
var allCategories = []Category{
	QuestionPaper,
	Notice,
	Notification,
	ScoreCard,
	Certificate,
	Invoice,
	IDCard,
	MedicalRecord,
	BankStatement,
	Report,
	AdmitCard,
	ContractAgreement,
	SalarySlip,
	Unclassified,
}

func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps free-form input onto the taxonomy. Unknown values map to
// Unclassified with ok=false.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Unclassified, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"exam paper":   QuestionPaper,
		"marksheet":    ScoreCard,
		"mark sheet":   ScoreCard,
		"result":       ScoreCard,
		"bill":         Invoice,
		"receipt":      Invoice,
		"identity":     IDCard,
		"aadhaar":      IDCard,
		"passport":     IDCard,
		"prescription": MedicalRecord,
		"agreement":    ContractAgreement,
		"contract":     ContractAgreement,
		"payslip":      SalarySlip,
		"pay slip":     SalarySlip,
		"hall ticket":  AdmitCard,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Unclassified, false
}
