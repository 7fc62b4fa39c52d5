package classifier

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/joseph-ayodele/docuvault/constants"
)

// CategoryRules is everything the classifier knows about one category. It is
// plain data: adding a category means registering another one of these, not
// touching classification logic.
type CategoryRules struct {
	// FilenameKeywords drive stage 1: matched case-insensitively against the
	// base filename (no path, no extension).
	FilenameKeywords []string
	// TextPhrases drive stage 2: literal case-insensitive containment over
	// the full extracted text. Stronger/longer indicators than the filename
	// keywords.
	TextPhrases []string
	// Keywords and KeyPhrases drive the statistical stage.
	Keywords   []string
	KeyPhrases []string
}

type filenameRule struct {
	category constants.Category
	re       *regexp.Regexp
}

type textRule struct {
	category constants.Category
	phrases  []string
}

// Ruleset is an immutable, fully-compiled rule table. Construct one via
// RulesetBuilder (or LoadRuleset for external config) and share it freely;
// registration order is the stable tie-break order for the statistical stage.
type Ruleset struct {
	order         []constants.Category
	filenameRules []filenameRule
	textRules     []textRule
	profiles      map[constants.Category]CategoryRules
}

// Categories returns the registration order.
func (rs *Ruleset) Categories() []constants.Category {
	out := make([]constants.Category, len(rs.order))
	copy(out, rs.order)
	return out
}

// RulesetBuilder accumulates category rules and compiles them into a Ruleset.
type RulesetBuilder struct {
	order    []constants.Category
	profiles map[constants.Category]CategoryRules
}

func NewRulesetBuilder() *RulesetBuilder {
	return &RulesetBuilder{profiles: make(map[constants.Category]CategoryRules)}
}

// Add registers a category with its rules. Registration order matters: stage
// 1 and 2 evaluate rules in this order (put specific categories first), and
// the statistical stage breaks score ties in favor of earlier categories.
func (b *RulesetBuilder) Add(cat constants.Category, rules CategoryRules) *RulesetBuilder {
	if _, dup := b.profiles[cat]; !dup {
		b.order = append(b.order, cat)
	}
	b.profiles[cat] = rules
	return b
}

func (b *RulesetBuilder) Build() (*Ruleset, error) {
	rs := &Ruleset{
		order:    append([]constants.Category(nil), b.order...),
		profiles: make(map[constants.Category]CategoryRules, len(b.profiles)),
	}
	for _, cat := range b.order {
		rules := normalizeRules(b.profiles[cat])
		rs.profiles[cat] = rules

		if len(rules.FilenameKeywords) > 0 {
			re, err := compileKeywordRegex(rules.FilenameKeywords)
			if err != nil {
				return nil, fmt.Errorf("category %q: %w", cat, err)
			}
			rs.filenameRules = append(rs.filenameRules, filenameRule{category: cat, re: re})
		}
		if len(rules.TextPhrases) > 0 {
			rs.textRules = append(rs.textRules, textRule{category: cat, phrases: rules.TextPhrases})
		}
	}
	return rs, nil
}

func normalizeRules(r CategoryRules) CategoryRules {
	return CategoryRules{
		FilenameKeywords: lowerAll(r.FilenameKeywords),
		TextPhrases:      lowerAll(r.TextPhrases),
		Keywords:         lowerAll(r.Keywords),
		KeyPhrases:       lowerAll(r.KeyPhrases),
	}
}

func lowerAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func compileKeywordRegex(keywords []string) (*regexp.Regexp, error) {
	quoted := make([]string, len(keywords))
	for i, kw := range keywords {
		quoted[i] = regexp.QuoteMeta(kw)
	}
	return regexp.Compile("(?i)(" + strings.Join(quoted, "|") + ")")
}

// DefaultRuleset returns the compiled-in rule table covering the full
// taxonomy. External deployments can override it with a JSON config file via
// LoadRuleset.
func DefaultRuleset() *Ruleset {
	rs, err := NewRulesetBuilder().
		Add(constants.QuestionPaper, CategoryRules{
			FilenameKeywords: []string{"question", "paper", "exam"},
			TextPhrases:      []string{"question paper", "answer all questions", "answer any"},
			Keywords:         []string{"question", "questions", "answer", "marks", "exam", "syllabus", "section"},
			KeyPhrases:       []string{"question paper", "maximum marks", "time allowed", "answer all questions"},
		}).
		Add(constants.Notice, CategoryRules{
			FilenameKeywords: []string{"notice"},
			TextPhrases:      []string{"notice is hereby given", "public notice"},
			Keywords:         []string{"notice", "hereby", "informed", "attention", "concerned"},
			KeyPhrases:       []string{"notice is hereby given", "to whom it may concern", "all concerned are informed"},
		}).
		Add(constants.Notification, CategoryRules{
			FilenameKeywords: []string{"notification", "circular"},
			TextPhrases:      []string{"it is hereby notified", "official notification"},
			Keywords:         []string{"notification", "notified", "circular", "gazette", "order"},
			KeyPhrases:       []string{"it is hereby notified", "official gazette", "with immediate effect"},
		}).
		Add(constants.ScoreCard, CategoryRules{
			FilenameKeywords: []string{"scorecard", "marksheet", "result", "grade"},
			TextPhrases:      []string{"statement of marks", "grade sheet", "score card"},
			Keywords:         []string{"marks", "grade", "score", "percentage", "subject", "obtained", "semester"},
			KeyPhrases:       []string{"statement of marks", "marks obtained", "grade point average"},
		}).
		Add(constants.Certificate, CategoryRules{
			FilenameKeywords: []string{"certificate", "certification", "diploma"},
			TextPhrases:      []string{"this is to certify", "certificate of"},
			Keywords:         []string{"certificate", "certify", "awarded", "completion", "achievement"},
			KeyPhrases:       []string{"this is to certify", "certificate of completion", "has successfully completed"},
		}).
		Add(constants.Invoice, CategoryRules{
			FilenameKeywords: []string{"invoice", "bill", "receipt"},
			TextPhrases:      []string{"invoice number", "tax invoice", "amount due"},
			Keywords:         []string{"invoice", "total", "amount", "payment", "billing", "quantity", "subtotal"},
			KeyPhrases:       []string{"invoice number", "amount due", "payment terms", "total amount"},
		}).
		Add(constants.IDCard, CategoryRules{
			FilenameKeywords: []string{"idcard", "id-card", "aadhaar", "aadhar", "passport", "license", "licence"},
			TextPhrases:      []string{"identity card", "identification number"},
			Keywords:         []string{"identity", "identification", "nationality", "aadhaar", "passport", "licence"},
			KeyPhrases:       []string{"identity card", "date of birth", "identification number", "blood group"},
		}).
		Add(constants.MedicalRecord, CategoryRules{
			FilenameKeywords: []string{"medical", "prescription", "discharge"},
			TextPhrases:      []string{"medical record", "discharge summary", "clinical findings"},
			Keywords:         []string{"patient", "diagnosis", "treatment", "hospital", "medicine", "prescribed", "dosage"},
			KeyPhrases:       []string{"discharge summary", "patient name", "clinical findings", "prescribed medication"},
		}).
		Add(constants.BankStatement, CategoryRules{
			FilenameKeywords: []string{"statement", "passbook"},
			TextPhrases:      []string{"account statement", "statement of account", "opening balance"},
			Keywords:         []string{"account", "balance", "deposit", "withdrawal", "debit", "credit", "transaction", "branch"},
			KeyPhrases:       []string{"account statement", "opening balance", "closing balance", "statement period", "account number"},
		}).
		Add(constants.Report, CategoryRules{
			FilenameKeywords: []string{"report"},
			TextPhrases:      []string{"annual report", "project report", "executive summary"},
			Keywords:         []string{"report", "analysis", "findings", "summary", "conclusion", "methodology", "overview"},
			KeyPhrases:       []string{"executive summary", "annual report", "table of contents", "findings and recommendations"},
		}).
		Add(constants.AdmitCard, CategoryRules{
			FilenameKeywords: []string{"admit", "hallticket"},
			TextPhrases:      []string{"admit card", "hall ticket", "examination centre"},
			Keywords:         []string{"admit", "roll", "examination", "centre", "candidate", "venue"},
			KeyPhrases:       []string{"admit card", "hall ticket", "roll number", "examination centre", "reporting time"},
		}).
		Add(constants.ContractAgreement, CategoryRules{
			FilenameKeywords: []string{"contract", "agreement", "mou"},
			TextPhrases:      []string{"this agreement", "terms and conditions", "memorandum of understanding"},
			Keywords:         []string{"agreement", "contract", "parties", "clause", "witness", "executed", "hereinafter"},
			KeyPhrases:       []string{"this agreement", "terms and conditions", "party of the first part", "in witness whereof"},
		}).
		Add(constants.SalarySlip, CategoryRules{
			FilenameKeywords: []string{"salary", "payslip", "payroll"},
			TextPhrases:      []string{"salary slip", "pay slip", "net pay"},
			Keywords:         []string{"salary", "earnings", "deductions", "allowance", "basic", "gross", "payroll"},
			KeyPhrases:       []string{"salary slip", "net pay", "basic pay", "gross salary", "provident fund"},
		}).
		Build()
	if err != nil {
		// the compiled-in table is static; a compile failure is a programming error
		panic(err)
	}
	return rs
}
