package constants

// FraudStatus is the canonical trust status for rows in documents.
type FraudStatus string

// Stable values (store these exact strings in DB).
const (
	FraudStatusPending    FraudStatus = "pending"    // upload accepted, screening not recorded yet
	FraudStatusVerified   FraudStatus = "verified"   // all checks passed
	FraudStatusSuspicious FraudStatus = "suspicious" // flagged for manual review
	FraudStatusRejected   FraudStatus = "rejected"   // failed a hard check
)

// AllFraudStatuses lists every value a reviewer may set.
var AllFraudStatuses = []FraudStatus{
	FraudStatusPending,
	FraudStatusVerified,
	FraudStatusSuspicious,
	FraudStatusRejected,
}

func IsValidFraudStatus(s string) bool {
	for _, st := range AllFraudStatuses {
		if s == string(st) {
			return true
		}
	}
	return false
}

// ActivityType labels entries in the activity audit trail.
type ActivityType string

const (
	ActivityUpload       ActivityType = "upload"
	ActivityDownload     ActivityType = "download"
	ActivityVerification ActivityType = "verification"
	ActivityShare        ActivityType = "share"
	ActivityUnshare      ActivityType = "unshare"
)
