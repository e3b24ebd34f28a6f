package rfq

import (
	"fmt"
	"regexp"
	"time"
)

// NumberPrefix is the prefix shared by all generated RFQ numbers
const NumberPrefix = "SOMVI-RFQ"

// numberPattern matches both the sequence form SOMVI-RFQ-2026-00042
// and the fallback form SOMVI-RFQ-1756600000000.
var numberPattern = regexp.MustCompile(`^SOMVI-RFQ-(\d{4}-\d{5}|\d{13,})$`)

// SequenceNumber formats a sequence-backed RFQ number for the given
// year and counter value, e.g. SOMVI-RFQ-2026-00042.
func SequenceNumber(year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%05d", NumberPrefix, year, seq)
}

// FallbackNumber builds a timestamp-based RFQ number for when the
// sequence generator is unavailable. Uniqueness is only probabilistic:
// two submissions inside the same millisecond collide. Callers must
// prefer Repository.GenerateRFQNumber and treat this as degraded mode.
func FallbackNumber(now time.Time) string {
	return fmt.Sprintf("%s-%d", NumberPrefix, now.UnixMilli())
}

// IsValidNumber reports whether s is a well-formed RFQ number in
// either the sequence or the fallback form.
func IsValidNumber(s string) bool {
	return numberPattern.MatchString(s)
}
