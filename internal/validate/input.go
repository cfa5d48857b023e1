package validate

import (
	"regexp"
	"strings"
)

var (
	referralCodePattern = regexp.MustCompile(`^[A-Za-z0-9]{6,12}$`)
	emailPattern        = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)
)

// ValidReferralCode accepts 6-12 alphanumeric characters after trimming.
// Hyphens, underscores, and embedded whitespace all fail.
func ValidReferralCode(s string) bool {
	return referralCodePattern.MatchString(strings.TrimSpace(s))
}

// ValidEmail accepts a local@domain.tld shape after trimming. The domain
// must carry at least one dot; embedded spaces fail.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}
