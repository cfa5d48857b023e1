// Package validate gates user-entered and API-bound strings before they are
// used anywhere else: share platform names, referral codes, email addresses,
// and free-text input that may carry HTML. Every check here is a total
// function; bad input comes back as false or an empty string, never a panic.
package validate

import "strings"

// Platform is one of the share targets the app can hand a deep link to.
type Platform string

const (
	PlatformWhatsApp  Platform = "whatsapp"
	PlatformTelegram  Platform = "telegram"
	PlatformEmail     Platform = "email"
	PlatformSMS       Platform = "sms"
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
)

var platforms = map[Platform]struct{}{
	PlatformWhatsApp:  {},
	PlatformTelegram:  {},
	PlatformEmail:     {},
	PlatformSMS:       {},
	PlatformFacebook:  {},
	PlatformTwitter:   {},
	PlatformInstagram: {},
}

// ParsePlatform matches a user-supplied value against the closed platform
// set, case-insensitively and ignoring surrounding whitespace.
func ParsePlatform(s string) (Platform, bool) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	_, ok := platforms[p]
	if !ok {
		return "", false
	}
	return p, true
}

// ValidPlatform reports whether s names a known share platform.
func ValidPlatform(s string) bool {
	_, ok := ParsePlatform(s)
	return ok
}
