package helpers

import "strings"

var monthNumbers = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04",
	"may": "05", "jun": "06", "jul": "07", "aug": "08",
	"sep": "09", "oct": "10", "nov": "11", "dec": "12",
	"january": "01", "february": "02", "march": "03", "april": "04",
	"june": "06", "july": "07", "august": "08",
	"september": "09", "october": "10", "november": "11", "december": "12",
}

// MonthOrDay canonicalizes a month or day token to two digits. Numeric tokens
// of up to two digits are zero-padded; English month names and abbreviations
// (an optional trailing dot is tolerated) map to "01".."12". The second
// return value reports whether the token was recognized.
func MonthOrDay(token string) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(token, ".", "")))
	if m, ok := monthNumbers[name]; ok {
		return m, true
	}

	digits := strings.TrimSpace(token)
	if digits == "" || len(digits) > 2 {
		return "", false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	if len(digits) == 1 {
		return "0" + digits, true
	}
	return digits, true
}
