package parser

import "regexp"

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,2}\s?)?(\(?\d{3}\)?[\s.-]?)?\d{3}[\s.-]?\d{4}`)
)

// ExtractEmail returns the first email address in the text, or nil when none
// is present.
func ExtractEmail(text string) *string {
	match := emailPattern.FindString(text)
	if match == "" {
		return nil
	}
	return &match
}

// ExtractPhone returns the first phone number in the text, tolerating an
// optional country code, an optional parenthesized area code, and space, dot
// or dash separators. Returns nil when none is present.
func ExtractPhone(text string) *string {
	match := phonePattern.FindString(text)
	if match == "" {
		return nil
	}
	return &match
}
