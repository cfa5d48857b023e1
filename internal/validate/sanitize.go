package validate

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

var interiorWhitespace = regexp.MustCompile(`\s{2,}`)

// Sanitize strips HTML markup from user input and tidies whitespace: tags go,
// text content stays (including the body of script tags, since this is a tag
// stripper and not a content filter), then the result is NFC-normalized,
// trimmed, and runs of two or more whitespace characters collapse to one
// space. Applying it twice is the same as applying it once.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	text := stripTags(norm.NFC.String(s))
	text = strings.TrimSpace(text)
	return interiorWhitespace.ReplaceAllString(text, " ")
}

// stripTags walks the input with an HTML tokenizer and keeps only text
// tokens. Comments and tag markup disappear. Raw token bytes are kept rather
// than the entity-decoded form so that sanitizing twice cannot surface new
// markup.
func stripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}
	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or malformed markup; either way we keep what we have.
			return b.String()
		case html.TextToken:
			b.Write(z.Raw())
		}
	}
}
