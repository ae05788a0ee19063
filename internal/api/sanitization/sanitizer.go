package sanitization

import "strings"

// htmlEscaper mirrors the replacement set applied to user-supplied text
// before it is interpolated into notification email bodies.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// EscapeHTML escapes user-supplied text for safe interpolation into an HTML
// mail body.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// NewlineToBreak maps newlines in free-text fields to HTML line breaks.
// Call after EscapeHTML; escaping does not touch newlines.
func NewlineToBreak(s string) string {
	return strings.ReplaceAll(s, "\n", "<br/>")
}

// EscapeMultiline escapes a free-text field and preserves its line structure.
func EscapeMultiline(s string) string {
	return NewlineToBreak(EscapeHTML(s))
}
