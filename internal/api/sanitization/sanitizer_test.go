package sanitization

import (
	"strings"
	"testing"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain text", "plain text"},
		{"<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{`a "quoted" word`, "a &quot;quoted&quot; word"},
		{"fish & chips", "fish &amp; chips"},
		{"a < b > c", "a &lt; b &gt; c"},
		{"", ""},
		{"áéíóú ñ", "áéíóú ñ"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := EscapeHTML(tt.input); got != tt.want {
				t.Errorf("EscapeHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewlineToBreak(t *testing.T) {
	if got := NewlineToBreak("line one\nline two"); got != "line one<br/>line two" {
		t.Errorf("NewlineToBreak() = %q", got)
	}
}

func TestEscapeMultiline(t *testing.T) {
	got := EscapeMultiline("<b>bold</b>\nnext")
	if strings.Contains(got, "<b>") {
		t.Errorf("EscapeMultiline() left markup unescaped: %q", got)
	}
	if !strings.Contains(got, "<br/>") {
		t.Errorf("EscapeMultiline() lost line break: %q", got)
	}
}
