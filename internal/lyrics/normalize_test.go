package lyrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"no breaks", "single line", "single line"},
		{"single breaks untouched", "a\nb\nc", "a\nb\nc"},
		{"double LF", "a\n\nb", "a\nb"},
		{"many LF", "a\n\n\n\nb", "a\nb"},
		{"CRLF run", "a\r\n\r\n\r\nb", "a\r\nb"},
		{"whitespace only line", "a\n   \t\nb", "a\nb"},
		{"keeps indentation of next line", "a\n\n  b", "a\n  b"},
		{"indentation without blank line", "a\n  b", "a\n  b"},
		{"leading blank lines", "\n\n\na", "\na"},
		{"trailing blank lines", "a\n\n\n", "a\n"},
		{"mixed breaks keep the first", "a\n\r\n\nb", "a\nb"},
		{"unicode untouched", "héllo\n\nwörld", "héllo\nwörld"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"a\n\nb",
		"\r\n\r\n\n",
		"a\r\n\r\n\nb",
		"a \n \n \r\n b\n",
		"\n\t\n\t\n",
		"x\r\r\n\r\ny",
		"[00:01.00] a\n\n\n[00:02.00] b\r\n",
		"\xff\n\n\xfe",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}
