package acedocs_test

import (
	"testing"

	"github.com/Bluscream/acedocs"
	"github.com/stretchr/testify/assert"
)

func TestEscapeMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"a*b_c", `a\*b\_c`},
		{"~~strike~~", `\~\~strike\~\~`},
		{"`code`", "\\`code\\`"},
		{`C:\path`, `C:\\path`},
		{"a | b > c", `a \| b \> c`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, acedocs.EscapeMarkdown(tt.in))
		})
	}
}
