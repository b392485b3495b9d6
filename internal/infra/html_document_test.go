package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tbl := []struct {
		in, want string
	}{
		{"", ""},
		{"Без тегов", "Без тегов"},
		{"Опыт работы с <b>Go</b> &quot;от 3 лет&quot;", `Опыт работы с Go "от 3 лет"`},
		{"Знание <highlighttext>Python</highlighttext>", "Знание Python"},
		{"  много\n   пробелов ", "много пробелов"},
		{"R&amp;D", "R&D"},
	}
	for _, tt := range tbl {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}
