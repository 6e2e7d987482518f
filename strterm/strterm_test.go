package strterm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gorbylang/rubylex/strterm"
)

func TestFuncInterpolates(t *testing.T) {
	tests := []struct {
		name string
		fn   strterm.Func
		want bool
	}{
		{"squote does not interpolate", strterm.StrSquote, false},
		{"dquote interpolates", strterm.StrDquote, true},
		{"xquote interpolates", strterm.StrXquote, true},
		{"regexp interpolates", strterm.StrRegexp, true},
		{"sword does not interpolate", strterm.StrSword, false},
		{"dword interpolates", strterm.StrDword, true},
		{"ssym does not interpolate", strterm.StrSsym, false},
		{"dsym interpolates", strterm.StrDsym, true},
		{"label alone does not interpolate", strterm.StrLabel, false},
		{"dquote combined with label still interpolates", strterm.StrDquote | strterm.StrLabel, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn.Interpolates())
		})
	}
}

func TestFuncHas(t *testing.T) {
	fn := strterm.StrDquote | strterm.StrLabel
	assert.True(t, fn.Has(strterm.StrDquote))
	assert.True(t, fn.Has(strterm.StrLabel))
	assert.False(t, fn.Has(strterm.StrSquote))
}

func TestNewStringLiteral(t *testing.T) {
	term := strterm.NewStringLiteral(strterm.StrDquote, '(', ')')
	assert.Equal(t, strterm.KindStringLiteral, term.Kind)
	assert.Equal(t, strterm.StrDquote, term.Func)
	assert.Equal(t, int('('), term.Paren)
	assert.Equal(t, int(')'), term.End)
	assert.False(t, term.IsHeredoc())
}

func TestNewHeredocLiteral(t *testing.T) {
	term := strterm.NewHeredocLiteral("EOF", true, false, '"', 3, 7, 1)
	assert.Equal(t, strterm.KindHeredocLiteral, term.Kind)
	assert.Equal(t, "EOF", term.ID)
	assert.True(t, term.Squiggly)
	assert.False(t, term.Dash)
	assert.Equal(t, byte('"'), term.QuoteStyle)
	assert.Equal(t, 3, term.SavedPTok)
	assert.Equal(t, 7, term.SavedPCur)
	assert.Equal(t, 1, term.SavedLine)
	assert.True(t, term.IsHeredoc())
}

func TestIsHeredocOnNilTerm(t *testing.T) {
	var term *strterm.Term
	assert.False(t, term.IsHeredoc())
}
