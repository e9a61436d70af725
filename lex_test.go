package calc

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		src  string
		toks Tokens
	}{
		{"empty", "", nil},
		{"spaces", " \t ", nil},
		{"int", "9876543210", Tokens{Num(9876543210)}},
		{"frac", "1.25", Tokens{Num(1.25)}},
		{"lead-dot", ".5", Tokens{Num(0.5)}},
		{"trail-dot", "2.", Tokens{Num(2)}},
		{"neg-start", "-5", Tokens{Num(-5)}},
		{"neg-paren", "(-5)", Tokens{Op('('), Num(-5), Op(')')}},
		{"sub", "3-5", Tokens{Num(3), Op('-'), Num(5)}},
		{"sub-sub", "3--5", Tokens{Num(3), Op('-'), Op('-'), Num(5)}},
		{"mul-neg", "3x-5", Tokens{Num(3), Op('x'), Op('-'), Num(5)}},
		{"neg-after-space-paren", "( -5)", Tokens{Op('('), Op('-'), Num(5), Op(')')}},
		{"ops", "1+2x3/4%5", Tokens{Num(1), Op('+'), Num(2), Op('x'), Num(3), Op('/'), Num(4), Op('%'), Num(5)}},
		{"nested", "((1))", Tokens{Op('('), Op('('), Num(1), Op(')'), Op(')')}},
		{"dropped", "1 + a2", Tokens{Num(1), Op('+'), Num(2)}},
		{"split", "1 2", Tokens{Num(1), Num(2)}},
		{"star-dropped", "2*3", Tokens{Num(2), Num(3)}},
		{"unicode-dropped", "2×3π", Tokens{Num(2), Num(3)}},
		{"neg-unicode", "-1÷(-2)", Tokens{Num(-1), Op('('), Num(-2), Op(')')}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			if err != nil {
				t.Fatalf("%q gave error: %v", c.src, err)
			}
			if diff := cmp.Diff(c.toks, toks); diff != "" {
				t.Errorf("%q gave wrong tokens (-want +got):\n%s", c.src, diff)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		text string
	}{
		{"dots", "1.2.3", "1.2.3"},
		{"dot", ".", "."},
		{"dot-op", "1+.", "."},
		{"neg-alone", "-", "-"},
		{"neg-paren", "-(3)", "-"},
		{"neg-neg", "--5", "-"},
		{"paren-neg-end", "(-", "-"},
		{"huge", strings.Repeat("9", 400), strings.Repeat("9", 400)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			if err == nil {
				t.Fatalf("%q gave no error; tokens %v", c.src, toks)
			}
			if toks != nil {
				t.Errorf("%q gave tokens %v with error", c.src, toks)
			}
			var ne *NumberError
			if !errors.As(err, &ne) {
				t.Fatalf("%#v is not *NumberError", err)
			}
			if ne.Text != c.text {
				t.Errorf("%q: wrong literal in error: want %q, got %q", c.src, c.text, ne.Text)
			}
			if k := KindOf(err); k != InvalidNumber {
				t.Errorf("%q: wrong kind %v", c.src, k)
			}
		})
	}
}

func TestTokensString(t *testing.T) {
	toks := Tokens{Op('('), Num(-1.5), Op('x'), Num(2), Op(')')}
	want := "op:( num:-1.5 op:x num:2 op:)"
	if got := toks.String(); got != want {
		t.Errorf("want %q, got %q", want, got)
	}
	if got := (Token{}).String(); got != "none" {
		t.Errorf("zero token formats as %q", got)
	}
}

func TestOperatorsHavePrecedence(t *testing.T) {
	for _, r := range Operators {
		p := precedence(byte(r))
		switch r {
		case '(', ')':
			if p != 0 {
				t.Errorf("%c has precedence %d", r, p)
			}
		default:
			if p == 0 {
				t.Errorf("no precedence for %c", r)
			}
		}
	}
	if precedence('+') >= precedence('x') {
		t.Error("+ binds at least as tightly as x")
	}
}
