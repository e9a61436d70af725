// Package keypad models the button panel of a pocket calculator. It decides
// which key presses may extend the current input so that the expressions it
// hands to calc.Calculate are well formed, and it shows the result or error
// in place of the input after =.
package keypad

import (
	"strings"

	"github.com/zephyrtronium/calc"
)

// Key is a key on the keypad. Digits, '.', and the operators '+', '-', 'x',
// '/', and '%' are their own keys.
type Key rune

const (
	// KeyParens is the single "()" key, which opens or closes a parenthesis
	// depending on the input.
	KeyParens Key = '('
	// KeyClear empties the input.
	KeyClear Key = 'C'
	// KeyBackspace removes the last rune of the input.
	KeyBackspace Key = '\b'
	// KeyEquals evaluates the input.
	KeyEquals Key = '='
)

// DefaultMaxInput is the default length limit of the input.
const DefaultMaxInput = 20

const binops = "+-x/%"

// Keypad is the input state of a calculator. A Keypad is not safe for
// concurrent use.
type Keypad struct {
	input []rune
	// showing is set after = while the display holds a result or error. The
	// next key that adds to the input replaces it.
	showing bool
	max     int
}

// Option is an option for New.
type Option func(*Keypad)

// MaxInput sets the maximum number of runes the input may hold. Values less
// than one mean the default.
func MaxInput(n int) Option {
	return func(k *Keypad) {
		if n < 1 {
			n = DefaultMaxInput
		}
		k.max = n
	}
}

// New creates an empty keypad.
func New(opts ...Option) *Keypad {
	k := Keypad{max: DefaultMaxInput}
	for _, opt := range opts {
		opt(&k)
	}
	return &k
}

// Display returns the current input, or the result or error after =.
func (k *Keypad) Display() string {
	return string(k.input)
}

// Showing returns whether the display holds the outcome of =.
func (k *Keypad) Showing() bool {
	return k.showing
}

// Press handles a key press. Keys which are not allowed in the current state,
// or which the keypad does not have, are ignored.
func (k *Keypad) Press(key Key) {
	switch {
	case key == KeyClear:
		k.input = k.input[:0]
		k.showing = false
	case key == KeyBackspace:
		if k.showing {
			k.input = k.input[:0]
		} else if len(k.input) > 0 {
			k.input = k.input[:len(k.input)-1]
		}
	case key == KeyEquals:
		k.equals()
	case key == KeyParens:
		k.parens()
	case key == '.':
		if k.allowed('.') {
			k.add('.')
		}
	case '0' <= key && key <= '9', strings.ContainsRune(binops, rune(key)):
		if k.showing {
			k.input = k.input[:0]
			k.showing = false
		}
		if k.allowed(rune(key)) {
			k.add(rune(key))
		}
	}
}

// add appends to the input, first clearing a shown result.
func (k *Keypad) add(r rune) {
	if k.showing {
		k.input = k.input[:0]
		k.showing = false
	}
	if len(k.input) < k.max {
		k.input = append(k.input, r)
	}
}

// parens opens a parenthesis where a term may start, closes one if any are
// open, and otherwise multiplies the input by a new parenthesized term.
func (k *Keypad) parens() {
	last, ok := k.last()
	switch {
	case !ok, last == '(', strings.ContainsRune(binops, last):
		k.add('(')
	case k.count('(') > k.count(')'):
		k.add(')')
	default:
		if !k.showing {
			k.add('x')
		}
		k.add('(')
	}
}

func (k *Keypad) equals() {
	r, err := calc.Calculate(string(k.input))
	var s string
	if err != nil {
		s = err.Error()
	} else {
		s = calc.Format(r)
	}
	k.input = append(k.input[:0], []rune(s)...)
	k.showing = true
}

// allowed reports whether r may follow the current input.
func (k *Keypad) allowed(r rune) bool {
	if r == '.' {
		// Only one decimal point per number.
		dot := true
		for _, c := range k.input {
			switch {
			case c == '.':
				dot = false
			case strings.ContainsRune(binops, c):
				dot = true
			}
		}
		return dot
	}
	digit := '0' <= r && r <= '9'
	last, ok := k.last()
	switch {
	case !ok:
		return digit || r == '-'
	case last == ')':
		return strings.ContainsRune(binops, r)
	case strings.ContainsRune(binops, last), last == '.':
		return digit
	case '0' <= last && last <= '9':
		return digit || strings.ContainsRune(binops, r)
	case last == '(':
		return digit || r == '-'
	default:
		return true
	}
}

func (k *Keypad) last() (rune, bool) {
	if len(k.input) == 0 {
		return 0, false
	}
	return k.input[len(k.input)-1], true
}

func (k *Keypad) count(r rune) int {
	n := 0
	for _, c := range k.input {
		if c == r {
			n++
		}
	}
	return n
}
