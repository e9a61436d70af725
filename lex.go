package calc

import (
	"strconv"
	"strings"
)

// Token is a single number or operator from an expression.
type Token struct {
	// Kind is the type of token.
	Kind TokenKind
	// Num is the value of a TokenNum.
	Num float64
	// Op is the symbol of a TokenOp.
	Op byte
}

// TokenKind distinguishes numbers from operators.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNum is a numeric literal, including any folded unary minus.
	TokenNum
	// TokenOp is an operator or a parenthesis.
	TokenOp
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "none"
	case TokenNum:
		return "num"
	case TokenOp:
		return "op"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Num creates a number token.
func Num(v float64) Token {
	return Token{Kind: TokenNum, Num: v}
}

// Op creates an operator token.
func Op(c byte) Token {
	return Token{Kind: TokenOp, Op: c}
}

func (t Token) String() string {
	switch t.Kind {
	case TokenNum:
		return "num:" + Format(t.Num)
	case TokenOp:
		return "op:" + string(t.Op)
	default:
		return t.Kind.String()
	}
}

// Tokens is a token sequence as produced by Tokenize.
type Tokens []Token

func (ts Tokens) String() string {
	var b strings.Builder
	for i, t := range ts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// Operators contains the symbols which are lexed as operators.
const Operators = "+-x/%()"

// Tokenize splits an expression into numbers and operators. Runes which are
// neither part of a number nor an operator, including spaces, are dropped,
// although they still end the number before them.
//
// A minus sign is folded into the number after it only when it is the first
// rune of the expression or immediately follows an open parenthesis. Anywhere
// else, including after another operator, it is a subtraction.
func Tokenize(expression string) (Tokens, error) {
	var toks Tokens
	var (
		innum bool
		start int
		prev  rune
	)
	for i, r := range expression {
		if '0' <= r && r <= '9' || r == '.' {
			if !innum {
				innum = true
				start = i
			}
			prev = r
			continue
		}
		if innum {
			tok, err := number(expression[start:i])
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			innum = false
		}
		switch {
		case r == '-' && (i == 0 || prev == '('):
			innum = true
			start = i
		case strings.ContainsRune(Operators, r):
			toks = append(toks, Op(byte(r)))
		}
		prev = r
	}
	if innum {
		tok, err := number(expression[start:])
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

// number parses the text of a numeric literal.
func number(s string) (Token, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Token{}, &NumberError{Text: s}
	}
	return Num(v), nil
}
