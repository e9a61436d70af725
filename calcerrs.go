package calc

import (
	"errors"
	"strconv"
)

// Kind classifies calculation errors.
type Kind int8

const (
	KindNone Kind = iota
	// InvalidNumber is a numeric literal that does not parse, e.g. "1.2.3".
	InvalidNumber
	// MismatchedParenthesis is a close parenthesis with no open one, or an
	// open parenthesis that is never closed.
	MismatchedParenthesis
	// InvalidExpression is an operator without two operands or an expression
	// with no numbers at all.
	InvalidExpression
	// DivisionByZero is division or remainder by exactly zero.
	DivisionByZero
	// Overflow is an operation with an infinite result.
	Overflow
	// InvalidOperation is an operation with a NaN result.
	InvalidOperation
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "no error"
	case InvalidNumber:
		return "invalid number"
	case MismatchedParenthesis:
		return "mismatched parenthesis"
	case InvalidExpression:
		return "invalid expression"
	case DivisionByZero:
		return "division by zero"
	case Overflow:
		return "overflow occurred"
	case InvalidOperation:
		return "invalid operation resulted in NaN"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error is implemented by every error that Tokenize, Evaluate, and Calculate
// return. The message is meant to be shown to the user in place of a result.
type Error interface {
	error
	// Kind returns the class of the error.
	Kind() Kind
}

// KindOf returns the kind of the first Error in err's chain, or KindNone if
// there is none.
func KindOf(err error) Kind {
	var e Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return KindNone
}

// NumberError is an error indicating a numeric literal that could not be
// parsed. It implements Error.
type NumberError struct {
	// Text is the literal, including any folded minus sign.
	Text string
}

func (err *NumberError) Error() string {
	return "invalid number " + strconv.Quote(err.Text)
}

func (err *NumberError) Kind() Kind {
	return InvalidNumber
}

// BracketError is an error indicating unbalanced parentheses. It implements
// Error.
type BracketError struct {
	// Op is the unclosed open parenthesis or unknown operator that was found
	// while applying operators, or 0 for a close parenthesis with no match.
	Op byte
}

func (err *BracketError) Error() string {
	return MismatchedParenthesis.String()
}

func (err *BracketError) Kind() Kind {
	return MismatchedParenthesis
}

// ExpressionError is an error indicating an operator without two operands or
// an expression with no number to return. It implements Error.
type ExpressionError struct {
	// Operands is the number of operands left when the error was found.
	Operands int
}

func (err *ExpressionError) Error() string {
	return InvalidExpression.String()
}

func (err *ExpressionError) Kind() Kind {
	return InvalidExpression
}

// ArithError is an error from applying an operator to two numbers. Its kind
// is one of DivisionByZero, Overflow, or InvalidOperation. It implements
// Error.
type ArithError struct {
	// X and Y are the left and right operands.
	X, Y float64
	// Op is the operator.
	Op byte
	// K is the kind of arithmetic failure.
	K Kind
}

func (err *ArithError) Error() string {
	return err.K.String()
}

func (err *ArithError) Kind() Kind {
	return err.K
}

var (
	_ Error = (*NumberError)(nil)
	_ Error = (*BracketError)(nil)
	_ Error = (*ExpressionError)(nil)
	_ Error = (*ArithError)(nil)
)
