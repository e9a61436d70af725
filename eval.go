package calc

import (
	"math"
	"strconv"
)

// evaluator holds the operand and operator stacks for one evaluation.
type evaluator struct {
	nums []float64
	ops  []byte
}

// Evaluate computes the value of a token sequence, respecting precedence and
// parentheses. Operators of equal precedence apply left to right. If numbers
// are left over with no operator between them, as in "2(3)", the result is the
// last one. Panics if a token has kind TokenNone.
func Evaluate(toks []Token) (float64, error) {
	ev := evaluator{
		nums: make([]float64, 0, len(toks)/2+1),
		ops:  make([]byte, 0, len(toks)/2+1),
	}
	for _, tok := range toks {
		switch tok.Kind {
		case TokenNum:
			ev.nums = append(ev.nums, tok.Num)
		case TokenOp:
			if err := ev.op(tok.Op); err != nil {
				return 0, err
			}
		default:
			panic("calc: invalid token " + tok.String())
		}
	}
	for len(ev.ops) > 0 {
		if top := ev.ops[len(ev.ops)-1]; top == '(' {
			return 0, &BracketError{Op: top}
		}
		if err := ev.apply(); err != nil {
			return 0, err
		}
	}
	if len(ev.nums) == 0 {
		return 0, &ExpressionError{}
	}
	return ev.nums[len(ev.nums)-1], nil
}

// op handles an operator token.
func (ev *evaluator) op(c byte) error {
	switch c {
	case '(':
		ev.ops = append(ev.ops, c)
	case ')':
		for {
			if len(ev.ops) == 0 {
				return &BracketError{}
			}
			if ev.ops[len(ev.ops)-1] == '(' {
				ev.ops = ev.ops[:len(ev.ops)-1]
				return nil
			}
			if err := ev.apply(); err != nil {
				return err
			}
		}
	default:
		for len(ev.ops) > 0 {
			top := ev.ops[len(ev.ops)-1]
			if top == '(' || precedence(c) > precedence(top) {
				break
			}
			if err := ev.apply(); err != nil {
				return err
			}
		}
		ev.ops = append(ev.ops, c)
	}
	return nil
}

// apply pops two operands and an operator and pushes the result.
func (ev *evaluator) apply() error {
	if len(ev.nums) < 2 || len(ev.ops) == 0 {
		return &ExpressionError{Operands: len(ev.nums)}
	}
	y := ev.nums[len(ev.nums)-1]
	x := ev.nums[len(ev.nums)-2]
	ev.nums = ev.nums[:len(ev.nums)-2]
	op := ev.ops[len(ev.ops)-1]
	ev.ops = ev.ops[:len(ev.ops)-1]

	var r float64
	switch op {
	case '+':
		r = x + y
	case '-':
		r = x - y
	case 'x':
		r = x * y
	case '/':
		if y == 0 {
			return &ArithError{X: x, Y: y, Op: op, K: DivisionByZero}
		}
		r = x / y
	case '%':
		if y == 0 {
			return &ArithError{X: x, Y: y, Op: op, K: DivisionByZero}
		}
		r = math.Mod(x, y)
	default:
		return &BracketError{Op: op}
	}
	switch {
	case math.IsInf(r, 0):
		return &ArithError{X: x, Y: y, Op: op, K: Overflow}
	case math.IsNaN(r):
		return &ArithError{X: x, Y: y, Op: op, K: InvalidOperation}
	}
	ev.nums = append(ev.nums, r)
	return nil
}

// precedence gets the binding strength of an operator. Higher binds tighter.
func precedence(op byte) int {
	switch op {
	case '+', '-':
		return 1
	case 'x', '/', '%':
		return 2
	default:
		return 0
	}
}

// Calculate tokenizes and evaluates an expression.
func Calculate(expression string) (float64, error) {
	toks, err := Tokenize(expression)
	if err != nil {
		return 0, err
	}
	return Evaluate(toks)
}

// Format formats a result for display: the shortest decimal representation
// that reads back as the same value, never in exponent notation.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
