// Package calc implements a four-function-and-modulo calculator over float64.
//
// Expressions are written the way they are typed on a pocket calculator:
// numbers, the binary operators + - x / %, and parentheses. "x" is
// multiplication. A minus sign at the very start of the input or directly
// after an open parenthesis is part of the number that follows it, so "-5+3"
// and "2x(-3)" work, but "3--5" does not.
//
// Calculate is the usual entry point. Tokenize and Evaluate expose the two
// halves separately for callers that want to inspect the tokens.
package calc
