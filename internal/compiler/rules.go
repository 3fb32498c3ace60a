/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

package compiler

import "github.com/golox/golox/internal/scanner"

// precedence levels, low to high. Binary parselets recurse into their right
// operand at precedence+1, which is what makes them left-associative.
type precedence int

const (
	precNone       precedence = iota
	precAssignment            // =
	precEquality              // ==
	precComparison            // (none defined, reserved)
	precTerm                  // + -
	precFactor                // * /
	precUnary                 // - (unary)
	precCall                  // ()
	precPrimary
)

// parseFn is a Pratt parselet: it mutates the emission target, it does not
// return a value. canAssign tells an infix/prefix parselet whether `=` may
// be consumed here (it may not, inside e.g. a binary operator's operand).
type parseFn func(p *parser, canAssign bool)

// rule is one entry of the Pratt table: token kind -> {prefix, infix, prec}.
type rule struct {
	prefix     parseFn
	infix      parseFn
	precedence precedence
}

// rules is a package-level array indexed by scanner.TokenKind, total over
// every token kind the scanner can produce (entries with no parselet simply
// have precedence precNone). TokenKind is a dense, zero-based iota, so the
// array is indexed directly rather than through a string- or kind-keyed map.
var rules = [...]rule{
	scanner.TokenLeftParen:  {prefix: grouping, infix: call, precedence: precCall},
	scanner.TokenRightParen: {precedence: precNone},
	scanner.TokenLeftBrace:  {precedence: precNone},
	scanner.TokenRightBrace: {precedence: precNone},
	scanner.TokenSemicolon:  {precedence: precNone},
	scanner.TokenMinus:      {prefix: unary, infix: binary, precedence: precTerm},
	scanner.TokenPlus:       {infix: binary, precedence: precTerm},
	scanner.TokenSlash:      {infix: binary, precedence: precFactor},
	scanner.TokenStar:       {infix: binary, precedence: precFactor},
	scanner.TokenEqual:      {precedence: precNone},
	scanner.TokenEqualEqual: {precedence: precNone},
	scanner.TokenIdentifier: {prefix: variable, precedence: precNone},
	scanner.TokenNumber:     {prefix: number, precedence: precNone},
	scanner.TokenFun:        {precedence: precNone},
	scanner.TokenLet:        {precedence: precNone},
	scanner.TokenPrint:      {precedence: precNone},
	scanner.TokenReturn:     {precedence: precNone},
	scanner.TokenError:      {precedence: precNone},
	scanner.TokenEOF:        {precedence: precNone},
}

// ruleTable is rules as seen by getRule. Reading the table through this
// variable, which has no initializer, keeps the parselets stored in rules
// from making rules' own initializer depend on itself.
var ruleTable []rule

func init() {
	ruleTable = rules[:]
}

func getRule(kind scanner.TokenKind) rule {
	return ruleTable[kind]
}
