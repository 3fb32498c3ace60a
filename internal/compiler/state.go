/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

package compiler

import (
	"github.com/golox/golox/internal/bytecode"
	"github.com/golox/golox/internal/scanner"
)

// maxLocals bounds the fixed-size local array of every function being
// compiled.
const maxLocals = 256

// maxConstants bounds a chunk's constant pool: constant indices are
// single-byte operands.
const maxConstants = 256

// local is a compile-time record of one declared name. depth == -1 means
// "declared but not yet initialized" (rejects self-reference in its own
// initializer); depth 0 is reserved for slot 0 of every function, the
// implicit "function being called" slot.
type local struct {
	name  string
	depth int
}

// compilerState is one entry in the explicit stack of nested compilers, one
// per function currently being compiled. The stack is owned by the parser
// (the driver): parser.function pushes a new state (newCompilerState) and
// parser.endCompiler pops it, so ownership of the chain never leaves the
// parser.
type compilerState struct {
	enclosing *compilerState

	function *bytecode.Function

	locals     [maxLocals]local
	localCount int
	scopeDepth int
}

// newCompilerState starts compiling a new Function of the given kind,
// reserving local slot 0 for the function itself.
func newCompilerState(enclosing *compilerState, kind bytecode.FunctionKind, name string) *compilerState {
	fn := bytecode.NewFunction(kind)
	fn.Name = name

	cs := &compilerState{
		enclosing: enclosing,
		function:  fn,
	}
	cs.locals[0] = local{name: "", depth: 0}
	cs.localCount = 1
	return cs
}

func (cs *compilerState) chunk() *bytecode.Chunk {
	return cs.function.Chunk
}

// parser drives the single-pass compilation: it owns the scanner, the
// current/previous token pair, the error/panic-mode protocol state, and the
// linked stack of compilerStates for nested `fun` declarations.
type parser struct {
	scanner *scanner.Scanner

	current  *scanner.Token
	previous *scanner.Token

	hadError  bool
	panicMode bool

	diagnostics []diagnostic

	cs *compilerState // top of the compiler stack
}

type diagnostic struct {
	line    int
	lexeme  string
	atEOF   bool
	noAt    bool
	message string
}
