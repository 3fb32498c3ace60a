/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

// Package compiler is golox's single-pass Pratt compiler: it consumes a
// token stream from internal/scanner and emits bytecode directly into an
// internal/bytecode.Chunk, with no intermediate syntax tree. It resolves
// lexical scopes (locals only; there are no globals) and manages each
// function's constant pool.
package compiler

import (
	"fmt"
	"strconv"

	"github.com/golox/golox/internal/bytecode"
	"github.com/golox/golox/internal/errs"
	"github.com/golox/golox/internal/scanner"
)

// Compile compiles source into the implicit top-level script Function.
// Returns (nil, *errs.CompileError) if any syntax error was found; no
// partial bytecode is ever handed back in that case.
func Compile(source string) (*bytecode.Function, *errs.CompileError) {
	p := &parser{scanner: scanner.NewScanner(source)}
	p.cs = newCompilerState(nil, bytecode.FunctionScript, "")

	p.advance()

	// The top-level program runs inside an implicit scope, so that `let`
	// and `fun` at the top level always resolve as locals (spec.md §9,
	// open question 2): there are no globals in this language at all.
	p.beginScope()

	for !p.match(scanner.TokenEOF) {
		p.declaration()
	}

	fn := p.endCompiler()

	if p.hadError {
		diags := make([]errs.Diagnostic, len(p.diagnostics))
		for i, d := range p.diagnostics {
			diags[i] = errs.Diagnostic{
				Line:    d.line,
				Lexeme:  d.lexeme,
				AtEOF:   d.atEOF,
				NoAt:    d.noAt,
				Message: d.message,
			}
		}
		return nil, errs.NewCompileError(diags)
	}
	return fn, nil
}

//
// Parser driving primitives
//

func (p *parser) advance() {
	p.previous = p.current

	for {
		tok := p.scanner.Token()
		p.current = tok
		if tok.Kind != scanner.TokenError {
			break
		}
		p.errorAtCurrent(tok.Lexeme)
	}
}

func (p *parser) check(kind scanner.TokenKind) bool {
	return p.current.Kind == kind
}

func (p *parser) match(kind scanner.TokenKind) bool {
	if !p.check(kind) {
		return false
	}
	p.advance()
	return true
}

func (p *parser) consume(kind scanner.TokenKind, message string) {
	if p.current.Kind == kind {
		p.advance()
		return
	}
	p.errorAtCurrent(message)
}

//
// Error reporting
//

func (p *parser) errorAtCurrent(message string) {
	p.errorAt(p.current, message)
}

func (p *parser) errorAtPrevious(message string) {
	p.errorAt(p.previous, message)
}

func (p *parser) errorAt(tok *scanner.Token, message string) {
	if p.panicMode {
		return
	}
	p.panicMode = true
	p.hadError = true

	d := diagnostic{line: tok.Line, message: message}
	switch tok.Kind {
	case scanner.TokenEOF:
		d.atEOF = true
	case scanner.TokenError:
		d.noAt = true
	default:
		d.lexeme = tok.Lexeme
	}

	p.diagnostics = append(p.diagnostics, d)
}

// synchronize resynchronizes the parser after an error, at the next
// statement boundary: a just-consumed `;`, or the start of `return`, `fun`,
// or `let`.
func (p *parser) synchronize() {
	p.panicMode = false

	for p.current.Kind != scanner.TokenEOF {
		if p.previous.Kind == scanner.TokenSemicolon {
			return
		}
		switch p.current.Kind {
		case scanner.TokenFun, scanner.TokenLet, scanner.TokenReturn:
			return
		}
		p.advance()
	}
}

//
// Emission helpers
//

func (p *parser) currentChunk() *bytecode.Chunk {
	return p.cs.chunk()
}

func (p *parser) emitByte(b byte) {
	p.currentChunk().Write(b, p.previous.Line)
}

func (p *parser) emitOp(op bytecode.OpCode) {
	p.emitByte(byte(op))
}

func (p *parser) emitOpByte(op bytecode.OpCode, operand byte) {
	p.emitOp(op)
	p.emitByte(operand)
}

func (p *parser) emitReturn() {
	p.emitOp(bytecode.OpNil)
	p.emitOp(bytecode.OpReturn)
}

// makeConstant adds value to the current chunk's constant pool and returns
// its index, reporting a compile error if the single-byte operand limit is
// exceeded.
func (p *parser) makeConstant(value bytecode.Value) byte {
	index := p.currentChunk().AddConstant(value)
	if index >= maxConstants {
		p.errorAtPrevious("Too many constants in one chunk.")
		return 0
	}
	return byte(index)
}

func (p *parser) emitConstant(value bytecode.Value) {
	p.emitOpByte(bytecode.OpConstant, p.makeConstant(value))
}

// endCompiler finishes compiling the current function, emits its implicit
// return, and pops the compiler stack back to the enclosing compiler (or to
// nil, for the script).
func (p *parser) endCompiler() *bytecode.Function {
	p.emitReturn()
	fn := p.cs.function
	p.cs = p.cs.enclosing
	return fn
}

//
// Scopes and locals
//

func (p *parser) beginScope() {
	p.cs.scopeDepth++
}

// endScope closes the current scope, emitting one OP_POP per local that
// goes out of scope.
func (p *parser) endScope() {
	p.cs.scopeDepth--

	for p.cs.localCount > 0 && p.cs.locals[p.cs.localCount-1].depth > p.cs.scopeDepth {
		p.emitOp(bytecode.OpPop)
		p.cs.localCount--
	}
}

// addLocal registers name as a new local in the current scope, uninitialized
// (depth -1) until markInitialized is called.
func (p *parser) addLocal(name string) {
	if p.cs.localCount == maxLocals {
		p.errorAtPrevious("Too many local variables in function.")
		return
	}
	p.cs.locals[p.cs.localCount] = local{name: name, depth: -1}
	p.cs.localCount++
}

// declareVariable adds the just-consumed identifier token as a local,
// rejecting a redeclaration within the same scope.
func (p *parser) declareVariable() {
	name := p.previous.Lexeme

	for i := p.cs.localCount - 1; i >= 0; i-- {
		l := p.cs.locals[i]
		if l.depth != -1 && l.depth < p.cs.scopeDepth {
			break
		}
		if l.name == name {
			p.errorAtPrevious("Variable with this name already declared in this scope.")
			return
		}
	}

	p.addLocal(name)
}

// markInitialized sets the most recently declared local's depth to the
// current scope depth, making it visible to later references.
func (p *parser) markInitialized() {
	p.cs.locals[p.cs.localCount-1].depth = p.cs.scopeDepth
}

// undefinedSlot is emitted for a name that doesn't resolve to any locally
// active local: the compiler does not treat this as a syntax error (there's
// no global table to consult instead), it simply can't name the slot. The
// VM detects this at OP_GET_LOCAL/OP_SET_LOCAL dispatch time, since a slot
// this high is never within the live range of the executing frame's stack
// region, and reports "Undefined variable" as a runtime error (spec.md's
// "missing/undefined local slot" runtime-error category).
const undefinedSlot = maxLocals - 1

// resolveLocal looks up name among the active compiler's locals, scanning
// backward so that shadowing in a nested block resolves to the innermost
// binding. Returns the slot and true if found; false means name is not
// currently a live local (out of scope, or never declared).
func (p *parser) resolveLocal(name string) (slot byte, found bool) {
	for i := p.cs.localCount - 1; i >= 0; i-- {
		l := p.cs.locals[i]
		if l.name == name {
			if l.depth == -1 {
				p.errorAtPrevious("Cannot read local variable in its own initializer.")
				return 0, true
			}
			return byte(i), true
		}
	}
	return undefinedSlot, false
}

//
// Declarations
//

func (p *parser) declaration() {
	switch {
	case p.match(scanner.TokenFun):
		p.funDeclaration()
	case p.match(scanner.TokenLet):
		p.varDeclaration()
	default:
		p.statement()
	}

	if p.panicMode {
		p.synchronize()
	}
}

// funDeclaration parses `fun name() { ... }`. The function's own name is
// declared and marked initialized in the enclosing scope before its body is
// compiled, and the compiled Function is embedded as a constant in the
// enclosing chunk.
func (p *parser) funDeclaration() {
	p.consume(scanner.TokenIdentifier, "Expect function name.")
	name := p.previous.Lexeme

	p.declareVariable()
	p.markInitialized()

	p.function(name)
}

func (p *parser) function(name string) {
	p.cs = newCompilerState(p.cs, bytecode.FunctionFunction, name)
	p.beginScope()

	p.consume(scanner.TokenLeftParen, "Expect '(' after function name.")
	p.consume(scanner.TokenRightParen, "Expect ')' after parameters.")
	p.consume(scanner.TokenLeftBrace, "Expect '{' before function body.")

	for !p.check(scanner.TokenRightBrace) && !p.check(scanner.TokenEOF) {
		p.declaration()
	}
	p.consume(scanner.TokenRightBrace, "Expect '}' after block.")

	fn := p.endCompiler()

	// p.cs is now back to the enclosing compiler: makeConstant/emitOpByte
	// below target its chunk, embedding fn as one of its constants.
	p.emitConstant(bytecode.FunctionValue(fn))
}

// varDeclaration parses `let name = expr;`. The initializer is mandatory:
// bare `let x;` is rejected by requiring '=' here (spec.md §9, open
// question 1).
func (p *parser) varDeclaration() {
	p.consume(scanner.TokenIdentifier, "Expect variable name.")
	p.declareVariable()

	p.consume(scanner.TokenEqual, "Expect '=' after variable name.")
	p.expression()
	p.consume(scanner.TokenSemicolon, "Expect ';' after variable declaration.")

	p.markInitialized()
}

//
// Statements
//

func (p *parser) statement() {
	switch {
	case p.match(scanner.TokenPrint):
		p.printStatement()
	case p.match(scanner.TokenReturn):
		p.returnStatement()
	case p.match(scanner.TokenLeftBrace):
		p.beginScope()
		p.block()
		p.endScope()
	default:
		p.expressionStatement()
	}
}

func (p *parser) printStatement() {
	p.expression()
	p.consume(scanner.TokenSemicolon, "Expect ';' after expression.")
	p.emitOp(bytecode.OpPrint)
}

// returnStatement parses `return expression? ";"`. A bare `return;` returns
// Nil, the same value a function returns implicitly by falling off its end.
func (p *parser) returnStatement() {
	if p.match(scanner.TokenSemicolon) {
		p.emitReturn()
		return
	}
	p.expression()
	p.consume(scanner.TokenSemicolon, "Expect ';' after return value.")
	p.emitOp(bytecode.OpReturn)
}

// block parses `declaration* "}"`; the opening `{` must already be consumed.
func (p *parser) block() {
	for !p.check(scanner.TokenRightBrace) && !p.check(scanner.TokenEOF) {
		p.declaration()
	}
	p.consume(scanner.TokenRightBrace, "Expect '}' after block.")
}

func (p *parser) expressionStatement() {
	p.expression()
	p.consume(scanner.TokenSemicolon, "Expect ';' after expression.")
	p.emitOp(bytecode.OpPop)
}

//
// Expressions (Pratt parser)
//

func (p *parser) expression() {
	p.parsePrecedence(precAssignment)
}

func (p *parser) parsePrecedence(minPrec precedence) {
	p.advance()
	prefixRule := getRule(p.previous.Kind).prefix
	if prefixRule == nil {
		p.errorAtPrevious("Expect expression.")
		return
	}

	canAssign := minPrec <= precAssignment
	prefixRule(p, canAssign)

	for minPrec <= getRule(p.current.Kind).precedence {
		p.advance()
		infixRule := getRule(p.previous.Kind).infix
		infixRule(p, canAssign)
	}

	if canAssign && p.match(scanner.TokenEqual) {
		p.errorAtPrevious("Invalid assignment target.")
	}
}

func grouping(p *parser, _ bool) {
	p.expression()
	p.consume(scanner.TokenRightParen, "Expect ')' after expression.")
}

func number(p *parser, _ bool) {
	value, err := strconv.ParseFloat(p.previous.Lexeme, 64)
	if err != nil {
		p.errorAtPrevious(fmt.Sprintf("Invalid number literal %q.", p.previous.Lexeme))
		return
	}
	p.emitConstant(bytecode.NumberValue(value))
}

func unary(p *parser, _ bool) {
	p.parsePrecedence(precUnary)
	p.emitOp(bytecode.OpNegate)
}

func binary(p *parser, _ bool) {
	opKind := p.previous.Kind
	rule := getRule(opKind)
	p.parsePrecedence(rule.precedence + 1)

	switch opKind {
	case scanner.TokenPlus:
		p.emitOp(bytecode.OpAdd)
	case scanner.TokenMinus:
		p.emitOp(bytecode.OpSubtract)
	case scanner.TokenStar:
		p.emitOp(bytecode.OpMultiply)
	case scanner.TokenSlash:
		p.emitOp(bytecode.OpDivide)
	}
}

// call compiles the `(` that follows a callee expression. Since non-zero-
// arity calls are out of scope for this language, the argument list is
// always empty: any token other than the closing `)` is a syntax error.
func call(p *parser, _ bool) {
	p.consume(scanner.TokenRightParen, "Expect ')' after arguments.")
	p.emitOpByte(bytecode.OpCall, 0)
}

// variable compiles an identifier reference. A name that isn't a live local
// still compiles: it's left for the VM to reject at runtime (see
// undefinedSlot), matching spec.md's scenario of referencing a name after
// its block has closed. The one exception is a reference to the enclosing
// function's own name: slot 0 of every function is reserved for "the
// function being called" (newCompilerState), so a function can call itself
// by name without a global table or closures, the same trick clox uses for
// closure-free recursion.
func variable(p *parser, canAssign bool) {
	name := p.previous.Lexeme
	slot, found := p.resolveLocal(name)
	if !found && name == p.cs.function.Name {
		slot, found = 0, true
	}

	if canAssign && p.match(scanner.TokenEqual) {
		p.expression()
		p.emitOpByte(bytecode.OpSetLocal, slot)
		return
	}
	p.emitOpByte(bytecode.OpGetLocal, slot)
}
