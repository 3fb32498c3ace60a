/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

package errs

import (
	"fmt"
	"strings"
)

// Error is a golox error: something that can report itself and knows which
// process exit code it maps to.
type Error interface {
	error
	ExitCode() int
}

//
// UsageError
//

// UsageError indicates that golox was invoked incorrectly from the command
// line (wrong number of arguments, unknown flag, and the like).
type UsageError struct {
	Message string
}

// NewUsageError is a handy way to create a UsageError.
func NewUsageError(format string, a ...any) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, a...)}
}

func (e *UsageError) Error() string {
	return "Usage error: " + e.Message
}

// ExitCode fulfills the Error interface.
func (e *UsageError) ExitCode() int {
	return StatusCodeUsageError
}

//
// CompileError
//

// Diagnostic is a single compile-time diagnostic, in the
// "[line N] Error at X: msg" format used throughout the compiler. NoAt omits
// the "at X" clause entirely (used for diagnostics anchored on a scanner
// ERROR token, whose lexeme is already the message itself); otherwise AtEOF
// renders it as "at end", and with neither set it names Lexeme.
type Diagnostic struct {
	Line    int
	Lexeme  string
	AtEOF   bool
	NoAt    bool
	Message string
}

// String formats the diagnostic exactly as the compiler prints it.
func (d Diagnostic) String() string {
	switch {
	case d.NoAt:
		return fmt.Sprintf("[line %d] Error: %s", d.Line, d.Message)
	case d.AtEOF:
		return fmt.Sprintf("[line %d] Error at end: %s", d.Line, d.Message)
	default:
		return fmt.Sprintf("[line %d] Error at '%s': %s", d.Line, d.Lexeme, d.Message)
	}
}

// CompileError collects every diagnostic accumulated while compiling a
// single program. No bytecode is handed to the VM when this is non-empty.
type CompileError struct {
	Diagnostics []Diagnostic
}

// NewCompileError builds a CompileError from the diagnostics collected by a
// compilation.
func NewCompileError(diagnostics []Diagnostic) *CompileError {
	return &CompileError{Diagnostics: diagnostics}
}

func (e *CompileError) Error() string {
	s := strings.Builder{}
	for i, d := range e.Diagnostics {
		if i > 0 {
			s.WriteByte('\n')
		}
		s.WriteString(d.String())
	}
	return s.String()
}

// ExitCode fulfills the Error interface.
func (e *CompileError) ExitCode() int {
	return StatusCodeCompileError
}

//
// RuntimeError
//

// RuntimeError is an error detected while the VM was executing a program.
// OpCode is the tag of the instruction being dispatched when the error was
// detected, carried for diagnostics.
type RuntimeError struct {
	Message string
	OpCode  uint8
	Line    int
}

// NewRuntimeError is a handy way to create a RuntimeError.
func NewRuntimeError(opCode uint8, line int, format string, a ...any) *RuntimeError {
	return &RuntimeError{
		Message: fmt.Sprintf(format, a...),
		OpCode:  opCode,
		Line:    line,
	}
}

func (e *RuntimeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[line %d] Runtime error: %s", e.Line, e.Message)
	}
	return "Runtime error: " + e.Message
}

// ExitCode fulfills the Error interface.
func (e *RuntimeError) ExitCode() int {
	return StatusCodeRuntimeError
}

//
// TestSuite
//

// TestSuite is an error that happened while running golox's own golden test
// suite (internal/testsuite), as opposed to an error in the program under
// test.
type TestSuite struct {
	// TestCase is the path to the test case that failed.
	TestCase string
	Message  string
}

// NewTestSuite is a handy way to create a TestSuite error.
func NewTestSuite(testCase, format string, a ...any) *TestSuite {
	return &TestSuite{TestCase: testCase, Message: fmt.Sprintf(format, a...)}
}

func (e *TestSuite) Error() string {
	return fmt.Sprintf("%s: %s", e.TestCase, e.Message)
}

// ExitCode fulfills the Error interface.
func (e *TestSuite) ExitCode() int {
	return StatusCodeTestSuiteError
}
