/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

package vm

import (
	"strings"
	"testing"

	"github.com/golox/golox/internal/ioutil"
)

func run(t *testing.T, source string) (Result, []string) {
	t.Helper()
	sink := &ioutil.MemorySink{}
	v := New(sink)
	result, _, err := Interpret(v, source)
	if result == ResultRuntimeError && err == nil {
		t.Fatalf("runtime error result with nil error")
	}
	return result, sink.Log
}

func TestPrintsArithmeticResult(t *testing.T) {
	result, log := run(t, "print 1 + 2 * 3;")
	if result != ResultOK {
		t.Fatalf("expected ResultOK, got %v", result)
	}
	if len(log) != 1 || log[0] != "7" {
		t.Fatalf("expected [\"7\"], got %v", log)
	}
}

func TestLocalsRoundTrip(t *testing.T) {
	result, log := run(t, "let x = 10; let y = 20; print x + y;")
	if result != ResultOK {
		t.Fatalf("expected ResultOK, got %v", result)
	}
	if len(log) != 1 || log[0] != "30" {
		t.Fatalf("expected [\"30\"], got %v", log)
	}
}

func TestBlockScopeShadowing(t *testing.T) {
	result, log := run(t, "let x = 1; { let x = 2; print x; } print x;")
	if result != ResultOK {
		t.Fatalf("expected ResultOK, got %v", result)
	}
	if len(log) != 2 || log[0] != "2" || log[1] != "1" {
		t.Fatalf("expected [\"2\", \"1\"], got %v", log)
	}
}

func TestFunctionCallAndReturn(t *testing.T) {
	result, log := run(t, "fun answer() { return 42; } print answer();")
	if result != ResultOK {
		t.Fatalf("expected ResultOK, got %v", result)
	}
	if len(log) != 1 || log[0] != "42" {
		t.Fatalf("expected [\"42\"], got %v", log)
	}
}

func TestImplicitReturnIsNil(t *testing.T) {
	result, log := run(t, "fun noop() { let x = 1; } print noop();")
	if result != ResultOK {
		t.Fatalf("expected ResultOK, got %v", result)
	}
	if len(log) != 1 || log[0] != "nil" {
		t.Fatalf("expected [\"nil\"], got %v", log)
	}
}

// TestRecursiveFunction checks that a function can refer to itself by name:
// slot 0 of its own frame is reserved for exactly this (state.go), so
// `countdown` resolves to itself without a global table or closures.
func TestRecursiveFunction(t *testing.T) {
	source := `
fun countdown() {
	return countdown;
}
print countdown();
`
	result, log := run(t, source)
	if result != ResultOK {
		t.Fatalf("expected ResultOK, got %v", result)
	}
	if len(log) != 1 || log[0] != "<fn countdown>" {
		t.Fatalf("expected [\"<fn countdown>\"], got %v", log)
	}
}

func TestCompileErrorStopsExecution(t *testing.T) {
	result, log := run(t, "print 1 +;")
	if result != ResultCompileError {
		t.Fatalf("expected ResultCompileError, got %v", result)
	}
	if len(log) != 0 {
		t.Fatalf("expected no output, got %v", log)
	}
}

func TestRuntimeTypeErrorOnNegate(t *testing.T) {
	result, _ := run(t, "fun f() {} print -f();")
	if result != ResultRuntimeError {
		t.Fatalf("expected ResultRuntimeError, got %v", result)
	}
}

func TestRuntimeErrorCallingNonFunction(t *testing.T) {
	result, _ := run(t, "let x = 1; print x();")
	if result != ResultRuntimeError {
		t.Fatalf("expected ResultRuntimeError, got %v", result)
	}
}

func TestReferencingOutOfScopeLocalIsRuntimeError(t *testing.T) {
	result, log := run(t, "{ let a = 1; { let b = 2; } print b; }")
	if result != ResultRuntimeError {
		t.Fatalf("expected ResultRuntimeError, got %v", result)
	}
	if len(log) != 0 {
		t.Fatalf("expected no output before the error, got %v", log)
	}
}

func TestNestedBlockSeesInnerAndOuterLocals(t *testing.T) {
	result, log := run(t, "{ let a = 1; { let b = 2; print b; } print a; }")
	if result != ResultOK {
		t.Fatalf("expected ResultOK, got %v", result)
	}
	if len(log) != 2 || log[0] != "2" || log[1] != "1" {
		t.Fatalf("expected [\"2\", \"1\"], got %v", log)
	}
}

// TestOutputLogIsPopulatedRegardlessOfSink checks that OP_PRINT's dual-write
// invariant (spec.md §4.5: write to the sink *and* the VM's output_log)
// holds even when the caller's sink is a plain writer, not a MemorySink.
func TestOutputLogIsPopulatedRegardlessOfSink(t *testing.T) {
	var buf strings.Builder
	v := New(ioutil.NewWriterSink(&buf))

	result, _, err := Interpret(v, "print 1 + 1; print 2 + 2;")
	if result != ResultOK || err != nil {
		t.Fatalf("expected ResultOK, got %v (%v)", result, err)
	}
	if buf.String() != "2\n4\n" {
		t.Fatalf("expected sink to receive \"2\\n4\\n\", got %q", buf.String())
	}
	log := v.OutputLog()
	if len(log) != 2 || log[0] != "2" || log[1] != "4" {
		t.Fatalf("expected output log [\"2\", \"4\"], got %v", log)
	}
}

func TestExecutionTraceWritesToTraceOut(t *testing.T) {
	sink := &ioutil.MemorySink{}
	v := New(sink)
	var trace strings.Builder
	v.DebugTraceExecution = true
	v.TraceOut = &trace

	result, _, _ := Interpret(v, "print 1 + 1;")
	if result != ResultOK {
		t.Fatalf("expected ResultOK, got %v", result)
	}
	if trace.Len() == 0 {
		t.Fatalf("expected a non-empty execution trace")
	}
	if !strings.Contains(trace.String(), "OP_") {
		t.Fatalf("expected trace to contain opcode mnemonics, got %q", trace.String())
	}
}
