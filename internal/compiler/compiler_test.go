/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

package compiler

import (
	"strings"
	"testing"

	"github.com/golox/golox/internal/bytecode"
)

func compileOK(t *testing.T, source string) *bytecode.Function {
	t.Helper()
	fn, err := Compile(source)
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}
	return fn
}

func opcodes(chunk *bytecode.Chunk) []bytecode.OpCode {
	var ops []bytecode.OpCode
	for i := 0; i < chunk.Count; {
		op := bytecode.OpCode(chunk.Code[i])
		ops = append(ops, op)
		switch op {
		case bytecode.OpConstant, bytecode.OpGetLocal, bytecode.OpSetLocal, bytecode.OpCall:
			i += 2
		default:
			i++
		}
	}
	return ops
}

func TestAdditionEmitsAddBeforePrint(t *testing.T) {
	fn := compileOK(t, "print 1 + 1;")
	ops := opcodes(fn.Chunk)
	if !containsInOrder(ops, bytecode.OpConstant, bytecode.OpConstant, bytecode.OpAdd, bytecode.OpPrint) {
		t.Fatalf("expected CONSTANT CONSTANT ADD PRINT in %v", ops)
	}
}

// TestMultiplyBindsTighterThanAdd checks the precedence law `a + b * c`
// evaluates `b * c` first: the MULTIPLY must be emitted before the ADD.
func TestMultiplyBindsTighterThanAdd(t *testing.T) {
	fn := compileOK(t, "print 1 + 2 * 3;")
	ops := opcodes(fn.Chunk)
	mulIdx, addIdx := indexOf(ops, bytecode.OpMultiply), indexOf(ops, bytecode.OpAdd)
	if mulIdx == -1 || addIdx == -1 || mulIdx > addIdx {
		t.Fatalf("expected OP_MULTIPLY before OP_ADD, got %v", ops)
	}
}

// TestUnaryBindsTighterThanFactor checks `-a * b` negates before multiplying.
func TestUnaryBindsTighterThanFactor(t *testing.T) {
	fn := compileOK(t, "print -1 * 2;")
	ops := opcodes(fn.Chunk)
	negIdx, mulIdx := indexOf(ops, bytecode.OpNegate), indexOf(ops, bytecode.OpMultiply)
	if negIdx == -1 || mulIdx == -1 || negIdx > mulIdx {
		t.Fatalf("expected OP_NEGATE before OP_MULTIPLY, got %v", ops)
	}
}

func TestEndScopePopsOneLocalPerDeclaration(t *testing.T) {
	fn := compileOK(t, "{ let a = 1; let b = 2; }")
	ops := opcodes(fn.Chunk)
	popCount := 0
	for _, op := range ops {
		if op == bytecode.OpPop {
			popCount++
		}
	}
	if popCount != 2 {
		t.Fatalf("expected 2 OP_POPs (one per local), got %d in %v", popCount, ops)
	}
}

func TestRedeclarationInSameScopeIsCompileError(t *testing.T) {
	_, err := Compile("{ let a = 1; let a = 2; }")
	if err == nil {
		t.Fatal("expected a compile error")
	}
	if !strings.Contains(err.Error(), "already declared in this scope") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestSelfReferenceInInitializerIsCompileError(t *testing.T) {
	_, err := Compile("let a = a;")
	if err == nil {
		t.Fatal("expected a compile error")
	}
	if !strings.Contains(err.Error(), "its own initializer") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestMissingOperandReportsExpectExpression(t *testing.T) {
	_, err := Compile("print 1 +;")
	if err == nil {
		t.Fatal("expected a compile error")
	}
	if !strings.Contains(err.Error(), "Expect expression.") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestErrorRecoverySurfacesMultipleDiagnostics(t *testing.T) {
	_, err := Compile("let ; let ;")
	if err == nil {
		t.Fatal("expected a compile error")
	}
	if len(err.Diagnostics) < 2 {
		t.Fatalf("expected at least 2 diagnostics after resync, got %d: %v", len(err.Diagnostics), err)
	}
}

func TestFunctionDeclarationEmbedsConstantFunction(t *testing.T) {
	fn := compileOK(t, "fun f() { return 1; }")
	found := false
	for _, c := range fn.Chunk.Constants {
		if c.IsFunction() && c.Fn.Name == "f" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a function-valued constant named 'f' in %v", fn.Chunk.Constants)
	}
}

func containsInOrder(ops []bytecode.OpCode, want ...bytecode.OpCode) bool {
	i := 0
	for _, op := range ops {
		if i < len(want) && op == want[i] {
			i++
		}
	}
	return i == len(want)
}

func indexOf(ops []bytecode.OpCode, target bytecode.OpCode) int {
	for i, op := range ops {
		if op == target {
			return i
		}
	}
	return -1
}
