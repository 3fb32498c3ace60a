/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

// Package vm is golox's stack-based virtual machine: a fetch-decode-execute
// loop driving a value stack, a call-frame stack, and the bytecode chunks
// produced by internal/compiler.
package vm

import (
	"io"

	"github.com/golox/golox/internal/bytecode"
	"github.com/golox/golox/internal/ioutil"
)

const (
	// FramesMax bounds the call-frame stack.
	FramesMax = 64

	// StackMax bounds the value stack.
	StackMax = FramesMax * 256
)

// Result is the outcome of an Interpret call.
type Result int

const (
	ResultOK Result = iota
	ResultCompileError
	ResultRuntimeError
)

func (r Result) String() string {
	switch r {
	case ResultOK:
		return "INTERPRET_OK"
	case ResultCompileError:
		return "INTERPRET_COMPILE_ERROR"
	case ResultRuntimeError:
		return "INTERPRET_RUNTIME_ERROR"
	default:
		return "UNKNOWN"
	}
}

// VM is a golox virtual machine. A VM instance owns its stack and frame
// stack exclusively; they must never be accessed from more than one
// goroutine at a time.
type VM struct {
	// DebugTraceExecution, when true, makes the VM disassemble each
	// instruction and print the stack contents just before executing it.
	DebugTraceExecution bool

	// TraceOut is where the execution trace (if enabled) is written.
	TraceOut io.Writer

	out       ioutil.Sink
	outputLog *ioutil.MemorySink

	frames     [FramesMax]callFrame
	frameCount int

	stack    [StackMax]bytecode.Value
	stackTop int
}

// New returns a new VM whose `print`ed values are sent to out. Every printed
// value is also recorded in the VM's own output log (spec.md's output_log
// VM state) regardless of what out does with it, so callers that only care
// about side-effecting output (cmd/golox's `run`) still get a real log to
// inspect, not just tests built directly against a MemorySink.
func New(out ioutil.Sink) *VM {
	log := &ioutil.MemorySink{}
	return &VM{out: ioutil.NewTeeSink(out, log), outputLog: log, TraceOut: io.Discard}
}

// OutputLog returns every value `print` has written so far, in order.
func (vm *VM) OutputLog() []string {
	return vm.outputLog.Log
}

func (vm *VM) resetStack() {
	vm.stackTop = 0
	vm.frameCount = 0
}

func (vm *VM) push(v bytecode.Value) {
	vm.stack[vm.stackTop] = v
	vm.stackTop++
}

func (vm *VM) pop() bytecode.Value {
	vm.stackTop--
	return vm.stack[vm.stackTop]
}

func (vm *VM) peek(distance int) bytecode.Value {
	return vm.stack[vm.stackTop-1-distance]
}

func (vm *VM) currentFrame() *callFrame {
	return &vm.frames[vm.frameCount-1]
}
