/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

package vm

import (
	"fmt"

	"github.com/golox/golox/internal/bytecode"
	"github.com/golox/golox/internal/compiler"
	"github.com/golox/golox/internal/errs"
)

// Interpret compiles source and runs it on v, returning the outcome, the
// last opcode dispatched (for diagnostics), and an error (nil on success).
// The tuple is the test-facing interface described in spec.md §6; callers
// that only care about pass/fail can ignore the last two results.
func Interpret(v *VM, source string) (Result, bytecode.OpCode, error) {
	fn, compileErr := compiler.Compile(source)
	if compileErr != nil {
		return ResultCompileError, 0, compileErr
	}

	v.resetStack()
	v.push(bytecode.FunctionValue(fn))
	v.frames[0] = callFrame{function: fn, ip: 0, slotsBase: 0}
	v.frameCount = 1

	return v.run()
}

// run drives the innermost frame: fetch an opcode byte, advance the
// instruction pointer, dispatch. The current frame is re-acquired from
// vm.frames at the top of every iteration, so a call or return that pushed
// or popped a frame is always picked up correctly on the next instruction.
func (vm *VM) run() (Result, bytecode.OpCode, error) {
	for {
		frame := vm.currentFrame()
		chunk := frame.function.Chunk

		if vm.DebugTraceExecution {
			vm.traceStack()
			bytecode.DisassembleInstruction(chunk, vm.TraceOut, frame.ip)
		}

		line := chunk.Lines[frame.ip]
		instruction := bytecode.OpCode(chunk.Code[frame.ip])
		frame.ip++

		switch instruction {
		case bytecode.OpConstant:
			index := chunk.Code[frame.ip]
			frame.ip++
			vm.push(chunk.Constants[index])

		case bytecode.OpNil:
			vm.push(bytecode.NilValue())

		case bytecode.OpPop:
			vm.pop()

		case bytecode.OpGetLocal:
			slot := chunk.Code[frame.ip]
			frame.ip++
			if frame.slotsBase+int(slot) >= vm.stackTop {
				return ResultRuntimeError, instruction,
					errs.NewRuntimeError(byte(instruction), line, "Undefined variable.")
			}
			vm.push(vm.stack[frame.slotsBase+int(slot)])

		case bytecode.OpSetLocal:
			slot := chunk.Code[frame.ip]
			frame.ip++
			if frame.slotsBase+int(slot) >= vm.stackTop {
				return ResultRuntimeError, instruction,
					errs.NewRuntimeError(byte(instruction), line, "Undefined variable.")
			}
			vm.stack[frame.slotsBase+int(slot)] = vm.peek(0)

		case bytecode.OpAdd, bytecode.OpSubtract, bytecode.OpMultiply, bytecode.OpDivide:
			if err := vm.binaryOp(instruction, line); err != nil {
				return ResultRuntimeError, instruction, err
			}

		case bytecode.OpNegate:
			if !vm.peek(0).IsNumber() {
				return ResultRuntimeError, instruction,
					errs.NewRuntimeError(byte(instruction), line, "Operand must be a number.")
			}
			v := vm.pop()
			vm.push(bytecode.NumberValue(-v.Number))

		case bytecode.OpPrint:
			v := vm.pop()
			vm.out.Say(v.String())

		case bytecode.OpCall:
			argc := int(chunk.Code[frame.ip])
			frame.ip++
			if err := vm.call(argc, line); err != nil {
				return ResultRuntimeError, instruction, err
			}

		case bytecode.OpReturn:
			result := vm.pop()
			vm.frameCount--
			if vm.frameCount == 0 {
				vm.pop() // the implicit script callee
				return ResultOK, instruction, nil
			}
			vm.stackTop = frame.slotsBase
			vm.push(result)

		default:
			return ResultRuntimeError, instruction,
				errs.NewRuntimeError(byte(instruction), line, "Unknown opcode %d.", instruction)
		}
	}
}

// binaryOp pops two Number operands, applies op, and pushes the Number
// result. Both operands must be Number; neither is popped on type error.
func (vm *VM) binaryOp(op bytecode.OpCode, line int) *errs.RuntimeError {
	b := vm.peek(0)
	a := vm.peek(1)
	if !a.IsNumber() || !b.IsNumber() {
		return errs.NewRuntimeError(byte(op), line, "Operands must be numbers.")
	}
	vm.pop()
	vm.pop()

	var result float64
	switch op {
	case bytecode.OpAdd:
		result = a.Number + b.Number
	case bytecode.OpSubtract:
		result = a.Number - b.Number
	case bytecode.OpMultiply:
		result = a.Number * b.Number
	case bytecode.OpDivide:
		result = a.Number / b.Number
	}
	vm.push(bytecode.NumberValue(result))
	return nil
}

// call implements OP_CALL(argc): peek argc-deep to find the callee, verify
// it's callable with the right arity, and push a new call frame for it.
func (vm *VM) call(argc int, line int) *errs.RuntimeError {
	callee := vm.peek(argc)
	if !callee.IsFunction() {
		return errs.NewRuntimeError(byte(bytecode.OpCall), line, "Can only call functions.")
	}

	fn := callee.Fn
	if argc != fn.Arity {
		return errs.NewRuntimeError(byte(bytecode.OpCall), line,
			"Expected %d arguments but got %d.", fn.Arity, argc)
	}

	if vm.frameCount == FramesMax {
		return errs.NewRuntimeError(byte(bytecode.OpCall), line, "Stack overflow.")
	}

	vm.frames[vm.frameCount] = callFrame{
		function:  fn,
		ip:        0,
		slotsBase: vm.stackTop - argc - 1,
	}
	vm.frameCount++
	return nil
}

// traceStack prints the current contents of the value stack, bottom to top,
// used by the --trace execution trace.
func (vm *VM) traceStack() {
	fmt.Fprint(vm.TraceOut, "          ")
	for i := 0; i < vm.stackTop; i++ {
		fmt.Fprintf(vm.TraceOut, "[ %v ]", vm.stack[i])
	}
	fmt.Fprintln(vm.TraceOut)
}
