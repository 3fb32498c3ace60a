/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

package bytecode

import (
	"fmt"
	"io"
)

// Disassemble pretty-prints every instruction in chunk to out, headed by a
// `== name ==` banner, then recurses into any constant that is itself a
// function (the way a nested `fun` declaration embeds its chunk in the
// enclosing chunk's constant pool).
func Disassemble(chunk *Chunk, name string, out io.Writer) {
	fmt.Fprintf(out, "== %s ==\n", name)

	for offset := 0; offset < chunk.Count; {
		offset = DisassembleInstruction(chunk, out, offset)
	}

	for _, c := range chunk.Constants {
		if c.IsFunction() {
			fmt.Fprintln(out)
			fnName := c.Fn.Name
			if fnName == "" {
				fnName = "<anonymous>"
			}
			Disassemble(c.Fn.Chunk, fnName, out)
		}
	}
}

// DisassembleInstruction disassembles the single instruction at offset and
// returns the offset of the next instruction. Unknown opcodes print
// "Unknown opcode <tag>" instead of aborting.
func DisassembleInstruction(chunk *Chunk, out io.Writer, offset int) int {
	fmt.Fprintf(out, "%04d ", offset)

	if offset > 0 && chunk.Lines[offset] == chunk.Lines[offset-1] {
		fmt.Fprint(out, "   | ")
	} else {
		fmt.Fprintf(out, "%4d ", chunk.Lines[offset])
	}

	instruction := OpCode(chunk.Code[offset])

	switch instruction {
	case OpNil, OpPop, OpAdd, OpSubtract, OpMultiply, OpDivide, OpNegate, OpPrint, OpReturn:
		return simpleInstruction(instruction.String(), out, offset)

	case OpConstant:
		return constantInstruction(instruction.String(), chunk, out, offset)

	case OpGetLocal, OpSetLocal, OpCall:
		return byteInstruction(instruction.String(), chunk, out, offset)

	default:
		fmt.Fprintf(out, "Unknown opcode %d\n", instruction)
		return offset + 1
	}
}

func simpleInstruction(name string, out io.Writer, offset int) int {
	fmt.Fprintf(out, "%s\n", name)
	return offset + 1
}

func constantInstruction(name string, chunk *Chunk, out io.Writer, offset int) int {
	index := chunk.Code[offset+1]
	fmt.Fprintf(out, "%-16s %4d '%v'\n", name, index, chunk.Constants[index])
	return offset + 2
}

func byteInstruction(name string, chunk *Chunk, out io.Writer, offset int) int {
	slot := chunk.Code[offset+1]
	fmt.Fprintf(out, "%-16s %4d\n", name, slot)
	return offset + 2
}
