/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

package bytecode

// OpCode is a one-byte bytecode instruction tag.
type OpCode uint8

const (
	OpConstant   OpCode = iota // 1 operand: constant index
	OpNil                      // push Nil
	OpPop                      // discard top
	OpGetLocal                 // 1 operand: slot
	OpSetLocal                 // 1 operand: slot
	OpAdd                      // a b -> a+b
	OpSubtract                 // a b -> a-b
	OpMultiply                 // a b -> a*b
	OpDivide                   // a b -> a/b
	OpNegate                   // a -> -a
	OpPrint                    // v ->, print + log
	OpCall                     // 1 operand: argc
	OpReturn                   // return from current frame
)

// String names the opcode, used by the disassembler and by error messages.
func (op OpCode) String() string {
	switch op {
	case OpConstant:
		return "OP_CONSTANT"
	case OpNil:
		return "OP_NIL"
	case OpPop:
		return "OP_POP"
	case OpGetLocal:
		return "OP_GET_LOCAL"
	case OpSetLocal:
		return "OP_SET_LOCAL"
	case OpAdd:
		return "OP_ADD"
	case OpSubtract:
		return "OP_SUBTRACT"
	case OpMultiply:
		return "OP_MULTIPLY"
	case OpDivide:
		return "OP_DIVIDE"
	case OpNegate:
		return "OP_NEGATE"
	case OpPrint:
		return "OP_PRINT"
	case OpCall:
		return "OP_CALL"
	case OpReturn:
		return "OP_RETURN"
	default:
		return ""
	}
}
