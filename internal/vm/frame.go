/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

package vm

import "github.com/golox/golox/internal/bytecode"

// callFrame is a per-invocation record pinning the function being executed,
// the instruction pointer (an offset into that function's chunk.Code), and
// the base slot: the index into the VM's shared value stack where this
// frame's locals region begins. Slot 0 of every frame holds the callee
// itself; arguments (none, in golox) would occupy slots 1..arity.
type callFrame struct {
	function  *bytecode.Function
	ip        int
	slotsBase int
}
