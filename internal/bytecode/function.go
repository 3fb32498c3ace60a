/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

package bytecode

// FunctionKind distinguishes the implicit top-level script from a `fun`
// declaration.
type FunctionKind int

const (
	FunctionScript FunctionKind = iota
	FunctionFunction
)

// Function is a compiled golox function (or the implicit top-level script).
// It is created by the compiler and executed by the VM; it is freed when its
// owning Chunk is freed.
type Function struct {
	Kind  FunctionKind
	Arity int
	Chunk *Chunk

	// Name is empty for the implicit script function.
	Name string
}

// NewFunction returns a new, empty Function of the given kind.
func NewFunction(kind FunctionKind) *Function {
	return &Function{
		Kind:  kind,
		Chunk: NewChunk(),
	}
}
