/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/golox/golox/internal/bytecode"
	"github.com/golox/golox/internal/compiler"
	"github.com/golox/golox/internal/errs"
)

var disassembleCmd = &cobra.Command{
	Use:   "disassemble <path>",
	Short: "Compiles a golox script and prints its disassembly",
	Long: `Compiles a golox script and prints its disassembly: the script's own
chunk, followed by the chunk of every function-valued constant found,
recursively (spec.md §6).`,
	Args: cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		source, err := os.ReadFile(args[0])
		if err != nil {
			reportAndExit(errs.NewUsageError("reading %v: %v", args[0], err))
		}

		fn, compileErr := compiler.Compile(string(source))
		if compileErr != nil {
			reportAndExit(compileErr)
		}

		name := fn.Name
		if name == "" {
			name = "<script>"
		}

		fmt.Printf("Disassembling %s\n\n", args[0])
		bytecode.Disassemble(fn.Chunk, name, os.Stdout)
		reportAndExit(nil)
	},
}
