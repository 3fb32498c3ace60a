/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/golox/golox/internal/errs"
	"github.com/golox/golox/internal/ioutil"
	"github.com/golox/golox/internal/vm"
)

// flagRunTrace is the value of the --trace flag of the `run` command.
var flagRunTrace bool

var runCmd = &cobra.Command{
	Use:   "run <path>",
	Short: "Compiles and runs a golox script",
	Long:  `Compiles and runs a golox script (spec.md §6: "prog <path>").`,
	Args:  cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		source, err := os.ReadFile(args[0])
		if err != nil {
			reportAndExit(errs.NewUsageError("reading %v: %v", args[0], err))
		}

		theVM := vm.New(ioutil.NewWriterSink(os.Stdout))
		theVM.DebugTraceExecution = flagRunTrace
		_, _, runErr := vm.Interpret(theVM, string(source))
		reportAndExit(runErr)
	},
}

func init() {
	runCmd.Flags().BoolVarP(&flagRunTrace, "trace", "t", false,
		"Print an execution trace (disassembled instructions and stack contents) as the VM runs")
}
