/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "golox",
	SilenceUsage: true,
	Short:        "golox is a small dynamically-evaluated scripting language",
	Long: `golox compiles and runs tiny scripts: numbers, local variables, blocks,
and zero-argument functions, driven by a single-pass Pratt compiler and a
stack-based bytecode VM.`,

	// With no subcommand, golox drops into the REPL (spec.md §6: "prog (no
	// args) -> REPL").
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runRepl()
	},
}

func init() {
	rootCmd.AddCommand(runCmd, replCmd, disassembleCmd, testCmd)
}
