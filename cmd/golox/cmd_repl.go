/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/golox/golox/internal/ioutil"
	"github.com/golox/golox/internal/vm"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Starts an interactive golox session",
	Long:  `Starts an interactive golox session (spec.md §6).`,
	Args:  cobra.NoArgs,

	Run: func(cmd *cobra.Command, args []string) {
		runRepl()
	},
}

// runRepl implements spec.md §6's REPL contract: prompt "> ", read one line
// per iteration, empty line terminates. Each line is compiled and run
// independently on the same VM instance; Interpret resets the VM's stack and
// frames every time, so no locals carry over from one line to the next.
func runRepl() {
	theVM := vm.New(ioutil.NewWriterSink(os.Stdout))
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			return
		}

		_, _, err := vm.Interpret(theVM, line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}
