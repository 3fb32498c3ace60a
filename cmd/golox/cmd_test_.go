/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

package main

import (
	"github.com/spf13/cobra"

	"github.com/golox/golox/internal/testsuite"
)

// flagTestSuite is the value of the --suite flag of the `test` command.
var flagTestSuite string

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Runs golox's own golden test suite",
	Long:  `Runs golox's own golden test suite (i.e., meant to test golox itself).`,
	Args:  cobra.ExactArgs(0),

	Run: func(cmd *cobra.Command, args []string) {
		err := testsuite.ExecuteSuite(flagTestSuite)
		reportAndExit(err)
	},
}

func init() {
	testCmd.Flags().StringVarP(&flagTestSuite, "suite", "s",
		"./testdata/suite", "Path to the test suite to run")
}
