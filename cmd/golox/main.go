/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

package main

import (
	"github.com/golox/golox/internal/errs"
)

func main() {
	// Errors returned by cobra itself (wrong argument count, unknown flag or
	// command) are usage errors.
	if err := rootCmd.Execute(); err != nil {
		reportAndExit(errs.NewUsageError("%v", err))
	}
}
