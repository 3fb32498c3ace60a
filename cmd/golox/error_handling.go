/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

package main

import (
	"os"

	"github.com/golox/golox/internal/errs"
)

// reportAndExit reports err to the end user and exits with the status code
// its error domain maps to. It's fine if err is nil: that just means a
// successful run.
func reportAndExit(err error) {
	os.Exit(errs.Report(err))
}
