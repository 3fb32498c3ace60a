/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

package errs

import (
	"errors"
	"fmt"
	"os"
)

// ReportAndExit reports err to the end user and exits with the appropriate
// status code. It's fine if err is nil: that just means a successful run.
func ReportAndExit(err error) {
	os.Exit(Report(err))
}

// Report prints err (if any) to stderr and returns the status code it maps
// to, without exiting. Useful for the REPL, which must survive errors.
func Report(err error) int {
	if err == nil {
		return StatusCodeSuccess
	}

	usageErr := &UsageError{}
	compileErr := &CompileError{}
	runtimeErr := &RuntimeError{}
	testSuiteErr := &TestSuite{}

	switch {
	case errors.As(err, &usageErr):
		fmt.Fprintln(os.Stderr, usageErr)
		return usageErr.ExitCode()

	case errors.As(err, &compileErr):
		fmt.Fprintln(os.Stderr, compileErr)
		return compileErr.ExitCode()

	case errors.As(err, &runtimeErr):
		fmt.Fprintln(os.Stderr, runtimeErr)
		return runtimeErr.ExitCode()

	case errors.As(err, &testSuiteErr):
		fmt.Fprintln(os.Stderr, testSuiteErr)
		return testSuiteErr.ExitCode()

	default:
		fmt.Fprintln(os.Stderr, err)
		return StatusCodeRuntimeError
	}
}
