/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

package errs

const (
	// StatusCodeSuccess indicates a successful execution.
	StatusCodeSuccess = 0

	// StatusCodeUsageError indicates the tool was invoked incorrectly.
	StatusCodeUsageError = 64

	// StatusCodeCompileError indicates a compile-time error.
	StatusCodeCompileError = 65

	// StatusCodeRuntimeError indicates a runtime error.
	StatusCodeRuntimeError = 70

	// StatusCodeTestSuiteError indicates a failure running golox's own golden
	// test suite (i.e. testing golox itself), as opposed to a failure in a
	// program golox was asked to run.
	StatusCodeTestSuiteError = 2
)
