/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

package testsuite

import "testing"

func TestRunSuite(t *testing.T) {
	if err := ExecuteSuite("../../testdata/suite"); err != nil {
		t.Fatal(err)
	}
}
