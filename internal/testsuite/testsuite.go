/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

// Package testsuite runs golox's own golden test suite: a tree of
// directories, each holding a test.toml case description alongside the golox
// source it exercises, compared against its expected output/exit
// code/error messages. Grounded on the teacher's pkg/test, adapted to
// golox's single-script (no Storyworld, no input) execution model.
package testsuite

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"

	"github.com/pelletier/go-toml/v2"

	"github.com/golox/golox/internal/errs"
	"github.com/golox/golox/internal/ioutil"
	"github.com/golox/golox/internal/vm"
)

// config mirrors a test case's test.toml file.
type config struct {
	Type          string
	Source        string
	Output        []string
	ExitCode      int
	ErrorMessages []string

	Steps []step `toml:"step"`
}

// step mirrors a single step in a test.toml file, for cases exercising more
// than one source in sequence against a shared VM.
type step struct {
	Type          string
	Source        string
	Output        []string
	ExitCode      int
	ErrorMessages []string
}

// ExecuteSuite runs every test.toml case found under suitePath, recursively.
func ExecuteSuite(suitePath string) errs.Error {
	var failures []string

	walkErr := filepath.WalkDir(suitePath, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != "test.toml" {
			return nil
		}
		if caseErr := runCase(p); caseErr != nil {
			failures = append(failures, caseErr.Error())
		}
		return nil
	})
	if walkErr != nil {
		return errs.NewTestSuite(suitePath, "walking suite directory: %v", walkErr)
	}

	if len(failures) > 0 {
		return errs.NewTestSuite(suitePath, "%d case(s) failed:\n%s", len(failures), joinLines(failures))
	}
	return nil
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}

// runCase runs every step of the test case described by configPath.
func runCase(configPath string) errs.Error {
	testCase := path.Dir(configPath)

	conf, err := readConfig(configPath)
	if err != nil {
		return err
	}
	canonicalizeConfig(conf)

	if err := validateConfig(testCase, conf); err != nil {
		return err
	}

	for _, st := range conf.Steps {
		if err := runStep(testCase, st); err != nil {
			return err
		}
	}

	fmt.Printf("Test case passed: %v.\n", testCase)
	return nil
}

func runStep(testCase string, st step) errs.Error {
	srcPath := path.Join(testCase, st.Source)
	source, readErr := os.ReadFile(srcPath)
	if readErr != nil {
		return errs.NewTestSuite(testCase, "reading source %v: %v", srcPath, readErr)
	}

	sink := &ioutil.MemorySink{}
	v := vm.New(sink)
	result, _, runErr := vm.Interpret(v, string(source))

	gotExitCode := exitCodeOf(result, runErr)
	if gotExitCode != st.ExitCode {
		return errs.NewTestSuite(testCase, "expected exit code %v, got %v (%v).", st.ExitCode, gotExitCode, runErr)
	}

	for _, expected := range st.ErrorMessages {
		re, reErr := regexp.Compile(expected)
		if reErr != nil {
			return errs.NewTestSuite(testCase, "compiling regexp %q: %v.", expected, reErr)
		}
		if runErr == nil || !re.MatchString(runErr.Error()) {
			return errs.NewTestSuite(testCase, "expected error message matching %q, got %v.", expected, runErr)
		}
	}

	if runErr != nil {
		// The exit code (and any error-message patterns) already matched
		// above, so this was an expected failure; output doesn't matter.
		return nil
	}

	if len(st.Output) != len(sink.Log) {
		return errs.NewTestSuite(testCase, "got %v outputs, expected %v (%v vs %v).",
			len(sink.Log), len(st.Output), sink.Log, st.Output)
	}
	for i, got := range sink.Log {
		if got != st.Output[i] {
			return errs.NewTestSuite(testCase, "at index %v: expected output %q, got %q.", i, st.Output[i], got)
		}
	}

	return nil
}

// exitCodeOf maps an Interpret result/error pair to the process exit code
// golox's CLI would have produced for it.
func exitCodeOf(result vm.Result, err error) int {
	if err == nil {
		return errs.StatusCodeSuccess
	}
	if coded, ok := err.(errs.Error); ok {
		return coded.ExitCode()
	}
	switch result {
	case vm.ResultCompileError:
		return errs.StatusCodeCompileError
	default:
		return errs.StatusCodeRuntimeError
	}
}

func readConfig(p string) (*config, errs.Error) {
	source, err := os.ReadFile(p)
	if err != nil {
		return nil, errs.NewTestSuite(p, "%v", err)
	}
	conf := &config{}
	if err := toml.Unmarshal(source, conf); err != nil {
		return nil, errs.NewTestSuite(p, "%v", err)
	}
	return conf, nil
}

// canonicalizeConfig fills in default values and makes sure there is at
// least one step, mirroring the top-level fields into it when absent.
func canonicalizeConfig(conf *config) {
	if conf.Type == "" {
		conf.Type = "run"
	}
	if conf.Source == "" {
		conf.Source = "main.lox"
	}
	if conf.Output == nil {
		conf.Output = []string{}
	}
	if conf.ErrorMessages == nil {
		conf.ErrorMessages = []string{}
	}

	if len(conf.Steps) == 0 {
		conf.Steps = append(conf.Steps, step{
			Type:          conf.Type,
			Source:        conf.Source,
			Output:        conf.Output,
			ExitCode:      conf.ExitCode,
			ErrorMessages: conf.ErrorMessages,
		})
	}

	for i, st := range conf.Steps {
		if st.Type == "" {
			st.Type = conf.Type
		}
		if st.Source == "" {
			st.Source = conf.Source
		}
		if st.Output == nil {
			st.Output = conf.Output
		}
		if st.ErrorMessages == nil {
			st.ErrorMessages = conf.ErrorMessages
		}
		if st.ExitCode == 0 && conf.ExitCode != 0 {
			st.ExitCode = conf.ExitCode
		}
		conf.Steps[i] = st
	}
}

func validateConfig(testCase string, conf *config) errs.Error {
	for _, st := range conf.Steps {
		if st.Type != "run" {
			return errs.NewTestSuite(testCase, "invalid test type %q; only 'run' is supported", st.Type)
		}
	}
	return nil
}
