/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

// Package ioutil provides the VM's output-sink abstraction: how `print`
// sends values out of the interpreter, and the in-memory variant used by
// tests to inspect exactly what was printed.
package ioutil

import (
	"io"
)

// Sink is something `print` can send output to.
type Sink interface {
	// Say outputs one printed value's string representation.
	Say(string)
}

// NewWriterSink returns a Sink that writes each printed value, followed by a
// newline, to w.
func NewWriterSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

type writerSink struct {
	w io.Writer
}

func (s *writerSink) Say(line string) {
	io.WriteString(s.w, line+"\n")
}

// MemorySink is a Sink that records every printed value in memory, in order.
// This is the VM's testing hook mentioned in spec.md §4.5 and §8: the
// output log.
type MemorySink struct {
	Log []string
}

// Say appends line to the recorded log.
func (s *MemorySink) Say(line string) {
	s.Log = append(s.Log, line)
}

// NewTeeSink returns a Sink that forwards every Say to both primary and log.
// spec.md §4.5 requires OP_PRINT to both write to standard output and
// append to the VM's output_log on every execution, not just in tests: a VM
// built with this sink satisfies that regardless of what primary is.
func NewTeeSink(primary Sink, log *MemorySink) Sink {
	return &teeSink{primary: primary, log: log}
}

type teeSink struct {
	primary Sink
	log     *MemorySink
}

func (s *teeSink) Say(line string) {
	s.primary.Say(line)
	s.log.Say(line)
}
