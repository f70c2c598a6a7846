// Package execution consumes sandboxed test-run output and merges public
// and hidden suites into one scored result. Running the code is the sandbox
// collaborator's job; this package only interprets what it reports.
package execution

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// TestOutcome is one named test from a suite run.
type TestOutcome struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message,omitempty"`
}

// Result is the itemized outcome of one suite run as reported by the
// sandbox runner. ErrorMessage carries upstream failures (compile errors,
// timeouts) verbatim; this engine never retries them.
type Result struct {
	Success      bool          `json:"success"`
	Tests        []TestOutcome `json:"tests"`
	Duration     time.Duration `json:"-"`
	DurationMs   int64         `json:"durationMs"`
	ErrorMessage string        `json:"error,omitempty"`
}

// PassedCount returns how many itemized tests passed.
func (r Result) PassedCount() int {
	n := 0
	for _, t := range r.Tests {
		if t.Passed {
			n++
		}
	}
	return n
}

// ParseResult decodes a runner result from its JSON wire form.
func ParseResult(rd io.Reader) (Result, error) {
	var r Result
	dec := json.NewDecoder(rd)
	if err := dec.Decode(&r); err != nil {
		return Result{}, fmt.Errorf("decode execution result: %w", err)
	}
	r.Duration = time.Duration(r.DurationMs) * time.Millisecond
	return r, nil
}

// LoadResult reads a runner result file written by the sandbox collaborator.
func LoadResult(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open execution result: %w", err)
	}
	defer f.Close()
	return ParseResult(f)
}
