package execution

import (
	"math"
	"strings"
	"testing"
	"time"
)

func suite(success bool, passed, failed int) Result {
	r := Result{Success: success}
	for i := 0; i < passed; i++ {
		r.Tests = append(r.Tests, TestOutcome{Name: "pass", Passed: true})
	}
	for i := 0; i < failed; i++ {
		r.Tests = append(r.Tests, TestOutcome{Name: "fail", Passed: false})
	}
	return r
}

func TestCombine_ScoreDecoupledFromPass(t *testing.T) {
	// Public 2/2, hidden 7/10 but hidden.Success is false:
	// score = 0.3*100 + 0.7*70 = 79, passed = false.
	public := suite(true, 2, 0)
	hidden := suite(false, 7, 3)

	r := Combine(public, hidden)

	if math.Abs(r.Score-79) > 1e-9 {
		t.Errorf("Score = %v, want 79", r.Score)
	}
	if r.Passed {
		t.Error("hidden suite failure must gate the pass")
	}
}

func TestCombine_PassRequiresBothSuites(t *testing.T) {
	tests := []struct {
		name           string
		public, hidden bool
		want           bool
	}{
		{"both pass", true, true, true},
		{"public fails", false, true, false},
		{"hidden fails", true, false, false},
		{"both fail", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Combine(suite(tt.public, 1, 0), suite(tt.hidden, 1, 0))
			if r.Passed != tt.want {
				t.Errorf("Passed = %v, want %v", r.Passed, tt.want)
			}
		})
	}
}

func TestCombine_NoItemizedTestsFallback(t *testing.T) {
	r := Combine(Result{Success: true}, Result{Success: true})
	if r.Score != 100 {
		t.Errorf("Score = %v, want 100 from success flags", r.Score)
	}
	if !r.Passed {
		t.Error("both suites succeeded")
	}

	r = Combine(Result{Success: true}, Result{Success: false})
	if r.Score != 30 {
		t.Errorf("Score = %v, want 30 (public success only)", r.Score)
	}
	if r.Passed {
		t.Error("failed hidden flag must fail the attempt")
	}
}

func TestCombine_DurationSums(t *testing.T) {
	public := suite(true, 1, 0)
	public.Duration = 200 * time.Millisecond
	hidden := suite(true, 1, 0)
	hidden.Duration = 300 * time.Millisecond

	r := Combine(public, hidden)
	if r.Duration != 500*time.Millisecond {
		t.Errorf("Duration = %v, want 500ms", r.Duration)
	}
}

func TestCombine_ItemizesBothSuites(t *testing.T) {
	r := Combine(suite(true, 2, 0), suite(false, 1, 1))

	if len(r.SubResults) != 4 {
		t.Fatalf("SubResults = %d, want 4", len(r.SubResults))
	}
	if !strings.HasPrefix(r.SubResults[0].Name, "public/") {
		t.Errorf("public tests should come first, got %q", r.SubResults[0].Name)
	}
	if !strings.HasPrefix(r.SubResults[2].Name, "hidden/") {
		t.Errorf("hidden tests should follow, got %q", r.SubResults[2].Name)
	}
}

func TestCombine_UpstreamErrorSurfaces(t *testing.T) {
	hidden := Result{Success: false, ErrorMessage: "compile error: line 3"}
	r := Combine(suite(true, 1, 0), hidden)

	if r.Passed {
		t.Error("upstream failure must fail the attempt")
	}
	if r.Message != "compile error: line 3" {
		t.Errorf("Message = %q, want verbatim upstream error", r.Message)
	}
}

func TestParseResult(t *testing.T) {
	raw := `{"success": false, "durationMs": 1500, "tests": [
		{"name": "test_basic_case", "passed": true},
		{"name": "test_edge_case", "passed": false, "message": "Expected 7, got 6"}
	]}`

	r, err := ParseResult(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("ParseResult() error = %v", err)
	}
	if r.Success {
		t.Error("Success = true, want false")
	}
	if len(r.Tests) != 2 || r.PassedCount() != 1 {
		t.Errorf("Tests = %d passed %d, want 2/1", len(r.Tests), r.PassedCount())
	}
	if r.Duration != 1500*time.Millisecond {
		t.Errorf("Duration = %v, want 1.5s", r.Duration)
	}
}

func TestParseResult_InvalidJSON(t *testing.T) {
	if _, err := ParseResult(strings.NewReader("not json")); err == nil {
		t.Error("expected decode error")
	}
}
