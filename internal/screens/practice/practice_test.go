package practice

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/engine"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/progression"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/registry"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	root := t.TempDir()
	for slug, meta := range map[string]string{
		"big-o-lookup": `{
			"slug": "big-o-lookup", "title": "Hash Lookup Complexity", "type": "shortform",
			"difficulty": "easy", "language": "none",
			"shortformConfig": {"expectedAnswer": "O(1)"}
		}`,
		"fizzbuzz-next": `{
			"slug": "fizzbuzz-next", "title": "FizzBuzz Next", "type": "shortform",
			"difficulty": "easy", "language": "none",
			"shortformConfig": {"expectedAnswer": "fizz"}
		}`,
	} {
		dir := filepath.Join(root, slug)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, kata.MetaFileName), []byte(meta), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	r, err := registry.Open(root)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func testDeps(t *testing.T, autoContinue bool) Deps {
	t.Helper()
	reg := testRegistry(t)
	return Deps{
		Engine:   engine.New(engine.Config{}),
		Selector: progression.New(progression.Settings{Enabled: autoContinue, Delay: 500 * time.Millisecond}, reg),
		Registry: reg,
	}
}

func shortformKata() *kata.Kata {
	return &kata.Kata{
		Slug:      "big-o-lookup",
		Title:     "Hash Lookup Complexity",
		Type:      kata.TypeShortform,
		Shortform: &kata.ShortformConfig{ExpectedAnswer: "O(1)"},
	}
}

func TestPractice_ShortformSubmit(t *testing.T) {
	s := New(testDeps(t, false), shortformKata())
	s.input.Model.SetValue("o(1)")

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*PracticeScreen)

	if ps.phase != phaseResult {
		t.Fatalf("phase = %v, want result", ps.phase)
	}
	if ps.result == nil || !ps.result.Passed {
		t.Errorf("result = %+v, want pass", ps.result)
	}
	if cmd == nil {
		t.Error("expected a persistence command after submit")
	}
}

func TestPractice_WrongAnswerStaysOnResult(t *testing.T) {
	s := New(testDeps(t, true), shortformKata())
	s.input.Model.SetValue("O(n)")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*PracticeScreen)

	if ps.phase != phaseResult {
		t.Errorf("failed attempt must not arm auto-continue, phase = %v", ps.phase)
	}
	if ps.pending != nil {
		t.Error("no pending switch expected on a failed attempt")
	}
}

func TestPractice_PassArmsAutoContinue(t *testing.T) {
	s := New(testDeps(t, true), shortformKata())
	s.input.Model.SetValue("O(1)")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*PracticeScreen)

	if ps.phase != phaseCountdown {
		t.Fatalf("phase = %v, want countdown", ps.phase)
	}
	if ps.pending == nil || ps.notif == nil {
		t.Fatal("expected pending switch and notification")
	}
	if ps.pending.Target().Slug != "fizzbuzz-next" {
		t.Errorf("target = %q, want the only other kata", ps.pending.Target().Slug)
	}
}

func TestPractice_KeyDuringCountdownCancels(t *testing.T) {
	s := New(testDeps(t, true), shortformKata())
	s.input.Model.SetValue("O(1)")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*PracticeScreen)
	pending := ps.pending

	scr, _ = ps.Update(keyPress('x'))
	ps = scr.(*PracticeScreen)

	if ps.phase != phaseResult {
		t.Errorf("phase = %v, want result after cancel", ps.phase)
	}
	if ps.pending != nil {
		t.Error("pending switch should be cleared")
	}
	if got := pending.Wait(); got != nil {
		t.Errorf("cancelled switch resolved to %v, want nil", got)
	}
}

func TestPractice_StaleAutoContinueIgnoredAfterCancel(t *testing.T) {
	s := New(testDeps(t, true), shortformKata())
	s.input.Model.SetValue("O(1)")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*PracticeScreen)
	scr, _ = ps.Update(keyPress('x')) // cancel
	ps = scr.(*PracticeScreen)

	_, cmd := ps.Update(autoContinueMsg{To: nil})
	if cmd != nil {
		t.Error("cancelled auto-continue must not navigate")
	}
}

func TestPractice_MultipleChoiceSubmit(t *testing.T) {
	k := &kata.Kata{
		Slug:  "http-idempotent",
		Title: "Idempotent Methods",
		Type:  kata.TypeMultipleChoice,
		MultipleChoice: &kata.MultipleChoiceConfig{
			Options: []kata.Option{
				{ID: "a", Text: "GET"},
				{ID: "b", Text: "POST"},
			},
			CorrectAnswers: []string{"a"},
		},
	}
	s := New(testDeps(t, false), k)

	// Cursor starts on the correct option.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*PracticeScreen)

	if ps.result == nil || !ps.result.Passed {
		t.Errorf("result = %+v, want pass for correct option", ps.result)
	}
}

func TestPractice_MultiQuestionWalksAllQuestions(t *testing.T) {
	k := &kata.Kata{
		Slug:  "go-basics-quiz",
		Title: "Go Basics Quiz",
		Type:  kata.TypeMultiQuestion,
		Questions: []kata.Question{
			{ID: "q1", Kind: kata.KindShortform, Prompt: "Lightweight thread?",
				Shortform: &kata.ShortformConfig{ExpectedAnswer: "goroutine"}},
			{ID: "q2", Kind: kata.KindShortform, Prompt: "Typed conduit?",
				Shortform: &kata.ShortformConfig{ExpectedAnswer: "channel"}},
		},
	}
	s := New(testDeps(t, false), k)

	s.input.Model.SetValue("goroutine")
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*PracticeScreen)

	if ps.phase != phaseAnswering || ps.qIndex != 1 {
		t.Fatalf("expected to advance to question 2, phase=%v qIndex=%d", ps.phase, ps.qIndex)
	}

	ps.input.Model.SetValue("channel")
	scr, _ = ps.Update(specialKey(tea.KeyEnter))
	ps = scr.(*PracticeScreen)

	if ps.phase != phaseResult {
		t.Fatalf("phase = %v, want result after last question", ps.phase)
	}
	if ps.result.Score != 100 || !ps.result.Passed {
		t.Errorf("result = %+v, want 100/pass", ps.result)
	}
	if len(ps.result.SubResults) != 2 {
		t.Errorf("sub results = %d, want one per question", len(ps.result.SubResults))
	}
}

func TestPractice_MultiQuestionAdvanceInitsActiveWidget(t *testing.T) {
	k := &kata.Kata{
		Slug:  "mixed-quiz",
		Title: "Mixed Quiz",
		Type:  kata.TypeMultiQuestion,
		Questions: []kata.Question{
			{ID: "q1", Kind: kata.KindShortform, Prompt: "Lightweight thread?",
				Shortform: &kata.ShortformConfig{ExpectedAnswer: "goroutine"}},
			{ID: "q2", Kind: kata.KindMultipleChoice, Prompt: "Pick one",
				MultipleChoice: &kata.MultipleChoiceConfig{
					Options:        []kata.Option{{ID: "a", Text: "A"}, {ID: "b", Text: "B"}},
					CorrectAnswers: []string{"a"},
				}},
			{ID: "q3", Kind: kata.KindExplanation, Prompt: "Explain", MinWords: 1},
		},
	}
	s := New(testDeps(t, false), k)

	s.input.Model.SetValue("goroutine")
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*PracticeScreen)

	// Multi-choice questions have no widget to init.
	if ps.currentKind() != kata.KindMultipleChoice {
		t.Fatalf("currentKind = %v, want multiple-choice", ps.currentKind())
	}
	if cmd := ps.activeInputInit(); cmd != nil {
		t.Error("multi-choice question should not init a text widget")
	}

	scr, _ = ps.Update(specialKey(tea.KeyEnter))
	ps = scr.(*PracticeScreen)

	// Explanation questions answer through the textarea, not the input.
	if !ps.usesTextarea() {
		t.Fatal("explanation question should use the textarea")
	}
	ps.area.SetValue("closures capture variables")
	if got := ps.currentAnswer().Text; got != "closures capture variables" {
		t.Errorf("currentAnswer().Text = %q, want the textarea value", got)
	}
}

func TestPractice_SubmitDisabledWhileJudging(t *testing.T) {
	k := &kata.Kata{
		Slug:  "explain-closures",
		Title: "Explain Closures",
		Type:  kata.TypeExplain,
		Rubric: &kata.RubricConfig{
			Keys:     []string{"correctness"},
			MinTotal: 70,
		},
	}
	s := New(testDeps(t, false), k)
	s.phase = phaseJudging

	var scr screen.Screen = s
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("submission must stay disabled while judging")
	}
}

func TestPractice_CodeKataShowsRunnerInfo(t *testing.T) {
	k := &kata.Kata{Slug: "two-sum", Title: "Two Sum", Type: kata.TypeCode}
	s := New(testDeps(t, false), k)

	if s.phase != phaseRunnerInfo {
		t.Fatalf("phase = %v, want runner info for code kata", s.phase)
	}
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty runner info view")
	}
}

func TestPractice_Title(t *testing.T) {
	s := New(testDeps(t, false), shortformKata())
	if s.Title() != "Hash Lookup Complexity" {
		t.Errorf("Title = %q", s.Title())
	}
}
