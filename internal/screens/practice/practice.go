// Package practice is the interactive kata-solving screen: it collects
// the learner's answer, runs the evaluation engine, shows the result, and
// drives the auto-continue flow.
package practice

import (
	"context"
	"time"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/engine"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/grading"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/progression"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/registry"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/router"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/screen"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/ui/components"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/ui/layout"
)

type phase int

const (
	phaseAnswering phase = iota
	phaseJudging
	phaseResult
	phaseCountdown
	phaseRunnerInfo
)

// Deps are the collaborators every practice screen shares.
type Deps struct {
	Engine   *engine.Engine
	Selector *progression.Selector
	Registry *registry.Registry
}

// PracticeScreen drives one kata attempt from answer entry to result.
type PracticeScreen struct {
	deps      Deps
	kata      *kata.Kata
	statement string

	phase   phase
	started time.Time

	input components.TextInput
	area  textarea.Model
	mc    components.MultiChoice

	// multi-question progress
	qIndex  int
	answers map[string]grading.Answer

	result     *grading.Result
	storeWarn  string
	notif      *progression.Notification
	pending    *progression.PendingSwitch
	deadline   time.Time
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice screen for the given kata.
func New(deps Deps, k *kata.Kata) *PracticeScreen {
	s := &PracticeScreen{
		deps:    deps,
		kata:    k,
		answers: make(map[string]grading.Answer),
		started: time.Now(),
	}
	if k.Type.IsCodeType() {
		s.phase = phaseRunnerInfo
	} else {
		s.setupInput()
	}
	return s
}

// setupInput prepares the answer widget for the kata type, or for the
// current question of a multi-question kata.
func (s *PracticeScreen) setupInput() {
	switch s.kata.Type {
	case kata.TypeMultipleChoice:
		if s.kata.MultipleChoice != nil {
			s.mc = components.NewMultiChoice(s.kata.MultipleChoice)
		}
	case kata.TypeExplain, kata.TypeTemplate:
		ta := textarea.New()
		ta.Placeholder = "Write your answer..."
		ta.Focus()
		s.area = ta
	case kata.TypeMultiQuestion:
		s.setupQuestionInput()
	default:
		s.input = components.NewTextInput("Type your answer...", 200)
	}
}

// setupQuestionInput prepares the widget for the current sub-question.
func (s *PracticeScreen) setupQuestionInput() {
	if s.qIndex >= len(s.kata.Questions) {
		return
	}
	q := s.kata.Questions[s.qIndex]
	switch q.Kind {
	case kata.KindMultipleChoice:
		if q.MultipleChoice != nil {
			s.mc = components.NewMultiChoice(q.MultipleChoice)
		}
	case kata.KindExplanation, kata.KindCode:
		ta := textarea.New()
		ta.Placeholder = "Write your answer..."
		ta.Focus()
		s.area = ta
	default:
		s.input = components.NewTextInput("Type your answer...", 200)
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	return tea.Batch(
		s.loadStatement(),
		s.activeInputInit(),
	)
}

// activeInputInit returns the init command for whichever widget the
// current question uses.
func (s *PracticeScreen) activeInputInit() tea.Cmd {
	switch {
	case s.currentKind() == kata.KindMultipleChoice:
		return nil
	case s.usesTextarea():
		return s.area.Focus()
	default:
		return s.input.Init()
	}
}

func (s *PracticeScreen) Title() string {
	return s.kata.Title
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseAnswering:
		if s.usesTextarea() {
			return []layout.KeyHint{
				{Key: "Ctrl+S", Description: "Submit"},
				{Key: "Esc", Description: "Back"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseJudging:
		return []layout.KeyHint{
			{Key: "...", Description: "Judging"},
		}
	case phaseCountdown:
		return []layout.KeyHint{
			{Key: "any key", Description: "Stay here"},
		}
	case phaseResult:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *PracticeScreen) usesTextarea() bool {
	if s.kata.Type == kata.TypeExplain || s.kata.Type == kata.TypeTemplate {
		return true
	}
	if s.kata.Type == kata.TypeMultiQuestion && s.qIndex < len(s.kata.Questions) {
		kind := s.kata.Questions[s.qIndex].Kind
		return kind == kata.KindExplanation || kind == kata.KindCode
	}
	return false
}

func (s *PracticeScreen) loadStatement() tea.Cmd {
	return func() tea.Msg {
		dir, ok := s.deps.Registry.Dir(s.kata.Slug)
		if !ok {
			return statementLoadedMsg{}
		}
		return statementLoadedMsg{Statement: kata.LoadStatement(dir)}
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statementLoadedMsg:
		s.statement = msg.Statement
		return s, nil

	case judgedMsg:
		return s.finishEvaluation(msg.Result)

	case recordedMsg:
		if msg.Err != nil {
			s.storeWarn = "attempt not saved: " + msg.Err.Error()
		}
		return s, nil

	case countdownTickMsg:
		if s.phase != phaseCountdown {
			return s, nil
		}
		return s, tickCountdown()

	case autoContinueMsg:
		// A nil target means the switch was cancelled mid-delay.
		if msg.To == nil || s.phase != phaseCountdown {
			return s, nil
		}
		next := New(s.deps, msg.To)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToInput(msg)
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseRunnerInfo:
		if key == "esc" || key == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil

	case phaseJudging:
		// Submission affordance stays disabled while a result is pending.
		return s, nil

	case phaseCountdown:
		// Navigation during the delay window cancels the switch.
		s.pending.Cancel()
		s.pending = nil
		s.notif = nil
		s.phase = phaseResult
		return s, nil

	case phaseResult:
		if key == "esc" || key == "enter" || key == "q" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	// Answering.
	switch key {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "enter":
		if !s.usesTextarea() {
			return s.submit()
		}
	case "ctrl+s":
		if s.usesTextarea() {
			return s.submit()
		}
	}

	return s.forwardToInput(msg)
}

func (s *PracticeScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.phase != phaseAnswering {
		return s, nil
	}

	var cmd tea.Cmd
	switch {
	case s.currentKind() == kata.KindMultipleChoice:
		s.mc, cmd = s.mc.Update(msg)
	case s.usesTextarea():
		s.area, cmd = s.area.Update(msg)
	default:
		s.input, cmd = s.input.Update(msg)
	}
	return s, cmd
}

// currentKind is the widget-selection kind for the active input: the
// sub-question's kind for multi-question katas, a synthetic kind
// otherwise.
func (s *PracticeScreen) currentKind() kata.QuestionKind {
	if s.kata.Type == kata.TypeMultiQuestion {
		if s.qIndex < len(s.kata.Questions) {
			return s.kata.Questions[s.qIndex].Kind
		}
		return kata.KindShortform
	}
	if s.kata.Type == kata.TypeMultipleChoice {
		return kata.KindMultipleChoice
	}
	return kata.KindShortform
}

// currentAnswer reads the active widget into a grading answer.
func (s *PracticeScreen) currentAnswer() grading.Answer {
	switch {
	case s.currentKind() == kata.KindMultipleChoice:
		return grading.Answer{Selections: s.mc.Selections()}
	case s.usesTextarea():
		return grading.Answer{Text: s.area.Value()}
	default:
		return grading.Answer{Text: s.input.Value()}
	}
}

func (s *PracticeScreen) submit() (screen.Screen, tea.Cmd) {
	switch s.kata.Type {
	case kata.TypeMultiQuestion:
		return s.submitQuestion()
	case kata.TypeExplain, kata.TypeTemplate:
		return s.submitForJudging()
	default:
		sub := engine.Submission{
			Answer:   s.currentAnswer(),
			Duration: time.Since(s.started),
		}
		res := s.deps.Engine.EvaluateSubmission(s.kata, sub)
		return s.finishEvaluation(res)
	}
}

// submitQuestion stores the current answer and either advances to the
// next question or aggregates the whole kata.
func (s *PracticeScreen) submitQuestion() (screen.Screen, tea.Cmd) {
	if s.qIndex < len(s.kata.Questions) {
		q := s.kata.Questions[s.qIndex]
		s.answers[q.ID] = s.currentAnswer()
		s.qIndex++
	}

	if s.qIndex < len(s.kata.Questions) {
		s.setupQuestionInput()
		return s, s.activeInputInit()
	}

	res := s.deps.Engine.EvaluateMultiQuestion(s.kata, s.answers)
	res.Duration = time.Since(s.started)
	return s.finishEvaluation(res)
}

// submitForJudging dispatches the answer to the AI judge asynchronously;
// the affordance is disabled until the judged result arrives.
func (s *PracticeScreen) submitForJudging() (screen.Screen, tea.Cmd) {
	answer := s.area.Value()
	s.phase = phaseJudging

	k, statement := s.kata, s.statement
	eng := s.deps.Engine
	started := s.started
	return s, func() tea.Msg {
		res := eng.JudgeSubmission(context.Background(), k, statement, answer)
		if res.Duration == 0 {
			res.Duration = time.Since(started)
		}
		return judgedMsg{Result: res}
	}
}

// finishEvaluation records the result and, on a qualifying pass, arms the
// auto-continue switch.
func (s *PracticeScreen) finishEvaluation(res grading.Result) (screen.Screen, tea.Cmd) {
	s.result = &res
	s.phase = phaseResult
	s.mc.Submitted = true
	s.input.Submit(res.Passed)

	cmds := []tea.Cmd{s.recordAttempt(res)}

	if s.deps.Selector != nil && s.deps.Selector.ShouldTrigger(res) {
		if next := s.deps.Selector.SelectNext(s.kata.Slug); next != nil {
			notif := s.deps.Selector.CreateNotification(s.kata, next)
			s.notif = &notif
			s.pending = s.deps.Selector.Schedule(next)
			s.deadline = time.Now().Add(s.deps.Selector.Settings().Delay)
			s.phase = phaseCountdown

			pending := s.pending
			cmds = append(cmds,
				func() tea.Msg { return autoContinueMsg{To: pending.Wait()} },
				tickCountdown(),
			)
		}
	}

	return s, tea.Batch(cmds...)
}

func (s *PracticeScreen) recordAttempt(res grading.Result) tea.Cmd {
	k := s.kata
	eng := s.deps.Engine
	return func() tea.Msg {
		_, err := eng.Record(context.Background(), k, res)
		return recordedMsg{Err: err}
	}
}

func tickCountdown() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return countdownTickMsg(t)
	})
}
