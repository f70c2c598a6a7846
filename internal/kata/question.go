package kata

// QuestionKind identifies how a single question inside a multi-question kata
// is answered and graded. The evaluator switches exhaustively over kinds, so
// adding a kind is a compile-visible change.
type QuestionKind string

const (
	KindShortform      QuestionKind = "shortform"
	KindOneLiner       QuestionKind = "one-liner"
	KindMultipleChoice QuestionKind = "multiple-choice"
	KindExplanation    QuestionKind = "explanation"
	KindCode           QuestionKind = "code"
)

// Question is one sub-unit of a multi-question kata. Exactly one of the
// kind-specific config fields is set, matching Kind.
type Question struct {
	ID     string
	Kind   QuestionKind
	Prompt string

	// Points is the weight of this question in the aggregate score.
	// Zero means the default weight of 1.
	Points float64

	// Shortform is set for shortform and one-liner questions.
	Shortform *ShortformConfig

	// MultipleChoice is set for multiple-choice questions.
	MultipleChoice *MultipleChoiceConfig

	// MinWords is the passing word count for explanation questions.
	// Semantic grading of explanations is the AI judge's job, not ours.
	MinWords int
}

// PointsPossible returns the question's weight, defaulting to 1.
func (q Question) PointsPossible() float64 {
	if q.Points <= 0 {
		return 1
	}
	return q.Points
}

// OptionIDs returns the IDs of all options on a multiple-choice question.
func (c *MultipleChoiceConfig) OptionIDs() map[string]bool {
	ids := make(map[string]bool, len(c.Options))
	for _, o := range c.Options {
		ids[o.ID] = true
	}
	return ids
}
