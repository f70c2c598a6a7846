package kata

// Type identifies how a kata is practiced and graded.
type Type string

const (
	// TypeCode is a programming exercise graded by sandboxed test runs.
	TypeCode Type = "code"

	// TypeExplain is a free-form explanation graded by the AI judge.
	TypeExplain Type = "explain"

	// TypeTemplate is a fill-in-the-template exercise graded by the AI judge.
	TypeTemplate Type = "template"

	// TypeCodebase is a multi-file programming exercise graded like code.
	TypeCodebase Type = "codebase"

	// TypeShortform is a short free-text answer checked against expected strings.
	TypeShortform Type = "shortform"

	// TypeOneLiner is a single-line free-text answer, graded like shortform.
	TypeOneLiner Type = "one-liner"

	// TypeMultipleChoice is an option-select exercise with exact-set grading.
	TypeMultipleChoice Type = "multiple-choice"

	// TypeMultiQuestion is a quiz of mixed question kinds with weighted scoring.
	TypeMultiQuestion Type = "multi-question"
)

// Difficulty buckets katas for filtering and display.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Kata is a single practice exercise. The engine reads its grading
// configuration; prompt text, starter code and test files stay on disk and
// belong to the runner and UI collaborators.
type Kata struct {
	Slug       string
	Title      string
	Type       Type
	Difficulty Difficulty
	Language   string
	Tags       []string

	// Shortform is set for shortform and one-liner katas.
	Shortform *ShortformConfig

	// MultipleChoice is set for multiple-choice katas.
	MultipleChoice *MultipleChoiceConfig

	// Rubric is set for AI-judged katas (explain, template). A nil rubric
	// means the kata is ungraded and can never auto-pass.
	Rubric *RubricConfig

	// Questions is set for multi-question katas, in display order.
	Questions []Question

	// PassingScore is the percentage threshold for multi-question katas.
	// Zero means the default (70).
	PassingScore float64
}

// ShortformConfig holds the expected answers for a free-text kata.
type ShortformConfig struct {
	ExpectedAnswer    string
	AcceptableAnswers []string
	CaseSensitive     bool
}

// Option is a single selectable choice in a multiple-choice kata or question.
type Option struct {
	ID   string
	Text string
}

// MultipleChoiceConfig holds the options and answer key for option-select
// grading. CorrectAnswers references option IDs.
type MultipleChoiceConfig struct {
	Options        []Option
	CorrectAnswers []string
	AllowMultiple  bool
}

// RubricConfig names the AI-judged score criteria and their conjunctive
// minimums. MinTotal applies to the overall score; Mins applies per key.
type RubricConfig struct {
	Keys     []string
	MinTotal float64
	Mins     map[string]float64
}

// IsCodeType reports whether the kata is graded from sandboxed test runs.
func (t Type) IsCodeType() bool {
	return t == TypeCode || t == TypeCodebase
}

// IsJudgedType reports whether the kata is graded by the AI judge.
func (t Type) IsJudgedType() bool {
	return t == TypeExplain || t == TypeTemplate
}

// ValidTypes lists every kata type, for metadata validation and filter input.
func ValidTypes() []Type {
	return []Type{
		TypeCode, TypeExplain, TypeTemplate, TypeCodebase,
		TypeShortform, TypeOneLiner, TypeMultipleChoice, TypeMultiQuestion,
	}
}
