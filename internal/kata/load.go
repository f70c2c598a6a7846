package kata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// MetaFileName is the per-kata metadata file inside each kata directory.
const MetaFileName = "meta.json"

// StatementFileName is the per-kata task statement shown to the learner.
const StatementFileName = "statement.md"

// LoadStatement reads the kata's task statement. A missing statement is
// not an error; the kata title stands in.
func LoadStatement(dir string) string {
	raw, err := os.ReadFile(filepath.Join(dir, StatementFileName))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

var (
	compiledMeta     *jsonschema.Schema
	compileMetaOnce  sync.Once
	compileMetaError error
)

// metaFile mirrors the meta.json wire shape.
type metaFile struct {
	Slug           string      `json:"slug"`
	Title          string      `json:"title"`
	Type           string      `json:"type"`
	Difficulty     string      `json:"difficulty"`
	Language       string      `json:"language"`
	Tags           []string    `json:"tags"`
	Shortform      *sfConfig   `json:"shortformConfig"`
	MultipleChoice *mcConfig   `json:"multipleChoiceConfig"`
	Rubric         *rubricMeta `json:"rubric"`
	Questions      []qMeta     `json:"questions"`
	PassingScore   float64     `json:"passingScore"`
}

type sfConfig struct {
	ExpectedAnswer    string   `json:"expectedAnswer"`
	AcceptableAnswers []string `json:"acceptableAnswers"`
	CaseSensitive     bool     `json:"caseSensitive"`
}

type mcConfig struct {
	Options        []optMeta `json:"options"`
	CorrectAnswers []string  `json:"correctAnswers"`
	AllowMultiple  bool      `json:"allowMultiple"`
}

type optMeta struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type rubricMeta struct {
	Keys     []string           `json:"keys"`
	MinTotal float64            `json:"minTotal"`
	Mins     map[string]float64 `json:"mins"`
}

type qMeta struct {
	ID             string    `json:"id"`
	Kind           string    `json:"kind"`
	Prompt         string    `json:"prompt"`
	Points         float64   `json:"points"`
	Shortform      *sfConfig `json:"shortformConfig"`
	MultipleChoice *mcConfig `json:"multipleChoiceConfig"`
	MinWords       int       `json:"minWords"`
}

// Load reads and validates the kata rooted at dir.
// Metadata that fails schema validation is a load error, never a silent skip.
func Load(dir string) (*Kata, error) {
	path := filepath.Join(dir, MetaFileName)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read kata metadata: %w", err)
	}
	k, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("kata %s: %w", dir, err)
	}
	return k, nil
}

// Parse decodes kata metadata after validating it against the meta schema.
func Parse(raw []byte) (*Kata, error) {
	schema, err := compiledMetaSchema()
	if err != nil {
		return nil, err
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("metadata schema: %w", err)
	}

	var m metaFile
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}

	return m.toKata(), nil
}

func (m *metaFile) toKata() *Kata {
	k := &Kata{
		Slug:         m.Slug,
		Title:        m.Title,
		Type:         Type(m.Type),
		Difficulty:   Difficulty(m.Difficulty),
		Language:     m.Language,
		Tags:         m.Tags,
		PassingScore: m.PassingScore,
	}
	if m.Shortform != nil {
		k.Shortform = m.Shortform.toConfig()
	}
	if m.MultipleChoice != nil {
		k.MultipleChoice = m.MultipleChoice.toConfig()
	}
	if m.Rubric != nil {
		k.Rubric = &RubricConfig{
			Keys:     m.Rubric.Keys,
			MinTotal: m.Rubric.MinTotal,
			Mins:     m.Rubric.Mins,
		}
	}
	for _, q := range m.Questions {
		k.Questions = append(k.Questions, q.toQuestion())
	}
	return k
}

func (c *sfConfig) toConfig() *ShortformConfig {
	return &ShortformConfig{
		ExpectedAnswer:    c.ExpectedAnswer,
		AcceptableAnswers: c.AcceptableAnswers,
		CaseSensitive:     c.CaseSensitive,
	}
}

func (c *mcConfig) toConfig() *MultipleChoiceConfig {
	cfg := &MultipleChoiceConfig{
		CorrectAnswers: c.CorrectAnswers,
		AllowMultiple:  c.AllowMultiple,
	}
	for _, o := range c.Options {
		cfg.Options = append(cfg.Options, Option{ID: o.ID, Text: o.Text})
	}
	return cfg
}

func (q qMeta) toQuestion() Question {
	out := Question{
		ID:       q.ID,
		Kind:     QuestionKind(q.Kind),
		Prompt:   q.Prompt,
		Points:   q.Points,
		MinWords: q.MinWords,
	}
	if q.Shortform != nil {
		out.Shortform = q.Shortform.toConfig()
	}
	if q.MultipleChoice != nil {
		out.MultipleChoice = q.MultipleChoice.toConfig()
	}
	return out
}

// compiledMetaSchema compiles the meta schema once and caches it.
func compiledMetaSchema() (*jsonschema.Schema, error) {
	compileMetaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, so roundtrip
		// the definition through encoding/json first.
		defBytes, err := json.Marshal(metaSchema)
		if err != nil {
			compileMetaError = fmt.Errorf("marshal meta schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileMetaError = fmt.Errorf("parse meta schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://kata-meta.json", defParsed); err != nil {
			compileMetaError = fmt.Errorf("add meta schema resource: %w", err)
			return
		}
		compiledMeta, compileMetaError = c.Compile("schema://kata-meta.json")
	})
	return compiledMeta, compileMetaError
}
