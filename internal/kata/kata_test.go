package kata

import "testing"

func TestFiltersMatch(t *testing.T) {
	k := &Kata{
		Slug:       "two-sum",
		Type:       TypeCode,
		Difficulty: DifficultyEasy,
		Language:   "go",
		Tags:       []string{"arrays", "hashing"},
	}

	tests := []struct {
		name    string
		filters Filters
		want    bool
	}{
		{"zero filters match everything", Filters{}, true},
		{"matching difficulty", Filters{Difficulties: []Difficulty{DifficultyEasy}}, true},
		{"wrong difficulty", Filters{Difficulties: []Difficulty{DifficultyHard}}, false},
		{"matching language", Filters{Languages: []string{"go", "python"}}, true},
		{"wrong language", Filters{Languages: []string{"rust"}}, false},
		{"matching type", Filters{Types: []Type{TypeCode, TypeCodebase}}, true},
		{"wrong type", Filters{Types: []Type{TypeExplain}}, false},
		{"any overlapping tag passes", Filters{Tags: []string{"hashing", "graphs"}}, true},
		{"no overlapping tag fails", Filters{Tags: []string{"graphs"}}, false},
		{
			"all dimensions must pass",
			Filters{
				Difficulties: []Difficulty{DifficultyEasy},
				Languages:    []string{"go"},
				Tags:         []string{"recursion"},
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filters.Match(k); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFiltersIsZero(t *testing.T) {
	if !(Filters{}).IsZero() {
		t.Error("empty Filters should be zero")
	}
	if (Filters{Languages: []string{"go"}}).IsZero() {
		t.Error("Filters with a language should not be zero")
	}
}

func TestTypeClassification(t *testing.T) {
	for _, typ := range ValidTypes() {
		code := typ.IsCodeType()
		judged := typ.IsJudgedType()
		if code && judged {
			t.Errorf("%s classified as both code and judged", typ)
		}
	}
	if !TypeCodebase.IsCodeType() {
		t.Error("codebase should be a code type")
	}
	if !TypeTemplate.IsJudgedType() {
		t.Error("template should be a judged type")
	}
}

func TestQuestionPointsPossible(t *testing.T) {
	if got := (Question{Points: 5}).PointsPossible(); got != 5 {
		t.Errorf("PointsPossible() = %v, want 5", got)
	}
	if got := (Question{}).PointsPossible(); got != 1 {
		t.Errorf("unset points: PointsPossible() = %v, want 1", got)
	}
	if got := (Question{Points: -2}).PointsPossible(); got != 1 {
		t.Errorf("negative points: PointsPossible() = %v, want 1", got)
	}
}
