package kata

// Filters constrains kata selection. Each dimension is an inclusive
// allow-list; an empty dimension imposes no restriction.
type Filters struct {
	Difficulties []Difficulty
	Languages    []string
	Tags         []string
	Types        []Type
}

// Match reports whether k satisfies every active filter dimension.
// Tag filtering passes when the kata carries at least one allowed tag.
func (f Filters) Match(k *Kata) bool {
	if len(f.Difficulties) > 0 && !containsDifficulty(f.Difficulties, k.Difficulty) {
		return false
	}
	if len(f.Languages) > 0 && !containsString(f.Languages, k.Language) {
		return false
	}
	if len(f.Types) > 0 && !containsType(f.Types, k.Type) {
		return false
	}
	if len(f.Tags) > 0 {
		found := false
		for _, tag := range k.Tags {
			if containsString(f.Tags, tag) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// IsZero reports whether no dimension is active.
func (f Filters) IsZero() bool {
	return len(f.Difficulties) == 0 && len(f.Languages) == 0 &&
		len(f.Tags) == 0 && len(f.Types) == 0
}

func containsDifficulty(list []Difficulty, d Difficulty) bool {
	for _, v := range list {
		if v == d {
			return true
		}
	}
	return false
}

func containsType(list []Type, t Type) bool {
	for _, v := range list {
		if v == t {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
