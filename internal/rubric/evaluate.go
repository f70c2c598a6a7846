package rubric

// Evaluate recomputes the pass verdict of a judgment against a rubric.
//
// Every threshold is conjunctive: the total must clear MinTotal and each
// named key must clear its own minimum. A high total cannot compensate for
// a failed per-key floor. A threshold referencing a score key absent from
// the judgment counts as unmet. A nil rubric yields the explicit Ungraded
// judgment instead of a look-alike failure.
func Evaluate(j Judgment, r *Rubric) Judgment {
	if r == nil {
		return Ungraded()
	}

	j = j.Clamp()
	j.Status = StatusGraded
	j.Pass = j.TotalScore >= r.MinTotal && clearsAllMins(j.Scores, r.Mins)
	return j
}

func clearsAllMins(scores map[string]float64, mins map[string]float64) bool {
	for key, min := range mins {
		score, ok := scores[key]
		if !ok {
			// Missing criterion: fail closed, never skip.
			return false
		}
		if score < min {
			return false
		}
	}
	return true
}
