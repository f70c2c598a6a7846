package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/grading"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/store"

	"github.com/google/uuid"
)

// Record persists one evaluated attempt: an immutable event plus the
// kata's mutable progress row. Returns the generated attempt ID.
//
// The result itself is already final when Record runs; a storage failure
// loses history, never the grade the learner is looking at. Ungraded
// results are logged as events but do not touch progress, since no grade
// happened.
func (e *Engine) Record(ctx context.Context, k *kata.Kata, res grading.Result) (string, error) {
	if k == nil {
		return "", errors.New("no kata provided")
	}

	attemptID := uuid.NewString()
	var errs []error

	if e.events != nil {
		data := store.AttemptEventData{
			AttemptID:  attemptID,
			SessionID:  e.sessionID,
			Slug:       k.Slug,
			KataType:   string(k.Type),
			Score:      res.Score,
			Passed:     res.Passed,
			Ungraded:   res.Ungraded,
			DurationMs: res.Duration.Milliseconds(),
			Message:    res.Message,
			SubResults: subResultData(res.SubResults),
		}
		if err := e.events.AppendAttempt(ctx, data); err != nil {
			errs = append(errs, fmt.Errorf("append attempt event: %w", err))
		}
	}

	if e.progress != nil && !res.Ungraded {
		if err := e.progress.Record(ctx, k.Slug, res.Score, res.Passed); err != nil {
			errs = append(errs, fmt.Errorf("record progress: %w", err))
		}
	}

	return attemptID, errors.Join(errs...)
}

func subResultData(subs []grading.SubResult) []store.SubResultData {
	if len(subs) == 0 {
		return nil
	}
	out := make([]store.SubResultData, len(subs))
	for i, s := range subs {
		out[i] = store.SubResultData{
			Name:           s.Name,
			Passed:         s.Passed,
			PointsEarned:   s.PointsEarned,
			PointsPossible: s.PointsPossible,
			Message:        s.Message,
		}
	}
	return out
}
