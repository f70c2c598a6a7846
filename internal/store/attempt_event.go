package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/ent"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/ent/attemptevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetSessionID(data.SessionID).
		SetSlug(data.Slug).
		SetKataType(data.KataType).
		SetScore(data.Score).
		SetPassed(data.Passed).
		SetUngraded(data.Ungraded).
		SetDurationMs(data.DurationMs).
		SetMessage(data.Message)

	if len(data.SubResults) > 0 {
		subs, err := subResultsToMaps(data.SubResults)
		if err != nil {
			return fmt.Errorf("marshal sub-results: %w", err)
		}
		builder = builder.SetSubResults(subs)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) Attempts(ctx context.Context, slug string, limit int) ([]Attempt, error) {
	q := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence))
	if slug != "" {
		q = q.Where(attemptevent.Slug(slug))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	out := make([]Attempt, 0, len(events))
	for _, e := range events {
		out = append(out, Attempt{
			AttemptID: e.AttemptID,
			Slug:      e.Slug,
			KataType:  e.KataType,
			Score:     e.Score,
			Passed:    e.Passed,
			Timestamp: e.Timestamp,
		})
	}
	return out, nil
}

func (r *eventRepo) PassRate(ctx context.Context, slug string) (float64, int, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.Slug(slug)).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query pass rate: %w", err)
	}
	if len(events) == 0 {
		return 0, 0, nil
	}

	passed := 0
	for _, e := range events {
		if e.Passed {
			passed++
		}
	}
	return float64(passed) / float64(len(events)), len(events), nil
}

// subResultsToMaps converts sub-results to the generic JSON shape ent stores.
func subResultsToMaps(subs []SubResultData) ([]map[string]any, error) {
	b, err := json.Marshal(subs)
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
