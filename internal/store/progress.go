package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/ent"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/ent/progress"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Record(ctx context.Context, slug string, score float64, passed bool) error {
	existing, err := r.client.Progress.Query().
		Where(progress.Slug(slug)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query progress: %w", err)
	}

	if existing == nil {
		_, err = r.client.Progress.Create().
			SetSlug(slug).
			SetBestScore(score).
			SetLastScore(score).
			SetAttempts(1).
			SetCompleted(passed).
			SetLastAttemptAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create progress: %w", err)
		}
		return nil
	}

	best := existing.BestScore
	if score > best {
		best = score
	}

	_, err = existing.Update().
		SetBestScore(best).
		SetLastScore(score).
		SetAttempts(existing.Attempts + 1).
		SetCompleted(existing.Completed || passed).
		SetLastAttemptAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	return nil
}

func (r *progressRepo) Get(ctx context.Context, slug string) (*ProgressSnapshot, error) {
	p, err := r.client.Progress.Query().
		Where(progress.Slug(slug)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}
	return entProgressToSnapshot(p), nil
}

func (r *progressRepo) All(ctx context.Context) ([]ProgressSnapshot, error) {
	rows, err := r.client.Progress.Query().
		Order(ent.Desc(progress.FieldLastAttemptAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query all progress: %w", err)
	}

	out := make([]ProgressSnapshot, 0, len(rows))
	for _, p := range rows {
		out = append(out, *entProgressToSnapshot(p))
	}
	return out, nil
}

func entProgressToSnapshot(p *ent.Progress) *ProgressSnapshot {
	return &ProgressSnapshot{
		Slug:          p.Slug,
		BestScore:     p.BestScore,
		LastScore:     p.LastScore,
		Attempts:      p.Attempts,
		Completed:     p.Completed,
		LastAttemptAt: p.LastAttemptAt,
	}
}
