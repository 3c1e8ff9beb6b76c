package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/derekmegyesi/social-starter-kit/internal/domain/model"
)

type IcebreakerRepo struct {
	pool *pgxpool.Pool
}

func NewIcebreakerRepo(pool *pgxpool.Pool) *IcebreakerRepo {
	return &IcebreakerRepo{pool: pool}
}

// SaveBatch inserts a freshly generated batch. Records share a batch id so
// a regeneration replaces the displayed set without touching prior rows.
func (r *IcebreakerRepo) SaveBatch(
	ctx context.Context,
	userID string,
	batchID string,
	eventType string,
	eventName string,
	icebreakers []model.Icebreaker,
	at time.Time,
) error {
	if r.pool == nil {
		return nil
	}
	if userID == "" || batchID == "" || len(icebreakers) == 0 {
		return fmt.Errorf("invalid icebreaker batch payload")
	}

	const query = `
INSERT INTO icebreakers (
	user_id,
	id,
	batch_id,
	event_type,
	event_name,
	text,
	category,
	difficulty,
	provenance,
	created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (user_id, id) DO NOTHING
`

	batch := &pgx.Batch{}
	for _, ib := range icebreakers {
		batch.Queue(
			query,
			userID,
			ib.ID,
			batchID,
			eventType,
			eventName,
			ib.Text,
			ib.Category,
			string(ib.Difficulty),
			string(ib.Provenance),
			at.UTC(),
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer func() { _ = results.Close() }()

	for range icebreakers {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("save icebreaker batch: %w", err)
		}
	}

	return nil
}
