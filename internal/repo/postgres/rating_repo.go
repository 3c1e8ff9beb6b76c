package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RatingRepo struct {
	pool *pgxpool.Pool
}

func NewRatingRepo(pool *pgxpool.Pool) *RatingRepo {
	return &RatingRepo{pool: pool}
}

// Upsert keeps one rating row per (user, icebreaker); last write wins.
func (r *RatingRepo) Upsert(ctx context.Context, userID, icebreakerID string, rating int) error {
	if r.pool == nil {
		return nil
	}
	if userID == "" || icebreakerID == "" {
		return fmt.Errorf("invalid rating payload")
	}

	const query = `
INSERT INTO icebreaker_ratings (
	user_id,
	icebreaker_id,
	rating,
	updated_at
) VALUES ($1, $2, $3, NOW())
ON CONFLICT (user_id, icebreaker_id) DO UPDATE SET
	rating = EXCLUDED.rating,
	updated_at = NOW()
`

	if _, err := r.pool.Exec(ctx, query, userID, icebreakerID, rating); err != nil {
		return fmt.Errorf("upsert icebreaker rating: %w", err)
	}

	return nil
}
