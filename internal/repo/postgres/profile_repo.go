package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/derekmegyesi/social-starter-kit/internal/domain/model"
)

type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

func (r *ProfileRepo) Save(ctx context.Context, profile model.Profile) error {
	if r.pool == nil {
		return nil
	}

	const query = `
INSERT INTO profiles (
	user_id,
	name,
	age_range,
	gender,
	city,
	temperament,
	preferred_environment,
	profession,
	interests,
	bio,
	updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
ON CONFLICT (user_id) DO UPDATE SET
	name = EXCLUDED.name,
	age_range = EXCLUDED.age_range,
	gender = EXCLUDED.gender,
	city = EXCLUDED.city,
	temperament = EXCLUDED.temperament,
	preferred_environment = EXCLUDED.preferred_environment,
	profession = EXCLUDED.profession,
	interests = EXCLUDED.interests,
	bio = EXCLUDED.bio,
	updated_at = NOW()
`

	if _, err := r.pool.Exec(
		ctx,
		query,
		profile.UserID,
		profile.Name,
		string(profile.AgeRange),
		string(profile.Gender),
		profile.City,
		string(profile.Temperament),
		string(profile.PreferredEnvironment),
		profile.Profession,
		profile.Interests,
		profile.Bio,
	); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	return nil
}

func (r *ProfileRepo) Get(ctx context.Context, userID string) (model.Profile, error) {
	if r.pool == nil {
		return model.Profile{}, fmt.Errorf("postgres pool is nil")
	}
	if userID == "" {
		return model.Profile{}, fmt.Errorf("invalid user id")
	}

	var profile model.Profile
	err := r.pool.QueryRow(ctx, `
SELECT user_id, name, age_range, gender, city, temperament, preferred_environment, profession, interests, bio, updated_at
FROM profiles
WHERE user_id = $1
LIMIT 1
`, userID).Scan(
		&profile.UserID,
		&profile.Name,
		&profile.AgeRange,
		&profile.Gender,
		&profile.City,
		&profile.Temperament,
		&profile.PreferredEnvironment,
		&profile.Profession,
		&profile.Interests,
		&profile.Bio,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, model.ErrProfileNotFound
		}
		return model.Profile{}, fmt.Errorf("get profile: %w", err)
	}

	return profile, nil
}
