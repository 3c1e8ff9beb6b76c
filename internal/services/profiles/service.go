package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/derekmegyesi/social-starter-kit/internal/domain/enums"
	"github.com/derekmegyesi/social-starter-kit/internal/domain/model"
)

var ErrValidation = errors.New("validation error")

type ProfileStore interface {
	Save(ctx context.Context, profile model.Profile) error
	Get(ctx context.Context, userID string) (model.Profile, error)
}

type Service struct {
	store ProfileStore
}

type Input struct {
	Name                 string
	AgeRange             string
	Gender               string
	City                 string
	Temperament          string
	PreferredEnvironment string
	Profession           string
	Interests            []string
	Bio                  string
}

func NewService(store ProfileStore) *Service {
	return &Service{store: store}
}

func (s *Service) Update(ctx context.Context, userID string, in Input) (model.Profile, error) {
	if userID == "" {
		return model.Profile{}, fmt.Errorf("invalid user id: %w", ErrValidation)
	}
	if s.store == nil {
		return model.Profile{}, fmt.Errorf("profile store is nil")
	}

	profile, err := normalizeAndValidate(userID, in)
	if err != nil {
		return model.Profile{}, err
	}

	if err := s.store.Save(ctx, profile); err != nil {
		return model.Profile{}, fmt.Errorf("save profile: %w", err)
	}

	return profile, nil
}

func (s *Service) Get(ctx context.Context, userID string) (model.Profile, error) {
	if userID == "" {
		return model.Profile{}, fmt.Errorf("invalid user id: %w", ErrValidation)
	}
	if s.store == nil {
		return model.Profile{}, fmt.Errorf("profile store is nil")
	}

	return s.store.Get(ctx, userID)
}

func normalizeAndValidate(userID string, in Input) (model.Profile, error) {
	profile := model.Profile{
		UserID:               userID,
		Name:                 strings.TrimSpace(in.Name),
		AgeRange:             enums.AgeRange(strings.TrimSpace(in.AgeRange)),
		Gender:               enums.Gender(strings.ToLower(strings.TrimSpace(in.Gender))),
		City:                 strings.TrimSpace(in.City),
		Temperament:          enums.Temperament(strings.ToLower(strings.TrimSpace(in.Temperament))),
		PreferredEnvironment: enums.Environment(strings.ToLower(strings.TrimSpace(in.PreferredEnvironment))),
		Profession:           strings.TrimSpace(in.Profession),
		Interests:            normalizeInterests(in.Interests),
		Bio:                  strings.TrimSpace(in.Bio),
	}

	if profile.Name == "" {
		return model.Profile{}, fmt.Errorf("name is required: %w", ErrValidation)
	}
	if !profile.AgeRange.IsValid() {
		return model.Profile{}, fmt.Errorf("invalid age range %q: %w", in.AgeRange, ErrValidation)
	}
	if !profile.Gender.IsValid() {
		return model.Profile{}, fmt.Errorf("invalid gender %q: %w", in.Gender, ErrValidation)
	}
	if !profile.Temperament.IsValid() {
		return model.Profile{}, fmt.Errorf("invalid temperament %q: %w", in.Temperament, ErrValidation)
	}
	if in.PreferredEnvironment != "" && !profile.PreferredEnvironment.IsValid() {
		return model.Profile{}, fmt.Errorf("invalid preferred environment %q: %w", in.PreferredEnvironment, ErrValidation)
	}

	// City, profession, interests and bio stay optional; the prompt
	// builder substitutes placeholders for anything missing.
	return profile, nil
}

func normalizeInterests(interests []string) []string {
	out := make([]string, 0, len(interests))
	for _, interest := range interests {
		interest = strings.TrimSpace(interest)
		if interest != "" {
			out = append(out, interest)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
