package icebreakers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/derekmegyesi/social-starter-kit/internal/domain/enums"
	"github.com/derekmegyesi/social-starter-kit/internal/domain/model"
	"github.com/derekmegyesi/social-starter-kit/internal/domain/rules"
	"github.com/derekmegyesi/social-starter-kit/internal/infra/openai"
)

const maxBatchSize = 6

var ErrValidation = errors.New("validation error")

// CompletionClient is the slice of the model API the generator needs.
type CompletionClient interface {
	Configured() bool
	Complete(ctx context.Context, system, user string) (string, error)
}

type BatchStore interface {
	SaveBatch(ctx context.Context, userID, batchID, eventType, eventName string, icebreakers []model.Icebreaker, at time.Time) error
}

type RatingStore interface {
	Upsert(ctx context.Context, userID, icebreakerID string, rating int) error
}

// Service generates icebreaker batches. A generate call never surfaces a
// completion failure to the caller: any model problem degrades to the
// deterministic fallback set with a classification attached.
type Service struct {
	client  CompletionClient
	batches BatchStore
	ratings RatingStore
	logger  *zap.Logger

	now        func() time.Time
	newBatchID func() string
}

// Result is one generated batch plus how it was produced.
type Result struct {
	Icebreakers    []model.Icebreaker
	Source         enums.Provenance
	Classification Classification
}

func NewService(client CompletionClient, batches BatchStore, ratings RatingStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:     client,
		batches:    batches,
		ratings:    ratings,
		logger:     logger,
		now:        time.Now,
		newBatchID: uuid.NewString,
	}
}

func (s *Service) Generate(ctx context.Context, profile model.Profile, eventType, eventName string) (Result, error) {
	if profile.UserID == "" {
		return Result{}, fmt.Errorf("invalid user id: %w", ErrValidation)
	}

	// The caller's event type reaches the model verbatim; only the
	// fallback tables coerce unknown types to casual-meetup.
	eventType = strings.TrimSpace(eventType)

	if s.client == nil || !s.client.Configured() {
		s.logger.Warn("completion client not configured, serving fallback",
			zap.String("user_id", profile.UserID),
			zap.String("event_type", eventType),
		)
		return s.fallbackResult(profile, eventType, Classification{FallbackRequired: true}), nil
	}

	content, err := s.client.Complete(ctx, buildSystemPrompt(profile, eventType, eventName), userMessage)
	if err != nil {
		cls := Classify(err)
		s.logger.Warn("completion failed, serving fallback",
			zap.String("user_id", profile.UserID),
			zap.String("event_type", eventType),
			zap.Bool("rate_limited", cls.IsRateLimit),
			zap.Error(err),
		)
		return s.fallbackResult(profile, eventType, cls), nil
	}

	batch, parseErr := s.parseBatch(content)
	source := enums.ProvenanceAI
	if parseErr != nil {
		s.logger.Warn("completion violated output contract, serving generic set",
			zap.String("user_id", profile.UserID),
			zap.Error(parseErr),
		)
		batch = s.genericBatch()
		source = enums.ProvenanceGeneric
	}

	s.persist(ctx, profile.UserID, eventType, eventName, batch)

	return Result{Icebreakers: batch, Source: source}, nil
}

// Rate records a 1..5 rating for a previously generated icebreaker.
// Re-rating the same icebreaker overwrites the old value.
func (s *Service) Rate(ctx context.Context, userID, icebreakerID string, rating int) error {
	if userID == "" {
		return fmt.Errorf("invalid user id: %w", ErrValidation)
	}
	if strings.TrimSpace(icebreakerID) == "" {
		return fmt.Errorf("icebreaker id is required: %w", ErrValidation)
	}
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5: %w", ErrValidation)
	}
	if s.ratings == nil {
		return fmt.Errorf("rating store is nil")
	}

	if err := s.ratings.Upsert(ctx, userID, strings.TrimSpace(icebreakerID), rating); err != nil {
		return fmt.Errorf("save rating: %w", err)
	}
	return nil
}

func (s *Service) fallbackResult(profile model.Profile, eventType string, cls Classification) Result {
	return Result{
		Icebreakers:    rules.FallbackIcebreakers(profile, enums.EventType(eventType)),
		Source:         enums.ProvenanceFallback,
		Classification: cls,
	}
}

type completionItem struct {
	Text       string `json:"text"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

// parseBatch enforces the JSON contract from the system prompt. Anything
// the model wrapped in code fences is unwrapped first.
func (s *Service) parseBatch(content string) ([]model.Icebreaker, error) {
	var items []completionItem
	if err := json.Unmarshal([]byte(openai.StripCodeFences(content)), &items); err != nil {
		return nil, fmt.Errorf("decode completion content: %w", err)
	}

	ts := s.now().UnixMilli()
	batch := make([]model.Icebreaker, 0, maxBatchSize)
	for _, item := range items {
		text := strings.TrimSpace(item.Text)
		if text == "" {
			continue
		}
		batch = append(batch, model.Icebreaker{
			ID:         fmt.Sprintf("ai-%d-%d", ts, len(batch)),
			Text:       text,
			Category:   strings.ToLower(strings.TrimSpace(item.Category)),
			Difficulty: enums.NormalizeDifficulty(item.Difficulty),
			Provenance: enums.ProvenanceAI,
		})
		if len(batch) == maxBatchSize {
			break
		}
	}
	if len(batch) == 0 {
		return nil, fmt.Errorf("completion content held no usable icebreakers")
	}

	return batch, nil
}

func (s *Service) genericBatch() []model.Icebreaker {
	ts := s.now().UnixMilli()
	batch := make([]model.Icebreaker, 0, len(genericPrompts))
	for i, p := range genericPrompts {
		batch = append(batch, model.Icebreaker{
			ID:         fmt.Sprintf("ai-%d-%d", ts, i),
			Text:       p.text,
			Category:   p.category,
			Difficulty: p.difficulty,
			Provenance: enums.ProvenanceGeneric,
		})
	}
	return batch
}

// persist is best effort: a storage hiccup must not cost the user a batch
// that was already generated.
func (s *Service) persist(ctx context.Context, userID, eventType, eventName string, batch []model.Icebreaker) {
	if s.batches == nil || len(batch) == 0 {
		return
	}

	if err := s.batches.SaveBatch(ctx, userID, s.newBatchID(), eventType, eventName, batch, s.now()); err != nil {
		s.logger.Error("save icebreaker batch",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
}
