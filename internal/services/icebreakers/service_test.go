package icebreakers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/derekmegyesi/social-starter-kit/internal/domain/enums"
	"github.com/derekmegyesi/social-starter-kit/internal/domain/model"
	"github.com/derekmegyesi/social-starter-kit/internal/infra/openai"
)

type fakeClient struct {
	configured bool
	content    string
	err        error
	calls      int
	lastSystem string
}

func (f *fakeClient) Configured() bool { return f.configured }

func (f *fakeClient) Complete(_ context.Context, system, _ string) (string, error) {
	f.calls++
	f.lastSystem = system
	return f.content, f.err
}

type fakeBatchStore struct {
	calls     int
	userID    string
	batchID   string
	eventType string
	saved     []model.Icebreaker
	err       error
}

func (f *fakeBatchStore) SaveBatch(_ context.Context, userID, batchID, eventType, _ string, icebreakers []model.Icebreaker, _ time.Time) error {
	f.calls++
	f.userID = userID
	f.batchID = batchID
	f.eventType = eventType
	f.saved = icebreakers
	return f.err
}

type fakeRatingStore struct {
	userID       string
	icebreakerID string
	rating       int
	err          error
}

func (f *fakeRatingStore) Upsert(_ context.Context, userID, icebreakerID string, rating int) error {
	f.userID = userID
	f.icebreakerID = icebreakerID
	f.rating = rating
	return f.err
}

func newTestService(client *fakeClient, batches *fakeBatchStore) *Service {
	svc := NewService(client, batches, &fakeRatingStore{}, zap.NewNop())
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	svc.newBatchID = func() string { return "batch-1" }
	return svc
}

func testProfile() model.Profile {
	return model.Profile{
		UserID:      "user-1",
		Name:        "Dana",
		AgeRange:    enums.Age25To34,
		Gender:      enums.GenderFemale,
		Temperament: enums.TemperamentOutgoing,
		Bio:         "weekend hiker",
	}
}

func TestGenerateReturnsModelBatch(t *testing.T) {
	client := &fakeClient{
		configured: true,
		content: "```json\n[" +
			`{"text":"What trail surprised you most?","category":"Personal","difficulty":"advanced"},` +
			`{"text":"Best concert you have seen?","category":"fun","difficulty":"easy"}` +
			"]\n```",
	}
	store := &fakeBatchStore{}
	svc := newTestService(client, store)

	res, err := svc.Generate(context.Background(), testProfile(), "party", "Rooftop Mixer")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if res.Source != enums.ProvenanceAI {
		t.Fatalf("unexpected source: %q", res.Source)
	}
	if res.Classification.FallbackRequired || res.Classification.IsRateLimit {
		t.Fatalf("expected clean classification, got %+v", res.Classification)
	}
	if len(res.Icebreakers) != 2 {
		t.Fatalf("expected 2 icebreakers, got %d", len(res.Icebreakers))
	}

	first := res.Icebreakers[0]
	if first.ID != "ai-1700000000000-0" {
		t.Fatalf("unexpected id: %q", first.ID)
	}
	if first.Category != "personal" {
		t.Fatalf("unexpected category: %q", first.Category)
	}
	if first.Difficulty != enums.DifficultyHard {
		t.Fatalf("advanced should normalize to hard, got %q", first.Difficulty)
	}

	if store.calls != 1 || store.userID != "user-1" || store.batchID != "batch-1" || store.eventType != "party" {
		t.Fatalf("unexpected persistence call: %+v", store)
	}
}

func TestGeneratePromptCarriesProfileAndPlaceholders(t *testing.T) {
	client := &fakeClient{configured: true, content: `[{"text":"q?","category":"fun","difficulty":"easy"}]`}
	svc := newTestService(client, &fakeBatchStore{})

	if _, err := svc.Generate(context.Background(), testProfile(), "networking", ""); err != nil {
		t.Fatalf("generate: %v", err)
	}

	for _, want := range []string{
		"- Bio: weekend hiker",
		"- Temperament: outgoing",
		"- Profession: Not provided",
		"- Type: networking",
		"- Name: Not provided",
	} {
		if !strings.Contains(client.lastSystem, want) {
			t.Fatalf("system prompt missing %q:\n%s", want, client.lastSystem)
		}
	}
}

func TestGenerateUnknownEventTypeReachesModelVerbatim(t *testing.T) {
	client := &fakeClient{configured: true, content: `[{"text":"q?","category":"fun","difficulty":"easy"}]`}
	store := &fakeBatchStore{}
	svc := newTestService(client, store)

	if _, err := svc.Generate(context.Background(), testProfile(), "book-club", ""); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if !strings.Contains(client.lastSystem, "- Type: book-club") {
		t.Fatalf("event type not passed through:\n%s", client.lastSystem)
	}
	if store.eventType != "book-club" {
		t.Fatalf("unexpected persisted event type: %q", store.eventType)
	}
}

func TestGenerateUnknownEventTypeFallsBackToCasualTemplates(t *testing.T) {
	client := &fakeClient{configured: true, err: errors.New("dial tcp: connection refused")}
	svc := newTestService(client, &fakeBatchStore{})

	res, err := svc.Generate(context.Background(), testProfile(), "book-club", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.Source != enums.ProvenanceFallback || len(res.Icebreakers) == 0 {
		t.Fatalf("expected non-empty fallback batch, got source=%q len=%d", res.Source, len(res.Icebreakers))
	}
}

func TestGenerateTruncatesOversizedBatch(t *testing.T) {
	items := make([]string, 0, 9)
	for i := 0; i < 9; i++ {
		items = append(items, fmt.Sprintf(`{"text":"question %d?","category":"fun","difficulty":"easy"}`, i))
	}
	client := &fakeClient{configured: true, content: "[" + strings.Join(items, ",") + "]"}
	svc := newTestService(client, &fakeBatchStore{})

	res, err := svc.Generate(context.Background(), testProfile(), "date", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(res.Icebreakers) != maxBatchSize {
		t.Fatalf("expected %d icebreakers, got %d", maxBatchSize, len(res.Icebreakers))
	}
}

func TestGenerateRateLimitServesFallback(t *testing.T) {
	client := &fakeClient{
		configured: true,
		err:        fmt.Errorf("completion request: %w", &openai.StatusError{Status: 429, Body: "quota"}),
	}
	store := &fakeBatchStore{}
	svc := newTestService(client, store)

	res, err := svc.Generate(context.Background(), testProfile(), "party", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if res.Source != enums.ProvenanceFallback {
		t.Fatalf("unexpected source: %q", res.Source)
	}
	if !res.Classification.IsRateLimit || !res.Classification.FallbackRequired {
		t.Fatalf("unexpected classification: %+v", res.Classification)
	}
	if len(res.Icebreakers) == 0 {
		t.Fatalf("fallback batch is empty")
	}
	if store.calls != 0 {
		t.Fatalf("fallback batches must not be persisted")
	}
}

func TestGenerateTransportFailureIsNotRateLimit(t *testing.T) {
	client := &fakeClient{configured: true, err: errors.New("dial tcp: connection refused")}
	svc := newTestService(client, &fakeBatchStore{})

	res, err := svc.Generate(context.Background(), testProfile(), "date", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.Source != enums.ProvenanceFallback {
		t.Fatalf("unexpected source: %q", res.Source)
	}
	if res.Classification.IsRateLimit {
		t.Fatalf("transport failure must not classify as rate limit")
	}
	if !res.Classification.FallbackRequired {
		t.Fatalf("expected fallback classification")
	}
}

func TestGenerateContractViolationServesGenericSet(t *testing.T) {
	client := &fakeClient{configured: true, content: "Sure! Here are some fun questions for your party."}
	store := &fakeBatchStore{}
	svc := newTestService(client, store)

	res, err := svc.Generate(context.Background(), testProfile(), "party", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if res.Source != enums.ProvenanceGeneric {
		t.Fatalf("unexpected source: %q", res.Source)
	}
	if len(res.Icebreakers) != len(genericPrompts) {
		t.Fatalf("expected %d generic icebreakers, got %d", len(genericPrompts), len(res.Icebreakers))
	}
	if res.Classification.FallbackRequired {
		t.Fatalf("generic substitution is not a fallback condition")
	}
	if store.calls != 1 {
		t.Fatalf("generic batches should be persisted")
	}
}

func TestGenerateUnconfiguredClientServesFallback(t *testing.T) {
	client := &fakeClient{configured: false}
	svc := newTestService(client, &fakeBatchStore{})

	res, err := svc.Generate(context.Background(), testProfile(), "date", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if client.calls != 0 {
		t.Fatalf("unconfigured client must not be called")
	}
	if res.Source != enums.ProvenanceFallback || !res.Classification.FallbackRequired {
		t.Fatalf("unexpected result: source=%q classification=%+v", res.Source, res.Classification)
	}
}

func TestGenerateSwallowsPersistenceFailure(t *testing.T) {
	client := &fakeClient{configured: true, content: `[{"text":"q?","category":"fun","difficulty":"easy"}]`}
	store := &fakeBatchStore{err: errors.New("connection reset")}
	svc := newTestService(client, store)

	res, err := svc.Generate(context.Background(), testProfile(), "date", "")
	if err != nil {
		t.Fatalf("persistence failure must not fail generation: %v", err)
	}
	if res.Source != enums.ProvenanceAI {
		t.Fatalf("unexpected source: %q", res.Source)
	}
}

func TestRateValidatesAndSaves(t *testing.T) {
	ratings := &fakeRatingStore{}
	svc := NewService(nil, nil, ratings, zap.NewNop())

	if err := svc.Rate(context.Background(), "user-1", " ai-1-0 ", 4); err != nil {
		t.Fatalf("rate: %v", err)
	}
	if ratings.userID != "user-1" || ratings.icebreakerID != "ai-1-0" || ratings.rating != 4 {
		t.Fatalf("unexpected upsert: %+v", ratings)
	}

	for _, rating := range []int{0, 6, -1} {
		if err := svc.Rate(context.Background(), "user-1", "ai-1-0", rating); !errors.Is(err, ErrValidation) {
			t.Fatalf("rating %d: expected ErrValidation, got %v", rating, err)
		}
	}
	if err := svc.Rate(context.Background(), "user-1", "  ", 3); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for blank id, got %v", err)
	}
}

func TestClassify(t *testing.T) {
	if c := Classify(nil); c.FallbackRequired || c.IsRateLimit {
		t.Fatalf("nil error should classify clean, got %+v", c)
	}
	if c := Classify(&openai.StatusError{Status: 500}); c.IsRateLimit || !c.FallbackRequired {
		t.Fatalf("server error misclassified: %+v", c)
	}
	if c := Classify(&openai.StatusError{Status: 429}); !c.IsRateLimit || !c.FallbackRequired {
		t.Fatalf("429 misclassified: %+v", c)
	}
}
