package rules

import (
	"reflect"
	"testing"

	"github.com/derekmegyesi/social-starter-kit/internal/domain/enums"
	"github.com/derekmegyesi/social-starter-kit/internal/domain/model"
)

func TestFallbackNeverEmptyAndCapped(t *testing.T) {
	for _, info := range enums.EventCatalog() {
		batch := FallbackIcebreakers(model.Profile{Temperament: enums.TemperamentBalanced}, info.ID)
		if len(batch) == 0 {
			t.Fatalf("event %q: expected non-empty batch", info.ID)
		}
		if len(batch) > 6 {
			t.Fatalf("event %q: batch exceeds cap: %d", info.ID, len(batch))
		}
		for _, ib := range batch {
			if ib.Provenance != enums.ProvenanceFallback {
				t.Fatalf("event %q: unexpected provenance %q", info.ID, ib.Provenance)
			}
		}
	}
}

func TestFallbackIsDeterministic(t *testing.T) {
	profile := model.Profile{
		Temperament: enums.TemperamentSomewhatShy,
		Bio:         "I love Coffee shops and a good book",
	}

	first := FallbackIcebreakers(profile, enums.EventDate)
	second := FallbackIcebreakers(profile, enums.EventDate)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical batches for identical inputs")
	}
}

func TestFallbackVeryShyGetsOnlyEasy(t *testing.T) {
	batch := FallbackIcebreakers(model.Profile{Temperament: enums.TemperamentVeryShy}, enums.EventDate)
	if len(batch) == 0 {
		t.Fatalf("expected non-empty batch")
	}
	for _, ib := range batch {
		if ib.Difficulty != enums.DifficultyEasy {
			t.Fatalf("expected only easy prompts for very-shy, got %q (%s)", ib.Difficulty, ib.ID)
		}
	}
}

func TestFilterRelaxedWhenNoEasyTemplates(t *testing.T) {
	hardOnly := []template{
		{"x-1", "first", "Industry", enums.DifficultyMedium},
		{"x-2", "second", "Industry", enums.DifficultyHard},
	}

	filtered := filterForTemperament(hardOnly, enums.TemperamentVeryShy)
	if len(filtered) != len(hardOnly) {
		t.Fatalf("expected relaxed filter to keep %d templates, got %d", len(hardOnly), len(filtered))
	}
}

func TestFallbackBioKeywordAppendsRecord(t *testing.T) {
	profile := model.Profile{
		Temperament: enums.TemperamentBalanced,
		Bio:         "I love Coffee shops",
	}

	batch := FallbackIcebreakers(profile, enums.EventParty)

	found := false
	for _, ib := range batch {
		if ib.ID == "personal-coffee" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected coffee record in batch, got %+v", batch)
	}
}

func TestFallbackTruncationDropsTrailingPersonalization(t *testing.T) {
	// The date list has 4 base entries; both triggers still fit under the cap.
	profile := model.Profile{
		Temperament: enums.TemperamentBalanced,
		Bio:         "coffee and book lover",
	}

	batch := FallbackIcebreakers(profile, enums.EventDate)
	if len(batch) != 6 {
		t.Fatalf("expected exactly 6 records, got %d", len(batch))
	}
	if batch[4].ID != "personal-coffee" || batch[5].ID != "personal-books" {
		t.Fatalf("expected personalization records in trigger order, got %s, %s", batch[4].ID, batch[5].ID)
	}
}

func TestFallbackUnknownEventUsesCasualMeetup(t *testing.T) {
	unknown := FallbackIcebreakers(model.Profile{Temperament: enums.TemperamentBalanced}, enums.EventType("scavenger-hunt"))
	casual := FallbackIcebreakers(model.Profile{Temperament: enums.TemperamentBalanced}, enums.EventCasualMeetup)

	if !reflect.DeepEqual(unknown, casual) {
		t.Fatalf("expected unknown event type to degrade to casual-meetup batch")
	}
}

func TestFallbackOtherEventUsesCasualMeetup(t *testing.T) {
	other := FallbackIcebreakers(model.Profile{Temperament: enums.TemperamentBalanced}, enums.EventOther)
	casual := FallbackIcebreakers(model.Profile{Temperament: enums.TemperamentBalanced}, enums.EventCasualMeetup)

	if !reflect.DeepEqual(other, casual) {
		t.Fatalf("expected 'other' event type to degrade to casual-meetup batch")
	}
}

func TestEveryTemplateListHasAnEasyEntry(t *testing.T) {
	for eventType, templates := range fallbackTemplates {
		hasEasy := false
		for _, tpl := range templates {
			if tpl.difficulty == enums.DifficultyEasy {
				hasEasy = true
			}
		}
		if !hasEasy {
			t.Fatalf("event %q has no easy template", eventType)
		}
	}
}
