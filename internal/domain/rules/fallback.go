package rules

import (
	"strings"

	"github.com/derekmegyesi/social-starter-kit/internal/domain/enums"
	"github.com/derekmegyesi/social-starter-kit/internal/domain/model"
)

const maxFallbackIcebreakers = 6

type template struct {
	id         string
	text       string
	category   string
	difficulty enums.Difficulty
}

// Every list carries at least one easy entry so the very-shy filter can
// never empty a batch on its own.
var fallbackTemplates = map[enums.EventType][]template{
	enums.EventDate: {
		{"date-1", "I have to ask - what's the story behind your smile? It's quite infectious!", "Compliment", enums.DifficultyEasy},
		{"date-2", "So, what's been the highlight of your week so far?", "Open Question", enums.DifficultyEasy},
		{"date-3", "I'm curious - if you could have dinner with anyone, dead or alive, who would it be and why?", "Thought-Provoking", enums.DifficultyMedium},
		{"date-4", "This might sound random, but what's something you've learned recently that surprised you?", "Personal", enums.DifficultyMedium},
	},
	enums.EventParty: {
		{"party-1", "Hi! I love your energy - how do you know the host?", "Connection", enums.DifficultyEasy},
		{"party-2", "This music is great! Are you into this genre, or do you have different favorites?", "Interest", enums.DifficultyEasy},
		{"party-3", "I'm trying to guess - are you more of a morning person or a night owl? You seem like you have great energy!", "Playful", enums.DifficultyMedium},
	},
	enums.EventNetworking: {
		{"network-1", "Hi, I don't think we've met yet. What brings you to this event?", "Professional", enums.DifficultyEasy},
		{"network-2", "I'm impressed by the turnout tonight. What's your connection to the organizers?", "Professional", enums.DifficultyEasy},
		{"network-3", "I'd love to hear your perspective - what trends are you seeing in your field right now?", "Industry", enums.DifficultyMedium},
	},
	enums.EventCasualMeetup: {
		{"casual-1", "I love the vibe here! Do you come to this place often?", "Environment", enums.DifficultyEasy},
		{"casual-2", "That book/drink/item looks interesting! How are you finding it?", "Observation", enums.DifficultyEasy},
		{"casual-3", "I'm trying to decide what to order - any recommendations?", "Advice", enums.DifficultyEasy},
	},
	enums.EventGroupActivity: {
		{"group-1", "Is this your first time here, or are you a regular I should be taking tips from?", "Connection", enums.DifficultyEasy},
		{"group-2", "What got you into this in the first place?", "Interest", enums.DifficultyEasy},
		{"group-3", "If we teamed up, what would you say your specialty is?", "Playful", enums.DifficultyMedium},
	},
	enums.EventClassWorkshop: {
		{"class-1", "What made you sign up for this one?", "Open Question", enums.DifficultyEasy},
		{"class-2", "Have you taken anything like this before, or are we both beginners?", "Connection", enums.DifficultyEasy},
		{"class-3", "What's the one thing you're hoping to walk away with today?", "Thought-Provoking", enums.DifficultyMedium},
	},
	enums.EventFamilyGathering: {
		{"family-1", "So how exactly are we related again? I always lose track at these things.", "Playful", enums.DifficultyEasy},
		{"family-2", "What's the best family story you've heard at one of these gatherings?", "Personal", enums.DifficultyMedium},
		{"family-3", "Who do you think planned all this food? It's impressive.", "Observation", enums.DifficultyEasy},
	},
}

type bioTrigger struct {
	keyword  string
	template template
}

// New keyword personalizations only need a row here.
var bioTriggers = []bioTrigger{
	{"coffee", template{"personal-coffee", "I noticed you're a coffee person too - what's your go-to order?", "Personal Interest", enums.DifficultyEasy}},
	{"book", template{"personal-books", "You seem like someone who might have great book recommendations. What's the last good book you read?", "Personal Interest", enums.DifficultyMedium}},
}

// FallbackIcebreakers deterministically builds a curated batch for the
// event type, lightly personalized from the profile. It never returns an
// empty slice and never performs I/O.
func FallbackIcebreakers(profile model.Profile, eventType enums.EventType) []model.Icebreaker {
	templates := fallbackTemplates[enums.NormalizeEventType(string(eventType))]
	if templates == nil {
		templates = fallbackTemplates[enums.EventCasualMeetup]
	}

	selected := filterForTemperament(templates, profile.Temperament)

	bio := strings.ToLower(profile.Bio)
	for _, trigger := range bioTriggers {
		if strings.Contains(bio, trigger.keyword) {
			selected = append(selected, trigger.template)
		}
	}

	if len(selected) > maxFallbackIcebreakers {
		selected = selected[:maxFallbackIcebreakers]
	}

	out := make([]model.Icebreaker, 0, len(selected))
	for _, tpl := range selected {
		out = append(out, model.Icebreaker{
			ID:         tpl.id,
			Text:       tpl.text,
			Category:   tpl.category,
			Difficulty: tpl.difficulty,
			Provenance: enums.ProvenanceFallback,
		})
	}

	return out
}

// filterForTemperament keeps only easy prompts for very shy users. If that
// would empty the list the filter is relaxed instead, so a batch is never
// reduced to nothing.
func filterForTemperament(templates []template, temperament enums.Temperament) []template {
	if temperament != enums.TemperamentVeryShy {
		return append([]template(nil), templates...)
	}

	easy := make([]template, 0, len(templates))
	for _, tpl := range templates {
		if tpl.difficulty == enums.DifficultyEasy {
			easy = append(easy, tpl)
		}
	}
	if len(easy) == 0 {
		return append([]template(nil), templates...)
	}
	return easy
}
