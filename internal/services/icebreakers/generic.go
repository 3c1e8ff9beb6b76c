package icebreakers

import "github.com/derekmegyesi/social-starter-kit/internal/domain/enums"

// genericPrompts is the defense-in-depth set substituted when the model
// answered but ignored the JSON contract. Distinct from the personalized
// fallback tables in domain/rules.
var genericPrompts = []struct {
	text       string
	category   string
	difficulty enums.Difficulty
}{
	{"What's the most interesting thing that happened to you this week?", "personal", enums.DifficultyEasy},
	{"If you could have dinner with anyone, who would it be and why?", "fun", enums.DifficultyMedium},
	{"What's a skill you'd love to learn?", "personal", enums.DifficultyEasy},
	{"What's the best advice you've ever received?", "personal", enums.DifficultyMedium},
	{"If you could travel anywhere right now, where would you go?", "fun", enums.DifficultyEasy},
	{"What's something you're passionate about that might surprise people?", "personal", enums.DifficultyHard},
}
