package icebreakers

import (
	"fmt"
	"strings"

	"github.com/derekmegyesi/social-starter-kit/internal/domain/model"
)

const userMessage = "Generate personalized icebreaker questions for this profile and event."

// buildSystemPrompt fixes the output contract for the completion API.
// Optional profile fields degrade to "Not provided" rather than dropping
// the line, so the template shape is stable regardless of profile
// completeness.
func buildSystemPrompt(profile model.Profile, eventType, eventName string) string {
	return fmt.Sprintf(`You are an expert at creating engaging icebreaker questions. Generate 6 personalized icebreaker questions based on the user's profile and event context.

User Profile:
- Bio: %s
- Temperament: %s
- Age: %s
- Profession: %s
- Interests: %s

Event Context:
- Type: %s
- Name: %s

Requirements:
1. Create 6 unique icebreaker questions
2. Make them appropriate for the event type and user's personality
3. Mix different difficulty levels (easy, medium, hard)
4. Include various categories (fun, professional, creative, personal)
5. Make them engaging and conversation-starting
6. Consider the user's temperament when crafting questions

Return ONLY a JSON array of objects with this exact format:
[
  {
    "text": "Your icebreaker question here?",
    "category": "fun|professional|creative|personal",
    "difficulty": "easy|medium|hard"
  }
]`,
		valueOr(profile.Bio),
		valueOr(string(profile.Temperament)),
		valueOr(string(profile.AgeRange)),
		valueOr(profile.Profession),
		valueOr(strings.Join(profile.Interests, ", ")),
		valueOr(eventType),
		valueOr(eventName),
	)
}

func valueOr(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Not provided"
	}
	return value
}
