package model

import "github.com/derekmegyesi/social-starter-kit/internal/domain/enums"

// Icebreaker is a single conversation-starter prompt. Rating is attached
// after generation and never alters text, category, or difficulty.
type Icebreaker struct {
	ID         string
	Text       string
	Category   string
	Difficulty enums.Difficulty
	Provenance enums.Provenance
	Rating     *int
}
