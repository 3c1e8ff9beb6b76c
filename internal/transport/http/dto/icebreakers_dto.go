package dto

// UserProfile carries the client's current in-memory profile. When set it
// takes precedence over the stored one, so an unsaved edit still shapes
// the batch.
type GenerateIcebreakersRequest struct {
	UserProfile  *ProfileRequest `json:"userProfile"`
	EventType    string          `json:"eventType"`
	EventName    string          `json:"eventName"`
	RequestToken string          `json:"requestToken"`
}

type IcebreakerResponse struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Rating     *int   `json:"rating,omitempty"`
}

// RequestToken is echoed verbatim so clients can discard responses from
// superseded generate calls. Error is set on degraded responses only;
// the call itself still succeeds with a usable batch.
type GenerateIcebreakersResponse struct {
	Icebreakers      []IcebreakerResponse `json:"icebreakers"`
	Source           string               `json:"source"`
	IsRateLimit      bool                 `json:"isRateLimit"`
	FallbackRequired bool                 `json:"fallbackRequired"`
	Error            string               `json:"error,omitempty"`
	RequestToken     string               `json:"requestToken,omitempty"`
}

type RateIcebreakerRequest struct {
	IcebreakerID string `json:"icebreakerId"`
	Rating       int    `json:"rating"`
}

type RateIcebreakerResponse struct {
	Saved bool `json:"saved"`
}
