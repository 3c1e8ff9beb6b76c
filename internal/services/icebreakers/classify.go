package icebreakers

import (
	"errors"
	"net/http"

	"github.com/derekmegyesi/social-starter-kit/internal/infra/openai"
)

// Classification labels a completion failure so the caller can pick user
// messaging without re-deriving failure meaning from transport errors.
type Classification struct {
	IsRateLimit      bool
	FallbackRequired bool
}

func Classify(err error) Classification {
	if err == nil {
		return Classification{}
	}

	c := Classification{FallbackRequired: true}
	var statusErr *openai.StatusError
	if errors.As(err, &statusErr) && statusErr.Status == http.StatusTooManyRequests {
		c.IsRateLimit = true
	}
	return c
}
