package auth

import (
	"errors"
	"time"
)

var ErrUnauthorized = errors.New("unauthorized")

// AccessClaims is the validated content of a bearer token minted by the
// hosted auth backend. The backend never mints tokens itself.
type AccessClaims struct {
	UserID    string
	Role      string
	ExpiresAt time.Time
}
