package model

import "errors"

// ErrProfileNotFound is returned by profile stores when no row exists for
// the requested user.
var ErrProfileNotFound = errors.New("profile not found")
