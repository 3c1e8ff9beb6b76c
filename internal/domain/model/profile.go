package model

import (
	"time"

	"github.com/derekmegyesi/social-starter-kit/internal/domain/enums"
)

type Profile struct {
	UserID               string
	Name                 string
	AgeRange             enums.AgeRange
	Gender               enums.Gender
	City                 string
	Temperament          enums.Temperament
	PreferredEnvironment enums.Environment
	Profession           string
	Interests            []string
	Bio                  string
	UpdatedAt            time.Time
}
