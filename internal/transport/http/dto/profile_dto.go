package dto

import "time"

type ProfileRequest struct {
	Name                 string   `json:"name"`
	AgeRange             string   `json:"ageRange"`
	Gender               string   `json:"gender"`
	City                 string   `json:"city"`
	Temperament          string   `json:"temperament"`
	PreferredEnvironment string   `json:"preferredEnvironment"`
	Profession           string   `json:"profession"`
	Interests            []string `json:"interests"`
	Bio                  string   `json:"bio"`
}

type ProfileResponse struct {
	Name                 string     `json:"name"`
	AgeRange             string     `json:"ageRange"`
	Gender               string     `json:"gender"`
	City                 string     `json:"city,omitempty"`
	Temperament          string     `json:"temperament"`
	PreferredEnvironment string     `json:"preferredEnvironment,omitempty"`
	Profession           string     `json:"profession,omitempty"`
	Interests            []string   `json:"interests,omitempty"`
	Bio                  string     `json:"bio,omitempty"`
	UpdatedAt            *time.Time `json:"updatedAt,omitempty"`
}
