package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/derekmegyesi/social-starter-kit/internal/domain/model"
	authsvc "github.com/derekmegyesi/social-starter-kit/internal/services/auth"
	profilesvc "github.com/derekmegyesi/social-starter-kit/internal/services/profiles"
	"github.com/derekmegyesi/social-starter-kit/internal/transport/http/dto"
	httperrors "github.com/derekmegyesi/social-starter-kit/internal/transport/http/errors"
)

type ProfileHandler struct {
	service *profilesvc.Service
}

func NewProfileHandler(service *profilesvc.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "PROFILE_SERVICE_UNAVAILABLE", "profile service is unavailable")
		return
	}

	profile, err := h.service.Get(r.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			writeNotFound(w, "PROFILE_NOT_FOUND", "no profile saved for this user")
			return
		}
		writeInternal(w, "INTERNAL_ERROR", "failed to load profile")
		return
	}

	httperrors.Write(w, http.StatusOK, toProfileResponse(profile))
}

func (h *ProfileHandler) Put(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "PROFILE_SERVICE_UNAVAILABLE", "profile service is unavailable")
		return
	}

	var req dto.ProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid request body")
		return
	}

	profile, err := h.service.Update(r.Context(), identity.UserID, profilesvc.Input{
		Name:                 req.Name,
		AgeRange:             req.AgeRange,
		Gender:               req.Gender,
		City:                 req.City,
		Temperament:          req.Temperament,
		PreferredEnvironment: req.PreferredEnvironment,
		Profession:           req.Profession,
		Interests:            req.Interests,
		Bio:                  req.Bio,
	})
	if err != nil {
		if errors.Is(err, profilesvc.ErrValidation) {
			writeBadRequest(w, "VALIDATION_ERROR", "profile validation failed")
			return
		}
		writeInternal(w, "INTERNAL_ERROR", "failed to save profile")
		return
	}

	httperrors.Write(w, http.StatusOK, toProfileResponse(profile))
}

func toProfileResponse(profile model.Profile) dto.ProfileResponse {
	var updatedAt *time.Time
	if !profile.UpdatedAt.IsZero() {
		v := profile.UpdatedAt
		updatedAt = &v
	}

	return dto.ProfileResponse{
		Name:                 profile.Name,
		AgeRange:             string(profile.AgeRange),
		Gender:               string(profile.Gender),
		City:                 profile.City,
		Temperament:          string(profile.Temperament),
		PreferredEnvironment: string(profile.PreferredEnvironment),
		Profession:           profile.Profession,
		Interests:            profile.Interests,
		Bio:                  profile.Bio,
		UpdatedAt:            updatedAt,
	}
}
