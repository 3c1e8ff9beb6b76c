package handlers

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/derekmegyesi/social-starter-kit/internal/domain/enums"
	"github.com/derekmegyesi/social-starter-kit/internal/domain/model"
	authsvc "github.com/derekmegyesi/social-starter-kit/internal/services/auth"
	icebreakersvc "github.com/derekmegyesi/social-starter-kit/internal/services/icebreakers"
	profilesvc "github.com/derekmegyesi/social-starter-kit/internal/services/profiles"
	ratesvc "github.com/derekmegyesi/social-starter-kit/internal/services/rate"
	"github.com/derekmegyesi/social-starter-kit/internal/transport/http/dto"
	httperrors "github.com/derekmegyesi/social-starter-kit/internal/transport/http/errors"
)

type IcebreakersHandler struct {
	icebreakers *icebreakersvc.Service
	profiles    *profilesvc.Service
	limiter     *ratesvc.Limiter
	logger      *zap.Logger
}

func NewIcebreakersHandler(
	icebreakers *icebreakersvc.Service,
	profiles *profilesvc.Service,
	limiter *ratesvc.Limiter,
	logger *zap.Logger,
) *IcebreakersHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IcebreakersHandler{
		icebreakers: icebreakers,
		profiles:    profiles,
		limiter:     limiter,
		logger:      logger,
	}
}

func (h *IcebreakersHandler) Generate(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.icebreakers == nil {
		writeInternal(w, "ICEBREAKER_SERVICE_UNAVAILABLE", "icebreaker service is unavailable")
		return
	}

	var req dto.GenerateIcebreakersRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid request body")
		return
	}

	if !h.allowGenerate(w, r, identity.UserID) {
		return
	}

	profile := h.resolveProfile(r, identity.UserID, req.UserProfile)

	result, err := h.icebreakers.Generate(r.Context(), profile, req.EventType, req.EventName)
	if err != nil {
		if errors.Is(err, icebreakersvc.ErrValidation) {
			writeBadRequest(w, "VALIDATION_ERROR", "generate request validation failed")
			return
		}
		writeInternal(w, "INTERNAL_ERROR", "failed to generate icebreakers")
		return
	}

	items := make([]dto.IcebreakerResponse, 0, len(result.Icebreakers))
	for _, ib := range result.Icebreakers {
		items = append(items, dto.IcebreakerResponse{
			ID:         ib.ID,
			Text:       ib.Text,
			Category:   ib.Category,
			Difficulty: string(ib.Difficulty),
			Rating:     ib.Rating,
		})
	}

	resp := dto.GenerateIcebreakersResponse{
		Icebreakers:      items,
		Source:           string(result.Source),
		IsRateLimit:      result.Classification.IsRateLimit,
		FallbackRequired: result.Classification.FallbackRequired,
		RequestToken:     req.RequestToken,
	}
	if result.Classification.FallbackRequired {
		resp.Error = "failed to generate icebreakers"
		if result.Classification.IsRateLimit {
			resp.Error = "rate limit exceeded, please try again later"
		}
	}

	httperrors.Write(w, http.StatusOK, resp)
}

func (h *IcebreakersHandler) Rate(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.icebreakers == nil {
		writeInternal(w, "ICEBREAKER_SERVICE_UNAVAILABLE", "icebreaker service is unavailable")
		return
	}

	var req dto.RateIcebreakerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid request body")
		return
	}

	if err := h.icebreakers.Rate(r.Context(), identity.UserID, req.IcebreakerID, req.Rating); err != nil {
		if errors.Is(err, icebreakersvc.ErrValidation) {
			writeBadRequest(w, "VALIDATION_ERROR", "rating must target an icebreaker id with a value of 1 to 5")
			return
		}
		writeInternal(w, "INTERNAL_ERROR", "failed to save rating")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.RateIcebreakerResponse{Saved: true})
}

// allowGenerate enforces the local per-user limit. A broken limiter fails
// open: generation still works, it is just unthrottled.
func (h *IcebreakersHandler) allowGenerate(w http.ResponseWriter, r *http.Request, userID string) bool {
	if h.limiter == nil {
		return true
	}

	retryAfterSec, allowed, err := h.limiter.AllowGenerate(r.Context(), userID)
	if err != nil {
		h.logger.Warn("rate limiter unavailable, allowing request", zap.Error(err))
		return true
	}
	if allowed {
		return true
	}

	httperrors.Write(w, http.StatusTooManyRequests, httperrors.RateLimitError{
		Code:          "RATE_LIMITED",
		Message:       "too many generate requests, slow down",
		RetryAfterSec: retryAfterSec,
	})
	return false
}

// resolveProfile is lenient: the request's inline profile wins when
// present, otherwise the stored one, otherwise placeholders. Generation
// never fails for lack of a profile.
func (h *IcebreakersHandler) resolveProfile(r *http.Request, userID string, inline *dto.ProfileRequest) model.Profile {
	if inline != nil {
		return profileFromRequest(userID, inline)
	}
	if h.profiles == nil {
		return model.Profile{UserID: userID}
	}

	profile, err := h.profiles.Get(r.Context(), userID)
	if err != nil {
		if !errors.Is(err, model.ErrProfileNotFound) {
			h.logger.Warn("load profile for generation", zap.Error(err))
		}
		return model.Profile{UserID: userID}
	}
	return profile
}

// profileFromRequest skips saved-profile validation: an unknown enum
// value here only weakens personalization, it never blocks a batch.
func profileFromRequest(userID string, req *dto.ProfileRequest) model.Profile {
	return model.Profile{
		UserID:               userID,
		Name:                 strings.TrimSpace(req.Name),
		AgeRange:             enums.AgeRange(strings.TrimSpace(req.AgeRange)),
		Gender:               enums.Gender(strings.ToLower(strings.TrimSpace(req.Gender))),
		City:                 strings.TrimSpace(req.City),
		Temperament:          enums.Temperament(strings.ToLower(strings.TrimSpace(req.Temperament))),
		PreferredEnvironment: enums.Environment(strings.ToLower(strings.TrimSpace(req.PreferredEnvironment))),
		Profession:           strings.TrimSpace(req.Profession),
		Interests:            req.Interests,
		Bio:                  strings.TrimSpace(req.Bio),
	}
}
