package apiapp

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/derekmegyesi/social-starter-kit/internal/config"
	authsvc "github.com/derekmegyesi/social-starter-kit/internal/services/auth"
	icebreakersvc "github.com/derekmegyesi/social-starter-kit/internal/services/icebreakers"
	profilesvc "github.com/derekmegyesi/social-starter-kit/internal/services/profiles"
	ratesvc "github.com/derekmegyesi/social-starter-kit/internal/services/rate"
	"github.com/derekmegyesi/social-starter-kit/internal/transport/http/handlers"
)

type Dependencies struct {
	ProfileService    *profilesvc.Service
	IcebreakerService *icebreakersvc.Service
	RateLimiter       *ratesvc.Limiter
	JWTManager        *authsvc.JWTManager
	Logger            *zap.Logger
	Config            config.Config
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler()
	eventsHandler := handlers.NewEventsHandler()
	profileHandler := handlers.NewProfileHandler(deps.ProfileService)
	icebreakersHandler := handlers.NewIcebreakersHandler(
		deps.IcebreakerService,
		deps.ProfileService,
		deps.RateLimiter,
		deps.Logger,
	)
	authMW := AuthMiddleware(deps.JWTManager, deps.Logger)

	r.Get("/healthz", healthHandler.Get)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/events", eventsHandler.List)
		r.With(authMW).Get("/profile", profileHandler.Get)
		r.With(authMW).Put("/profile", profileHandler.Put)
		r.With(authMW).Post("/icebreakers/generate", icebreakersHandler.Generate)
		r.With(authMW).Post("/icebreakers/rating", icebreakersHandler.Rate)
	})
}
