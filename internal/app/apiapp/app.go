package apiapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/derekmegyesi/social-starter-kit/internal/config"
	openaiinfra "github.com/derekmegyesi/social-starter-kit/internal/infra/openai"
	pgrepo "github.com/derekmegyesi/social-starter-kit/internal/repo/postgres"
	redrepo "github.com/derekmegyesi/social-starter-kit/internal/repo/redis"
	authsvc "github.com/derekmegyesi/social-starter-kit/internal/services/auth"
	icebreakersvc "github.com/derekmegyesi/social-starter-kit/internal/services/icebreakers"
	profilesvc "github.com/derekmegyesi/social-starter-kit/internal/services/profiles"
	ratesvc "github.com/derekmegyesi/social-starter-kit/internal/services/rate"
)

type App struct {
	cfg        config.Config
	logger     *zap.Logger
	server     *http.Server
	postgres   *pgxpool.Pool
	redis      *goredis.Client
	httpRouter http.Handler
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	r := chi.NewRouter()
	ApplyMiddlewares(r, log)

	var pool *pgxpool.Pool
	if p, err := pgrepo.NewPool(ctx, cfg.Postgres.DSN); err != nil {
		log.Warn("postgres init failed, continuing in degraded mode", zap.Error(err))
	} else {
		pool = p
	}

	redisClient := redrepo.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	rateRepo := redrepo.NewRateRepo(redisClient)
	profileRepo := pgrepo.NewProfileRepo(pool)
	icebreakerRepo := pgrepo.NewIcebreakerRepo(pool)
	ratingRepo := pgrepo.NewRatingRepo(pool)

	jwtManager := authsvc.NewJWTManager(cfg.Auth.JWTSecret)

	completionClient := openaiinfra.NewClient(openaiinfra.Config{
		APIKey:      cfg.OpenAI.APIKey,
		BaseURL:     cfg.OpenAI.BaseURL,
		Model:       cfg.OpenAI.Model,
		Temperature: cfg.OpenAI.Temperature,
		MaxTokens:   cfg.OpenAI.MaxTokens,
		Timeout:     cfg.OpenAI.Timeout,
		MaxRetries:  cfg.OpenAI.MaxRetries,
	})
	if !completionClient.Configured() {
		log.Warn("openai api key not configured, all batches will use fallback templates")
	}

	profileService := profilesvc.NewService(profileRepo)
	icebreakerService := icebreakersvc.NewService(completionClient, icebreakerRepo, ratingRepo, log)
	rateLimiter := ratesvc.NewLimiter(
		rateRepo,
		cfg.Limits.GeneratePerMinute,
		cfg.Limits.GeneratePer10Seconds,
	)

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	RegisterRoutes(r, Dependencies{
		ProfileService:    profileService,
		IcebreakerService: icebreakerService,
		RateLimiter:       rateLimiter,
		JWTManager:        jwtManager,
		Logger:            log,
		Config:            cfg,
	})

	return &App{
		cfg:        cfg,
		logger:     log,
		server:     server,
		postgres:   pool,
		redis:      redisClient,
		httpRouter: r,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info("api server started", zap.String("addr", a.cfg.HTTP.Addr))
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	var shutdownErr error

	if err := a.server.Shutdown(ctx); err != nil {
		shutdownErr = err
	}
	if a.postgres != nil {
		a.postgres.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil && shutdownErr == nil {
			shutdownErr = err
		}
	}

	return shutdownErr
}

func (a *App) Handler() http.Handler {
	return a.httpRouter
}
