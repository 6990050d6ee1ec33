package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/bistro/modules/site"
	"github.com/dmitrymomot/bistro/modules/site/views"
	"github.com/dmitrymomot/bistro/pkg/clientip"
	"github.com/dmitrymomot/bistro/pkg/config"
	"github.com/dmitrymomot/bistro/pkg/httpserver"
	"github.com/dmitrymomot/bistro/pkg/logger"
	"github.com/dmitrymomot/bistro/pkg/ratelimit"
	"github.com/dmitrymomot/bistro/pkg/requestid"
	"github.com/dmitrymomot/bistro/pkg/validator"
)

func main() {
	cfg := config.MustLoad[Config]()

	log, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("bistro stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	router, err := newRouter(cfg, log)
	if err != nil {
		return err
	}
	return httpserver.New(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, router)
}

func newLogger(cfg Config) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.AppName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...), nil
}

func newRouter(cfg Config, log *slog.Logger) (http.Handler, error) {
	rules, err := loadRules(cfg.RulesFile)
	if err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", cfg.Timezone, err)
	}

	v := validator.New(validator.Config{
		Rules:                  rules,
		DateField:              validator.FieldBookingDate,
		TimeField:              validator.FieldBookingTime,
		FallbackPatternMessage: cfg.FallbackPatternMessage,
		Location:               loc,
	})

	contact := site.ContactForm()
	contact.DismissAfter = cfg.ContactNoticeDelay
	booking := site.BookingForm()
	booking.DismissAfter = cfg.BookingNoticeDelay

	svcOpts := []site.ServiceOption{site.WithForms(contact, booking)}
	if cfg.SubmitRate > 0 {
		limiter, err := ratelimit.NewTokenBucket(cfg.SubmitRate, cfg.SubmitInterval, ratelimit.WithBurst(cfg.SubmitBurst))
		if err != nil {
			return nil, fmt.Errorf("submit limiter: %w", err)
		}
		svcOpts = append(svcOpts, site.WithSubmitLimit(ratelimit.Middleware(limiter, clientip.Key)))
	}
	svc := site.NewService(v, views.New(), log, svcOpts...)

	r := chi.NewRouter()
	r.Use(
		clientip.Middleware,
		requestid.Middleware(),
		middleware.Recoverer,
	)

	r.Get("/healthz", httpserver.HealthHandler(log))
	r.Get("/readyz", httpserver.HealthHandler(log, func(context.Context) error {
		if len(rules) == 0 {
			return errors.New("rule table is empty")
		}
		return nil
	}))
	r.Mount("/", svc.Handle())

	return r, nil
}

func loadRules(path string) (validator.RuleTable, error) {
	if path == "" {
		return validator.DefaultRules(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(validator.ErrRulesNotLoaded, err)
	}
	defer f.Close()
	return validator.LoadRules(f)
}
