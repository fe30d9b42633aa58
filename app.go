package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"fin-calc/config"
	httpLayer "fin-calc/http"
	"fin-calc/repository"
	"fin-calc/service"
	"github.com/sirupsen/logrus"
)

const redisPingTimeout = 3 * time.Second

type application struct {
	mortgage   *service.MortgageService
	incomeTax  *service.IncomeTaxService
	retirement *service.RetirementService

	handler http.Handler
	closers []func() error
}

func newApplication(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*application, error) {
	app := &application{}

	cache, err := app.newCache(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	app.mortgage = service.NewMortgageService(cache, log)
	app.incomeTax = service.NewIncomeTaxService(cache, log)
	app.retirement = service.NewRetirementService(cache, log)

	app.handler = httpLayer.NewRouter(httpLayer.Handlers{
		Mortgage:   httpLayer.NewMortgageHandler(app.mortgage),
		IncomeTax:  httpLayer.NewIncomeTaxHandler(app.incomeTax),
		Retirement: httpLayer.NewRetirementHandler(app.retirement),
		Static:     httpLayer.NewStaticHandler(cfg.StaticDir),
	}, httpLayer.NewCORSMiddleware(cfg.AllowedOrigins), log)

	return app, nil
}

func (a *application) newCache(ctx context.Context, cfg *config.Config, log *logrus.Logger) (repository.CacheRepository, error) {
	switch cfg.CacheBackend {
	case config.CacheMemory:
		cache, err := repository.NewMemoryCache(cfg.CacheSize)
		if err != nil {
			return nil, err
		}
		log.Infof("Using in-memory result cache (%d entries)", cfg.CacheSize)
		return cache, nil
	case config.CacheRedis:
		cache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()
		if err := cache.Ping(pingCtx); err != nil {
			cache.Close()
			return nil, fmt.Errorf("redis cache at %s: %w", cfg.RedisAddr, err)
		}
		a.closers = append(a.closers, cache.Close)
		log.Infof("Using redis result cache at %s", cfg.RedisAddr)
		return cache, nil
	default:
		return repository.NewNoopCache(), nil
	}
}

func (a *application) Close() error {
	var firstErr error
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
