package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"fetchrecipes/cache"
	"fetchrecipes/config"
	"fetchrecipes/logging"
	"fetchrecipes/networking"
	"fetchrecipes/recipeslist"
)

// app bundles the pipeline and the resources it holds open
type app struct {
	cfg      config.Config
	log      *slog.Logger
	pipeline *networking.Pipeline
	s3       *networking.S3Transport
	closers  []io.Closer
}

// newLogger builds the logger; the terminal UI logs to a file or nowhere
func newLogger(cfg config.Config, forTUI bool) (*slog.Logger, io.Closer, error) {
	if !forTUI {
		return logging.NewLogger(cfg.Log, os.Stderr), nil, nil
	}
	if cfg.Log.File == "" {
		return logging.NewLogger(cfg.Log, io.Discard), nil, nil
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logging.NewLogger(cfg.Log, f), f, nil
}

// newApp wires resolver, transports and the optional cache for cfg
func newApp(ctx context.Context, cfg config.Config, logger *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, log: logger}

	mux := networking.NewMuxTransport().
		Handle(networking.BundledTransport(), "embed").
		Handle(networking.NewFSTransport(os.DirFS("/")), "file").
		Handle(networking.NewHTTPTransport(cfg.Source.HTTPTimeout), "http", "https")

	var resolver networking.Resolver
	switch cfg.Source.Kind {
	case config.SourceRemote:
		resolver = networking.RemotePresets(cfg.Source.BaseURL)
	case config.SourceS3:
		resolver = networking.S3Presets(cfg.S3.Bucket, cfg.S3.Prefix)
	default:
		resolver = networking.BundledPresets()
	}

	if cfg.Source.Kind == config.SourceS3 {
		s3t, err := a.s3Transport(ctx)
		if err != nil {
			return nil, err
		}
		mux.Handle(s3t, "s3")
	}

	var transport networking.Transport = mux
	if cfg.Redis.Enabled() {
		store, err := cache.NewRedisStore(cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			logger.Warn("payload cache disabled", "error", err)
		} else {
			a.closers = append(a.closers, store)
			transport = cache.NewTransport(mux, store, cfg.Redis.TTL, logger)
			logger.Info("payload cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL)
		}
	}

	a.pipeline = networking.NewPipeline(resolver, transport, logger)
	logger.Info("recipe source configured", "source", cfg.Source.Kind)
	return a, nil
}

func (a *app) s3Transport(ctx context.Context) (*networking.S3Transport, error) {
	if a.s3 != nil {
		return a.s3, nil
	}
	s3t, err := networking.NewS3Transport(ctx, networking.S3Config{
		Region:       a.cfg.S3.Region,
		Profile:      a.cfg.S3.Profile,
		UsePathStyle: a.cfg.S3.UsePathStyle,
	})
	if err != nil {
		return nil, err
	}
	a.s3 = s3t
	return s3t, nil
}

// newController creates a controller with the configured seed and startup load
func (a *app) newController() *recipeslist.Controller {
	opts := []recipeslist.Option{
		recipeslist.WithLogger(a.log),
		recipeslist.WithInitialLoad(a.cfg.Reload.InitialLoad),
	}
	if a.cfg.Reload.Seed {
		seed, err := networking.DemoSeed()
		if err != nil {
			a.log.Warn("demo seed unavailable", "error", err)
		} else {
			opts = append(opts, recipeslist.WithSeed(seed))
		}
	}
	return recipeslist.New(a.pipeline, opts...)
}

func (a *app) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.log.Warn("close failed", "error", err)
		}
	}
}
