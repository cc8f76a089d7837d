package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"fetchrecipes/api"
	"fetchrecipes/kafka"
	"fetchrecipes/networking"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the recipe list over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	cmd.Flags().String("addr", "", "listen address (default :8080)")
	cmd.Flags().String("schedule", "", "cron schedule for periodic reloads, e.g. @every 10m")
	_ = v.BindPFlag("http.addr", cmd.Flags().Lookup("addr"))
	_ = v.BindPFlag("reload.schedule", cmd.Flags().Lookup("schedule"))
	return cmd
}

func runServe(parent context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, _, err := newLogger(cfg, false)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	ctrl := a.newController()

	if cfg.Kafka.Enabled() {
		publisher, err := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.StateTopic, logger)
		if err != nil {
			logger.Warn("state events disabled", "error", err)
		} else {
			defer publisher.Close()
			sub := ctrl.ObserveState(publisher.Observe)
			defer sub.Cancel()
			go publisher.Run(ctx)
		}
	}

	if err := ctrl.Start(ctx); err != nil {
		return err
	}
	defer ctrl.Close()

	if cfg.Kafka.Enabled() {
		consumer, err := kafka.NewConsumer(kafka.ConsumerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.ReloadTopic,
			GroupID: cfg.Kafka.GroupID,
			Handler: kafka.NewReloadHandler(ctrl, logger),
			Logger:  logger,
		})
		if err != nil {
			logger.Warn("remote reloads disabled", "error", err)
		} else {
			defer consumer.Close()
			go func() {
				if err := consumer.Start(ctx); err != nil {
					logger.Warn("kafka consumer did not start", "error", err)
				}
			}()
		}
	}

	server := api.NewServer(ctrl, cfg.HTTP.Addr, logger)
	if cfg.Reload.Schedule != "" {
		rt, err := networking.ParseRequestType(cfg.Reload.RequestType)
		if err != nil {
			return err
		}
		if err := server.StartCron(cfg.Reload.Schedule, rt); err != nil {
			return err
		}
	}

	errCh := server.Start()
	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
