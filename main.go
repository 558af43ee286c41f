package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vit0-9/http_playground/config"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "http_playground",
		Short: "Educational HTTP server",
		Long: "Serves a landing page, request echo, status code and DNS lookup endpoints\n" +
			"for learning how HTTP requests and responses work.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// .env values never override variables already set in the environment.
			envErr := godotenv.Load()

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := config.ApplyFlags(cmd.Flags(), cfg); err != nil {
				return err
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			switch {
			case envErr == nil:
				logger.Debug("Loaded .env file")
			case errors.Is(envErr, fs.ErrNotExist):
				logger.Debug("No .env file, using environment variables from system if set")
			default:
				logger.WithError(envErr).Warn("Error loading .env file, using environment variables from system if set")
			}

			return run(cmd.Context(), cfg, logger)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	config.BindFlags(cmd.Flags())
	return cmd
}

func run(ctx context.Context, cfg *config.Config, logger *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gin.SetMode(cfg.GinMode)
	app, err := NewApp(cfg, logger)
	if err != nil {
		logger.WithError(err).Error("Failed to initialize application")
		return err
	}
	defer app.Close()

	if err := app.Start(ctx); err != nil {
		logger.WithError(err).Error("Server failed")
		return err
	}
	logger.Info("Server stopped")
	return nil
}

func newLogger(cfg *config.Config) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)
	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}
