package controller

import (
	"context"
	"errors"
	"fmt"
	"gentle-keeper_app/internal/config"
	"gentle-keeper_app/internal/dayservice"
	"gentle-keeper_app/internal/lock"
	"gentle-keeper_app/internal/storage"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Controller wires configuration, persistence and the day service for one
// command invocation.
type Controller struct {
	cfg    *config.Config
	logger *zap.Logger

	// openPort is swapped in tests.
	openPort func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.Port, error)
}

func NewController(cfg *config.Config, logger *zap.Logger) *Controller {
	return &Controller{
		cfg:      cfg,
		logger:   logger,
		openPort: storage.Open,
	}
}

// NewLogger builds the production zap logger at the configured level.
func NewLogger(cfg config.LogConfig, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.OutputPaths = []string{"stderr"}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}

func (c *Controller) Config() *config.Config {
	return c.cfg
}

// Run opens the store, loads it and calls fn with a context that is cancelled
// on SIGINT/SIGTERM. Writers hold the single-writer lock for the duration.
func (c *Controller) Run(ctx context.Context, write bool, fn func(ctx context.Context, svc *dayservice.DayService) error) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if write && !strings.EqualFold(c.cfg.Storage.Driver, "memory") {
		lockPath := c.cfg.Storage.Path + ".lock"
		if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
			return err
		}
		l := lock.New(lockPath, c.logger)
		if err := l.Acquire(); err != nil {
			return err
		}
		defer func() {
			if err := l.Release(); err != nil {
				c.logger.Warn("failed to release lock", zap.Error(err))
			}
		}()
	}

	port, err := c.openPort(ctx, c.cfg, c.logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := port.Close(); err != nil {
			c.logger.Warn("failed to close storage", zap.Error(err))
		}
	}()

	svc := dayservice.NewDayService(port, c.logger)
	svc.Load(ctx)

	err = fn(ctx, svc)
	if errors.Is(err, context.Canceled) {
		c.logger.Info("interrupted")
	}
	return err
}
