package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"squish/internal/compress"
	"squish/internal/config"
	"squish/internal/history"
	"squish/internal/logging"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string
	noBannerFlag *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag *string, noBannerFlag *bool) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		noBannerFlag: noBannerFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		var level string
		if c.logLevelFlag != nil {
			level = strings.TrimSpace(*c.logLevelFlag)
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg, level)
	})
	return c.logger, c.loggerErr
}

// openRecorder opens the history store as a run recorder. The returned
// cleanup closes the store and must run after the workflow completes.
// Store failures degrade to a nil recorder rather than blocking the
// encode.
func (c *commandContext) openRecorder(ctx context.Context) (compress.Recorder, func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, err
	}

	store, err := history.Open(ctx, cfg)
	if err != nil {
		logger.Warn("history store unavailable, runs will not be recorded",
			logging.String("component", "cli"),
			logging.Error(err))
		return nil, func() {}, nil
	}
	cleanup := func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Warn("close history store",
				logging.String("component", "cli"),
				logging.Error(closeErr))
		}
	}
	return store, cleanup, nil
}

// newCompressor wires a Compressor backed by the history store.
func (c *commandContext) newCompressor(ctx context.Context) (*compress.Compressor, func(), error) {
	recorder, cleanup, err := c.openRecorder(ctx)
	if err != nil {
		return nil, nil, err
	}
	cfg, _ := c.ensureConfig()
	logger, err := c.ensureLogger()
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return compress.New(cfg, logger, recorder), cleanup, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
