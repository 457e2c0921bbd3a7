// Package main is the entry point for the door and cabin showcase.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/porta-cabine/internal/config"
	"github.com/Faultbox/porta-cabine/internal/content"
	"github.com/Faultbox/porta-cabine/internal/game"
	"github.com/Faultbox/porta-cabine/internal/game/director"
	"github.com/Faultbox/porta-cabine/internal/game/script"
	"github.com/Faultbox/porta-cabine/internal/logger"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code. Every deferred teardown has run by the
// time it returns.
func run() int {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if path := config.DumpPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== Porta / Cabine ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	cat := loadContent(cfg.Content.Path)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var reload <-chan *content.Catalog
	if cfg.Content.Watch {
		reload, err = content.Watch(ctx, cfg.Content.Path)
		if err != nil {
			logger.Warn("content watch disabled", zap.String("path", cfg.Content.Path), zap.Error(err))
		}
	}

	if cfg.Run.Headless {
		if err := runHeadless(ctx, cfg, cat, reload); err != nil {
			logger.Error("headless run failed", zap.Error(err))
			return 1
		}
		return 0
	}

	g, err := game.New(cfg, cat)
	if err != nil {
		logger.Error("failed to create showcase", zap.Error(err))
		return 1
	}
	defer g.Close()
	g.WatchContent(reload)

	if err := g.Run(); err != nil {
		logger.Error("showcase error", zap.Error(err))
		return 1
	}

	logger.Info("showcase closed normally")
	return 0
}

// loadContent falls back to the welcome page alone when the catalog is
// missing or invalid.
func loadContent(path string) *content.Catalog {
	if path == "" {
		return content.Empty()
	}
	cat, err := content.Load(path)
	if err != nil {
		logger.Warn("content unavailable, showing welcome page only", zap.String("path", path), zap.Error(err))
		return content.Empty()
	}
	logger.Info("content loaded", zap.String("path", path), zap.Int("records", len(cat.Records)))
	return cat
}

func runHeadless(ctx context.Context, cfg *config.Config, cat *content.Catalog, reload <-chan *content.Catalog) error {
	steps, err := script.FromConfig(cfg.Run.Script)
	if err != nil {
		return err
	}
	d := director.New(cfg, cat)
	defer d.Close()

	o, err := script.Run(ctx, d, script.Options{
		Duration: cfg.Run.Duration,
		FPS:      cfg.Run.FPS,
		Steps:    steps,
		Reload:   reload,
	})
	if err != nil {
		return err
	}
	logger.Info("headless run finished",
		zap.String("scene", o.Scene),
		zap.Stringer("phase", d.Phase()),
		zap.Bool("modal", o.Cabin.ModalVisible),
		zap.Int("page", o.Cabin.Page.Index),
		zap.String("title", o.Cabin.Page.Title),
	)
	return nil
}
