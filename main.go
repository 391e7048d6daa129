package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	logger := utils.NewLogger(os.Stderr, "info")
	config := loadConfig(logger)
	logger = utils.NewLogger(os.Stderr, config.LogLevel)

	g, err := initializeGame(config, logger)
	if err != nil {
		logger.Error("failed to initialize grid", "error", err)
		os.Exit(1)
	}
	logger.Info("simulation started",
		"size", g.state.Size(),
		"workers", g.scheduler.Workers(),
		"tick_period", time.Duration(config.TickPeriod),
	)

	// Stop at a tick boundary on Ctrl+C
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var renderer model.Renderer
	if config.Render {
		renderer = model.NewTerminalRenderer(os.Stdout)
	}

	var (
		views         = model.NewViewPool()
		lastFrameTime = time.Now()
		ticker        = time.NewTicker(time.Duration(config.TickPeriod))
	)
	defer ticker.Stop()

	for {
		view := views.Read(g.state)
		livingCells := g.observe(view, lastFrameTime)
		lastFrameTime = time.Now()

		if renderer != nil {
			renderer.Clear()
			if err := renderer.Display(view); err != nil {
				logger.Warn("render failed", "tick", g.ticks, "error", err)
			}
		}
		logGameStatus(logger, view, g.ticks, livingCells, g.stats)
		view.Release()

		if g.reachedMaxTicks() {
			logger.Info("reached maximum ticks", "max_ticks", config.MaxTicks)
			break
		}

		if _, err := g.restartIfNeeded(livingCells); err != nil {
			logger.Error("failed to reinitialize grid", "error", err)
			os.Exit(1)
		}

		select {
		case <-ctx.Done():
			logger.Info("shutting down",
				"ticks", g.ticks,
				"runtime", g.stats.Runtime().Round(time.Millisecond),
				"avg_population", g.stats.AveragePopulation,
				"restarts", g.stats.Restarts,
				"failed_steps", g.stats.FailedSteps,
			)
			return
		case <-ticker.C:
		}

		if err := g.advance(ctx); err != nil {
			logger.Warn("step failed", "tick", g.ticks, "error", err)
		}
	}
}
