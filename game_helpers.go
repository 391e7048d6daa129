package main

import (
	"context"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

var configFiles = []string{"config.toml", "config.json"}

// loadConfig reads the first config file present, falling back to defaults
func loadConfig(logger *slog.Logger) utils.Config {
	for _, name := range configFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		config, err := utils.LoadConfig(name)
		if err != nil {
			logger.Warn("ignoring config file", "file", name, "error", err)
			continue
		}
		return config
	}
	logger.Info("using default configuration")
	return utils.DefaultConfig()
}

// newSeedSource builds the random seed source, time based when no seed is configured
func newSeedSource(config utils.Config) model.SeedSource {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return model.BernoulliSource(rand.New(rand.NewSource(seed)), config.SeedDensity)
}

// game is the driver state carried across restarts
type game struct {
	config    utils.Config
	logger    *slog.Logger
	state     *model.GridState
	scheduler *model.Scheduler
	stats     *utils.Stats
	history   model.History

	ticks         uint64 // committed steps over the whole run, survives restarts
	stagnantCount int
}

// initializeGame sets up the initial simulation state
func initializeGame(config utils.Config, logger *slog.Logger) (*game, error) {
	state, err := model.Initialize(config.Size, newSeedSource(config))
	if err != nil {
		return nil, err
	}

	return &game{
		config: config,
		logger: logger,
		state:  state,
		scheduler: model.NewScheduler(
			model.WithWorkers(config.Workers),
			model.WithLogger(logger),
		),
		stats: utils.NewStats(),
	}, nil
}

// observe records the committed view and returns its living cell count
func (g *game) observe(view *model.View, lastFrameTime time.Time) int {
	livingCells, isStagnant := updateGameState(view, &g.history, g.ticks, lastFrameTime, g.stats)
	if isStagnant {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}
	return livingCells
}

// reachedMaxTicks reports whether the run has committed its configured number of steps
func (g *game) reachedMaxTicks() bool {
	return g.config.MaxTicks > 0 && g.ticks >= uint64(g.config.MaxTicks)
}

// restartIfNeeded swaps in a freshly seeded grid when the current one died out or stagnated
func (g *game) restartIfNeeded(livingCells int) (bool, error) {
	shouldRestart, reason := checkRestartConditions(livingCells, g.stagnantCount, g.config)
	if !shouldRestart || !g.config.AutoRestart {
		return false, nil
	}

	g.logger.Info("restarting", "reason", reason, "tick", g.ticks, "grid_tick", g.state.Tick())
	fresh, err := model.Initialize(g.config.Size, newSeedSource(g.config))
	if err != nil {
		return false, err
	}
	g.state = fresh
	g.history.Reset()
	g.stagnantCount = 0
	g.stats.Restarts++
	return true, nil
}

// advance runs one step; a failed step leaves the grid on its last committed tick
func (g *game) advance(ctx context.Context) error {
	if err := g.scheduler.Step(ctx, g.state); err != nil {
		g.stats.FailedSteps++
		return err
	}
	g.ticks++
	return nil
}

// updateGameState records the committed view and reports whether the grid is stagnant
func updateGameState(
	view *model.View,
	history *model.History,
	ticks uint64,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, bool) {
	livingCells := view.LiveCells()
	stats.Update(ticks, livingCells, time.Since(lastFrameTime))

	isStagnant := history.IsStagnant(view)
	history.Update(view)

	return livingCells, isStagnant
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// logGameStatus reports the status of the latest committed tick
func logGameStatus(logger *slog.Logger, view *model.View, ticks uint64, livingCells int, stats *utils.Stats) {
	density := float64(livingCells) / float64(view.Size()*view.Size()) * 100
	logger.Debug("tick",
		"tick", ticks,
		"grid_tick", view.Tick(),
		"living", livingCells,
		"density_pct", density,
		"ticks_per_sec", stats.TicksPerSecond,
		"avg_population", stats.AveragePopulation,
	)
}
