package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/cheggaaa/pb/v3"
	"go.uber.org/zap"

	"lucky_casino/internal/config/env"
	"lucky_casino/internal/logger"
	"lucky_casino/internal/simulation"
)

func main() {
	var (
		spins      = flag.Int("spins", 1_000_000, "number of paid spins")
		bet        = flag.Int("bet", 0, "bet per spin, 0 uses default_bet from config")
		seed       = flag.Uint64("seed", 0, "rng seed, 0 picks one from the clock")
		playBonus  = flag.Bool("bonus", true, "play awarded free spins")
		configPath = flag.String("config", "config.yaml", "game config file")
		progress   = flag.Bool("progress", true, "show progress bar")
	)
	flag.Parse()

	logCfg, err := env.NewLogConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, err := logger.New(logCfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(log, *configPath, *spins, *bet, *seed, *playBonus, *progress); err != nil {
		log.Error("simulation failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.Logger, configPath string, spins, bet int, seed uint64, playBonus, progress bool) error {
	gameCfg, err := env.NewGameConfigFromYAML(configPath)
	if err != nil {
		return err
	}
	settings := gameCfg.DogHouse()
	if bet == 0 {
		bet = settings.DefaultBet
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := simulation.Options{
		Spins:     spins,
		Bet:       bet,
		Seed:      seed,
		PlayBonus: playBonus,
	}
	var bar *pb.ProgressBar
	if progress {
		bar = pb.StartNew(spins)
		opts.Progress = func() { bar.Increment() }
	}

	log.Info("simulation started",
		zap.Int("spins", spins),
		zap.Int("bet", bet),
		zap.Uint64("seed", seed),
		zap.Bool("bonus", playBonus),
	)

	rep, err := simulation.Run(ctx, settings.Engine, opts)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	fmt.Print(rep.String())
	return nil
}
