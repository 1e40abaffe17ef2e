package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"reversi/communication"
	"reversi/experiments"
	"reversi/experiments/metrics"
	"reversi/meta"
	"reversi/player"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	seed     uint64
	logLevel string
	pretty   bool
	board    bool
	color    bool
	selfplay int
	workers  int
	out      string
}

func main() {
	cfg := parseFlags()
	if err := setupLogging(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var err error
	if cfg.selfplay > 0 {
		err = runSelfPlay(cfg)
	} else {
		err = runAgent(cfg)
	}
	if err != nil {
		log.Error().Err(err).Msg("exiting")
		os.Exit(1)
	}
}

func parseFlags() config {
	var cfg config
	flag.Uint64Var(&cfg.seed, "seed", 0, "Seed for move selection (0 picks one from the clock)")
	flag.StringVar(&cfg.logLevel, "log-level", meta.LOG_LEVEL, "Log level: trace, debug, info, warn, error")
	flag.BoolVar(&cfg.pretty, "pretty", false, "Human readable logs instead of JSON")
	flag.BoolVar(&cfg.board, "board", false, "Print the board to stderr after every move")
	flag.BoolVar(&cfg.color, "color", false, "Colour the printed board")
	flag.IntVar(&cfg.selfplay, "selfplay", 0, "Play this many random-vs-random games and print the results as CSV")
	flag.IntVar(&cfg.workers, "workers", meta.SELFPLAY_WORKERS, "Number of goroutines for self-play")
	flag.StringVar(&cfg.out, "out", "", "Directory for self-play CSV files (stdout when empty)")
	flag.Parse()
	return cfg
}

// setupLogging sends logs to stderr; stdout carries the protocol.
func setupLogging(cfg config) error {
	level, err := zerolog.ParseLevel(cfg.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.logLevel, err)
	}
	zerolog.SetGlobalLevel(level)
	if cfg.pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	return nil
}

func runAgent(cfg config) error {
	options := []player.Option{}
	if cfg.seed > 0 {
		options = append(options, player.WithSeed(cfg.seed))
	}
	if cfg.board {
		profile := termenv.Ascii
		if cfg.color {
			profile = termenv.NewOutput(os.Stderr).ColorProfile()
		}
		options = append(options, player.WithTrace(os.Stderr, profile))
	}

	p := player.New(options...)
	return p.Play(communication.NewStdio(os.Stdin, os.Stdout))
}

func runSelfPlay(cfg config) error {
	seed := cfg.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	results, err := experiments.RunSelfPlay(context.Background(), experiments.Config{
		Games:   cfg.selfplay,
		Workers: cfg.workers,
		Seed:    seed,
	})
	if err != nil {
		return err
	}

	if cfg.out == "" {
		return metrics.WriteGameCSV(os.Stdout, results.Games)
	}

	writer, err := metrics.NewWriter(cfg.out)
	if err != nil {
		return err
	}
	if err := writer.WriteGameRecords(results.Games); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored game records")
	if err := writer.WriteMoveRecords(results.Moves); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")
	return nil
}
