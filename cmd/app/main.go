package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/ColorDuel_Go/internal/combat"
	"github.com/osse101/ColorDuel_Go/internal/config"
	"github.com/osse101/ColorDuel_Go/internal/logger"
	"github.com/osse101/ColorDuel_Go/internal/metrics"
	"github.com/osse101/ColorDuel_Go/internal/utils"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return exitUsage
	}
	initLogger(cfg, stderr)

	fs := flag.NewFlagSet("app", flag.ContinueOnError)
	fs.SetOutput(stderr)
	phase := fs.String("phase", "", "phase to resolve: attack or defense (empty runs the example turn)")
	player := fs.String("player", combat.ColorRed, "player color")
	enemy := fs.String("enemy", combat.ColorBlue, "enemy color")
	rounds := fs.Int("rounds", 1, "number of resolutions; more than one prints a tally")
	seed := fs.Int64("seed", cfg.RNGSeed, "non-zero seed for reproducible draws")
	showTables := fs.Bool("tables", false, "print the outcome tables")
	dumpMetrics := fs.Bool("metrics", false, "print outcome metrics in Prometheus text format")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if *rounds < 1 {
		fmt.Fprintf(stderr, "rounds must be at least 1, got %d\n", *rounds)
		return exitUsage
	}
	if *phase != "" && *phase != string(combat.PhaseAttack) && *phase != string(combat.PhaseDefense) {
		fmt.Fprintf(stderr, "unknown phase %q: want %s or %s\n", *phase, combat.PhaseAttack, combat.PhaseDefense)
		return exitUsage
	}

	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	log := logger.FromContext(ctx)

	var rng func() float64
	if *seed != 0 {
		rng = utils.NewSeededFloat(*seed)
	}
	resolver := combat.NewResolver(
		combat.WithRandom(rng),
		combat.WithLogger(log),
		combat.WithRecorder(metrics.NewOutcomeRecorder()),
	)

	if *showTables {
		printTables(stdout)
	}

	if *phase == "" {
		// Example turn: the player attacks a blue enemy, then defends against green.
		printOutcome(stdout, combat.PhaseAttack, resolver.ResolveAttack(combat.ColorRed, combat.ColorBlue))
		printOutcome(stdout, combat.PhaseDefense, resolver.ResolveDefense(combat.ColorRed, combat.ColorGreen))
	} else {
		p := combat.Phase(*phase)
		log.Info("Resolving outcomes", "phase", p, "player_color", *player, "enemy_color", *enemy, "rounds", *rounds)

		if *rounds == 1 {
			printOutcome(stdout, p, resolver.Resolve(p, *player, *enemy))
		} else {
			counts := make(map[string]int)
			for i := 0; i < *rounds; i++ {
				counts[resolver.Resolve(p, *player, *enemy)]++
			}
			printTally(stdout, p, counts, *rounds)
		}
	}

	if *dumpMetrics {
		if err := metrics.WriteText(stdout, prometheus.DefaultGatherer); err != nil {
			log.Error("Failed to write metrics", "error", err)
			return exitError
		}
	}

	return exitOK
}
