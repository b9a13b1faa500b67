package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"pokerrl/internal/config"
	"pokerrl/internal/rng"
	"pokerrl/pkg/poker/game"
	"pokerrl/pkg/poker/handrank"
)

var (
	hands   = flag.Int("hands", 0, "number of hands to play (overrides simulation.hands)")
	workers = flag.Int("workers", 0, "number of concurrent workers (overrides simulation.workers)")
	seed    = flag.Int64("seed", -1, "seed of the first hand, 0 picks a random seed (overrides simulation.seed)")
	fast    = flag.Bool("fast", false, "rank hands with the lookup-table evaluator")
)

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	r, err := cfg.ToRules()
	if err != nil {
		logrus.WithError(err).Fatal("invalid rules in configuration")
	}

	opts := game.Options{Rules: r}
	if *fast {
		opts.Ranker = handrank.NewFast(r.Variant)
	}

	sim := &simulator{
		opts:    opts,
		hands:   cfg.Simulation.Hands,
		workers: cfg.Simulation.Workers,
		seed:    cfg.Simulation.Seed,
		logger:  logrus.StandardLogger(),
	}

	if *hands > 0 {
		sim.hands = *hands
	}

	if *workers > 0 {
		sim.workers = *workers
	}

	if *seed >= 0 {
		sim.seed = *seed
	}

	if sim.seed == 0 {
		sim.seed = rng.Crypto{}.Seed()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logrus.WithFields(logrus.Fields{
		"hands":   sim.hands,
		"workers": sim.workers,
		"seed":    sim.seed,
		"variant": r.Variant,
		"limit":   r.Limit,
		"players": r.NumPlayers,
	}).Info("starting simulation")

	summary, err := sim.Run(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("simulation failed")
	}

	logrus.WithFields(logrus.Fields{
		"run":       summary.RunID,
		"hands":     summary.Hands,
		"avgLength": fmt.Sprintf("%.2f", summary.AverageLength()),
		"showdowns": fmt.Sprintf("%.1f%%", 100*summary.ShowdownShare()),
	}).Info("simulation complete")

	printNet(summary)
}

func printNet(summary *Summary) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	_, _ = fmt.Fprintln(w, "seat\tnet\tper hand\t")
	for i, net := range summary.Net {
		perHand := 0.0
		if summary.Hands > 0 {
			perHand = net.Float64() / float64(summary.Hands)
		}

		_, _ = fmt.Fprintf(w, "%d\t%s\t%.4f\t\n", i+1, net, perHand)
	}
	_ = w.Flush()
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	format := strings.ToLower(config.Instance().Log.Format)
	if format == "json" || !term.IsTerminal(int(os.Stdout.Fd())) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
