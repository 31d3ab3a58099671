// Command pacman-replay replays recorded playthroughs without a window and
// prints their regression ids. With -expect it fails when an id differs, which
// catches changes to how the game plays.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pacman/internal/game"
	"pacman/internal/logging"
	"pacman/internal/playthrough"
)

var errMismatch = errors.New("regression id mismatch")

func main() {
	expect := flag.String("expect", "", "regression id every playthrough must produce")
	parallel := flag.Int("parallel", 4, "playthroughs verified at once")
	realtime := flag.Bool("realtime", false, "replay a single playthrough at its frame rate, logging events")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	log, err := logging.New(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: pacman-replay [flags] playthrough...")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *realtime {
		err = watch(ctx, log, files[0])
	} else {
		err = verify(ctx, log, files, *expect, *parallel)
	}
	if err != nil {
		log.Error("replay failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func verify(ctx context.Context, log *zap.Logger, files []string, expect string, parallel int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(parallel, 1))
	ids := make([]string, len(files))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := playthrough.Load(path)
			if err != nil {
				return err
			}
			res, err := playthrough.Run(p, log.With(zap.String("file", path)))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			ids[i] = res.RegressionID
			log.Info("replayed",
				zap.String("file", path),
				zap.Stringer("id", p.Id),
				zap.Int("frames", len(p.History)),
				zap.Stringer("state", res.Final.State),
				zap.Int("score", res.Final.Score),
				zap.String("regressionId", res.RegressionID))
			if p.Outcome != nil && (p.Outcome.Score != res.Final.Score || p.Outcome.State != res.Final.State) {
				log.Warn("outcome differs from recording",
					zap.String("file", path),
					zap.Int("recordedScore", p.Outcome.Score),
					zap.Stringer("recordedState", p.Outcome.State))
			}
			if expect != "" && res.RegressionID != expect {
				return fmt.Errorf("%s: got %s: %w", path, res.RegressionID, errMismatch)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i, path := range files {
		fmt.Printf("%s  %s\n", ids[i], path)
	}
	return nil
}

// watch replays one playthrough at the speed it was played.
func watch(ctx context.Context, log *zap.Logger, path string) error {
	p, err := playthrough.Load(path)
	if err != nil {
		return err
	}
	sim, err := game.New(p.Config, p.Seed, game.WithLogger(log))
	if err != nil {
		return err
	}
	src := playthrough.NewReplay(p)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r := game.NewRunner(sim, src, func(f game.Frame) {
		for _, e := range f.Events {
			log.Info("event",
				zap.Int("frame", f.Index),
				zap.Stringer("kind", e.Kind),
				zap.Int("score", f.Score))
		}
		if src.Done() {
			cancel()
		}
	})
	f, err := r.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("replay finished",
		zap.Int("frame", f.Index),
		zap.Stringer("state", f.State),
		zap.Int("score", f.Score))
	return nil
}
