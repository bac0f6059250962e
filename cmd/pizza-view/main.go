//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"pizzacut/internal/app"
	"pizzacut/internal/game"
	"pizzacut/internal/logging"
	"pizzacut/internal/stream"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if cfg.Dir == "" {
		log.Fatal("-name is required")
	}

	logger := logging.New(logging.Config{Service: "pizza-view"})
	f, err := stream.NewFollower(cfg.Dir, stream.WithRefresh(cfg.Refresh), stream.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first, err := f.Next(ctx)
	if err != nil {
		log.Fatalf("waiting for the first snapshot: %v", err)
	}

	envs := make(chan game.Env, 64)
	go func() {
		defer close(envs)
		err := f.Run(ctx, func(env game.Env) error {
			select {
			case envs <- env:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("follow game", "dir", cfg.Dir, "error", err)
		}
	}()

	viewer := app.New(first, envs, cfg)
	size := first.Size()

	ebiten.SetWindowTitle("pizza cutting: " + cfg.Dir)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.Cols*cfg.Scale+cfg.HUDWidth, size.Rows*cfg.Scale)

	if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
