package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pizzacut/internal/agent"
	"pizzacut/internal/game"
	"pizzacut/internal/input"
	"pizzacut/internal/metrics"
	"pizzacut/internal/render"
	"pizzacut/internal/store"
	"pizzacut/internal/tui"
)

// playOptions holds the play command's flags.
type playOptions struct {
	Name        string
	Output      string
	MaxSteps    int
	ConfigPath  string
	WASD        bool
	Agent       string
	Seed        int64
	Store       string
	Render      bool
	Quiet       bool
	MetricsAddr string
}

func defaultPlayOptions() playOptions {
	return playOptions{MaxSteps: game.DefaultConfig().MaxSteps, Seed: 1}
}

// Bind registers the options on fs using the current values as defaults.
func (o *playOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.Name, "name", o.Name, "directory where one env snapshot per step is saved")
	fs.StringVar(&o.Output, "output", o.Output, "file receiving the final slices")
	fs.IntVar(&o.MaxSteps, "max-steps", o.MaxSteps, "maximum steps before the game ends")
	fs.StringVar(&o.ConfigPath, "config", o.ConfigPath, "YAML file with max_steps and rewards")
	fs.BoolVar(&o.WASD, "wasd", o.WASD, "play with w/a/s/d and space in the terminal")
	fs.StringVar(&o.Agent, "agent", o.Agent, "let an agent play: random or greedy")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "seed for the random agent")
	fs.StringVar(&o.Store, "store", o.Store, "badger directory that also records every snapshot")
	fs.BoolVar(&o.Render, "render", o.Render, "print the board after every step")
	fs.BoolVar(&o.Quiet, "quiet", o.Quiet, "disable banner and prompts")
	fs.StringVar(&o.MetricsAddr, "metrics-addr", o.MetricsAddr, "serve Prometheus metrics on this address")
}

var playOpts = defaultPlayOptions()

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game; the puzzle is read from stdin",
	Long: `Play a game. The puzzle is read from stdin: a line "R C L H" followed by R
rows of C ingredient letters. Unless --wasd or --agent is given, the following
lines of stdin are actions: up, down, left, right or toggle.

Every step is written to <name>/<step>_env.json and the last one again to
<name>/ready_pizza_env.json.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger("pizza-play")
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		opts := playOpts
		if !cmd.Flags().Changed("max-steps") {
			opts.MaxSteps = 0
		}
		return runPlay(ctx, opts, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
	},
}

func init() {
	playOpts.Bind(playCmd.Flags())
	rootCmd.AddCommand(playCmd)
}

// runPlay reads a puzzle from in and plays it to the end. A zero
// opts.MaxSteps keeps the value from the config file.
func runPlay(ctx context.Context, opts playOptions, in io.Reader, out io.Writer, logger *slog.Logger) error {
	cfg, err := game.LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.MaxSteps > 0 {
		cfg.MaxSteps = opts.MaxSteps
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	var policy agent.Policy
	switch opts.Agent {
	case "":
	case "random":
		policy = agent.NewRandomPolicy(opts.Seed)
	case "greedy":
		policy = &agent.GreedyPolicy{}
	default:
		return fmt.Errorf("unknown agent %q", opts.Agent)
	}

	renderer := render.NewRenderer(false)
	if !opts.Quiet {
		fmt.Fprintln(out, renderer.Hello())
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Input R C L H, then R rows of ingredients. For example:")
		fmt.Fprintln(out, "3 5 1 6")
		fmt.Fprintln(out, "TTTTT")
		fmt.Fprintln(out, "TMMMT")
		fmt.Fprintln(out, "TTTTT")
		fmt.Fprintln(out)
	}
	src := input.NewLineSource(in)
	puzzle, err := src.ReadPizza()
	if err != nil {
		return fmt.Errorf("read pizza: %w", err)
	}

	gameOpts := []game.Option{game.WithLogger(logger)}
	var sinks []store.Sink
	if opts.Name != "" {
		dir, err := store.NewDirSink(opts.Name)
		if err != nil {
			return err
		}
		sinks = append(sinks, dir)
	}
	if opts.Store != "" {
		db, err := store.OpenBadgerSink(store.BadgerConfig{Path: opts.Store, Logger: logger})
		if err != nil {
			return err
		}
		sinks = append(sinks, db)
	}
	sink := store.Multi(sinks...)
	defer func() {
		if err := sink.Close(); err != nil {
			logger.Warn("close sinks", "error", err)
		}
	}()
	gameOpts = append(gameOpts, game.WithObserver(store.NewRecorder(sink, logger)))

	if opts.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		gameOpts = append(gameOpts, game.WithObserver(metrics.New(reg)))
		srv := serveMetrics(opts.MetricsAddr, reg, logger)
		defer stopMetrics(srv, logger)
	}

	g, err := game.New(cfg, puzzle, gameOpts...)
	if err != nil {
		return err
	}
	frame := render.Options{}
	if opts.Render {
		fmt.Fprintln(out, renderer.Frame(g.Env(), frame))
	}

	switch {
	case opts.WASD:
		if err := tui.Run(g, renderer, render.Options{Legend: true}, tea.WithInputTTY(), tea.WithContext(ctx)); err != nil {
			return err
		}
	default:
		next := func() (string, error) { return src.Next() }
		if policy != nil {
			next = func() (string, error) { return string(policy.Next(g.Agent())), nil }
		}
		if err := loop(ctx, g, next, out, opts, renderer); err != nil {
			return err
		}
	}

	final := g.Env()
	if err := sink.Finish(final); err != nil {
		return fmt.Errorf("finish: %w", err)
	}
	if opts.Output != "" {
		if err := store.WriteSlicesFile(opts.Output, final.Information.Slices); err != nil {
			return err
		}
	}
	if !opts.Quiet {
		fmt.Fprintf(out, "Score: %d\n", final.Information.Score)
		fmt.Fprintln(out, renderer.Goodbye())
	}
	return nil
}

// loop feeds actions from next into g until the game is done, next reports
// io.EOF or ctx ends.
func loop(ctx context.Context, g *game.Game, next func() (string, error), out io.Writer, opts playOptions, renderer *render.Renderer) error {
	for !g.Done() {
		if err := ctx.Err(); err != nil {
			return nil
		}
		action, err := next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read action: %w", err)
		}
		env, err := g.Step(action)
		if errors.Is(err, agent.ErrInvalidAction) {
			if !opts.Quiet {
				fmt.Fprintf(out, "Unknown action %q; use up, down, left, right or toggle\n", action)
			}
			continue
		}
		if err != nil {
			return err
		}
		if opts.Render {
			fmt.Fprintln(out, renderer.Frame(env, render.Options{}))
		}
	}
	return nil
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "addr", addr, "error", err)
		}
	}()
	logger.Info("serving metrics", "addr", addr)
	return srv
}

func stopMetrics(srv *http.Server, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("shutdown metrics server", "addr", srv.Addr, "error", err)
	}
}
