package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pizzacut/internal/game"
	"pizzacut/internal/render"
	"pizzacut/internal/stream"
)

// streamOptions holds the stream command's flags.
type streamOptions struct {
	Name          string
	Refresh       time.Duration
	DisableLegend bool
	Padding       int
	Plain         bool
}

func defaultStreamOptions() streamOptions {
	return streamOptions{Refresh: stream.DefaultRefresh}
}

// Bind registers the options on fs using the current values as defaults.
func (o *streamOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.Name, "name", o.Name, "directory where the game saves its snapshots")
	fs.DurationVar(&o.Refresh, "refresh-delay", o.Refresh, "polling interval for new snapshots")
	fs.BoolVar(&o.DisableLegend, "disable-legend", o.DisableLegend, "do not print the legend")
	fs.IntVar(&o.Padding, "padding", o.Padding, "empty lines printed before every frame")
	fs.BoolVar(&o.Plain, "plain", o.Plain, "print without colours")
}

var streamOpts = defaultStreamOptions()

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Render a game while it is being played",
	Long: `Render the snapshots a running "pizza play --name <dir>" writes, one frame
per step, until the game ends. This command never plays itself.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger("pizza-stream")
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return runStream(ctx, streamOpts, cmd.OutOrStdout(), logger)
	},
}

func init() {
	streamOpts.Bind(streamCmd.Flags())
	_ = streamCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(streamCmd)
}

// runStream prints a frame for every snapshot in opts.Name until the game
// ends or ctx is cancelled. The goodbye line is printed either way.
func runStream(ctx context.Context, opts streamOptions, out io.Writer, logger *slog.Logger) error {
	// the game may not have created its directory yet
	if err := os.MkdirAll(opts.Name, 0o755); err != nil {
		return err
	}
	f, err := stream.NewFollower(opts.Name, stream.WithRefresh(opts.Refresh), stream.WithLogger(logger))
	if err != nil {
		return err
	}
	defer f.Close()

	renderer := render.NewRenderer(opts.Plain)
	frame := render.Options{Hello: true, Legend: !opts.DisableLegend, Padding: opts.Padding}
	err = f.Run(ctx, func(env game.Env) error {
		_, err := fmt.Fprint(out, renderer.Frame(env, frame))
		return err
	})
	fmt.Fprintln(out, renderer.Goodbye())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
