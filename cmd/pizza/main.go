// Command pizza plays and streams pizza cutting games.
//
//	pizza play --name game --render < pizza.txt
//	pizza stream --name game
package main

import (
	"log"
	"log/slog"

	"github.com/spf13/cobra"

	"pizzacut/internal/logging"
)

var (
	logLevel string
	logJSON  bool
)

var rootCmd = &cobra.Command{
	Use:   "pizza",
	Short: "Cut a pizza into slices one cursor move at a time",
	Long: `pizza reads a puzzle (a header "R C L H" followed by R rows of ingredients)
and lets a player, a script or a simple agent cut it into rectangular slices.
Every slice may hold at most H cells and scores its size when it contains at
least L of each ingredient.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("pizza: %v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false,
		"write logs as JSON")
}

// newLogger builds the stderr logger selected by the persistent flags.
func newLogger(service string) (*slog.Logger, error) {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Config{Level: level, JSON: logJSON, Service: service}), nil
}
