// Package cli implements the teamgen command-line tool.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/pickup-teams-service/internal/logging"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "teamgen",
	Short: "Balanced teams for pickup games",
	Long: `teamgen splits a free-text roster into skill-balanced teams.

Entries are comma separated, optionally rated 1-5 in parentheses:
  "Joe (5), Jane (3), GK-Bob (4), Frank"
Names starting with GK- or PO- are treated as goalkeepers.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
}

func commandLogger(cmd *cobra.Command) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   logLevel,
		Service: rootCmd.Name(),
		Output:  cmd.ErrOrStderr(),
	})
}
