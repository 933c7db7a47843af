package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	applineups "github.com/preston-bernstein/pickup-teams-service/internal/app/lineups"
	"github.com/preston-bernstein/pickup-teams-service/internal/config"
	"github.com/preston-bernstein/pickup-teams-service/internal/render"
	"github.com/preston-bernstein/pickup-teams-service/internal/roster"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var errNoRoster = errors.New("no roster given: pass it as an argument or on stdin")

var generateOpts struct {
	teams  int
	seed   uint64
	format string
}

var generateCmd = &cobra.Command{
	Use:   "generate [roster]",
	Short: "Split a roster into balanced teams",
	Long: `Parse the roster and deal players into teams so skill totals stay close.
Goalkeepers are spread first. With no argument the roster is read from stdin.
The same --seed reproduces team colors and the matchup suggestion.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVarP(&generateOpts.teams, "teams", "n", 2, "number of teams")
	generateCmd.Flags().Uint64Var(&generateOpts.seed, "seed", 0, "seed for colors and matchup (random when unset)")
	generateCmd.Flags().StringVarP(&generateOpts.format, "format", "f", formatText, "output format: text or json")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(strings.TrimSpace(generateOpts.format))
	if format != formatText && format != formatJSON {
		return fmt.Errorf("unknown format %q (want %s or %s)", generateOpts.format, formatText, formatJSON)
	}

	text, err := readRoster(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	req := applineups.Request{Roster: text, TeamCount: generateOpts.teams}
	if cmd.Flags().Changed("seed") {
		seed := generateOpts.seed
		req.Seed = &seed
	}

	svc := applineups.NewService(roster.FreeText{}, nil, commandLogger(cmd), cfg.Lineups.MaxTeams)
	lineup, err := svc.Generate(cmd.Context(), req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == formatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(lineup)
	}
	_, err = io.WriteString(out, render.NewText(out).Lineup(lineup))
	return err
}

// readRoster takes the roster from the argument or stdin. Lines on stdin count as separate entries.
func readRoster(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		if strings.TrimSpace(args[0]) == "" {
			return "", errNoRoster
		}
		return args[0], nil
	}
	if stdin == nil {
		return "", errNoRoster
	}
	raw, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read roster: %w", err)
	}
	text := strings.NewReplacer("\r\n", ",", "\n", ",").Replace(string(raw))
	if strings.Trim(text, ", \t") == "" {
		return "", errNoRoster
	}
	return text, nil
}
