package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/condorcet/condorcet"
	"github.com/katalvlaran/condorcet/internal/config"
	"github.com/katalvlaran/condorcet/internal/electionfile"
	"github.com/katalvlaran/condorcet/internal/logging"
)

// Output formats of the vote command.
const (
	outputJSON = "json"
	outputText = "text"
)

// voteOutput is the JSON report of one vote run.
type voteOutput struct {
	RunID string `json:"run_id"`
	Title string `json:"title,omitempty"`
	condorcet.VoteResult
	Trace *condorcet.Trace `json:"trace,omitempty"`
}

// flagBindings maps config keys to vote command flags.
var flagBindings = map[string]string{
	"vote.method":         "method",
	"vote.max_candidates": "max-candidates",
	"vote.trace":          "trace",
	"log.level":           "log-level",
	"log.format":          "log-format",
}

func newVoteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vote <election-file>",
		Short: "Elect the winner of an election file",
		Long: `Elect the winner of an election file (.yaml, .json or .csv).

The Condorcet checker runs first; the completion method is used only when
no candidate is undefeated. Flags override CONDORCET_* environment
variables, which override the config file and the defaults.`,
		Args: cobra.ExactArgs(1),
		RunE: runVote,
	}

	cmd.Flags().StringP("method", "m", "", "completion method: minimax|ranked-pairs|schulze|condorcet (or cm|cp|cs)")
	cmd.Flags().Int("max-candidates", 0, "largest accepted candidate count")
	cmd.Flags().Bool("trace", false, "include the resolution trace in JSON output")
	cmd.Flags().String("log-level", "", "log level: debug|info|warn|error")
	cmd.Flags().String("log-format", "", "log format: text|json")
	cmd.Flags().StringP("output", "o", outputJSON, "report format: json|text")

	return cmd
}

func runVote(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")
	output = strings.ToLower(output)
	if output != outputJSON && output != outputText {
		return fmt.Errorf("invalid --output %q: must be json or text", output)
	}
	method, err := condorcet.ParseMethod(cfg.Vote.Method)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger := logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format).
		With(slog.String("run_id", runID))

	election, err := electionfile.Load(args[0])
	if err != nil {
		return err
	}
	logger.Info("election loaded",
		slog.String("file", args[0]),
		slog.Int("candidates", len(election.Candidates())),
		slog.Bool("duel_input", election.Matrix != nil))

	var trace *condorcet.Trace
	if cfg.Vote.Trace {
		trace = condorcet.NewTrace()
	}
	opts := []condorcet.Option{
		condorcet.WithLogger(logger),
		condorcet.WithMaxCandidates(cfg.Vote.MaxCandidates),
		condorcet.WithTrace(trace),
	}

	var res condorcet.VoteResult
	if election.Ballots != nil {
		res, err = condorcet.VoteTable(election.Ballots, method, opts...)
	} else {
		res, err = condorcet.Vote(method, election.Matrix, opts...)
	}
	if err != nil {
		logger.Error("vote failed", slog.String("error", err.Error()))
		return err
	}
	logger.Info("winner elected", slog.String("winner", res.Winner), slog.Bool("condorcet", res.Condorcet))

	report := voteOutput{RunID: runID, Title: election.Title, VoteResult: res, Trace: trace}
	if output == outputText {
		return writeText(cmd.OutOrStdout(), report)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// loadConfig layers defaults, environment, the config file and the
// command's explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file := cmd.Flag("config").Value.String()
	v, err := config.New(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err = bindFlags(v, cmd); err != nil {
		return nil, err
	}

	return config.Load(v)
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for key, name := range flagBindings {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}

	return nil
}

func writeText(w io.Writer, r voteOutput) error {
	var sb strings.Builder
	if r.Title != "" {
		fmt.Fprintf(&sb, "election:   %s\n", r.Title)
	}
	fmt.Fprintf(&sb, "winner:     %s\n", r.Winner)
	fmt.Fprintf(&sb, "method:     %s\n", r.Method)
	fmt.Fprintf(&sb, "condorcet:  %t\n", r.Condorcet)
	if score, ok := r.ScoreValue(); ok {
		fmt.Fprintf(&sb, "score:      %d\n", score)
	} else {
		sb.WriteString("score:      -\n")
	}
	fmt.Fprintf(&sb, "candidates: %d\n", r.Candidates)
	fmt.Fprintf(&sb, "voters:     %d\n", r.Voters)
	if r.IsTie() {
		fmt.Fprintf(&sb, "tied:       %s\n", strings.Join(r.Tied, ", "))
	}
	fmt.Fprintf(&sb, "run:        %s\n", r.RunID)

	_, err := io.WriteString(w, sb.String())
	return err
}
