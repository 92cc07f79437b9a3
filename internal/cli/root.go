// Package cli implements the condorcet command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds a fresh command tree. Each call returns independent
// commands and flags.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "condorcet",
		Short: "Resolve ranked-ballot elections by Condorcet methods",
		Long: `condorcet reads an election (ranked ballots or a precomputed duel matrix)
and reports its winner. A Condorcet winner is elected outright; otherwise
the configured completion method (minimax, ranked pairs or Schulze) decides.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/condorcet/config.yaml)")

	root.AddCommand(newVoteCommand(), newMethodsCommand())

	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}
