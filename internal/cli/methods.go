package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/condorcet/condorcet"
)

var methodHelp = map[condorcet.Method]struct{ aliases, summary string }{
	condorcet.MethodCondorcet:   {"c", "undefeated candidate only; fails when there is none"},
	condorcet.MethodMinimax:     {"cm", "largest worst pairwise margin (Simpson-Kramer)"},
	condorcet.MethodRankedPairs: {"cp, pairs, tideman", "lock strongest victories, skip cycles (Tideman)"},
	condorcet.MethodSchulze:     {"cs", "most rivals beaten by widest beatpath"},
}

func newMethodsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the supported resolution methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "METHOD\tALIASES\tDESCRIPTION")
			for _, m := range condorcet.Methods() {
				h := methodHelp[m]
				fmt.Fprintf(tw, "%s\t%s\t%s\n", m, h.aliases, h.summary)
			}
			return tw.Flush()
		},
	}
}
