package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hypernet/internal/runner"
)

func newInspectCmd(g *globalFlags) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "inspect <input>",
		Short: "Print hypergraph size and the nodes with the most stationary flow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := g.load(cmd)
			if err != nil {
				return err
			}
			s, err := runner.Inspect(args[0], cfg.DefaultGamma, top)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nodes=%d edges=%d incidences=%d explicit=%d isolated=%d total_flow=%g\n",
				s.Nodes, s.Edges, s.Incidences, s.Explicit, s.Isolated, s.TotalFlow)
			fmt.Fprintf(out, "components=%d largest=%d\n", s.Components, s.Largest)

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tEDGES\tDEGREE\tPI")
			for _, n := range s.Top {
				fmt.Fprintf(tw, "%d\t%s\t%d\t%g\t%g\n", n.ID, n.Name, n.Edges, n.Degree, n.Pi)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&top, "top", 10, "number of nodes to list (0 = all)")
	return cmd
}
