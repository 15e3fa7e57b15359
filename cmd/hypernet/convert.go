package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hypernet/internal/metrics"
	"github.com/katalvlaran/hypernet/internal/runner"
)

type convertFlags struct {
	outputDir    string
	threshold    float64
	defaultGamma float64
	workers      int
	projections  []string
	metricsFile  string
}

func newConvertCmd(g *globalFlags) *cobra.Command {
	f := &convertFlags{}
	cmd := &cobra.Command{
		Use:   "convert [input]",
		Short: "Write every selected network representation of a hypergraph",
		Long: `convert parses the hypergraph file, computes its flow tables and writes one
.net file per selected representation into the output directory. The input
may also come from the configuration file or HYPERNET_INPUT.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := g.load(cmd)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				cfg.Input = args[0]
			}
			flags := cmd.Flags()
			if flags.Changed("output-dir") {
				cfg.OutputDir = f.outputDir
			}
			if flags.Changed("threshold") {
				cfg.Threshold = f.threshold
			}
			if flags.Changed("default-gamma") {
				cfg.DefaultGamma = f.defaultGamma
			}
			if flags.Changed("workers") {
				cfg.Workers = f.workers
			}
			if flags.Changed("projections") {
				cfg.Projections = f.projections
			}
			if flags.Changed("metrics-file") {
				cfg.MetricsFile = f.metricsFile
			}

			rep, err := runner.Run(cmd.Context(), cfg, log, metrics.New())
			if rep != nil {
				out := cmd.OutOrStdout()
				for _, r := range rep.Results {
					if path, ok := rep.Files[r.Kind]; ok {
						fmt.Fprintf(out, "%-28s %s\n", r.Kind, path)
					}
				}
			}
			return err
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.outputDir, "output-dir", "o", "", "directory for the .net files (default \"output\")")
	fl.Float64Var(&f.threshold, "threshold", 0, "drop arcs below this probability or weight (default 1e-10)")
	fl.Float64Var(&f.defaultGamma, "default-gamma", 0, "gamma for incidences without a weight record (default 1)")
	fl.IntVar(&f.workers, "workers", 0, "maximum concurrent projections (0 = one per projection)")
	fl.StringSliceVar(&f.projections, "projections", nil, "comma-separated subset of representations (default all)")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	return cmd
}
