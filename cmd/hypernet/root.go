package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hypernet/internal/config"
	"github.com/katalvlaran/hypernet/internal/logging"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	configPath string
	envFile    string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "hypernet",
		Short: "Convert hypergraphs into map-equation network representations",
		Long: `hypernet reads a weighted hypergraph and writes bipartite, non-backtracking,
unipartite and multilayer network representations in Pajek-style .net format.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "YAML or TOML configuration file")
	pf.StringVar(&g.envFile, "env-file", ".env", "optional dotenv file with HYPERNET_* variables")
	pf.StringVar(&g.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&g.logFormat, "log-format", "", "auto, text or json")

	root.AddCommand(newConvertCmd(g), newInspectCmd(g), newVersionCmd())
	return root
}

// load resolves configuration (file, dotenv, environment, then the
// persistent flags), validates it and builds the logger.
func (g *globalFlags) load(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	if err := config.LoadDotEnv(g.envFile); err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = g.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = g.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	format, err := logging.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logging.New(level, format), nil
}
