package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hypernet"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of hypernet",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hypernet version %s\n", hypernet.Version)
		},
	}
}
