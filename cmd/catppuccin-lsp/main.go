package main

import (
	"os"

	"github.com/jsvensson/catppuccin/internal/lsp"
	"github.com/spf13/cobra"
)

var (
	flagVerbose int
	version     = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "catppuccin-lsp",
	Short:   "Language server for catppuccin config files, speaking LSP over stdio",
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return lsp.NewServer(version, flagVerbose).Run()
	},
}

func init() {
	rootCmd.Flags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (can be repeated)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
