package cmd

import (
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "armsmith <command> [options]",
		Short:         "Generates resource-manager deployment templates from storage manifests",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newWebsiteCommand())

	return rootCmd
}
