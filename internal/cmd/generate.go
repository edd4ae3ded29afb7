package cmd

import (
	"fmt"
	"os"

	"github.com/armsmith/armsmith/internal/manifest"
	"github.com/armsmith/armsmith/pkg/arm"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type generateFlags struct {
	manifestPath string
	outputPath   string
}

func newGenerateCommand() *cobra.Command {
	flags := &generateFlags{}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Emit a deployment template from a storage manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(flags.manifestPath)
			if err != nil {
				return err
			}

			resources, err := m.Resources()
			if err != nil {
				return err
			}

			body, err := arm.NewDeployment(resources...).Emit()
			if err != nil {
				return err
			}

			if flags.outputPath == "-" {
				fmt.Fprintln(cmd.OutOrStdout(), string(body))
				return nil
			}

			if err := os.WriteFile(flags.outputPath, body, 0644); err != nil {
				return fmt.Errorf("writing template: %w", err)
			}

			color.Green("Wrote %d resources to %s", len(resources), flags.outputPath)
			return nil
		},
	}

	generateCmd.Flags().StringVarP(&flags.manifestPath, "manifest", "f", "armsmith.yaml", "Path to the storage manifest")
	generateCmd.Flags().StringVarP(&flags.outputPath, "output", "o", "template.json", "Template output path, or - for stdout")

	return generateCmd
}
