package cmd

import (
	"github.com/armsmith/armsmith/internal/manifest"
	"github.com/armsmith/armsmith/pkg/website"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

// newWebsiteCommand runs the post-deploy static website activation for
// every account in the manifest that declares one. It is invoked after the
// deployment engine has accepted the generated template.
func newWebsiteCommand() *cobra.Command {
	var manifestPath string

	websiteCmd := &cobra.Command{
		Use:   "website",
		Short: "Enable static website hosting and upload content for deployed accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(manifestPath)
			if err != nil {
				return err
			}

			var failures error
			for _, cfg := range m.Websites() {
				client, err := website.NewDefaultServiceClient(cfg.AccountName)
				if err != nil {
					failures = multierr.Append(failures, err)
					continue
				}

				message, err := website.NewDeployer(client).Deploy(cmd.Context(), cfg)
				if err != nil {
					failures = multierr.Append(failures, err)
					continue
				}

				color.Green("%s", message)
			}

			return failures
		},
	}

	websiteCmd.Flags().StringVarP(&manifestPath, "manifest", "f", "armsmith.yaml", "Path to the storage manifest")

	return websiteCmd
}
