package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/shipwright/internal/app"
)

func (c *CLI) newReleaseCmd() *cobra.Command {
	var (
		checkout string
		output   string
		signed   bool
		gtk      int
		adwaita  bool
	)

	cmd := &cobra.Command{
		Use:   "release [platforms...]",
		Short: "Build release artifacts for the selected platforms",
		Long: `Build release artifacts for the selected platforms.

Without arguments every matrix entry is built. Platform names narrow the
selection; see "shipwright platforms" for the matrix.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			return c.app.Run(cmd.Context(), app.Options{
				Checkout:   checkout,
				ConfigPath: configPath,
				Platforms:  args,
				OutputDir:  output,
				Signed:     signed,
				GTK:        gtk,
				Libadwaita: adwaita,
			})
		},
	}

	cmd.Flags().StringVarP(&checkout, "checkout", "C", "", "Source checkout to release (default current directory)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Artifact output directory (default from release.yaml)")
	cmd.Flags().BoolVar(&signed, "signed", false, "Sign packages where the platform toolchain supports it")
	cmd.Flags().IntVar(&gtk, "gtk", 0, "Force a GTK major version (3 or 4) onto every target")
	cmd.Flags().BoolVar(&adwaita, "adwaita", false, "Force libadwaita onto every target (requires --gtk 4)")

	return cmd
}
