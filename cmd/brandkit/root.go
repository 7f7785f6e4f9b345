package main

import (
	"github.com/spf13/cobra"

	"github.com/tafaritech/brandkit/internal/logger"
)

type rootFlags struct {
	verbose     bool
	noColor     bool
	catalogPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{Logger: logger.Nop()}

	cmd := &cobra.Command{
		Use:           "brandkit",
		Short:         "brandkit resolves Tafari brand logos into palettes, glyphs and wordmarks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd, flags)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable coloured output")
	cmd.PersistentFlags().StringVar(&flags.catalogPath, "catalog", "", "Overlay brand catalog (defaults to $XDG_CONFIG_HOME/brandkit/brands.yaml when present)")

	cmd.AddCommand(newResolveCmd(app))
	cmd.AddCommand(newWordmarkCmd(app))
	cmd.AddCommand(newBrandsCmd(app))
	cmd.AddCommand(newAuditCmd(app))
	cmd.AddCommand(newBrowseCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
