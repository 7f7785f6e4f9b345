package main

import (
	"github.com/spf13/cobra"

	"github.com/tafaritech/brandkit/internal/brand"
	"github.com/tafaritech/brandkit/internal/render"
	"github.com/tafaritech/brandkit/internal/tui/browser"
)

func newBrowseCmd(app *AppContext) *cobra.Command {
	var (
		mode   string
		lockup string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the brand catalog interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ok := brand.ParseMode(mode)
			if !ok {
				app.Logger.With("mode", mode).Warn("unknown display mode, starting in light")
			}
			l, ok := brand.ParseLockup(lockup)
			if !ok {
				app.Logger.With("lockup", lockup).Warn("unknown lockup, starting with wordmark")
			}

			opts := browser.Options{Mode: m, Lockup: l, Output: cmd.OutOrStdout()}
			if app.NoColor {
				opts.Renderer = render.New(cmd.OutOrStdout(), render.Options{Profile: render.Plain()})
			}

			if err := browser.Run(app.Catalog, opts); err != nil {
				return newCommandError("browse", "brand catalog", err, "Run in an interactive terminal, or use 'brandkit wordmark' instead.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "Initial display mode")
	cmd.Flags().StringVarP(&lockup, "lockup", "l", string(brand.LockupHorizontal), "Initial lockup")

	return cmd
}
