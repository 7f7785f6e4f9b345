package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tafaritech/brandkit/internal/brand"
)

func newWordmarkCmd(app *AppContext) *cobra.Command {
	flags := &requestFlags{}
	var (
		keepCasing  bool
		showPalette bool
	)

	cmd := &cobra.Command{
		Use:   "wordmark <brand>",
		Short: "Render a brand logo in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request(app, args[0])
			if err != nil {
				return err
			}

			res := app.Catalog.Resolve(req)
			r := app.Renderer(cmd.OutOrStdout(), keepCasing)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, r.Logo(res))
			if showPalette {
				fmt.Fprintln(out)
				fmt.Fprintln(out, r.Palette(res.Palette))
			}
			return nil
		},
	}

	flags.bind(cmd, brand.LockupHorizontal)
	cmd.Flags().BoolVar(&keepCasing, "keep-casing", false, "Show the title as written instead of applying the brand casing")
	cmd.Flags().BoolVar(&showPalette, "palette", false, "Print palette swatches below the logo")

	return cmd
}
