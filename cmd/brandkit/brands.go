package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tafaritech/brandkit/internal/config"
	"github.com/tafaritech/brandkit/internal/render"
)

func newBrandsCmd(app *AppContext) *cobra.Command {
	var export bool

	cmd := &cobra.Command{
		Use:   "brands",
		Short: "List the brands in the effective catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if export {
				data, err := config.Marshal(config.FromCatalog(app.Catalog))
				if err != nil {
					return newCommandError("export", "brand catalog", err, "This is a bug; please report it.")
				}
				_, err = out.Write(data)
				return err
			}

			rows := make([][]string, 0, len(app.Catalog.Brands()))
			for _, id := range app.Catalog.Brands() {
				def, _ := app.Catalog.Definition(id)
				master := ""
				if def.Master {
					master = "yes"
				}
				rows = append(rows, []string{
					string(def.ID),
					def.Title,
					master,
					strconv.FormatBool(def.Splittable),
					string(def.Casing),
				})
			}

			fmt.Fprint(out, render.Table([]string{"ID", "TITLE", "MASTER", "SPLIT", "CASING"}, rows))
			if app.Overlay != "" {
				fmt.Fprintf(out, "\noverlay: %s\n", app.Overlay)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&export, "export", false, "Print the effective catalog as YAML")

	return cmd
}
