package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tafaritech/brandkit/internal/brand"
	"github.com/tafaritech/brandkit/internal/render"
)

func newResolveCmd(app *AppContext) *cobra.Command {
	flags := &requestFlags{}
	var output string

	cmd := &cobra.Command{
		Use:   "resolve <brand>",
		Short: "Resolve a brand logo into palette, glyph treatment and wordmark segments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request(app, args[0])
			if err != nil {
				return err
			}

			res := app.Catalog.Resolve(req)
			app.Logger.WithFields(map[string]any{
				"brand":  string(res.Brand),
				"mode":   string(res.Mode),
				"lockup": string(res.Lockup),
			}).Debug("resolved logo")

			return writeResult(cmd.OutOrStdout(), res, output)
		},
	}

	flags.bind(cmd, brand.LockupWordmark)
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json or yaml")

	return cmd
}

func writeResult(w io.Writer, res brand.Result, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		_, err := io.WriteString(w, formatResult(res))
		return err
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(res)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(res); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return newCommandError("write", "output format "+format,
			fmt.Errorf("unsupported format %q", format),
			"Use --output text, json or yaml.")
	}
}

func formatResult(res brand.Result) string {
	rows := [][]string{
		{"brand", string(res.Brand)},
		{"mode", string(res.Mode)},
		{"lockup", string(res.Lockup)},
		{"glyph", fmt.Sprintf("%s (%s)", res.Glyph, describeGlyph(res.Mark))},
		{"text", res.Text},
		{"accent", res.Accent},
		{"segments", strings.Join(res.Segments, " | ")},
		{"casing", string(res.Casing)},
		{"size", fmt.Sprintf("%g (glyph %g, font %g)", res.Size, res.GlyphSize, res.FontSize)},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(render.Pad(row[0]+":", 10))
		b.WriteString(row[1])
		b.WriteByte('\n')
	}
	return b.String()
}

func describeGlyph(g brand.Glyph) string {
	parts := []string{string(g.Treatment)}
	if g.Filter != "" {
		parts = append(parts, g.Filter)
	}
	if g.Asset != "" {
		parts = append(parts, g.Asset)
	}
	return strings.Join(parts, ", ")
}
