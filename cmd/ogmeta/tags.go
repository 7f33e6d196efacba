package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/eringen/opengraph"
)

func newTagsCmd(opts *options) *cobra.Command {
	var (
		locale string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "tags <slug>",
		Short: "Print the Open Graph tags of a page",
		Long:  `Tags prints the tags a page is served with. Use "home" or "" for the site root.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			app, err := opts.openApp(ctx)
			if err != nil {
				return err
			}
			defer closeApp(app, logger)

			tags, err := app.PageTags(args[0], locale)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), tags)
			}
			printTags(cmd.OutOrStdout(), tags)
			return nil
		},
	}
	cmd.Flags().StringVar(&locale, "locale", "", "locale to render in (default: configured default)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print tags as JSON")
	return cmd
}

func printTags(w io.Writer, tags opengraph.Tags) {
	width := 0
	for _, t := range tags {
		width = max(width, len(t.Property))
	}
	for _, t := range tags {
		pad := width - len(t.Property)
		writeLine(w, "%s%*s  %s", styleProperty.Render(t.Property), pad, "", t.Content)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
