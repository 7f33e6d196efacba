package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newImportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import pages from a YAML file",
		Long:  "Import reads a YAML list of pages and saves them, replacing pages with the same slug.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			app, err := opts.openApp(ctx)
			if err != nil {
				return err
			}
			defer closeApp(app, logger)

			n, err := app.Store.ImportPages(f)
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			writeLine(cmd.OutOrStdout(), "%s", styleSuccess.Render(fmt.Sprintf("Imported %d pages", n)))
			return nil
		},
	}
}
