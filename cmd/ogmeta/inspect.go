package main

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/opengraph"
	"github.com/eringen/opengraph/inspect"
)

const fetchTimeout = 15 * time.Second

func newInspectCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "inspect <url|file>",
		Short: "Extract and validate the Open Graph tags of a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			target := args[0]

			var tags opengraph.Tags
			var err error
			if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
				logger.Debug("fetching", "url", target)
				tags, err = inspect.Fetch(ctx, &http.Client{Timeout: fetchTimeout}, target)
			} else {
				var f *os.File
				if f, err = os.Open(target); err != nil {
					return err
				}
				defer f.Close()
				tags, err = inspect.Extract(f)
			}
			if err != nil {
				return err
			}

			if asJSON {
				if err := writeJSON(cmd.OutOrStdout(), tags); err != nil {
					return err
				}
			} else {
				printTags(cmd.OutOrStdout(), tags)
			}

			if err := inspect.Validate(tags); err != nil {
				for _, e := range unjoin(err) {
					writeLine(cmd.ErrOrStderr(), "%s %v", styleError.Render("✗"), e)
				}
				return errInvalid
			}
			writeLine(cmd.ErrOrStderr(), "%s", styleSuccess.Render("✓ required properties present"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print tags as JSON")
	return cmd
}

// unjoin splits an errors.Join result back into its parts.
func unjoin(err error) []error {
	var j interface{ Unwrap() []error }
	if errors.As(err, &j) {
		return j.Unwrap()
	}
	return []error{err}
}
