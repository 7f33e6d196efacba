package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eringen/opengraph/site"
)

func newSettingsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Read or change stored site settings",
		Long:  "Settings are stored in the site database. Keys: " + strings.Join(site.SettingKeys, ", ") + ".",
	}
	cmd.AddCommand(newSettingsGetCmd(opts))
	cmd.AddCommand(newSettingsSetCmd(opts))
	return cmd
}

func newSettingsGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Print one or all settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			app, err := opts.openApp(ctx)
			if err != nil {
				return err
			}
			defer closeApp(app, logger)

			s, err := app.Store.GetSettings()
			if err != nil {
				return err
			}
			values := map[string]string{
				site.SettingTitle:         s.Title,
				site.SettingApplicationID: s.ApplicationID,
				site.SettingAdminID:       s.AdminID,
			}
			w := cmd.OutOrStdout()
			if len(args) == 1 {
				v, ok := values[args[0]]
				if !ok {
					return fmt.Errorf("%w: %q", site.ErrUnknownSetting, args[0])
				}
				writeLine(w, "%s", v)
				return nil
			}
			for _, k := range site.SettingKeys {
				v := values[k]
				if v == "" {
					v = styleDim.Render("(unset)")
				}
				writeLine(w, "%s = %s", styleProperty.Render(k), v)
			}
			return nil
		},
	}
}

func newSettingsSetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> [value]",
		Short: "Store a setting; omit the value to clear it",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			app, err := opts.openApp(ctx)
			if err != nil {
				return err
			}
			defer closeApp(app, logger)

			var value string
			if len(args) == 2 {
				value = args[1]
			}
			if err := app.Store.SetSetting(args[0], value); err != nil {
				return err
			}
			logger.Info("setting saved", "key", args[0])
			return nil
		},
	}
}
