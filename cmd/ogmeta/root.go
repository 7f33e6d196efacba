package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/eringen/opengraph/site"
)

// defaultConfigFile is read when --config is not given and the file exists.
const defaultConfigFile = "ogmeta.yaml"

type options struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "ogmeta",
		Short:         "Serve and inspect pages with Open Graph metadata",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}
	root.SetVersionTemplate("ogmeta {{.Version}}\n")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "site config file (.yaml or .toml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newImportCmd(opts))
	root.AddCommand(newTagsCmd(opts))
	root.AddCommand(newInspectCmd())
	root.AddCommand(newSettingsCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

// loadConfig reads the configured file, or ogmeta.yaml when present, and
// fills the session secret from the environment.
func (o *options) loadConfig() (site.SiteConfig, error) {
	path := o.configPath
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}
	var cfg site.SiteConfig
	if path != "" {
		var err error
		if cfg, err = site.LoadConfig(path); err != nil {
			return cfg, err
		}
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = site.EnvOr("OGMETA_SESSION_SECRET", "")
	}
	return cfg, nil
}

// openApp loads the config and opens the site. The caller closes it.
func (o *options) openApp(ctx context.Context) (*site.App, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	logger := loggerFromContext(ctx)
	logger.Debug("opening site", "database", cfg.DatabasePath)
	return site.New(cfg, site.WithLogger(logger))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ogmeta version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ogmeta %s\n", version)
		},
	}
}

func closeApp(a *site.App, logger *log.Logger) {
	if err := a.Close(); err != nil {
		logger.Warn("close site", "err", err)
	}
}

// errInvalid marks a command that ran but found problems to report.
var errInvalid = errors.New("validation failed")

func writeLine(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}
