/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gnames/gn"
	"github.com/gnames/gnmusic/internal/ioconfig"
	"github.com/gnames/gnmusic/internal/iofs"
	"github.com/gnames/gnmusic/internal/iologger"
	app "github.com/gnames/gnmusic/pkg"
	"github.com/gnames/gnmusic/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	homeDir  string
	cfg      *config.Config
	closeLog func() error
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gnmusic",
		Short:   "GNmusic reshapes music catalogs for relational and document stores",
		Long: `GNmusic reads a flat music catalog (one row per track) and loads it
either into a normalized relational database or into document collections.

Commands:
  - create:   create artists, albums and tracks tables if they are missing
  - generate: write a fake catalog for tests and benchmarks
  - load:     extract, normalize, transform and load a catalog

Configuration precedence (highest to lowest):
  1. Command flags
  2. Environment variables (GNMUSIC_*)
  3. Config file (~/.config/gnmusic/config.yaml)
  4. Built-in defaults

Running gnmusic without a command prints the effective configuration.`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for gnmusic")

	rootCmd.AddCommand(
		getCreateCmd(),
		getGenerateCmd(),
		getLoadCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Defaults are used until the config file is read.
	defaultLog := config.New().Log
	if err = initLogging(defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if cfg, err = ioconfig.Load(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = initLogging(cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))
	return nil
}

// initLogging replaces the global logger and closes the previous log
// file.
func initLogging(lc config.LogConfig) error {
	if closeLog != nil {
		_ = closeLog()
	}
	var err error
	closeLog, err = iologger.Init(config.LogDir(homeDir), lc)
	return err
}

func runRoot(cmd *cobra.Command, args []string) error {
	out, err := configYAML(cfg)
	if err != nil {
		return err
	}
	gn.Info(
		"Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir),
	)
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}

// configYAML renders the effective configuration with the database
// password hidden.
func configYAML(c *config.Config) ([]byte, error) {
	res := *c
	if res.Database.Password != "" {
		res.Database.Password = "********"
	}
	return yaml.Marshal(res)
}

// signalContext is cancelled on Ctrl-C.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	if closeLog != nil {
		_ = closeLog()
	}
	if err != nil {
		os.Exit(1)
	}
}
