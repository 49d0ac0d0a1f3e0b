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
	"github.com/gnames/gn"
	"github.com/gnames/gnmusic/internal/ioetl"
	"github.com/gnames/gnmusic/pkg/config"
	"github.com/spf13/cobra"
)

// getLoadCmd returns the load command.
func getLoadCmd() *cobra.Command {
	var (
		target     string
		engine     string
		singlesIDs string
	)

	loadCmd := &cobra.Command{
		Use:   "load [file]",
		Short: "Load a catalog into a relational or document store",
		Long: `Load a flat catalog file into one of the targets.

Targets:
  relational  artists, albums and tracks tables (PostgreSQL or SQLite)
  artists     artist documents with nested albums and tracks (MongoDB)
  tracks      track documents with artist and album snapshots (MongoDB)

The load runs in four phases: extract, normalize, transform and load.
Singles of every artist are moved into the artist's "Singles" album.
Relational loads happen in one transaction. Documents are upserted by
their ids, so repeated loads replace documents instead of duplicating
them.

If the file is not given, input.path from config is used.

Examples:
  gnmusic load -t relational music_data.csv
  gnmusic load -t relational -e sqlite
  gnmusic load -t artists --singles-ids stable
  gnmusic load -t tracks`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runLoad(cmd, args, target, engine, singlesIDs)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	loadCmd.Flags().StringVarP(
		&target, "target", "t", string(config.TargetRelational),
		"load target: relational, artists or tracks",
	)
	engineFlag(loadCmd, &engine)
	loadCmd.Flags().StringVar(
		&singlesIDs, "singles-ids", "",
		"ids of \"Singles\" albums: random or stable",
	)

	return loadCmd
}

func runLoad(
	cmd *cobra.Command,
	args []string,
	targetStr, engine, singlesIDs string,
) error {
	ctx, cancel := signalContext()
	defer cancel()

	target, ok := config.NewTarget(targetStr)
	if !ok {
		return config.ConfigError(targetStr, []string{"target"})
	}

	var opts []config.Option
	if len(args) == 1 {
		opts = append(opts, config.OptInputPath(args[0]))
	}
	if cmd.Flags().Changed("engine") {
		opts = append(opts, config.OptLoadRelationalEngine(engine))
	}
	if cmd.Flags().Changed("singles-ids") {
		opts = append(opts, config.OptLoadSinglesIDs(singlesIDs))
	}
	cfg.Update(opts)

	res, err := ioetl.New(cfg).Load(ctx, target)
	if err != nil {
		return err
	}
	ioetl.Report(res)
	return nil
}
