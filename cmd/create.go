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

// getCreateCmd returns the create command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getCreateCmd() *cobra.Command {
	var engine string

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create relational schema",
		Long: `Create artists, albums and tracks tables.

This command:
  1. Connects to PostgreSQL or opens a SQLite file
  2. Creates tables and indexes that do not exist yet
  3. Reports which tables were created and which already existed

Existing tables and their data are never changed, so the command
is safe to run many times.

Examples:
  gnmusic create
  gnmusic create --engine sqlite
  gnmusic create -e sqlite`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCreate(cmd, engine)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	engineFlag(createCmd, &engine)
	return createCmd
}

func runCreate(cmd *cobra.Command, engine string) error {
	ctx, cancel := signalContext()
	defer cancel()

	if cmd.Flags().Changed("engine") {
		cfg.Update([]config.Option{config.OptLoadRelationalEngine(engine)})
	}

	rep, err := ioetl.New(cfg).Create(ctx)
	if err != nil {
		return err
	}

	gn.Info(
		"Schema is ready: %d tables created, %d already existed",
		len(rep.Created), len(rep.Existing),
	)
	gn.Info("\nNext steps:")
	gn.Info("  - Run 'gnmusic load -t relational' to import data")
	return nil
}
