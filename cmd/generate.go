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
	"github.com/gnames/gnmusic/pkg/synth"
	"github.com/spf13/cobra"
)

// getGenerateCmd returns the generate command.
func getGenerateCmd() *cobra.Command {
	var (
		rows    int
		artists int
		seed    uint64
		output  string
	)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a fake music catalog",
		Long: `Generate a CSV file with fake but consistent catalog rows.

Every artist gets a block of tracks. Tracks are grouped into albums,
about a quarter of them are singles without an album. The file uses
the delimiter and null token from the input settings, so it can be
loaded with 'gnmusic load' right away.

Examples:
  gnmusic generate -n 100000
  gnmusic generate -n 1000 -a 50 -s 42 -o music_data.csv`,
		Aliases: []string{"gen"},
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := synth.NewConfig(rows)
			sc.Artists = artists
			sc.Seed = seed
			if output == "" {
				output = cfg.Input.Path
			}
			err := runGenerate(sc, output)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	generateCmd.Flags().IntVarP(
		&rows, "rows", "n", 10_000, "number of tracks to generate",
	)
	generateCmd.Flags().IntVarP(
		&artists, "artists", "a", 0,
		"number of artists (0 = one artist per 20 tracks)",
	)
	generateCmd.Flags().Uint64VarP(
		&seed, "seed", "s", 0, "random seed (0 = random output)",
	)
	generateCmd.Flags().StringVarP(
		&output, "output", "o", "",
		"output file (default is input.path from config)",
	)

	return generateCmd
}

func runGenerate(sc synth.Config, output string) error {
	ctx, cancel := signalContext()
	defer cancel()

	_, err := ioetl.New(cfg).Generate(ctx, sc, output)
	return err
}
