package ioetl

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnmusic/internal/iocsv"
	"github.com/gnames/gnmusic/pkg/synth"
)

// Generate writes fake catalog rows to the output file using the
// delimiter and null token of the input configuration. Returns the
// number of written rows.
func (e *ETL) Generate(
	ctx context.Context,
	cfg synth.Config,
	output string,
) (int, error) {
	if cfg.Rows <= 0 {
		return 0, GenerateConfigError("rows", cfg.Rows)
	}
	if cfg.Artists < 0 {
		return 0, GenerateConfigError("artists", cfg.Artists)
	}

	start := time.Now()
	gen := synth.New(cfg)
	cfg = gen.Config()
	slog.Info("Generating catalog",
		"rows", cfg.Rows,
		"artists", cfg.Artists,
		"seed", cfg.Seed,
		"output", output,
	)

	w := iocsv.NewWriter(output, e.cfg.Input)
	n, err := w.Write(ctx, gen.Generate(), cfg.Rows)
	if err != nil {
		return n, err
	}

	dur := time.Since(start)
	gn.Info(
		"Generated %s rows for %s artists in <em>%s</em>\n\tOutput: <em>%s</em>",
		humanize.Comma(int64(n)),
		humanize.Comma(int64(cfg.Artists)),
		gnfmt.TimeString(dur.Seconds()),
		output,
	)
	return n, nil
}
