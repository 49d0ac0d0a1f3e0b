// Package ioprogress creates terminal progress bars for long
// operations.
package ioprogress

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// Quiet disables drawing of progress bars. Tests and non-interactive
// runs set it to true.
var Quiet bool

// New creates and starts a progress bar with consistent settings.
// When total is unknown it is 0, and the bar shows a counter only.
func New(total int, prefix string) *pb.ProgressBar {
	bar := pb.Full.New(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	if Quiet {
		bar.SetWriter(io.Discard)
	}
	return bar.Start()
}
