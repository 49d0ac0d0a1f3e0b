package transform

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnmusic/pkg/errcode"
)

// TransformCancelledError is returned when building documents is
// interrupted by context cancellation.
func TransformCancelledError(err error) error {
	msg := "Building documents was cancelled"

	return &gn.Error{
		Code: errcode.TransformCancelledError,
		Msg:  msg,
		Err:  fmt.Errorf("transform interrupted: %w", err),
	}
}
