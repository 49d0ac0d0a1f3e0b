package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnmusic/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	originalErr := errors.New("permission denied")

	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
		path string
	}{
		{"dir", CreateDirError("/test/dir", originalErr),
			errcode.CreateDirError, "/test/dir"},
		{"copy", CopyFileError("/test/config.yaml", originalErr),
			errcode.CopyFileError, "/test/config.yaml"},
	}

	for _, v := range tests {
		gnErr, ok := v.err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.Equal(t, []any{v.path}, gnErr.Vars, v.msg)
		assert.ErrorIs(t, gnErr.Err, originalErr, v.msg)
		assert.Contains(t, gnErr.Err.Error(), v.path, v.msg)
	}
}
