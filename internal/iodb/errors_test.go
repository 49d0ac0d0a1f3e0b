package iodb

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnmusic/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionError(t *testing.T) {
	originalErr := errors.New("connection refused")

	err := ConnectionError("localhost", 5432, "music", "postgres",
		originalErr)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
	assert.Len(t, gnErr.Vars, 5)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}

func TestNotConnectedError(t *testing.T) {
	gnErr, ok := NotConnectedError().(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
}

func TestTableCheckError(t *testing.T) {
	originalErr := errors.New("query failed")

	gnErr, ok := TableCheckError("artists", originalErr).(*gn.Error)
	require.True(t, ok)

	assert.Equal(t, errcode.DBTableExistsCheckError, gnErr.Code)
	assert.Equal(t, []any{"artists"}, gnErr.Vars)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}
