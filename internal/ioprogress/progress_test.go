package ioprogress_test

import (
	"testing"

	"github.com/gnames/gnmusic/internal/ioprogress"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	ioprogress.Quiet = true
	bar := ioprogress.New(10, "Rows: ")
	bar.Add(4)
	bar.Increment()
	assert.Equal(t, int64(5), bar.Current())
	assert.Equal(t, int64(10), bar.Total())
	bar.Finish()
}
