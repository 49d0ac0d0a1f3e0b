package lifecycle_test

import (
	"testing"

	"github.com/gnames/gnmusic/pkg/lifecycle"
	"github.com/stretchr/testify/assert"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		state lifecycle.State
		str   string
	}{
		{lifecycle.StateDisconnected, "disconnected"},
		{lifecycle.StateConnected, "connected"},
		{lifecycle.StateWriting, "writing"},
		{lifecycle.StateCommitted, "committed"},
		{lifecycle.StateFailed, "failed"},
		{lifecycle.StateClosed, "closed"},
		{lifecycle.State(42), "unknown"},
	}
	for _, v := range tests {
		assert.Equal(t, v.str, v.state.String())
	}
}

func TestUpsertResult(t *testing.T) {
	r := lifecycle.UpsertResult{Matched: 1, Modified: 1, Upserted: 2}
	r = r.Add(lifecycle.UpsertResult{Matched: 3, Upserted: 1})
	assert.Equal(t, lifecycle.UpsertResult{Matched: 4, Modified: 1, Upserted: 3}, r)
	assert.Equal(t, int64(7), r.Total())
}

func TestLoadReportTotal(t *testing.T) {
	r := lifecycle.LoadReport{Tables: []lifecycle.TableCount{
		{"artists", 2}, {"albums", 3}, {"tracks", 10},
	}}
	assert.Equal(t, int64(15), r.Total())
	assert.Zero(t, lifecycle.LoadReport{}.Total())
}
