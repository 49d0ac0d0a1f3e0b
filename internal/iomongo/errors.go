package iomongo

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnmusic/pkg/errcode"
)

// ConnectionError creates an error for failed connection to MongoDB.
func ConnectionError(database string, err error) error {
	msg := `Cannot connect to MongoDB database <em>%s</em>

<em>How to fix:</em>
  1. Check that MongoDB is running
  2. Review GNMUSIC_MONGO_URI or mongo.uri in config.yaml`

	return &gn.Error{
		Code: errcode.MongoConnectionError,
		Msg:  msg,
		Vars: []any{database},
		Err:  fmt.Errorf("failed to connect to MongoDB: %w", err),
	}
}

// NotConnectedError creates an error for writes attempted before
// Connect.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.MongoNotConnectedError,
		Msg:  "Document write attempted without MongoDB connection",
		Err:  fmt.Errorf("not connected to MongoDB"),
	}
}

// WriteError creates an error for a rejected bulk write. Offset is the
// position of the first document of the failed batch.
func WriteError(collection string, offset int, err error) error {
	msg := "Bulk write to <em>%s</em> failed in batch starting at document %d"

	return &gn.Error{
		Code: errcode.DocumentWriteError,
		Msg:  msg,
		Vars: []any{collection, offset},
		Err:  fmt.Errorf("bulk write to %s failed: %w", collection, err),
	}
}
