package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Configuration errors
	ConfigError

	// Extract errors
	SourceNotFoundError
	ReadHeaderError
	ReadRowError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableExistsCheckError

	// Document store errors
	MongoConnectionError
	MongoNotConnectedError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError

	// Load errors
	LoadBeginError
	LoadWriteError
	LoadCommitError
	LoadRollbackError
	DocumentWriteError
	DocumentPartialWriteError

	// Transform errors
	TransformCancelledError

	// Generate errors
	GenerateConfigError
)
