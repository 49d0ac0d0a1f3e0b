// Package config provides configuration management for GNmusic.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid for local work
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
// - Validate(target) checks settings a particular load target cannot
//   work without, before any connection is attempted
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - SQLite: path
//   - Mongo: uri, database, artists_collection, tracks_collection,
//     batch_size, timeout_sec
//   - Input: path, delimiter, null_token
//   - Load: relational_engine, singles_ids
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNMUSIC_ prefix with underscores for nesting:
//
//	GNMUSIC_DATABASE_HOST=localhost
//	GNMUSIC_MONGO_URI=mongodb://localhost:27017
//	GNMUSIC_LOAD_SINGLES_IDS=stable
//	GNMUSIC_LOG_LEVEL=info
package config

import (
	"runtime"
)

// Config represents the complete GNmusic configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// SQLite contains settings of the file-based relational sink.
	SQLite SQLiteConfig `mapstructure:"sqlite" yaml:"sqlite"`

	// Mongo contains document store settings.
	Mongo MongoConfig `mapstructure:"mongo" yaml:"mongo"`

	// Input describes the tabular source file.
	Input InputConfig `mapstructure:"input" yaml:"input"`

	// Load contains settings shared by all load targets.
	Load LoadConfig `mapstructure:"load" yaml:"load"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers used while building
	// artist documents. Default value is the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `yaml:"-"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize is the number of rows sent to the sink per COPY call.
	// All batches of one load still share a single transaction.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// SQLiteConfig contains settings for the SQLite relational sink.
type SQLiteConfig struct {
	// Path to the SQLite database file. Created if it does not exist.
	Path string `mapstructure:"path" yaml:"path"`
}

// MongoConfig contains MongoDB connection and collection settings.
type MongoConfig struct {
	// URI is a MongoDB connection string. It has no default value.
	URI string `mapstructure:"uri" yaml:"uri"`

	// Database is the name of MongoDB database.
	Database string `mapstructure:"database" yaml:"database"`

	// ArtistsCollection keeps artist documents with nested albums
	// and tracks.
	ArtistsCollection string `mapstructure:"artists_collection" yaml:"artists_collection"`

	// TracksCollection keeps track-centric documents.
	TracksCollection string `mapstructure:"tracks_collection" yaml:"tracks_collection"`

	// BatchSize is the number of documents sent in one BulkWrite call.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`

	// TimeoutSec limits connection and server selection time.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`
}

// InputConfig describes the tabular file with track rows.
type InputConfig struct {
	// Path to the CSV file.
	Path string `mapstructure:"path" yaml:"path"`

	// Delimiter separates fields. Only single-character values are used.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`

	// NullToken is the literal cell value that means "no value".
	// Matching is case-sensitive, so "None" stays a valid string
	// when the token is "none".
	NullToken string `mapstructure:"null_token" yaml:"null_token"`
}

// LoadConfig contains settings that change how data are loaded.
type LoadConfig struct {
	// RelationalEngine selects the relational sink.
	// Valid values: "postgres", "sqlite".
	RelationalEngine string `mapstructure:"relational_engine" yaml:"relational_engine"`

	// SinglesIDs selects how identifiers of "Singles" albums are created.
	// "random" creates a new UUID for every artist on every run.
	// "stable" derives UUID v5 from the artist ID, so repeated runs
	// reuse the same album.
	SinglesIDs string `mapstructure:"singles_ids" yaml:"singles_ids"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "music",
			SSLMode:   "disable",
			BatchSize: 50_000,
		},
		SQLite: SQLiteConfig{
			Path: "music.sqlite",
		},
		Mongo: MongoConfig{
			Database:          "music",
			ArtistsCollection: "artists",
			TracksCollection:  "tracks",
			BatchSize:         10_000,
			TimeoutSec:        30,
		},
		Input: InputConfig{
			Path:      "music_data.csv",
			Delimiter: ",",
			NullToken: "none",
		},
		Load: LoadConfig{
			RelationalEngine: "postgres",
			SinglesIDs:       "random",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
