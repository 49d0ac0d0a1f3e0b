package config

import (
	"strings"
	"unicode/utf8"

	"github.com/gnames/gn"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseBatchSize sets the number of rows per COPY call.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptSQLitePath sets the path to SQLite database file.
func OptSQLitePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("SQLite Path", s) {
			c.SQLite.Path = s
		}
	}
}

// OptMongoURI sets MongoDB connection string.
func OptMongoURI(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Mongo URI", s) {
			c.Mongo.URI = s
		}
	}
}

// OptMongoDatabase sets MongoDB database name.
func OptMongoDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Mongo Database", s) {
			c.Mongo.Database = s
		}
	}
}

// OptMongoArtistsCollection sets the collection for artist documents.
func OptMongoArtistsCollection(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Mongo Artists Collection", s) {
			c.Mongo.ArtistsCollection = s
		}
	}
}

// OptMongoTracksCollection sets the collection for track documents.
func OptMongoTracksCollection(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Mongo Tracks Collection", s) {
			c.Mongo.TracksCollection = s
		}
	}
}

// OptMongoBatchSize sets the number of documents per BulkWrite call.
func OptMongoBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Mongo Batch Size", i) {
			c.Mongo.BatchSize = i
		}
	}
}

// OptMongoTimeoutSec sets connection timeout in seconds.
func OptMongoTimeoutSec(i int) Option {
	return func(c *Config) {
		if isValidInt("Mongo Timeout", i) {
			c.Mongo.TimeoutSec = i
		}
	}
}

// OptInputPath sets the path to the tabular file with track rows.
func OptInputPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Path", s) {
			c.Input.Path = s
		}
	}
}

// OptInputDelimiter sets the field delimiter. It has to be exactly one
// character; "\t" is accepted as a tab.
func OptInputDelimiter(s string) Option {
	if s == `\t` {
		s = "\t"
	}
	return func(c *Config) {
		if utf8.RuneCountInString(s) != 1 || s == "\n" || s == "\r" {
			gn.Warn("<em>Input Delimiter</em> has to be one character, ignoring '%s'", s)
			return
		}
		c.Input.Delimiter = s
	}
}

// OptInputNullToken sets the literal value that marks missing data.
// The value is not trimmed or lowercased, matching is exact.
func OptInputNullToken(s string) Option {
	return func(c *Config) {
		if isValidString("Input Null Token", strings.TrimSpace(s)) {
			c.Input.NullToken = s
		}
	}
}

// OptLoadRelationalEngine selects the relational sink.
// Valid values: "postgres", "sqlite".
func OptLoadRelationalEngine(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Load.RelationalEngine", s) {
			c.Load.RelationalEngine = s
		}
	}
}

// OptLoadSinglesIDs selects how "Singles" album identifiers are made.
// Valid values: "random", "stable".
func OptLoadSinglesIDs(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Load.SinglesIDs", s) {
			c.Load.SinglesIDs = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for parallel operations.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
