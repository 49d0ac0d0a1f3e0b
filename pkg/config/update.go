package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir).
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int
	s = c.Database.Host
	if s != "" {
		res = append(res, OptDatabaseHost(s))
	}
	i = c.Database.Port
	if i > 0 {
		res = append(res, OptDatabasePort(i))
	}
	s = c.Database.User
	if s != "" {
		res = append(res, OptDatabaseUser(s))
	}
	s = c.Database.Password
	if s != "" {
		res = append(res, OptDatabasePassword(s))
	}
	s = c.Database.Database
	if s != "" {
		res = append(res, OptDatabaseDatabase(s))
	}
	s = c.Database.SSLMode
	if s != "" {
		res = append(res, OptDatabaseSSLMode(s))
	}
	i = c.Database.BatchSize
	if i > 0 {
		res = append(res, OptDatabaseBatchSize(i))
	}

	s = c.SQLite.Path
	if s != "" {
		res = append(res, OptSQLitePath(s))
	}

	s = c.Mongo.URI
	if s != "" {
		res = append(res, OptMongoURI(s))
	}
	s = c.Mongo.Database
	if s != "" {
		res = append(res, OptMongoDatabase(s))
	}
	s = c.Mongo.ArtistsCollection
	if s != "" {
		res = append(res, OptMongoArtistsCollection(s))
	}
	s = c.Mongo.TracksCollection
	if s != "" {
		res = append(res, OptMongoTracksCollection(s))
	}
	i = c.Mongo.BatchSize
	if i > 0 {
		res = append(res, OptMongoBatchSize(i))
	}
	i = c.Mongo.TimeoutSec
	if i > 0 {
		res = append(res, OptMongoTimeoutSec(i))
	}

	s = c.Input.Path
	if s != "" {
		res = append(res, OptInputPath(s))
	}
	s = c.Input.Delimiter
	if s != "" {
		res = append(res, OptInputDelimiter(s))
	}
	s = c.Input.NullToken
	if s != "" {
		res = append(res, OptInputNullToken(s))
	}

	s = c.Load.RelationalEngine
	if s != "" {
		res = append(res, OptLoadRelationalEngine(s))
	}
	s = c.Load.SinglesIDs
	if s != "" {
		res = append(res, OptLoadSinglesIDs(s))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	i = c.JobsNumber
	if i > 0 {
		res = append(res, OptJobsNumber(i))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

var enums = func() map[string]map[string]struct{} {
	s := struct{}{}
	return map[string]map[string]struct{}{
		"Database.SSLMode": {"disable": s, "require": s,
			"verify-ca": s, "verify-full": s},
		"Load.RelationalEngine": {"postgres": s, "sqlite": s},
		"Load.SinglesIDs":       {"random": s, "stable": s},
		"Log.Level":             {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":            {"json": s, "text": s},
		"Log.Destination":       {"file": s, "stderr": s, "stdout": s},
	}
}()

func isValidEnum(name, val string) bool {
	if _, ok := enums[name][val]; ok {
		return true
	}

	vals := slices.Sorted(maps.Keys(enums[name]))
	var lines []string
	for _, v := range vals {
		lines = append(lines, fmt.Sprintf("  * %s", v))
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
