package config

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnmusic/pkg/errcode"
)

// Target is a destination of a load: the relational schema or one of
// the document collections.
type Target string

const (
	// TargetRelational loads artists, albums and tracks tables.
	TargetRelational Target = "relational"
	// TargetArtists loads artist documents with nested albums and tracks.
	TargetArtists Target = "artists"
	// TargetTracks loads track-centric documents.
	TargetTracks Target = "tracks"
)

// Targets lists all supported load targets.
func Targets() []Target {
	return []Target{TargetRelational, TargetArtists, TargetTracks}
}

// NewTarget converts a string to Target. Returns false if the string
// does not name a known target.
func NewTarget(s string) (Target, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range Targets() {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Collection returns the name of the collection that receives documents
// for the target. It is empty for the relational target.
func (c *Config) Collection(t Target) string {
	switch t {
	case TargetArtists:
		return c.Mongo.ArtistsCollection
	case TargetTracks:
		return c.Mongo.TracksCollection
	default:
		return ""
	}
}

// Validate checks that settings required by the target are present.
// It performs no I/O and is meant to run before any connection attempt.
func (c *Config) Validate(t Target) error {
	var missing []string
	check := func(name, val string) {
		if strings.TrimSpace(val) == "" {
			missing = append(missing, name)
		}
	}

	check("input.path", c.Input.Path)
	check("input.null_token", c.Input.NullToken)

	switch t {
	case TargetRelational:
		switch c.Load.RelationalEngine {
		case "postgres":
			check("database.host", c.Database.Host)
			check("database.user", c.Database.User)
			check("database.database", c.Database.Database)
			if c.Database.Port <= 0 {
				missing = append(missing, "database.port")
			}
		case "sqlite":
			check("sqlite.path", c.SQLite.Path)
		default:
			missing = append(missing, "load.relational_engine")
		}
	case TargetArtists, TargetTracks:
		check("mongo.uri", c.Mongo.URI)
		check("mongo.database", c.Mongo.Database)
		check(fmt.Sprintf("mongo.%s_collection", t), c.Collection(t))
	default:
		return ConfigError(string(t), []string{"target"})
	}

	if len(missing) > 0 {
		return ConfigError(string(t), missing)
	}
	return nil
}

// ConfigError creates an error for missing or invalid settings.
func ConfigError(target string, fields []string) error {
	msg := `Configuration is incomplete for <em>%s</em>

<em>Missing or invalid settings:</em> %s

<em>How to fix:</em>
  1. Set them in ~/.config/gnmusic/config.yaml
  2. Or export GNMUSIC_* environment variables`
	vars := []any{target, strings.Join(fields, ", ")}

	return &gn.Error{
		Code: errcode.ConfigError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("invalid configuration for %s: %s",
			target, strings.Join(fields, ", ")),
	}
}
