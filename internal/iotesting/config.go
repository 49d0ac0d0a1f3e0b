// Package iotesting provides shared utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"testing"

	"github.com/gnames/gnmusic/internal/ioconfig"
	"github.com/gnames/gnmusic/pkg/config"
)

const (
	// TestDatabaseName is the database name used by all integration
	// tests, so they never touch a real catalog.
	TestDatabaseName = "gnmusic_test"

	// MongoURIEnv must be set for MongoDB integration tests to run.
	MongoURIEnv = "GNMUSIC_MONGO_URI"
)

// Config returns a configuration for integration tests. Settings come
// from environment variables and built-in defaults. The config file in
// the user's home directory is ignored, and database names are forced
// to TestDatabaseName.
func Config(t *testing.T) *config.Config {
	t.Helper()

	cfg, err := ioconfig.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Cannot load test configuration: %v", err)
	}

	cfg.Update([]config.Option{
		config.OptDatabaseDatabase(TestDatabaseName),
		config.OptMongoDatabase(TestDatabaseName),
	})
	return cfg
}

// DatabaseConfig returns PostgreSQL settings for integration tests.
func DatabaseConfig(t *testing.T) *config.DatabaseConfig {
	t.Helper()
	cfg := Config(t)
	return &cfg.Database
}

// MongoConfig returns MongoDB settings for integration tests. The test is
// skipped if MongoDB URI is not provided.
func MongoConfig(t *testing.T) *config.MongoConfig {
	t.Helper()
	if os.Getenv(MongoURIEnv) == "" {
		t.Skipf("Skipping MongoDB test, %s is not set", MongoURIEnv)
	}
	cfg := Config(t)
	return &cfg.Mongo
}
