// Package iofs prepares directories and files that gnmusic keeps in the
// user's home directory.
package iofs

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"

	"github.com/gnames/gnmusic/pkg/config"
)

// ConfigYAML is the template of config.yaml with default settings.
//
//go:embed config.yaml
var ConfigYAML string

// EnsureDirs creates config and log directories if they are missing.
func EnsureDirs(homeDir string) error {
	for _, dir := range []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return CreateDirError(dir, err)
		}
	}
	return nil
}

// EnsureConfigFile writes config.yaml template unless the file exists.
// A user's config file is never overwritten.
func EnsureConfigFile(homeDir string) error {
	path := config.ConfigFilePath(homeDir)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return CopyFileError(path, err)
	}

	if _, err = f.WriteString(ConfigYAML); err != nil {
		f.Close()
		return CopyFileError(path, err)
	}
	if err = f.Close(); err != nil {
		return CopyFileError(path, err)
	}
	return nil
}
