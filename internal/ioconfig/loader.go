// Package ioconfig loads configuration from config.yaml and environment
// variables.
package ioconfig

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/gnames/gnmusic/pkg/config"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables with settings.
const EnvPrefix = "GNMUSIC"

// envKeys are settings that can be set by environment variables. They
// match fields of config.ToOptions.
var envKeys = []string{
	"database.host",
	"database.port",
	"database.user",
	"database.password",
	"database.database",
	"database.ssl_mode",
	"database.batch_size",
	"sqlite.path",
	"mongo.uri",
	"mongo.database",
	"mongo.artists_collection",
	"mongo.tracks_collection",
	"mongo.batch_size",
	"mongo.timeout_sec",
	"input.path",
	"input.delimiter",
	"input.null_token",
	"load.relational_engine",
	"load.singles_ids",
	"log.level",
	"log.format",
	"log.destination",
	"jobs_number",
}

// EnvVars returns names of all supported environment variables.
func EnvVars() []string {
	res := make([]string, len(envKeys))
	for i, k := range envKeys {
		res[i] = envName(k)
	}
	return res
}

func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Load reads config.yaml from the home directory, if it exists,
// applies environment variables on top, and returns the result merged
// with defaults. Values that do not pass validation are ignored with a
// warning.
func Load(homeDir string) (*config.Config, error) {
	cfgPath := config.ConfigFilePath(homeDir)
	v := viper.New()
	v.SetConfigType("yaml")
	initEnvVars(v)

	_, err := os.Stat(cfgPath)
	switch {
	case err == nil:
		v.SetConfigFile(cfgPath)
		if err = v.ReadInConfig(); err != nil {
			return nil, ReadConfigError(cfgPath, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, ReadConfigError(cfgPath, err)
	}

	var fromViper config.Config
	if err = v.Unmarshal(&fromViper); err != nil {
		return nil, ReadConfigError(cfgPath, err)
	}

	res := config.New()
	res.Update(fromViper.ToOptions())
	res.Update([]config.Option{config.OptHomeDir(homeDir)})
	return res, nil
}

// initEnvVars binds every environment variable explicitly, so it is
// clear which of them are allowed.
func initEnvVars(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, k := range envKeys {
		_ = v.BindEnv(k, envName(k))
	}

	v.AutomaticEnv()
}
