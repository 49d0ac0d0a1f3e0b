package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/gnames/gnmusic/internal/ioprogress"
	"github.com/gnames/gnmusic/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func init() {
	ioprogress.Quiet = true
}

// testConfig points all files of the configuration to a temporary
// directory.
func testConfig(t *testing.T) *config.Config {
	dir := t.TempDir()
	res := config.New()
	res.Update([]config.Option{
		config.OptHomeDir(dir),
		config.OptInputPath(filepath.Join(dir, "music.csv")),
		config.OptSQLitePath(filepath.Join(dir, "music.sqlite")),
	})
	return res
}

// TestGetRootCmd_Exists verifies getRootCmd returns
// a valid command with subcommands.
func TestGetRootCmd_Exists(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd, "Root command should exist")
	assert.Equal(t, "gnmusic", cmd.Use,
		"Command name should be gnmusic")

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"create", "generate", "load"})
}

// TestGetRootCmd_VersionFormat verifies version
// output format.
func TestGetRootCmd_VersionFormat(t *testing.T) {
	for _, flag := range []string{"--version", "-V"} {
		cmd := getRootCmd()
		cmd.Version = "version: v1.2.3\nbuild:   abc123"

		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		cmd.SetArgs([]string{flag})

		err := cmd.Execute()
		require.NoError(t, err)

		output := buf.String()
		assert.Contains(t, output, "v1.2.3")
		assert.Contains(t, output, "abc123")
	}
}

// TestGetRootCmd_HelpText verifies help text content.
func TestGetRootCmd_HelpText(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	assert.Contains(t, helpText, "GNmusic")
	assert.Contains(t, helpText, "GNMUSIC_")
	assert.Contains(t, helpText, "config.yaml")
}

// TestConfigYAML verifies the password is hidden.
func TestConfigYAML(t *testing.T) {
	c := testConfig(t)
	c.Update([]config.Option{config.OptDatabasePassword("secret")})

	out, err := configYAML(c)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "secret")
	assert.Equal(t, "secret", c.Database.Password,
		"Original config must not change")

	var res config.Config
	require.NoError(t, yaml.Unmarshal(out, &res))
	assert.Equal(t, c.SQLite.Path, res.SQLite.Path)
	assert.Equal(t, "********", res.Database.Password)
}
