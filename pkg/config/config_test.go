package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name string `json:"name"`
	Port int    `json:"port"`
}

type validatedConfig struct {
	Name string `json:"name"`
}

var errNameRequired = errors.New("name is required")

func (c *validatedConfig) Validate() error {
	if c.Name == "" {
		return errNameRequired
	}

	return nil
}

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func TestLoadAndValidate(t *testing.T) {
	path := writeConfigFile(t, `{"name":"consumer","port":8090}`)

	var cfg testConfig
	require.NoError(t, LoadAndValidate(path, &cfg))

	assert.Equal(t, "consumer", cfg.Name)
	assert.Equal(t, 8090, cfg.Port)
}

func TestLoadAndValidateMissingFile(t *testing.T) {
	var cfg testConfig

	err := LoadAndValidate(filepath.Join(t.TempDir(), "missing.json"), &cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadAndValidateMalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{"name":`)

	var cfg testConfig
	require.Error(t, LoadAndValidate(path, &cfg))
}

func TestLoadAndValidateNilConfig(t *testing.T) {
	require.ErrorIs(t, LoadAndValidate("unused.json", nil), errInvalidConfigPtr)
}

func TestLoadAndValidateRunsValidateHook(t *testing.T) {
	path := writeConfigFile(t, `{"name":""}`)

	var cfg validatedConfig

	err := LoadAndValidate(path, &cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, errNameRequired)
}
