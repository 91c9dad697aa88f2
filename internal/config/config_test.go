package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmp, "data"))
	t.Chdir(tmp)

	v := viper.New()
	require.NoError(t, Load(context.Background(), v))

	assert.Equal(t, "plain", v.GetString("output.format"))
	assert.Equal(t, 1, v.GetInt("generate.count"))
	assert.Equal(t, 1_000_000, v.GetInt("check.count"))
	assert.Equal(t, filepath.Join(tmp, "data", "minid"), v.GetString("data_dir"))
	assert.Equal(t, filepath.Join(tmp, "data", "minid", "minid.db"), ResolveDBPath(v))
	assert.NoError(t, CheckConfigValidity(v))
}

func TestLoadFileAndEnv(t *testing.T) {
	tmp := t.TempDir()
	cfg := filepath.Join(tmp, "config.toml")
	content := "data_dir = \"" + strings.ReplaceAll(tmp, "\\", "\\\\") + "\"\n[output]\nformat = \"JSON\"\n[generate]\ncount = 5\n"
	require.NoError(t, os.WriteFile(cfg, []byte(content), 0o600))
	t.Setenv("MINID_GENERATE_COUNT", "7")

	v := viper.New()
	v.SetConfigFile(cfg)
	require.NoError(t, Load(context.Background(), v))

	assert.Equal(t, "json", v.GetString("output.format"), "format is normalized to lower case")
	assert.Equal(t, 7, v.GetInt("generate.count"), "env wins over file")
	assert.Equal(t, tmp, v.GetString("data_dir"))
}

func TestNormalize(t *testing.T) {
	v := viper.New()
	v.Set("output.format", " NDJSON ")
	v.Set("log.level", "Debug")
	applyDefaults(v)
	require.Error(t, CheckConfigValidity(v))

	Normalize(v)
	assert.Equal(t, "ndjson", v.GetString("output.format"))
	assert.Equal(t, "debug", v.GetString("log.level"))
	assert.NoError(t, CheckConfigValidity(v))
}

func TestLoadMissingExplicitFile(t *testing.T) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, Load(context.Background(), v))
}

func TestCheckConfigValidityInvalid(t *testing.T) {
	v := viper.New()
	v.Set("output.format", "xml")
	v.Set("log.level", "loud")
	v.Set("generate.count", 0)
	v.Set("check.count", -1)
	v.Set("check.workers", 0)
	v.Set("registry.enabled", true)
	v.Set("data_dir", "")

	err := CheckConfigValidity(v)
	require.Error(t, err)

	msg := err.Error()
	for _, want := range []string{
		"output.format must be one of",
		"log.level must be one of",
		"generate.count must be greater than 0",
		"check.count must be greater than 0",
		"check.workers must be greater than 0",
		"data_dir is required",
	} {
		assert.Contains(t, msg, want)
	}
}

func TestRenderDefaultTOML(t *testing.T) {
	out := RenderDefaultTOML()
	assert.Contains(t, out, "[output]\n")
	assert.Contains(t, out, "format = \"plain\"")
	assert.Contains(t, out, "[check]\n")
	assert.Contains(t, out, "count = 1000000")

	// The rendered file must load back to the same defaults.
	tmp := t.TempDir()
	cfg := filepath.Join(tmp, "config.toml")
	require.NoError(t, os.WriteFile(cfg, []byte(out), 0o600))
	v := viper.New()
	v.SetConfigFile(cfg)
	require.NoError(t, Load(context.Background(), v))
	assert.NoError(t, CheckConfigValidity(v))
	assert.Equal(t, 1, v.GetInt("check.workers"))
}
