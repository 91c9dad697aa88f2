package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// Flags are layered on top by the CLI after Load returns.
func Load(ctx context.Context, v *viper.Viper) error {
	// SetConfigFile from --config wins; these paths are fallbacks.
	explicit := v.ConfigFileUsed() != ""
	if !explicit {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "minid"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "minid"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	// A missing file is fine unless it was asked for explicitly.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	// MINID_OUTPUT_FORMAT overrides output.format, and so on.
	v.SetEnvPrefix("minid")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(v.GetString("data_dir")) == "" {
		v.Set("data_dir", defaultDataDir())
	}
	Normalize(v)
	return nil
}

// Normalize lowercases the enum-like options. The CLI calls it again after
// layering flags so --format JSON behaves like MINID_OUTPUT_FORMAT=JSON.
func Normalize(v *viper.Viper) {
	for _, key := range []string{"output.format", "log.level"} {
		v.Set(key, strings.ToLower(strings.TrimSpace(v.GetString(key))))
	}
}

// defaultDataDir resolves $XDG_DATA_HOME/minid or ~/.local/share/minid.
func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "minid")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "minid")
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "minid", "config.toml")
}

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns every supported option with its default. It is the
// single source of truth for defaults, validation and the generated config.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "data_dir", Default: defaultDataDir(), Comment: "Directory for local state; registry DB is data_dir/minid.db"},

		{Key: "output.format", Default: "plain", Comment: "Output format: plain|json|ndjson|pretty"},
		{Key: "output.json_indent", Default: false, Comment: "Indent JSON output"},
		{Key: "output.headers", Default: false, Comment: "Print column headers in plain output"},

		{Key: "generate.count", Default: 1, Comment: "Number of ids printed by generate when -n is not given"},
		{Key: "check.count", Default: 1_000_000, Comment: "Number of ids minted by check"},
		{Key: "check.workers", Default: 1, Comment: "Goroutines used by check"},

		{Key: "registry.enabled", Default: false, Comment: "Record every generated id in the local registry"},

		{Key: "log.level", Default: "warn", Comment: "Log level: debug|info|warn|error"},
	}
}

// ResolveDBPath returns the sqlite registry path under data_dir.
func ResolveDBPath(v *viper.Viper) string {
	dir := v.GetString("data_dir")
	if dir == "" {
		dir = defaultDataDir()
	}
	// Expand ~ for convenience
	if len(dir) > 0 && dir[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, dir[1:])
		}
	}
	return filepath.Join(dir, "minid.db")
}
