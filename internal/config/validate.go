package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var (
	outputFormats = []string{"plain", "json", "ndjson", "pretty"}
	logLevels     = []string{"debug", "info", "warn", "error"}
)

// CheckConfigValidity reports every invalid option at once.
func CheckConfigValidity(v *viper.Viper) error {
	var errs []error

	if f := v.GetString("output.format"); !contains(outputFormats, f) {
		errs = append(errs, fmt.Errorf("output.format must be one of %s, got %q", strings.Join(outputFormats, "|"), f))
	}
	if l := v.GetString("log.level"); !contains(logLevels, l) {
		errs = append(errs, fmt.Errorf("log.level must be one of %s, got %q", strings.Join(logLevels, "|"), l))
	}
	for _, key := range []string{"generate.count", "check.count", "check.workers"} {
		if v.GetInt(key) <= 0 {
			errs = append(errs, fmt.Errorf("%s must be greater than 0", key))
		}
	}
	if v.GetBool("registry.enabled") && strings.TrimSpace(v.GetString("data_dir")) == "" {
		errs = append(errs, errors.New("data_dir is required when registry.enabled is true"))
	}
	return errors.Join(errs...)
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
