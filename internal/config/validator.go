package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"regexbench/internal/matcher"
)

// HistoryDrivers lists the accepted history.driver values. The empty string
// disables history.
var HistoryDrivers = []string{"", "sqlite", "postgres"}

// ValidateConfig validates configuration values and returns an error listing
// every invalid one. It should be called after Load.
func ValidateConfig() error {
	var errors []string

	if d := targetRuntime(); d <= 0 {
		errors = append(errors, fmt.Sprintf("timer.target_runtime must be positive, got: %v", viper.Get("timer.target_runtime")))
	}

	if n := viper.GetInt64("timer.max_iterations"); n <= 0 {
		errors = append(errors, fmt.Sprintf("timer.max_iterations must be positive, got: %d", n))
	}

	if n := viper.GetInt("timer.warmup_runs"); n < 0 {
		errors = append(errors, fmt.Sprintf("timer.warmup_runs must not be negative, got: %d", n))
	}

	engine := viper.GetString("engine")
	if _, err := matcher.Lookup(engine); err != nil {
		errors = append(errors, fmt.Sprintf("engine must be one of %v, got: %q", matcher.Names(), engine))
	}

	if viper.GetString("results_dir") == "" {
		errors = append(errors, "results_dir must not be empty")
	}

	driver := viper.GetString("history.driver")
	if !slices.Contains(HistoryDrivers, driver) {
		errors = append(errors, fmt.Sprintf("history.driver must be sqlite or postgres, got: %q", driver))
	}
	if driver == "postgres" && viper.GetString("history.dsn") == "" {
		errors = append(errors, "history.dsn is required for the postgres driver")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}
	return nil
}
