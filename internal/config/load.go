package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"regexbench/internal/timer"
)

// EnvPrefix prefixes every environment override, e.g. REGEXBENCH_ENGINE or
// REGEXBENCH_TIMER_MAX_ITERATIONS.
const EnvPrefix = "REGEXBENCH"

// SlackTokenEnv holds the bot token used for run notifications.
const SlackTokenEnv = "SLACK_BOT_USER_TOKEN"

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault("engine", "go")
	viper.SetDefault("results_dir", "benchmarks/results")
	viper.SetDefault("timer.target_runtime", timer.DefaultTargetRuntime)
	viper.SetDefault("timer.max_iterations", timer.DefaultMaxIterations)
	viper.SetDefault("timer.warmup_runs", timer.DefaultWarmupRuns)
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")
	viper.SetDefault("history.driver", "")
	viper.SetDefault("history.dsn", "")
	viper.SetDefault("metrics.textfile", "")
	viper.SetDefault("notifications.slack.enabled", false)
	viper.SetDefault("notifications.slack.channel", "#benchmarks")
}

// Load initializes the configuration from .env, an optional config file and
// environment variables. Without cfgFile a config.yaml in the working
// directory is used if present; its absence is not an error.
func Load(cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"engine":         "engine",
	"results-dir":    "results_dir",
	"target-runtime": "timer.target_runtime",
	"max-iterations": "timer.max_iterations",
	"warmup-runs":    "timer.warmup_runs",
	"verbose":        "verbose",
	"log-file":       "log_file",
}

// BindFlags binds whichever known flags fs defines to their configuration
// keys so an explicitly set flag overrides file and environment values.
func BindFlags(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}
	return nil
}

// HistorySettings selects the run history backend.
type HistorySettings struct {
	Driver string
	DSN    string
}

// SlackSettings configures run notifications.
type SlackSettings struct {
	Enabled bool
	Channel string
	Token   string
}

// Settings is a typed snapshot of the configuration.
type Settings struct {
	Engine          string
	ResultsDir      string
	Timer           timer.Config
	Verbose         bool
	LogFile         string
	History         HistorySettings
	MetricsTextfile string
	Slack           SlackSettings
}

// Current reads the active configuration.
func Current() Settings {
	return Settings{
		Engine:     viper.GetString("engine"),
		ResultsDir: viper.GetString("results_dir"),
		Timer: timer.Config{
			TargetRuntime: targetRuntime(),
			MaxIterations: viper.GetUint64("timer.max_iterations"),
			WarmupRuns:    viper.GetInt("timer.warmup_runs"),
		},
		Verbose: viper.GetBool("verbose"),
		LogFile: viper.GetString("log_file"),
		History: HistorySettings{
			Driver: viper.GetString("history.driver"),
			DSN:    viper.GetString("history.dsn"),
		},
		MetricsTextfile: viper.GetString("metrics.textfile"),
		Slack: SlackSettings{
			Enabled: viper.GetBool("notifications.slack.enabled"),
			Channel: viper.GetString("notifications.slack.channel"),
			Token:   os.Getenv(SlackTokenEnv),
		},
	}
}

// targetRuntime reads timer.target_runtime. Strings use time.ParseDuration
// syntax ("250ms"); bare integers are nanoseconds.
func targetRuntime() time.Duration {
	return viper.GetDuration("timer.target_runtime")
}
