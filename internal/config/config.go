package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SPAMTEST_EVALUATION_HOLDOUT.
const EnvPrefix = "SPAMTEST"

type Config struct {
	Corpus     CorpusConfig     `mapstructure:"corpus"`
	Tokenizer  TokenizerConfig  `mapstructure:"tokenizer"`
	Evaluation EvaluationConfig `mapstructure:"evaluation"`
	Report     ReportConfig     `mapstructure:"report"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

type CorpusConfig struct {
	Dir      string      `mapstructure:"dir"`
	SpamDir  string      `mapstructure:"spam_dir"`
	HamDir   string      `mapstructure:"ham_dir"`
	Count    int         `mapstructure:"count"`
	Encoding string      `mapstructure:"encoding"`
	Store    StoreConfig `mapstructure:"store"`
}

// StoreConfig selects a database/sql driver ("sqlite3" or "sqlite") for the
// corpus. An empty driver keeps the corpus in memory.
type StoreConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type TokenizerConfig struct {
	Kind       string   `mapstructure:"kind"` // segment, simple or stem
	Language   string   `mapstructure:"language"`
	Dictionary []string `mapstructure:"dictionary"`
}

type EvaluationConfig struct {
	HoldOut int    `mapstructure:"holdout"`
	Mode    string `mapstructure:"mode"`
	Seed    int64  `mapstructure:"seed"` // 0 seeds from the clock
	Runs    int    `mapstructure:"runs"`
}

type ReportConfig struct {
	Format string `mapstructure:"format"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("corpus.dir", "email")
	v.SetDefault("corpus.spam_dir", "spam")
	v.SetDefault("corpus.ham_dir", "ham")
	v.SetDefault("corpus.count", 10)
	v.SetDefault("corpus.encoding", "gb2312")
	v.SetDefault("corpus.store.driver", "")
	v.SetDefault("corpus.store.dsn", "")
	v.SetDefault("tokenizer.kind", "segment")
	v.SetDefault("tokenizer.language", "english")
	v.SetDefault("tokenizer.dictionary", []string{})
	v.SetDefault("evaluation.holdout", 5)
	v.SetDefault("evaluation.mode", "presence")
	v.SetDefault("evaluation.seed", 0)
	v.SetDefault("evaluation.runs", 1)
	v.SetDefault("report.format", "text")
	v.SetDefault("logging.level", "info")
}

// Load reads the config file at path, if any, applies environment overrides
// and defaults, and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	switch {
	case c.Corpus.Count < 0:
		return fmt.Errorf("config: corpus.count must not be negative, got %d", c.Corpus.Count)
	case c.Evaluation.HoldOut < 0:
		return fmt.Errorf("config: evaluation.holdout must not be negative, got %d", c.Evaluation.HoldOut)
	case c.Evaluation.Runs < 1:
		return fmt.Errorf("config: evaluation.runs must be at least 1, got %d", c.Evaluation.Runs)
	}
	switch c.Tokenizer.Kind {
	case "segment", "simple", "stem":
	default:
		return fmt.Errorf("config: unknown tokenizer.kind %q", c.Tokenizer.Kind)
	}
	switch c.Report.Format {
	case "text", "yaml":
	default:
		return fmt.Errorf("config: unknown report.format %q", c.Report.Format)
	}
	return nil
}
