package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
	Discover DiscoverConfig `yaml:"discover" mapstructure:"discover"`
	Extract  ExtractConfig  `yaml:"extract" mapstructure:"extract"`
	Email    EmailConfig    `yaml:"email" mapstructure:"email"`
	Patterns PatternsConfig `yaml:"patterns" mapstructure:"patterns"`
	Pipeline PipelineConfig `yaml:"pipeline" mapstructure:"pipeline"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// DiscoverConfig configures the company-discovery sources.
type DiscoverConfig struct {
	DirectoryBaseURL  string `yaml:"directory_base_url" mapstructure:"directory_base_url"`
	SearchBaseURL     string `yaml:"search_base_url" mapstructure:"search_base_url"`
	SourceTimeoutSecs int    `yaml:"source_timeout_secs" mapstructure:"source_timeout_secs"`
	DelayMinMs        int    `yaml:"delay_min_ms" mapstructure:"delay_min_ms"`
	DelayMaxMs        int    `yaml:"delay_max_ms" mapstructure:"delay_max_ms"`
}

// ExtractConfig configures per-company contact extraction.
type ExtractConfig struct {
	FetchTimeoutSecs int `yaml:"fetch_timeout_secs" mapstructure:"fetch_timeout_secs"`
	DelayMinMs       int `yaml:"delay_min_ms" mapstructure:"delay_min_ms"`
	DelayMaxMs       int `yaml:"delay_max_ms" mapstructure:"delay_max_ms"`
}

// EmailConfig configures email synthesis and verification.
type EmailConfig struct {
	ProbeEnabled     bool    `yaml:"probe_enabled" mapstructure:"probe_enabled"`
	ProbeTimeoutSecs int     `yaml:"probe_timeout_secs" mapstructure:"probe_timeout_secs"`
	DomainRatePerSec float64 `yaml:"domain_rate_per_sec" mapstructure:"domain_rate_per_sec"`
	HeloDomain       string  `yaml:"helo_domain" mapstructure:"helo_domain"`
	MaxAttempts      int     `yaml:"max_attempts" mapstructure:"max_attempts"`
}

// PatternsConfig configures the domain-pattern cache snapshot.
type PatternsConfig struct {
	SnapshotPath string `yaml:"snapshot_path" mapstructure:"snapshot_path"`
}

// PipelineConfig configures orchestrator behavior.
type PipelineConfig struct {
	MaxConcurrentCompanies int `yaml:"max_concurrent_companies" mapstructure:"max_concurrent_companies"`
	DeadlineSecs           int `yaml:"deadline_secs" mapstructure:"deadline_secs"`
}

// Deadline returns the overall run deadline; zero means no deadline.
func (p PipelineConfig) Deadline() time.Duration {
	return time.Duration(p.DeadlineSecs) * time.Second
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("PROSPECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("discover.directory_base_url", "https://www.yellowpages.com")
	v.SetDefault("discover.search_base_url", "https://www.google.com")
	v.SetDefault("discover.source_timeout_secs", 30)
	v.SetDefault("discover.delay_min_ms", 1000)
	v.SetDefault("discover.delay_max_ms", 3000)
	v.SetDefault("extract.fetch_timeout_secs", 10)
	v.SetDefault("extract.delay_min_ms", 500)
	v.SetDefault("extract.delay_max_ms", 1500)
	v.SetDefault("email.probe_enabled", true)
	v.SetDefault("email.probe_timeout_secs", 10)
	v.SetDefault("email.domain_rate_per_sec", 2.0)
	v.SetDefault("email.helo_domain", "prospect-cli.local")
	v.SetDefault("email.max_attempts", 5)
	v.SetDefault("patterns.snapshot_path", "")
	v.SetDefault("pipeline.max_concurrent_companies", 5)
	v.SetDefault("pipeline.deadline_secs", 0)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
