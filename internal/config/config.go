// Package config loads application configuration from file and environment
// and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sells-group/esg-leads-cli/internal/engine"
)

// Config holds the full application configuration.
type Config struct {
	Search   SearchConfig   `yaml:"search" mapstructure:"search"`
	Harvest  HarvestConfig  `yaml:"harvest" mapstructure:"harvest"`
	Keywords KeywordsConfig `yaml:"keywords" mapstructure:"keywords"`
	Weights  engine.Weights `yaml:"weights" mapstructure:"weights"`
	Contacts ContactsConfig `yaml:"contacts" mapstructure:"contacts"`
	Notion   NotionConfig   `yaml:"notion" mapstructure:"notion"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// SearchConfig holds provider credentials and fan-out behavior.
type SearchConfig struct {
	SerpAPIKey   string `yaml:"serpapi_key" mapstructure:"serpapi_key"`
	BingKey      string `yaml:"bing_key" mapstructure:"bing_key"`
	BingEndpoint string `yaml:"bing_endpoint" mapstructure:"bing_endpoint"`
	NewsAPIKey   string `yaml:"newsapi_key" mapstructure:"newsapi_key"`
	ResultLimit  int    `yaml:"result_limit" mapstructure:"result_limit"`
	Concurrency  int    `yaml:"concurrency" mapstructure:"concurrency"`
}

// HarvestConfig holds the query-grid dimensions.
type HarvestConfig struct {
	Markets    []string `yaml:"markets" mapstructure:"markets"`
	Industries []string `yaml:"industries" mapstructure:"industries"`
	Topics     []string `yaml:"topics" mapstructure:"topics"`
}

// KeywordsConfig points at an optional keyword-library override file.
type KeywordsConfig struct {
	File string `yaml:"file" mapstructure:"file"`
}

// ContactsConfig configures best-effort contact discovery.
type ContactsConfig struct {
	Enabled           bool    `yaml:"enabled" mapstructure:"enabled"`
	MaxPagesPerDomain int     `yaml:"max_pages_per_domain" mapstructure:"max_pages_per_domain"`
	DelaySecs         float64 `yaml:"delay_secs" mapstructure:"delay_secs"`
	MaxDomains        int     `yaml:"max_domains" mapstructure:"max_domains"`
}

// NotionConfig holds the optional Notion lead-database target.
type NotionConfig struct {
	Token  string `yaml:"token" mapstructure:"token"`
	LeadDB string `yaml:"lead_db" mapstructure:"lead_db"`
}

// ServerConfig configures the scoring server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("ESGLEADS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("search.serpapi_key", "")
	v.SetDefault("search.bing_key", "")
	v.SetDefault("search.newsapi_key", "")
	v.SetDefault("search.bing_endpoint", "https://api.bing.microsoft.com/v7.0/search")
	v.SetDefault("search.result_limit", 10)
	v.SetDefault("search.concurrency", 4)
	v.SetDefault("harvest.markets", []string{"India", "UAE", "Vietnam", "European Union", "Singapore", "UK"})
	v.SetDefault("harvest.industries", []string{"manufacturing", "pharmaceuticals", "FMCG", "energy", "real estate", "consumer brands", "exporters"})
	v.SetDefault("harvest.topics", []string{"BRSR", "CSRD", "Scope 3", "carbon credits", "sustainability report", "ESG strategy", "assurance"})
	v.SetDefault("keywords.file", "")
	v.SetDefault("notion.token", "")
	v.SetDefault("notion.lead_db", "")
	v.SetDefault("contacts.enabled", false)
	v.SetDefault("contacts.max_pages_per_domain", 3)
	v.SetDefault("contacts.delay_secs", 2.0)
	v.SetDefault("contacts.max_domains", 30)
	v.SetDefault("weights.per_hit", 2)
	v.SetDefault("weights.per_compliance_hit", 3)
	v.SetDefault("weights.market_bonus", 2)
	v.SetDefault("weights.industry_bonus", 2)
	v.SetDefault("weights.recency_bonus", 1)
	v.SetDefault("weights.provider_bonus", 6)
	v.SetDefault("weights.per_intent_label", 3)
	v.SetDefault("weights.segment_bonus", 4)

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

// Validate checks that the configuration is internally consistent.
func Validate(cfg *Config) error {
	var errs []string

	for name, w := range map[string]int{
		"per_hit":            cfg.Weights.PerHit,
		"per_compliance_hit": cfg.Weights.PerComplianceHit,
		"market_bonus":       cfg.Weights.MarketBonus,
		"industry_bonus":     cfg.Weights.IndustryBonus,
		"recency_bonus":      cfg.Weights.RecencyBonus,
		"provider_bonus":     cfg.Weights.ProviderBonus,
		"per_intent_label":   cfg.Weights.PerIntentLabel,
		"segment_bonus":      cfg.Weights.SegmentBonus,
	} {
		if w < 0 {
			errs = append(errs, name+" must be >= 0")
		}
	}

	if cfg.Search.ResultLimit < 1 {
		errs = append(errs, "search.result_limit must be >= 1")
	}
	if cfg.Search.Concurrency < 1 {
		errs = append(errs, "search.concurrency must be >= 1")
	}
	if cfg.Contacts.MaxPagesPerDomain < 1 {
		errs = append(errs, "contacts.max_pages_per_domain must be >= 1")
	}
	if cfg.Contacts.DelaySecs < 0 {
		errs = append(errs, "contacts.delay_secs must be >= 0")
	}

	if len(errs) > 0 {
		return eris.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
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
