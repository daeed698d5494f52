// Package app provides the application initialization and wiring.
package app

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/bnema/edgeselect/internal/adapters/out/telemetry"
	"github.com/bnema/edgeselect/internal/domain"
	"github.com/bnema/edgeselect/pkg/duration"
)

// Config holds the application configuration.
type Config struct {
	Server struct {
		Port   int    `mapstructure:"port"`
		Origin string `mapstructure:"origin"`
	} `mapstructure:"server"`

	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   struct {
			Enabled    bool   `mapstructure:"enabled"`
			Path       string `mapstructure:"path"`
			MaxSize    int    `mapstructure:"max_size"`
			MaxBackups int    `mapstructure:"max_backups"`
			MaxAge     int    `mapstructure:"max_age"`
		} `mapstructure:"file"`
	} `mapstructure:"logging"`

	Discovery struct {
		ManifestURL      string             `mapstructure:"manifest_url"`
		ProxyManifestURL string             `mapstructure:"proxy_manifest_url"`
		Timeout          time.Duration      `mapstructure:"timeout"`
		Static           []domain.Candidate `mapstructure:"static"`
	} `mapstructure:"discovery"`

	Probe struct {
		Timeout      time.Duration `mapstructure:"timeout"`
		EmbedTimeout time.Duration `mapstructure:"embed_timeout"`
		ReuseWindow  time.Duration `mapstructure:"reuse_window"`
	} `mapstructure:"probe"`

	Resolver struct {
		Strategy        string        `mapstructure:"strategy"`
		RoundTimeout    time.Duration `mapstructure:"round_timeout"`
		SmartWaitMargin int           `mapstructure:"smart_wait_margin"`
	} `mapstructure:"resolver"`

	Session struct {
		RevalidateInterval time.Duration `mapstructure:"revalidate_interval"`
		HistorySize        int           `mapstructure:"history_size"`
	} `mapstructure:"session"`

	API struct {
		RateLimit struct {
			Enabled   bool    `mapstructure:"enabled"`
			GlobalRPS float64 `mapstructure:"global_rps"`
			PerIPRPS  float64 `mapstructure:"per_ip_rps"`
			Burst     int     `mapstructure:"burst"`
		} `mapstructure:"rate_limit"`
	} `mapstructure:"api"`

	Embed struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"embed"`

	Telemetry telemetry.Config `mapstructure:"telemetry"`
}

// ManifestURL returns the same-origin manifest location.
func (c Config) ManifestURL() string {
	if c.Discovery.ManifestURL != "" {
		return c.Discovery.ManifestURL
	}
	return strings.TrimSuffix(c.Server.Origin, "/") + "/servers.txt"
}

// OriginProtocol returns the scheme of server.origin, which same-origin
// manifest records inherit. Anything but http yields https.
func (c Config) OriginProtocol() domain.Protocol {
	u, err := url.Parse(c.Server.Origin)
	if err != nil || !domain.Protocol(strings.ToLower(u.Scheme)).Valid() {
		return domain.ProtocolHTTPS
	}
	return domain.Protocol(strings.ToLower(u.Scheme))
}

// Strategy returns the configured resolution strategy.
func (c Config) Strategy() (domain.Strategy, error) {
	return domain.ParseStrategy(c.Resolver.Strategy)
}

// Validate checks values that cannot be defaulted.
func (c Config) Validate() error {
	if _, err := c.Strategy(); err != nil {
		return fmt.Errorf("resolver.strategy: %w", err)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port: invalid port %d", c.Server.Port)
	}
	for i, cand := range c.Discovery.Static {
		if err := cand.Validate(); err != nil {
			return fmt.Errorf("discovery.static[%d]: %w", i, err)
		}
	}
	return nil
}

// initConfig loads configuration from file.
func initConfig(configPath string) (*viper.Viper, Config, error) {
	v := viper.New()
	if err := loadConfig(v, configPath); err != nil {
		return nil, Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	cfg, err := decodeConfig(v)
	if err != nil {
		return nil, Config{}, err
	}
	return v, cfg, nil
}

func decodeConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		duration.DecodeHook(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	for i := range cfg.Discovery.Static {
		if cfg.Discovery.Static[i].Protocol == "" {
			cfg.Discovery.Static[i].Protocol = domain.ProtocolHTTPS
		}
		cfg.Discovery.Static[i].Source = domain.SourceStatic
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadConfig(v *viper.Viper, configPath string) error {
	v.SetDefault("server.port", 8787)
	v.SetDefault("server.origin", "https://ccported.click")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.max_size", 100)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 28)
	v.SetDefault("discovery.manifest_url", "")
	v.SetDefault("discovery.proxy_manifest_url", "")
	v.SetDefault("discovery.timeout", "5s")
	v.SetDefault("probe.timeout", "5s")
	v.SetDefault("probe.embed_timeout", "3s")
	v.SetDefault("probe.reuse_window", "0s")
	v.SetDefault("resolver.strategy", string(domain.DefaultStrategy))
	v.SetDefault("resolver.round_timeout", "15s")
	v.SetDefault("resolver.smart_wait_margin", 1)
	v.SetDefault("session.revalidate_interval", "5m")
	v.SetDefault("session.history_size", 100)
	v.SetDefault("api.rate_limit.enabled", true)
	v.SetDefault("api.rate_limit.global_rps", 20)
	v.SetDefault("api.rate_limit.per_ip_rps", 2)
	v.SetDefault("api.rate_limit.burst", 5)
	v.SetDefault("embed.enabled", true)
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "")

	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("EDGESELECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return nil
}

// ConfigureViper points v at the config file.
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}
	v.SetConfigName("edgeselect")
	v.SetConfigType("toml")
	v.AddConfigPath("/etc/edgeselect")
	v.AddConfigPath("$HOME/.config/edgeselect")
	v.AddConfigPath(".")
}

// initLogger initializes the zerowrap logger.
func initLogger(cfg Config) (zerowrap.Logger, func(), error) {
	logConfig := zerowrap.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}

	if cfg.Logging.File.Enabled {
		logPath := cfg.Logging.File.Path
		if logPath == "" {
			logPath = filepath.Join(".", "logs", "edgeselect.log")
		}

		log, cleanup, err := zerowrap.NewWithFile(logConfig, zerowrap.FileConfig{
			Enabled:    true,
			Path:       logPath,
			MaxSize:    cfg.Logging.File.MaxSize,
			MaxBackups: cfg.Logging.File.MaxBackups,
			MaxAge:     cfg.Logging.File.MaxAge,
			Compress:   true,
		})
		if err != nil {
			return zerowrap.Default(), nil, fmt.Errorf("failed to create logger with file: %w", err)
		}
		return log, cleanup, nil
	}

	return zerowrap.New(logConfig), nil, nil
}
