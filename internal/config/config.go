package config

import (
	"fmt"

	pkgconfig "github.com/ceccec/zeropoint/pkg/config"
	"github.com/ceccec/zeropoint/pkg/generator"
	"github.com/ceccec/zeropoint/pkg/identifier"
)

type Config struct {
	Server    ServerConfig
	Generator GeneratorConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type GeneratorConfig struct {
	PatternLayout    string `mapstructure:"pattern_layout"`
	DefaultNamespace string `mapstructure:"default_namespace"`
	MaxBatch         int    `mapstructure:"max_batch"`
}

type LogConfig struct {
	Level  string
	Pretty bool
}

// Layout returns the configured pattern layout.
func (g GeneratorConfig) Layout() generator.Layout {
	return generator.ParseLayout(g.PatternLayout)
}

// Namespace resolves DefaultNamespace, which may be a predefined name or an
// identifier literal.
func (g GeneratorConfig) Namespace() (identifier.ID, error) {
	if ns, ok := identifier.NamespaceByName(g.DefaultNamespace); ok {
		return ns, nil
	}
	ns, err := identifier.Parse(g.DefaultNamespace)
	if err != nil {
		return identifier.ID{}, fmt.Errorf("generator.default_namespace: %w", err)
	}
	return ns, nil
}

// Load reads ./config/config.yaml (optional) and the environment.
func Load() (*Config, error) {
	return LoadFrom("./config")
}

// LoadFrom is Load with an explicit config directory.
func LoadFrom(dir string) (*Config, error) {
	v, err := pkgconfig.Load(dir, "config", "")
	if err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8095)
	v.SetDefault("generator.pattern_layout", generator.LayoutCompat.String())
	v.SetDefault("generator.default_namespace", "url")
	v.SetDefault("generator.max_batch", 1000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// Override from environment
	v.BindEnv("server.port", "PORT")
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("generator.pattern_layout", "PATTERN_LAYOUT")
	v.BindEnv("generator.max_batch", "MAX_BATCH")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Generator.MaxBatch < 1 {
		return nil, fmt.Errorf("generator.max_batch must be at least 1, got %d", cfg.Generator.MaxBatch)
	}
	if _, err := cfg.Generator.Namespace(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
