package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// DefaultEnvPrefix is the conventional prefix for ApplyEnv.
const DefaultEnvPrefix = "SIMLATH"

// Config describes one pipeline.
type Config struct {
	Name        string      `yaml:"name"`
	Simplifiers []StageSpec `yaml:"simplifiers"`
	Tokenizers  []StageSpec `yaml:"tokenizers"`
	Metric      StageSpec   `yaml:"metric"`
	Cache       CacheConfig `yaml:"cache"`
	Log         LogConfig   `yaml:"log"`
}

// CacheConfig sizes the pipeline LRU caches; 0 disables a cache.
type CacheConfig struct {
	Simplifier int `yaml:"simplifier"`
	Tokenizer  int `yaml:"tokenizer"`
}

// LogConfig selects the logger built by NewLogger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// StageSpec names a stage type and its parameters. In YAML it is either a
// bare type name or a mapping with a "type" key.
type StageSpec struct {
	Type   string
	Params Params
}

// Params holds stage parameters as strings.
type Params map[string]string

// UnmarshalYAML accepts "lower" as well as {type: lower, lang: tr}.
func (s *StageSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		s.Type = strings.TrimSpace(node.Value)
		s.Params = nil
		return nil
	}

	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	typ, ok := raw["type"].(string)
	if !ok || typ == "" {
		return fmt.Errorf("line %d: stage mapping needs a string \"type\": %w", node.Line, ErrUnknownStage)
	}
	s.Type = strings.TrimSpace(typ)
	s.Params = make(Params, len(raw)-1)
	for k, v := range raw {
		if k == "type" {
			continue
		}
		s.Params[k] = fmt.Sprint(v)
	}
	return nil
}

// MarshalYAML writes a bare name when there are no parameters.
func (s StageSpec) MarshalYAML() (any, error) {
	if len(s.Params) == 0 {
		return s.Type, nil
	}
	out := make(map[string]string, len(s.Params)+1)
	for k, v := range s.Params {
		out[k] = v
	}
	out["type"] = s.Type
	return out, nil
}

// Default returns the settings used for anything a file leaves out.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "json"},
	}
}

// Parse decodes YAML over Default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Metric.Type == "" {
		return nil, ErrMissingMetric
	}
	return &cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// overrides mirrors the tunables that may come from the environment.
// Pointers stay nil for unset variables.
type overrides struct {
	Name            *string `envconfig:"NAME"`
	SimplifierCache *int    `envconfig:"SIMPLIFIER_CACHE"`
	TokenizerCache  *int    `envconfig:"TOKENIZER_CACHE"`
	LogLevel        *string `envconfig:"LOG_LEVEL"`
	LogFormat       *string `envconfig:"LOG_FORMAT"`
}

// ApplyEnv overlays environment variables named prefix_NAME,
// prefix_SIMPLIFIER_CACHE, prefix_TOKENIZER_CACHE, prefix_LOG_LEVEL and
// prefix_LOG_FORMAT onto cfg.
func (cfg *Config) ApplyEnv(prefix string) error {
	var env overrides
	if err := envconfig.Process(prefix, &env); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	if env.Name != nil {
		cfg.Name = *env.Name
	}
	if env.SimplifierCache != nil {
		cfg.Cache.Simplifier = *env.SimplifierCache
	}
	if env.TokenizerCache != nil {
		cfg.Cache.Tokenizer = *env.TokenizerCache
	}
	if env.LogLevel != nil {
		cfg.Log.Level = *env.LogLevel
	}
	if env.LogFormat != nil {
		cfg.Log.Format = *env.LogFormat
	}
	return nil
}
