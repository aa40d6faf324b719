package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yanqian/news-summarizer/internal/domain/session"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Inference InferenceConfig `yaml:"inference"`
	Session   SessionConfig   `yaml:"session"`
	Client    ClientConfig    `yaml:"client"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string        `yaml:"address"`
	ReadTimeout    time.Duration `yaml:"readTimeout"`
	WriteTimeout   time.Duration `yaml:"writeTimeout"`
	AllowedOrigins []string      `yaml:"allowedOrigins"`
}

// InferenceConfig points at the upstream summarization model.
type InferenceConfig struct {
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"apiKey"`
	// Timeout of zero waits for the upstream indefinitely.
	Timeout time.Duration `yaml:"timeout"`
}

// SessionConfig seeds the server-side session.
type SessionConfig struct {
	DefaultPreset string `yaml:"defaultPreset"`
}

// ClientConfig is used by the terminal client to reach the proxy route.
type ClientConfig struct {
	Endpoint string `yaml:"endpoint"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_READ_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.ReadTimeout = parsed
		}
	}
	if v := os.Getenv("HTTP_WRITE_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.WriteTimeout = parsed
		}
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("INFERENCE_ENDPOINT"); v != "" {
		cfg.Inference.Endpoint = v
	}
	// HF_API_TOKEN matches the variable the hosted proxy route reads.
	if v := os.Getenv("HF_API_TOKEN"); v != "" {
		cfg.Inference.APIKey = v
	}
	if v := os.Getenv("INFERENCE_API_KEY"); v != "" {
		cfg.Inference.APIKey = v
	}
	if v := os.Getenv("INFERENCE_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Inference.Timeout = parsed
		}
	}
	if v := os.Getenv("SESSION_DEFAULT_PRESET"); v != "" {
		cfg.Session.DefaultPreset = v
	}
	if v := os.Getenv("SUMMARIZE_ENDPOINT"); v != "" {
		cfg.Client.Endpoint = v
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:     ":8080",
			ReadTimeout: 5 * time.Second,
			// Model cold starts can take minutes; the write deadline must not
			// cut the proxy off before the upstream answers.
			WriteTimeout: 0,
		},
		Inference: InferenceConfig{
			Endpoint: "https://api-inference.huggingface.co/models/facebook/bart-large-cnn",
		},
		Session: SessionConfig{
			DefaultPreset: string(session.DefaultPreset),
		},
		Client: ClientConfig{
			Endpoint: "http://localhost:8080/api/summarize",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.ReadTimeout < 0 || c.HTTP.WriteTimeout < 0 {
		return errors.New("http timeouts cannot be negative")
	}
	if strings.TrimSpace(c.Inference.Endpoint) == "" {
		return errors.New("inference.endpoint cannot be empty")
	}
	if c.Inference.Timeout < 0 {
		return errors.New("inference.timeout cannot be negative")
	}
	if _, err := session.ParsePreset(c.Session.DefaultPreset); err != nil {
		return fmt.Errorf("session.defaultPreset: %w", err)
	}
	if strings.TrimSpace(c.Client.Endpoint) == "" {
		return errors.New("client.endpoint cannot be empty")
	}
	return nil
}
