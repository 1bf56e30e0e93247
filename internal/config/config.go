// Package config loads engine configuration from a YAML file with
// environment-variable overrides. Missing file means defaults; every field
// left unset keeps its default.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/synapz/internal/capacity"
	"github.com/abhisek/synapz/internal/grading"
	"github.com/abhisek/synapz/internal/llm"
	"github.com/abhisek/synapz/internal/placement"
)

// Config holds all synapz configuration.
type Config struct {
	Capacity  CapacityConfig  `yaml:"capacity"`
	Grading   GradingConfig   `yaml:"grading"`
	Placement PlacementConfig `yaml:"placement"`
	LLM       LLMConfig       `yaml:"llm"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// CapacityConfig tunes the cognitive-capacity curves.
type CapacityConfig struct {
	BaseCapacity    int     `yaml:"base_capacity"`
	NewLearningMin  int     `yaml:"new_learning_min"`
	ModerateUsedPct float64 `yaml:"moderate_used_pct"`
	HighUsedPct     float64 `yaml:"high_used_pct"`
}

// GradingConfig tunes answer checking and rating derivation.
type GradingConfig struct {
	FuzzyOverlapThreshold float64          `yaml:"fuzzy_overlap_threshold"`
	StopWordMaxLen        int              `yaml:"stop_word_max_len"`
	RatingMaxAttempts     int              `yaml:"rating_max_attempts"`
	RatingHardHints       int              `yaml:"rating_hard_hints"`
	RatingHardTimeRatio   float64          `yaml:"rating_hard_time_ratio"`
	RatingEasyTimeRatio   float64          `yaml:"rating_easy_time_ratio"`
	BaselinePerElementMs  map[string]int64 `yaml:"baseline_per_element_ms"`
	SandboxPassThreshold  float64          `yaml:"sandbox_pass_threshold"`
}

// PlacementConfig tunes sandbox placement.
type PlacementConfig struct {
	MinCapacityForSandbox int `yaml:"min_capacity_for_sandbox"`
}

// LLMConfig configures the text-generation collaborator.
type LLMConfig struct {
	Provider  string        `yaml:"provider"` // anthropic, openai, gemini, mock
	Anthropic ProviderCreds `yaml:"anthropic"`
	OpenAI    ProviderCreds `yaml:"openai"`
	Gemini    ProviderCreds `yaml:"gemini"`
	Timeout   string        `yaml:"timeout"`

	RetryMaxAttempts int    `yaml:"retry_max_attempts"`
	RetryInitialWait string `yaml:"retry_initial_wait"`
	RetryMaxWait     string `yaml:"retry_max_wait"`
	RetryMultiplier  float64 `yaml:"retry_multiplier"`
}

// ProviderCreds holds per-provider credentials and model selection.
type ProviderCreds struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url,omitempty"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty means stderr
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	capDefaults := capacity.DefaultConfig()
	gradeDefaults := grading.DefaultConfig()
	llmDefaults := llm.DefaultConfig()

	return &Config{
		Capacity: CapacityConfig{
			BaseCapacity:    capDefaults.BaseCapacity,
			NewLearningMin:  capDefaults.NewLearningMin,
			ModerateUsedPct: capDefaults.ModerateUsedPct,
			HighUsedPct:     capDefaults.HighUsedPct,
		},
		Grading: GradingConfig{
			FuzzyOverlapThreshold: gradeDefaults.FuzzyOverlapThreshold,
			StopWordMaxLen:        gradeDefaults.StopWordMaxLen,
			RatingMaxAttempts:     gradeDefaults.RatingMaxAttempts,
			RatingHardHints:       gradeDefaults.RatingHardHints,
			RatingHardTimeRatio:   gradeDefaults.RatingHardTimeRatio,
			RatingEasyTimeRatio:   gradeDefaults.RatingEasyTimeRatio,
			BaselinePerElementMs:  gradeDefaults.BaselinePerElementMs,
			SandboxPassThreshold:  gradeDefaults.SandboxPassThreshold,
		},
		Placement: PlacementConfig{
			MinCapacityForSandbox: placement.DefaultMinCapacityForSandbox,
		},
		LLM: LLMConfig{
			Provider:         llmDefaults.Provider,
			Anthropic:        ProviderCreds{Model: llmDefaults.Anthropic.Model},
			OpenAI:           ProviderCreds{Model: llmDefaults.OpenAI.Model},
			Gemini:           ProviderCreds{Model: llmDefaults.Gemini.Model},
			Timeout:          llmDefaults.Timeout.String(),
			RetryMaxAttempts: llmDefaults.Retry.MaxAttempts,
			RetryInitialWait: llmDefaults.Retry.InitialWait.String(),
			RetryMaxWait:     llmDefaults.Retry.MaxWait.String(),
			RetryMultiplier:  llmDefaults.Retry.Multiplier,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load loads configuration from a YAML file, then applies SYNAPZ_*
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// DefaultPath resolves the config file path: SYNAPZ_CONFIG, then
// $XDG_CONFIG_HOME/synapz/config.yaml, then ~/.config/synapz/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv("SYNAPZ_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "synapz", "config.yaml"), nil
}

// CapacityConfig converts to the capacity package's config.
func (c *Config) CapacityConfig() capacity.Config {
	return capacity.Config{
		BaseCapacity:    c.Capacity.BaseCapacity,
		NewLearningMin:  c.Capacity.NewLearningMin,
		ModerateUsedPct: c.Capacity.ModerateUsedPct,
		HighUsedPct:     c.Capacity.HighUsedPct,
	}
}

// GradingConfig converts to the grading package's config.
func (c *Config) GradingConfig() grading.Config {
	return grading.Config{
		FuzzyOverlapThreshold: c.Grading.FuzzyOverlapThreshold,
		StopWordMaxLen:        c.Grading.StopWordMaxLen,
		RatingMaxAttempts:     c.Grading.RatingMaxAttempts,
		RatingHardHints:       c.Grading.RatingHardHints,
		RatingHardTimeRatio:   c.Grading.RatingHardTimeRatio,
		RatingEasyTimeRatio:   c.Grading.RatingEasyTimeRatio,
		BaselinePerElementMs:  c.Grading.BaselinePerElementMs,
		SandboxPassThreshold:  c.Grading.SandboxPassThreshold,
	}
}

// LLMConfig converts to the llm package's config, layering environment
// overrides on top (env wins over file for credentials).
func (c *Config) LLMConfig() (llm.Config, error) {
	out := llm.DefaultConfig()
	out.Provider = c.LLM.Provider
	out.Anthropic.APIKey = c.LLM.Anthropic.APIKey
	if c.LLM.Anthropic.Model != "" {
		out.Anthropic.Model = c.LLM.Anthropic.Model
	}
	out.OpenAI.APIKey = c.LLM.OpenAI.APIKey
	if c.LLM.OpenAI.Model != "" {
		out.OpenAI.Model = c.LLM.OpenAI.Model
	}
	out.OpenAI.BaseURL = c.LLM.OpenAI.BaseURL
	out.Gemini.APIKey = c.LLM.Gemini.APIKey
	if c.LLM.Gemini.Model != "" {
		out.Gemini.Model = c.LLM.Gemini.Model
	}

	var err error
	if out.Timeout, err = parseDuration(c.LLM.Timeout, out.Timeout); err != nil {
		return out, fmt.Errorf("llm.timeout: %w", err)
	}
	if c.LLM.RetryMaxAttempts > 0 {
		out.Retry.MaxAttempts = c.LLM.RetryMaxAttempts
	}
	if out.Retry.InitialWait, err = parseDuration(c.LLM.RetryInitialWait, out.Retry.InitialWait); err != nil {
		return out, fmt.Errorf("llm.retry_initial_wait: %w", err)
	}
	if out.Retry.MaxWait, err = parseDuration(c.LLM.RetryMaxWait, out.Retry.MaxWait); err != nil {
		return out, fmt.Errorf("llm.retry_max_wait: %w", err)
	}
	if c.LLM.RetryMultiplier > 0 {
		out.Retry.Multiplier = c.LLM.RetryMultiplier
	}

	return out.FromEnv(), nil
}

func parseDuration(s string, fallback time.Duration) (time.Duration, error) {
	if s == "" {
		return fallback, nil
	}
	return time.ParseDuration(s)
}
