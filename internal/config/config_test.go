package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Capacity.BaseCapacity != 12 {
		t.Errorf("BaseCapacity = %d, want default 12", cfg.Capacity.BaseCapacity)
	}
	if cfg.Grading.FuzzyOverlapThreshold != 0.5 {
		t.Errorf("FuzzyOverlapThreshold = %v, want 0.5", cfg.Grading.FuzzyOverlapThreshold)
	}
	if cfg.LLM.Provider != "anthropic" {
		t.Errorf("Provider = %q, want anthropic", cfg.LLM.Provider)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
capacity:
  base_capacity: 20
grading:
  fuzzy_overlap_threshold: 0.7
llm:
  provider: mock
  timeout: 5s
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Capacity.BaseCapacity != 20 {
		t.Errorf("BaseCapacity = %d, want 20", cfg.Capacity.BaseCapacity)
	}
	// Fields not in the file keep defaults.
	if cfg.Capacity.NewLearningMin != 6 {
		t.Errorf("NewLearningMin = %d, want default 6", cfg.Capacity.NewLearningMin)
	}
	if cfg.Grading.FuzzyOverlapThreshold != 0.7 {
		t.Errorf("FuzzyOverlapThreshold = %v, want 0.7", cfg.Grading.FuzzyOverlapThreshold)
	}

	llmCfg, err := cfg.LLMConfig()
	if err != nil {
		t.Fatalf("LLMConfig: %v", err)
	}
	if llmCfg.Provider != "mock" {
		t.Errorf("llm Provider = %q, want mock", llmCfg.Provider)
	}
	if llmCfg.Timeout != 5*time.Second {
		t.Errorf("llm Timeout = %v, want 5s", llmCfg.Timeout)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("capacity: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load should fail on malformed YAML")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Capacity.BaseCapacity = 15
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Capacity.BaseCapacity != 15 {
		t.Errorf("BaseCapacity = %d, want 15", loaded.Capacity.BaseCapacity)
	}
}

func TestLLMConfigBadDuration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LLM.Timeout = "not-a-duration"
	if _, err := cfg.LLMConfig(); err == nil {
		t.Error("LLMConfig should reject a malformed timeout")
	}
}

func TestConversionsCarryTunables(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grading.StopWordMaxLen = 4

	g := cfg.GradingConfig()
	if g.StopWordMaxLen != 4 {
		t.Errorf("StopWordMaxLen = %d, want 4", g.StopWordMaxLen)
	}
	c := cfg.CapacityConfig()
	if c.BaseCapacity != cfg.Capacity.BaseCapacity {
		t.Errorf("capacity conversion lost BaseCapacity")
	}
}
