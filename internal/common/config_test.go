package common

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"OLLAMA_URL", "MODEL_NAME", "LLM_TEMPERATURE", "LLM_TIMEOUT", "MATCH_THRESHOLD"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	if cfg.LLM.BaseURL != "http://localhost:11434" {
		t.Errorf("BaseURL = %q", cfg.LLM.BaseURL)
	}
	if cfg.LLM.Model != "gemma:2b" {
		t.Errorf("Model = %q", cfg.LLM.Model)
	}
	if cfg.LLM.Temperature != 0 {
		t.Errorf("Temperature = %v, want 0", cfg.LLM.Temperature)
	}
	if cfg.LLM.Timeout != 120*time.Second {
		t.Errorf("Timeout = %v, want 120s", cfg.LLM.Timeout)
	}
	if cfg.Match.Threshold != 0.75 {
		t.Errorf("Threshold = %v, want 0.75", cfg.Match.Threshold)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("OLLAMA_URL", "http://10.0.0.5:11434")
	t.Setenv("LLM_TIMEOUT", "30s")
	t.Setenv("MATCH_THRESHOLD", "0.9")

	cfg := LoadConfig()
	if cfg.LLM.BaseURL != "http://10.0.0.5:11434" {
		t.Errorf("BaseURL = %q", cfg.LLM.BaseURL)
	}
	if cfg.LLM.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.LLM.Timeout)
	}
	if cfg.Match.Threshold != 0.9 {
		t.Errorf("Threshold = %v, want 0.9", cfg.Match.Threshold)
	}
}

func TestValidateRejectsBadThreshold(t *testing.T) {
	cfg := LoadConfig()
	cfg.Match.Threshold = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("Validate accepted threshold > 1")
	}
	cfg.Match.Threshold = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Validate accepted zero threshold")
	}
}
