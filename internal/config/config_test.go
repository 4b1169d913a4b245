package config

import (
	"testing"
	"time"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Port != "5175" {
		t.Errorf("port: got %q, want 5175", cfg.Port)
	}
	if cfg.Difficulty != "normal" {
		t.Errorf("difficulty: got %q, want normal", cfg.Difficulty)
	}
	if cfg.WordTimeout != 5*time.Second {
		t.Errorf("timeout: got %v, want 5s", cfg.WordTimeout)
	}
	if cfg.AllowFixedAnswer {
		t.Error("fixed answers enabled by default")
	}
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("WORD_ENDPOINT", "https://words.example.com/v1/word")
	t.Setenv("WORD_TIMEOUT", "250ms")
	t.Setenv("DIFFICULTY", "hard")
	t.Setenv("ALLOW_FIXED_ANSWER", "true")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("port: got %q", cfg.Port)
	}
	if cfg.WordEndpoint != "https://words.example.com/v1/word" {
		t.Errorf("endpoint: got %q", cfg.WordEndpoint)
	}
	if cfg.WordTimeout != 250*time.Millisecond {
		t.Errorf("timeout: got %v", cfg.WordTimeout)
	}
	if cfg.Difficulty != "hard" {
		t.Errorf("difficulty: got %q", cfg.Difficulty)
	}
	if !cfg.AllowFixedAnswer {
		t.Error("fixed answer override not applied")
	}
}
