package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/lazyseq/internal/fault"
)

func TestParseConfigDefaults(t *testing.T) {
	var buf bytes.Buffer
	cfg, err := ParseConfig("lazyseq", nil, &buf)
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	if cfg.Take != DefaultTake {
		t.Errorf("Take = %d, want %d", cfg.Take, DefaultTake)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.LogInterval != DefaultLogInterval {
		t.Errorf("LogInterval = %d, want %d", cfg.LogInterval, DefaultLogInterval)
	}
	if cfg.Eval != "" || cfg.Interactive || cfg.Showcase || cfg.JSONOutput {
		t.Errorf("unexpected non-default mode flags: %+v", cfg)
	}
}

func TestParseConfigFlags(t *testing.T) {
	var buf bytes.Buffer
	args := []string{"-e", "perms a b c", "-t", "10", "-json", "-q", "-timeout", "5s"}
	cfg, err := ParseConfig("lazyseq", args, &buf)
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	if cfg.Eval != "perms a b c" {
		t.Errorf("Eval = %q", cfg.Eval)
	}
	if cfg.Take != 10 {
		t.Errorf("Take = %d, want 10", cfg.Take)
	}
	if !cfg.JSONOutput || !cfg.Quiet {
		t.Errorf("JSONOutput/Quiet not set: %+v", cfg)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{name: "zero take", args: []string{"-take", "0"}},
		{name: "negative take", args: []string{"-take", "-3"}},
		{name: "zero timeout", args: []string{"-timeout", "0s"}},
		{name: "zero log interval", args: []string{"-log-interval", "0"}},
		{name: "unknown flag", args: []string{"-frobnicate"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if _, err := ParseConfig("lazyseq", tc.args, &buf); err == nil {
				t.Errorf("ParseConfig(%v) accepted, want error", tc.args)
			}
		})
	}
}

func TestValidateReturnsConfigError(t *testing.T) {
	cfg := AppConfig{Take: 0, Timeout: time.Second, LogInterval: 1}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want ConfigError")
	}
	var ce fault.ConfigError
	if !errors.As(err, &ce) {
		t.Errorf("Validate() error type = %T, want fault.ConfigError", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"TAKE", "7")
	t.Setenv(EnvPrefix+"EVAL", "subs x y")
	t.Setenv(EnvPrefix+"QUIET", "yes")
	t.Setenv(EnvPrefix+"TIMEOUT", "2m")

	var buf bytes.Buffer
	cfg, err := ParseConfig("lazyseq", nil, &buf)
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	if cfg.Take != 7 {
		t.Errorf("Take = %d, want 7 from env", cfg.Take)
	}
	if cfg.Eval != "subs x y" {
		t.Errorf("Eval = %q, want env value", cfg.Eval)
	}
	if !cfg.Quiet {
		t.Error("Quiet not taken from env")
	}
	if cfg.Timeout != 2*time.Minute {
		t.Errorf("Timeout = %v, want 2m from env", cfg.Timeout)
	}
}

func TestFlagsBeatEnv(t *testing.T) {
	t.Setenv(EnvPrefix+"TAKE", "7")

	var buf bytes.Buffer
	cfg, err := ParseConfig("lazyseq", []string{"-take", "3"}, &buf)
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	if cfg.Take != 3 {
		t.Errorf("Take = %d, want flag value 3 over env", cfg.Take)
	}
}

func TestInvalidEnvFallsBackToDefault(t *testing.T) {
	t.Setenv(EnvPrefix+"TAKE", "not-a-number")

	var buf bytes.Buffer
	cfg, err := ParseConfig("lazyseq", nil, &buf)
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	if cfg.Take != DefaultTake {
		t.Errorf("Take = %d, want default %d for invalid env", cfg.Take, DefaultTake)
	}
}

func TestConfigErrorMessageMentionsCause(t *testing.T) {
	var buf bytes.Buffer
	_, err := ParseConfig("lazyseq", []string{"-take", "0"}, &buf)
	if err == nil {
		t.Fatal("want error")
	}
	if !strings.Contains(buf.String(), "take must be strictly positive") {
		t.Errorf("error output does not mention the cause:\n%s", buf.String())
	}
}
