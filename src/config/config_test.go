package config

import "testing"

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Server.URL != "http://localhost:5000" {
		t.Fatalf("server url default: %q", cfg.Server.URL)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("log level default: %q", cfg.Log.Level)
	}
	if cfg.Export.Dir != "exports" {
		t.Fatalf("export dir default: %q", cfg.Export.Dir)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
[server]
url = "http://viz.internal:8080"

[log]
level = "debug"
`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.Server.URL != "http://viz.internal:8080" {
		t.Fatalf("server url: %q", cfg.Server.URL)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log level: %q", cfg.Log.Level)
	}
	// untouched sections keep their defaults
	if cfg.Export.Dir != "exports" {
		t.Fatalf("export dir should default, got %q", cfg.Export.Dir)
	}
}

func TestParseRejectsMalformedTOML(t *testing.T) {
	if _, err := Parse([]byte(`[server`)); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("AUTOVIZ_SERVER_URL", "http://override:9000")
	t.Setenv("AUTOVIZ_LOG_LEVEL", "warn")
	cfg := Default()
	applyEnv(cfg)
	if cfg.Server.URL != "http://override:9000" {
		t.Fatalf("env override missed: %q", cfg.Server.URL)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("env override missed: %q", cfg.Log.Level)
	}
	if cfg.Export.Dir != "exports" {
		t.Fatalf("unset env must not override, got %q", cfg.Export.Dir)
	}
}
