package config

import (
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() must validate, got: %v", err)
	}
	if cfg.Output.Format != "table" {
		t.Errorf("Output.Format = %q, want table", cfg.Output.Format)
	}
	if !cfg.Output.Color {
		t.Error("Output.Color = false, want true")
	}
	if cfg.Decode.Family != "api" {
		t.Errorf("Decode.Family = %q, want api", cfg.Decode.Family)
	}
	if cfg.Decode.TolerateUnknownReasons {
		t.Error("Decode.TolerateUnknownReasons = true, want false")
	}
}

func TestLoadFromBytesYAML(t *testing.T) {
	data := []byte(`
output:
  format: json
decode:
  family: response
  tolerateUnknownReasons: true
logging:
  level: debug
`)

	cfg, err := LoadFromBytes(data, "yaml")
	if err != nil {
		t.Fatalf("LoadFromBytes unexpected error: %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want json", cfg.Output.Format)
	}
	// Unset fields keep their defaults.
	if !cfg.Output.Color {
		t.Error("Output.Color = false, want default true")
	}
	if cfg.Decode.Family != "response" {
		t.Errorf("Decode.Family = %q, want response", cfg.Decode.Family)
	}
	if !cfg.Decode.TolerateUnknownReasons {
		t.Error("Decode.TolerateUnknownReasons = false, want true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadFromBytesJSON(t *testing.T) {
	data := []byte(`{"decode": {"family": "ws"}}`)

	cfg, err := LoadFromBytes(data, "json")
	if err != nil {
		t.Fatalf("LoadFromBytes unexpected error: %v", err)
	}
	if cfg.Decode.Family != "ws" {
		t.Errorf("Decode.Family = %q, want ws", cfg.Decode.Family)
	}
}

func TestLoadFromBytesErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		format  string
		wantErr string
	}{
		{"bad yaml", "output: [", "yaml", "failed to parse YAML"},
		{"bad json", "{", "json", "failed to parse JSON"},
		{"unsupported format", "", "toml", "unsupported config format"},
		{"bad output format", "output:\n  format: csv\n", "yaml", "unknown format"},
		{"bad family", "decode:\n  family: grpc\n", "yaml", "unknown family"},
		{"bad level", "logging:\n  level: loud\n", "yaml", "unknown level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromBytes([]byte(tt.data), tt.format)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}
