package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/chartpress/pkg/config"
)

func TestLoadServeConfig(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "chartpress.toml")
	if err := os.WriteFile(file, []byte("[server]\naddr = \"127.0.0.1:9000\"\nlog_format = \"json\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		opts     serveOpts
		wantAddr string
		wantEnv  string
		wantErr  bool
	}{
		{"defaults", serveOpts{}, "0.0.0.0:" + config.DefaultPort, config.EnvDevelopment, false},
		{"file", serveOpts{config: file}, "127.0.0.1:9000", config.EnvDevelopment, false},
		{"flags override file", serveOpts{config: file, addr: ":8080", env: config.EnvProduction}, ":8080", config.EnvProduction, false},
		{"missing file", serveOpts{config: filepath.Join(dir, "nope.toml")}, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadServeConfig(tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("loadServeConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cfg.Server.Addr != tt.wantAddr {
				t.Errorf("Addr = %q, want %q", cfg.Server.Addr, tt.wantAddr)
			}
			if cfg.Server.Env != tt.wantEnv {
				t.Errorf("Env = %q, want %q", cfg.Server.Env, tt.wantEnv)
			}
		})
	}
}

func TestLoadServeConfigPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "4321")

	cfg, err := loadServeConfig(serveOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != "0.0.0.0:4321" {
		t.Errorf("Addr = %q, want %q", cfg.Server.Addr, "0.0.0.0:4321")
	}
}

func TestLoadServeConfigEnvFlagKeepsOriginOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHARTPRESS_CORS_ORIGINS", "https://app.example")

	cfg, err := loadServeConfig(serveOpts{env: config.EnvProduction})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Env != config.EnvProduction {
		t.Errorf("Env = %q, want %q", cfg.Server.Env, config.EnvProduction)
	}
	if got := cfg.AllowedOrigins(); len(got) != 1 || got[0] != "https://app.example" {
		t.Errorf("AllowedOrigins() = %v, want [https://app.example]", got)
	}
}
