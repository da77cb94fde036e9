package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestDefaultsValid(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Defaults().Validate() error = %v", err)
	}
	if cfg.Server.Addr != "0.0.0.0:3000" {
		t.Errorf("Addr = %q, want 0.0.0.0:3000", cfg.Server.Addr)
	}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true")
	}
	want := []string{"http://localhost:5173", "http://localhost:3000"}
	if got := cfg.AllowedOrigins(); !reflect.DeepEqual(got, want) {
		t.Errorf("AllowedOrigins() = %v, want %v", got, want)
	}
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		addr    string
		env     string
		origins []string
		format  string
	}{
		{
			name:    "none",
			vars:    map[string]string{},
			addr:    "0.0.0.0:3000",
			env:     EnvDevelopment,
			origins: []string{"http://localhost:5173", "http://localhost:3000"},
			format:  LogFormatText,
		},
		{
			name:    "port and production",
			vars:    map[string]string{"PORT": "8080", "APP_ENV": "production"},
			addr:    "0.0.0.0:8080",
			env:     EnvProduction,
			origins: []string{"https://microservice-pdf-export.onrender.com", "https://lapi-dados-web.vercel.app"},
			format:  LogFormatText,
		},
		{
			name:    "node env fallback",
			vars:    map[string]string{"NODE_ENV": "production"},
			addr:    "0.0.0.0:3000",
			env:     EnvProduction,
			origins: []string{"https://microservice-pdf-export.onrender.com", "https://lapi-dados-web.vercel.app"},
			format:  LogFormatText,
		},
		{
			name:    "app env wins",
			vars:    map[string]string{"APP_ENV": "staging", "NODE_ENV": "production", "CHARTPRESS_CORS_ORIGINS": " https://a.example , https://b.example,"},
			addr:    "0.0.0.0:3000",
			env:     "staging",
			origins: []string{"https://a.example", "https://b.example"},
			format:  LogFormatText,
		},
		{
			name:    "json logs",
			vars:    map[string]string{"CHARTPRESS_LOG_FORMAT": "JSON"},
			addr:    "0.0.0.0:3000",
			env:     EnvDevelopment,
			origins: []string{"http://localhost:5173", "http://localhost:3000"},
			format:  LogFormatJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			cfg.ApplyEnv(env(tt.vars))
			if cfg.Server.Addr != tt.addr {
				t.Errorf("Addr = %q, want %q", cfg.Server.Addr, tt.addr)
			}
			if cfg.Server.Env != tt.env {
				t.Errorf("Env = %q, want %q", cfg.Server.Env, tt.env)
			}
			if got := cfg.AllowedOrigins(); !reflect.DeepEqual(got, tt.origins) {
				t.Errorf("AllowedOrigins() = %v, want %v", got, tt.origins)
			}
			if cfg.Server.LogFormat != tt.format {
				t.Errorf("LogFormat = %q, want %q", cfg.Server.LogFormat, tt.format)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, "server.addr"},
		{"body limit", func(c *Config) { c.Server.MaxBodyBytes = 0 }, "max_body_bytes"},
		{"log format", func(c *Config) { c.Server.LogFormat = "xml" }, "log_format"},
		{"render timeout", func(c *Config) { c.Render.Timeout = -time.Second }, "render.timeout"},
		{"max dimension", func(c *Config) { c.Render.MaxDimension = 10 }, "max_dimension"},
		{"origin scheme", func(c *Config) { c.CORS.Origins[EnvDevelopment] = []string{"localhost"} }, "cors origin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chartpress.toml")
	data := `
[server]
addr = "127.0.0.1:9000"
env = "production"
write_timeout = "45s"

[cors.origins]
production = ["https://charts.example.com"]

[render]
timeout = "2s"
max_dimension = 2048

[document]
author = "Equipe de Dados"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("NODE_ENV", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" || cfg.Server.Env != EnvProduction {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Server.WriteTimeout != 45*time.Second || cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("timeouts = %v/%v, want 15s/45s", cfg.Server.ReadTimeout, cfg.Server.WriteTimeout)
	}
	if got := cfg.AllowedOrigins(); !reflect.DeepEqual(got, []string{"https://charts.example.com"}) {
		t.Errorf("AllowedOrigins() = %v", got)
	}
	if cfg.Render.Timeout != 2*time.Second || cfg.Render.MaxDimension != 2048 {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if cfg.Document.Author != "Equipe de Dados" || cfg.Document.Title != "Gráfico" {
		t.Errorf("Document = %+v", cfg.Document)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	unknown := filepath.Join(dir, "unknown.toml")
	if err := os.WriteFile(unknown, []byte("[server]\nport = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Load(missing) error = nil")
	}
	if _, err := Load(unknown); err == nil || !strings.Contains(err.Error(), "server.port") {
		t.Errorf("Load(unknown key) error = %v, want it to name server.port", err)
	}
}

func TestLoadExampleFile(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("NODE_ENV", "")

	cfg, err := Load(filepath.Join("..", "..", "examples", "chartpress.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.MaxBodyBytes != 10<<20 || cfg.Render.Timeout != 10*time.Second {
		t.Errorf("Load() = %+v", cfg)
	}
}
