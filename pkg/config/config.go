// Package config loads service configuration from an optional TOML file and
// the environment.
//
// Precedence, lowest first: built-in defaults, the TOML file, environment
// variables. Recognized variables:
//
//	PORT                     listen port (binds 0.0.0.0:PORT)
//	APP_ENV                  environment name; NODE_ENV is read as a fallback
//	CHARTPRESS_CORS_ORIGINS  comma-separated origins for the active environment
//	CHARTPRESS_LOG_FORMAT    "text" or "json"
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/chartpress/pkg/chart"
	"github.com/matzehuels/chartpress/pkg/document"
)

// Environment names.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// DefaultPort is the listen port when neither the file nor PORT sets one.
const DefaultPort = "3000"

// Config is the complete service configuration.
type Config struct {
	Server   Server            `toml:"server"`
	CORS     CORS              `toml:"cors"`
	Render   Render            `toml:"render"`
	Document document.Defaults `toml:"document"`
}

// Server configures the HTTP listener.
type Server struct {
	Addr            string        `toml:"addr"`
	Env             string        `toml:"env"`
	ReadTimeout     time.Duration `toml:"read_timeout"`
	WriteTimeout    time.Duration `toml:"write_timeout"`
	IdleTimeout     time.Duration `toml:"idle_timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
	MaxBodyBytes    int64         `toml:"max_body_bytes"`
	LogFormat       string        `toml:"log_format"`
}

// CORS configures cross-origin access. Origins are listed per environment;
// the active environment's list is the allow-list.
type CORS struct {
	Origins          map[string][]string `toml:"origins"`
	Methods          []string            `toml:"methods"`
	Headers          []string            `toml:"headers"`
	AllowCredentials bool                `toml:"allow_credentials"`
	MaxAge           int                 `toml:"max_age"`

	// EnvOrigins holds CHARTPRESS_CORS_ORIGINS. When set it replaces the list
	// of whichever environment is active, including one chosen after loading.
	EnvOrigins []string `toml:"-"`
}

// Render configures the chart renderer.
type Render struct {
	Timeout      time.Duration `toml:"timeout"`
	MaxDimension int           `toml:"max_dimension"`
	FontRegular  string        `toml:"font_regular"`
	FontBold     string        `toml:"font_bold"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Server: Server{
			Addr:            "0.0.0.0:" + DefaultPort,
			Env:             EnvDevelopment,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    10 << 20,
			LogFormat:       LogFormatText,
		},
		CORS: CORS{
			Origins: map[string][]string{
				EnvProduction: {
					"https://microservice-pdf-export.onrender.com",
					"https://lapi-dados-web.vercel.app",
				},
				EnvDevelopment: {
					"http://localhost:5173",
					"http://localhost:3000",
				},
			},
			Methods:          []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			Headers:          []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           300,
		},
		Render: Render{
			Timeout:      10 * time.Second,
			MaxDimension: chart.DefaultMaxDimension,
		},
		Document: document.DefaultMetadata(),
	}
}

// Load reads path (if non-empty) over the defaults and applies environment
// overrides. The result is validated.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("read config %s: unknown key %q", path, undecoded[0].String())
		}
	}
	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv applies environment overrides read through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if port, ok := lookup("PORT"); ok && port != "" {
		c.Server.Addr = "0.0.0.0:" + port
	}
	if env, ok := lookup("APP_ENV"); ok && env != "" {
		c.Server.Env = env
	} else if env, ok := lookup("NODE_ENV"); ok && env != "" {
		c.Server.Env = env
	}
	if origins, ok := lookup("CHARTPRESS_CORS_ORIGINS"); ok && origins != "" {
		c.CORS.EnvOrigins = splitList(origins)
	}
	if format, ok := lookup("CHARTPRESS_LOG_FORMAT"); ok && format != "" {
		c.Server.LogFormat = strings.ToLower(format)
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Server.Addr == "":
		return fmt.Errorf("server.addr is required")
	case c.Server.Env == "":
		return fmt.Errorf("server.env is required")
	case c.Server.MaxBodyBytes <= 0:
		return fmt.Errorf("server.max_body_bytes must be positive")
	case c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.IdleTimeout < 0:
		return fmt.Errorf("server timeouts must not be negative")
	case c.Server.LogFormat != LogFormatText && c.Server.LogFormat != LogFormatJSON:
		return fmt.Errorf("server.log_format: %q (must be one of: text, json)", c.Server.LogFormat)
	case c.Render.Timeout < 0:
		return fmt.Errorf("render.timeout must not be negative")
	case c.Render.MaxDimension < chart.MinDimension:
		return fmt.Errorf("render.max_dimension must be at least %d", chart.MinDimension)
	}
	for _, o := range c.AllowedOrigins() {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("cors origin %q must start with http:// or https://", o)
		}
	}
	return nil
}

// AllowedOrigins returns the CORS allow-list of the active environment.
func (c Config) AllowedOrigins() []string {
	if len(c.CORS.EnvOrigins) > 0 {
		return c.CORS.EnvOrigins
	}
	return c.CORS.Origins[c.Server.Env]
}

// IsDevelopment reports whether the service runs in the development
// environment, where error details are exposed to clients.
func (c Config) IsDevelopment() bool {
	return c.Server.Env == EnvDevelopment
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
