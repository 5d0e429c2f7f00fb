package config

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys read by the bridge when options are not supplied
// explicitly.
const (
	// EnvMode selects the runtime mode bound into the handler.
	EnvMode = "FETCHBRIDGE_MODE"
	// EnvServerTiming toggles the Server-Timing header. Parsed with
	// strconv.ParseBool; unparseable values count as off.
	EnvServerTiming = "FETCHBRIDGE_SERVER_TIMING"
)

// DefaultMode is used when EnvMode is unset.
const DefaultMode = "development"

// LoadEnv sources a .env file into the process environment. A missing file
// is not an error; existing variables are never overwritten.
func LoadEnv(paths ...string) error {
	err := godotenv.Load(paths...)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// Mode returns the runtime mode from the environment, or DefaultMode.
func Mode() string {
	if v := os.Getenv(EnvMode); v != "" {
		return v
	}
	return DefaultMode
}

// ServerTiming reports whether the timing-header flag is set in the
// environment.
func ServerTiming() bool {
	v := os.Getenv(EnvServerTiming)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return b
}

// Load reads a JSON config file into v.
func Load(path string, v interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// MustLoad is Load, panicking on failure.
func MustLoad(path string, v interface{}) {
	if err := Load(path, v); err != nil {
		panic(err)
	}
}

type AppConfig struct {
	Name  string `json:"name"`
	Debug bool   `json:"debug"`
}

type ServerConfig struct {
	Host                string     `json:"host"`
	Port                int        `json:"port"`
	ReadTimeoutSeconds  int        `json:"read_timeout_seconds"`
	WriteTimeoutSeconds int        `json:"write_timeout_seconds"`
	Cors                CorsConfig `json:"cors,omitempty"`
}

type CorsConfig struct {
	AllowedOrigins []string `json:"allowed_origins,omitempty"`
	AllowedMethods []string `json:"allowed_methods,omitempty"`
	AllowedHeaders []string `json:"allowed_headers,omitempty"`
}

// Config is the shape of a calling server's config file. The bridge itself
// only reads the environment keys above; this struct serves host programs.
type Config struct {
	App    AppConfig    `json:"app"`
	Server ServerConfig `json:"server"`
}
