// Package config handles loading and parsing application configuration.
// It supports two sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// The parsed values are returned as a *Config pointer so the struct is
// shared by reference rather than copied everywhere.
package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure. Every field maps to a key
// in the YAML file and can be overridden by the corresponding
// environment variable (env:"...").
//
// env-required:"true" means the app refuses to start if that value is
// missing — better to crash at boot than to run with a wrong default.
type Config struct {
	// Env controls log format and verbosity. Valid values: "dev",
	// "staging", "prod".
	Env string `yaml:"env" env:"ENV" env-required:"true"`

	// StoragePath is the filesystem path to the SQLite .db file.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-required:"true"`

	// DefaultCreditLimit is the ceiling the credit_limit rule falls
	// back to when a check request does not name one. 22 is the usual
	// per-semester cap.
	DefaultCreditLimit int `yaml:"default_credit_limit" env:"DEFAULT_CREDIT_LIMIT" env-default:"22"`

	// HTTPServer is embedded (not a pointer) so its fields promote:
	// cfg.HTTPServer.Addr or simply cfg.Addr.
	HTTPServer `yaml:"http_server"`
}

// HTTPServer holds settings specific to the HTTP server, nested under
// http_server: in the YAML file.
type HTTPServer struct {
	// Addr is the TCP address the server listens on, e.g. "localhost:8085".
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-required:"true"`
}

// MustLoad reads, validates, and returns the application config.
//
// The "Must" prefix follows the Go convention: the function is allowed
// to fatal on failure, so if it returns, the config is valid.
func MustLoad() *Config {
	// Source 1: environment variable — the standard way to pass config
	// into a container.
	configPath := os.Getenv("CONFIG_PATH")

	// Source 2: command-line flag — handier when running locally:
	//   go run ./cmd/eligibility-api --config=config/local.yaml
	if configPath == "" {
		flagPath := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flagPath
	}

	if configPath == "" {
		log.Fatal("config path is not set: use --config flag or CONFIG_PATH env var")
	}

	// Check existence up front for a clear message instead of a cryptic
	// "open: no such file" later.
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	// ReadConfig parses the YAML file, applies env:"..." overrides, and
	// enforces env-required constraints.
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return &cfg
}
