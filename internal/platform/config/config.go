// Package config resuelve las rutas de entrada/salida y las opciones de log.
//
// Precedencia: defaults < archivo YAML (--config) < env < flags del CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultArrivalsPath   = "arrivingAnimals.txt"
	DefaultEnclosuresPath = "animalEnclosures.txt"
	DefaultReportPath     = "zooReport.txt"
	DefaultApp            = "zooreport"
)

const (
	EnvArrivalsPath   = "ZOO_ARRIVALS_PATH"
	EnvEnclosuresPath = "ZOO_ENCLOSURES_PATH"
	EnvReportPath     = "ZOO_REPORT_PATH"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvAppName        = "APP_NAME"
)

var ErrInvalidConfig = errors.New("invalid config")

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

type Config struct {
	ArrivalsPath   string    `yaml:"arrivals"`
	EnclosuresPath string    `yaml:"enclosures"`
	ReportPath     string    `yaml:"report"`
	Log            LogConfig `yaml:"log"`
}

func Default() Config {
	return Config{
		ArrivalsPath:   DefaultArrivalsPath,
		EnclosuresPath: DefaultEnclosuresPath,
		ReportPath:     DefaultReportPath,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    DefaultApp,
		},
	}
}

// LoadFile aplica sobre c los campos presentes en el YAML; los ausentes se conservan.
func (c *Config) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(b, &fileCfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	c.merge(fileCfg)
	return nil
}

// ApplyEnv usa lookup en vez de os.Getenv directo para poder testear sin tocar el entorno.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(key string) string {
		v, ok := lookup(key)
		if !ok {
			return ""
		}
		return strings.TrimSpace(v)
	}

	c.merge(Config{
		ArrivalsPath:   get(EnvArrivalsPath),
		EnclosuresPath: get(EnvEnclosuresPath),
		ReportPath:     get(EnvReportPath),
		Log: LogConfig{
			Level:  get(EnvLogLevel),
			Format: get(EnvLogFormat),
			App:    get(EnvAppName),
		},
	})
}

// Override aplica valores explícitos (flags); strings vacíos no pisan nada.
func (c *Config) Override(o Config) {
	c.merge(o)
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ArrivalsPath) == "" {
		return fmt.Errorf("%w: arrivals path required", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.ReportPath) == "" {
		return fmt.Errorf("%w: report path required", ErrInvalidConfig)
	}
	// enclosures vacío es válido: el join se omite.
	return nil
}

func (c *Config) merge(o Config) {
	set := func(dst *string, v string) {
		if strings.TrimSpace(v) != "" {
			*dst = v
		}
	}
	set(&c.ArrivalsPath, o.ArrivalsPath)
	set(&c.EnclosuresPath, o.EnclosuresPath)
	set(&c.ReportPath, o.ReportPath)
	set(&c.Log.Level, o.Log.Level)
	set(&c.Log.Format, o.Log.Format)
	set(&c.Log.App, o.Log.App)
}
