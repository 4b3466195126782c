// Package config loads the 0x1.json project file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Triex/0x1/internal/errors"
)

// FileName is the project configuration file name.
const FileName = "0x1.json"

// Config is the project configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name"`

	// Description is a short project description.
	Description string `json:"description,omitempty"`

	// Host is the dev server bind address.
	Host string `json:"host,omitempty"`

	// Port is the dev server port.
	Port int `json:"port,omitempty"`

	// AppDir is the directory containing application source.
	AppDir string `json:"appDir,omitempty"`

	// DistDir is the build output directory.
	DistDir string `json:"distDir,omitempty"`

	// StaticDir holds assets copied verbatim into DistDir.
	StaticDir string `json:"staticDir,omitempty"`

	// Tailwind enables the Tailwind CSS pipeline.
	Tailwind bool `json:"tailwind,omitempty"`
}

// Defaults returns the configuration used when no project file exists.
func Defaults() *Config {
	return &Config{
		Host:      "localhost",
		Port:      3000,
		AppDir:    "app",
		DistDir:   "dist",
		StaticDir: "static",
	}
}

// Load reads the project file from dir, applying defaults for anything
// unset. A missing file yields the defaults without error.
func Load(dir string) (*Config, error) {
	cfg := Defaults()

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.New("X001", errors.CategoryConfig, "cannot read project file").Wrap(err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("X002", errors.CategoryConfig, "invalid "+FileName).
			WithHint("check the file for JSON syntax errors").Wrap(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return errors.New("X003", errors.CategoryConfig, fmt.Sprintf("port %d out of range", c.Port))
	}
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 3000
	}
	if c.AppDir == "" {
		c.AppDir = "app"
	}
	if c.DistDir == "" {
		c.DistDir = "dist"
	}
	return nil
}

// Save writes the configuration to dir.
func (c *Config) Save(dir string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(filepath.Join(dir, FileName), data, 0644)
}

// Addr returns the host:port the dev server binds.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
