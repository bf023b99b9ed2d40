package site

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultBasePath is the site root used when no base path is configured.
const DefaultBasePath = "/"

// Config describes a site build.
type Config struct {
	ContentDir   string `mapstructure:"content" validate:"required,dir"`
	StaticDir    string `mapstructure:"static" validate:"omitempty,dir"`
	TemplatePath string `mapstructure:"template" validate:"required,file"`
	DestDir      string `mapstructure:"dest" validate:"required"`
	BasePath     string `mapstructure:"base_path" validate:"required,startswith=/"`
	Workers      int    `mapstructure:"workers" validate:"min=1"`
	FrontMatter  bool   `mapstructure:"front_matter"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Normalize fills defaults and makes BasePath end in a slash.
func (c *Config) Normalize() {
	if c.BasePath == "" {
		c.BasePath = DefaultBasePath
	}
	c.BasePath = NormalizeBasePath(c.BasePath)
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate checks that the configured paths exist and values are in range.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("site config: %w", err)
	}
	return nil
}

// NormalizeBasePath returns base with a leading and a trailing slash.
func NormalizeBasePath(base string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return DefaultBasePath
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}
