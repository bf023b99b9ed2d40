package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pkt.systems/mdhtml/internal/site"
)

func TestLoadConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "site.yaml")
	yaml := "content: pages\ndest: out\nworkers: 3\nfront_matter: true\nbase_path: /file/\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(yaml), 0o644))
	t.Setenv("SITEGEN_BASE_PATH", "/env/")

	flags := newFlagSet()
	require.NoError(t, flags.Parse([]string{"--config", cfgPath, "--dest", "flagdest"}))
	v, err := loadConfig(flags)
	require.NoError(t, err)

	var cfg site.Config
	require.NoError(t, v.Unmarshal(&cfg))
	require.Equal(t, site.Config{
		ContentDir:   "pages",
		StaticDir:    "static",
		TemplatePath: "template.html",
		DestDir:      "flagdest",
		BasePath:     "/env/",
		Workers:      3,
		FrontMatter:  true,
	}, cfg)
}

func TestLoadConfigDefaults(t *testing.T) {
	flags := newFlagSet()
	require.NoError(t, flags.Parse(nil))
	v, err := loadConfig(flags)
	require.NoError(t, err)

	var cfg site.Config
	require.NoError(t, v.Unmarshal(&cfg))
	require.Equal(t, "content", cfg.ContentDir)
	require.Equal(t, "public", cfg.DestDir)
	require.Equal(t, site.DefaultBasePath, cfg.BasePath)
	require.Zero(t, cfg.Workers)
	require.False(t, v.GetBool("verbose"))
}

func TestLoadConfigMissingFile(t *testing.T) {
	flags := newFlagSet()
	require.NoError(t, flags.Parse([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}))
	_, err := loadConfig(flags)
	require.Error(t, err)
}
