package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	require.Equal(t, 4, d.TabWidth)
	require.False(t, d.ShowLineNumbers)
	require.Equal(t, "default", d.Theme)
	require.Empty(t, d.LogFile)
	require.NoError(t, d.Validate())
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
tab_width: 8
show_line_numbers: true
theme: monokai
log_file: /tmp/revise.log
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.TabWidth)
	require.True(t, cfg.ShowLineNumbers)
	require.Equal(t, "monokai", cfg.Theme)
	require.Equal(t, "/tmp/revise.log", cfg.LogFile)
	require.False(t, cfg.Debug)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "debug: true\n"))
	require.NoError(t, err)
	require.True(t, cfg.Debug)
	require.Equal(t, Defaults().TabWidth, cfg.TabWidth)
	require.Equal(t, Defaults().Theme, cfg.Theme)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("REVISE_TAB_WIDTH", "2")
	cfg, err := Load(writeConfig(t, "tab_width: 8\n"))
	require.NoError(t, err)
	require.Equal(t, 2, cfg.TabWidth)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config")
}

func TestLoad_InvalidValues(t *testing.T) {
	_, err := Load(writeConfig(t, "theme: no-such-style\n"))
	require.ErrorIs(t, err, ErrUnknownTheme)

	_, err = Load(writeConfig(t, "tab_width: 0\n"))
	require.ErrorContains(t, err, "tab_width")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "chroma theme", mutate: func(c *Config) { c.Theme = "dracula" }},
		{name: "empty theme", mutate: func(c *Config) { c.Theme = "" }},
		{name: "tab too small", mutate: func(c *Config) { c.TabWidth = 0 }, wantErr: true},
		{name: "tab too large", mutate: func(c *Config) { c.TabWidth = 17 }, wantErr: true},
		{name: "unknown theme", mutate: func(c *Config) { c.Theme = "neon" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			if tt.wantErr {
				require.Error(t, cfg.Validate())
			} else {
				require.NoError(t, cfg.Validate())
			}
		})
	}
}
