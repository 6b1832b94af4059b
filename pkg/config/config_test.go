package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var known = []string{"function-list", "chained", "anonymous", "closures", "generic"}

func TestParse(t *testing.T) {
	base := t.TempDir()
	data := []byte(strings.TrimSpace(`
styles:
  - Closures
  - " chained "
  - closures
  - ""
with_generics: true
ui: FANCY
log_file: logs/intake.json
`))

	cfg, err := Parse(data, base, known)
	require.NoError(t, err)

	assert.Equal(t, []string{"closures", "chained"}, cfg.Styles)
	assert.True(t, cfg.WithGenerics)
	assert.Equal(t, UIFancy, cfg.UI)
	assert.Equal(t, filepath.Join(base, "logs", "intake.json"), cfg.LogFile)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"), "", known)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseValidation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown style", "styles: [delegates]", `styles[0]: unknown style "delegates"`},
		{"bad ui", "ui: gui", "ui must be one of plain, fancy, auto"},
		{"bad yaml", "styles: [", "config: parse"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), "", known)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui: auto\nstyles: [generic]\n"), 0o644))

	cfg, err := Load(path, known)
	require.NoError(t, err)
	assert.Equal(t, UIAuto, cfg.UI)
	assert.Equal(t, []string{"generic"}, cfg.Styles)
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), known)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "config.yaml", filepath.Base(DefaultPath()))
	assert.Equal(t, "intake", filepath.Base(filepath.Dir(DefaultPath())))
}
