package serializer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"config.json", FormatJSON},
		{"config.JSON", FormatJSON},
		{"config.yaml", FormatYAML},
		{"config.yml", FormatYAML},
		{"follower.toml", FormatTOML},
		{"out.table", FormatTable},
		{"out.txt", FormatTable},
		{"config", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path))
		})
	}
}

func TestNewReader(t *testing.T) {
	_, err := NewReader(FormatTable, strings.NewReader(""))
	assert.ErrorContains(t, err, "table format")

	_, err = NewReader(Format("xml"), strings.NewReader(""))
	assert.ErrorContains(t, err, "unknown format")

	r, err := NewReader(FormatJSON, strings.NewReader(`{"name":"rrt","value":1}`))
	require.NoError(t, err)

	var cfg testConfig
	require.NoError(t, r.Deserialize(&cfg))
	assert.Equal(t, testConfig{Name: "rrt", Value: 1}, cfg)
	assert.NoError(t, r.Close())
}

func TestReader_DeserializeNilChecks(t *testing.T) {
	var r *Reader
	assert.Error(t, r.Deserialize(&testConfig{}))
	assert.NoError(t, r.Close())

	r, err := NewReader(FormatYAML, nil)
	require.NoError(t, err)
	assert.ErrorContains(t, r.Deserialize(&testConfig{}), "input source is nil")
}

func TestDecodeFile_KeepsPrepopulatedFields(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"cfg.yaml": "name: yaml-name\n",
		"cfg.json": `{"name": "json-name"}`,
		"cfg.toml": "name = \"toml-name\"\n",
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			cfg := testConfig{Value: 42}
			require.NoError(t, DecodeFile(path, &cfg))
			assert.True(t, strings.HasSuffix(cfg.Name, "-name"), cfg.Name)
			assert.Equal(t, 42, cfg.Value)
		})
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: rrt\nvalue: 5\ninterval: 250ms\n"), 0o600))

	cfg, err := FromFile[testConfig](path)
	require.NoError(t, err)
	assert.Equal(t, "rrt", cfg.Name)
	assert.Equal(t, 5, cfg.Value)
	assert.Equal(t, "250ms", cfg.Interval.String())
}

func TestFromFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := FromFile[testConfig](filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to open file")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o600))
	_, err = FromFile[testConfig](bad)
	assert.ErrorContains(t, err, "failed to decode JSON")

	table := filepath.Join(dir, "out.table")
	require.NoError(t, os.WriteFile(table, []byte("x"), 0o600))
	_, err = FromFile[testConfig](table)
	assert.ErrorContains(t, err, "table format")
}
