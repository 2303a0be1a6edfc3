package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "8082", c.Port)
	assert.Equal(t, "http://localhost:11434", c.Ollama.URL)
	assert.Equal(t, "mock", c.Pipeline.Engine)
	assert.Equal(t, 100, c.Pipeline.MinChunkLength)
	assert.NotEmpty(t, c.Classify.IndexKeywords)
	assert.NotEmpty(t, c.Extract.ColorAllowlist)
	assert.InDelta(t, 0.4, c.Association.Weights.Spatial, 1e-9)
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
port: "9090"
pipeline:
  engine: ollama
  min_chunk_length: 50
classify:
  index_keywords: ["inhaltsverzeichnis"]
extract:
  color_allowlist: ["VERDE", "AZUL"]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, "ollama", c.Pipeline.Engine)
	assert.Equal(t, 50, c.Pipeline.MinChunkLength)
	assert.Equal(t, []string{"inhaltsverzeichnis"}, c.Classify.IndexKeywords)
	assert.Equal(t, []string{"VERDE", "AZUL"}, c.Extract.ColorAllowlist)
	// untouched sections keep their defaults
	assert.Equal(t, Default().Classify.SustainabilityKeywords, c.Classify.SustainabilityKeywords)
	assert.Equal(t, Default().Chunker.Size, c.Chunker.Size)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`port: "9090"`), 0o644))

	t.Setenv("PORT", "7000")
	t.Setenv("OLLAMA_MODEL", "llama3.1")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7000", c.Port)
	assert.Equal(t, "llama3.1", c.Ollama.Model)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [oops"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
