// Package config layers service configuration: built-in defaults, an
// optional YAML file, then environment variables.
package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/materialshub/catalog-extract/internal/associate"
	"github.com/materialshub/catalog-extract/internal/classify"
	"github.com/materialshub/catalog-extract/internal/extract"
	"github.com/materialshub/catalog-extract/internal/ingest"
)

type Config struct {
	Port     string `yaml:"port"`
	DataRoot string `yaml:"data_root"`

	Ollama struct {
		URL   string `yaml:"url"`
		Model string `yaml:"model"`
	} `yaml:"ollama"`

	Chunker struct {
		Size    int `yaml:"size"`
		Overlap int `yaml:"overlap"`
	} `yaml:"chunker"`

	Pipeline struct {
		MinChunkLength int    `yaml:"min_chunk_length"`
		Engine         string `yaml:"engine"` // mock|ollama
	} `yaml:"pipeline"`

	Association associate.Options `yaml:"association"`
	Classify    classify.Tables   `yaml:"classify"`
	Extract     extract.Tables    `yaml:"extract"`
}

func Default() Config {
	var c Config
	c.Port = "8082"
	c.DataRoot = "./jobs"
	c.Ollama.URL = "http://localhost:11434"
	c.Ollama.Model = "llama3:instruct"
	c.Chunker.Size = ingest.DefaultChunkSize
	c.Chunker.Overlap = ingest.DefaultChunkOverlap
	c.Pipeline.MinChunkLength = 100
	c.Pipeline.Engine = "mock"
	c.Association = associate.DefaultOptions()
	c.Classify = classify.DefaultTables()
	c.Extract = extract.DefaultTables()
	return c
}

// Load builds the config. A missing file is fine; defaults and environment
// still apply. path == "" skips the file entirely.
func Load(path string) (Config, error) {
	c := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &c); err != nil {
				return c, err
			}
		case errors.Is(err, fs.ErrNotExist):
			// keep defaults
		default:
			return c, err
		}
	}

	c.Port = getenv("PORT", c.Port)
	c.DataRoot = getenv("DATA_ROOT", c.DataRoot)
	c.Ollama.URL = getenv("OLLAMA_URL", c.Ollama.URL)
	c.Ollama.Model = getenv("OLLAMA_MODEL", c.Ollama.Model)
	c.Pipeline.Engine = getenv("PIPELINE_ENGINE", c.Pipeline.Engine)
	return c, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
