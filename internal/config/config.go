// Package config loads optional per-command defaults from a benchkit.yaml
// file. A missing file is not an error; every command works flag-only.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/benchlab/benchkit/internal/enrich"
)

// DefaultPath is probed when no --config flag is given.
const DefaultPath = "benchkit.yaml"

// Enrich holds defaults for the enrich command.
type Enrich struct {
	DESeq2Key    string `mapstructure:"deseq2_id"`
	GProfilerKey string `mapstructure:"gprofiler_id"`
}

// Kasp holds defaults for the kasp command.
type Kasp struct {
	Output string `mapstructure:"output"`
}

// Config is the resolved configuration with defaults applied.
type Config struct {
	Enrich Enrich
	Kasp   Kasp
}

// file mirrors the on-disk YAML shape. Command sections stay free-form maps
// so each command decodes only its own keys.
type file struct {
	Commands map[string]map[string]any `yaml:"commands"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Enrich: Enrich{
			DESeq2Key:    enrich.DefaultDESeq2Key,
			GProfilerKey: enrich.DefaultGProfilerKey,
		},
		Kasp: Kasp{Output: "kasp.pdf"},
	}
}

// Load reads the configuration at path, or the defaults when the file does
// not exist. An empty path probes DefaultPath.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg := Default()
	if err := decodeSection(f.Commands["enrich"], &cfg.Enrich); err != nil {
		return nil, fmt.Errorf("config section 'enrich': %w", err)
	}
	if err := decodeSection(f.Commands["kasp"], &cfg.Kasp); err != nil {
		return nil, fmt.Errorf("config section 'kasp': %w", err)
	}
	return cfg, nil
}

// decodeSection maps a free-form YAML section onto a typed struct, keeping
// the existing value for any key the section omits.
func decodeSection(section map[string]any, target any) error {
	if section == nil {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(section)
}
