// Package config loads spellcheck's YAML configuration file: parse loosely
// with yaml.v2 into a map, then decode strictly into a typed Config with
// mapstructure, the idiom the teacher corpus uses wherever it separates
// "what was on disk" from "what the program needs".
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	yaml "gopkg.in/yaml.v2"
)

// Config holds the tunables §4 and §6 expose to a host application.
type Config struct {
	// DictionaryPath names the text dictionary file (§6). The spellcheck
	// commands take the dictionary path as a positional argument and do
	// not read this field.
	DictionaryPath string `mapstructure:"dictionary_path"`

	// CorpusPath, if set, is an optional JSON frequency corpus merged in
	// before the index is built (§6 domain-stack supplement). A --corpus
	// flag given on the command line takes precedence over it.
	CorpusPath string `mapstructure:"corpus_path"`

	// MaxEditDistance is the build-time symmetric-delete depth.
	MaxEditDistance int `mapstructure:"max_edit_distance"`

	// PrefixLength is the build-time prefix cap (§4.1).
	PrefixLength int `mapstructure:"prefix_length"`

	// DefaultQueryDistance is the maxEditDistance a query uses when the
	// caller does not specify one.
	DefaultQueryDistance int `mapstructure:"default_query_distance"`

	// DefaultTopK is the topK a query uses when the caller does not
	// specify one.
	DefaultTopK int `mapstructure:"default_top_k"`

	// KeyScheme selects the symdelete.KeyScheme: "exact" or "fingerprint".
	KeyScheme string `mapstructure:"key_scheme"`

	// Normalize enables confusables-skeleton query normalization (§4.4.2).
	Normalize bool `mapstructure:"normalize"`
}

// Default returns the reference configuration (§4.1's defaultEditDistance
// / defaultPrefixLength and §6's Correct defaults).
func Default() Config {
	return Config{
		MaxEditDistance:      2,
		PrefixLength:         7,
		DefaultQueryDistance: 2,
		DefaultTopK:          3,
		KeyScheme:            "exact",
	}
}

// Load reads a YAML config file at path, overlaying it onto Default().
// Fields absent from the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %q: %w", path, err)
	}

	var loose map[string]interface{}
	if err := yaml.Unmarshal(raw, &loose); err != nil {
		return cfg, fmt.Errorf("config: parse %q: %w", path, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return cfg, fmt.Errorf("config: build decoder: %w", err)
	}

	if err := decoder.Decode(loose); err != nil {
		return cfg, fmt.Errorf("config: decode %q: %w", path, err)
	}

	return cfg, nil
}
