// Package config loads experiment configuration from YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Abhishek-P/yoyodyne/internal/dataset"
)

// Experiment configures one training or evaluation run. Fields left
// out of the YAML file keep their defaults.
type Experiment struct {
	Experiment string `yaml:"experiment"` // run name, used in output paths
	Train      string `yaml:"train"`      // training TSV path
	Dev        string `yaml:"dev"`        // development TSV path
	ModelDir   string `yaml:"model_dir"`  // output directory

	SourceCol   int    `yaml:"source_col"`
	TargetCol   int    `yaml:"target_col"`
	FeaturesCol int    `yaml:"features_col"`
	SourceSep   string `yaml:"source_sep"`
	TargetSep   string `yaml:"target_sep"`
	FeaturesSep string `yaml:"features_sep"`
	Encoding    string `yaml:"encoding"` // tiktoken encoding name; "" uses separators

	BatchSize     int   `yaml:"batch_size"`
	EmbeddingSize int   `yaml:"embedding_size"`
	Seed          int64 `yaml:"seed"`

	// LabelSmoothing switches the training objective to its smoothed
	// form; nil leaves smoothing off.
	LabelSmoothing *float64 `yaml:"label_smoothing"`
}

// Default returns the baseline configuration: source in column 1,
// target in column 2, character-level symbols, no features.
func Default() Experiment {
	return Experiment{
		Experiment:    "default",
		ModelDir:      "models",
		SourceCol:     1,
		TargetCol:     2,
		FeaturesSep:   ";",
		BatchSize:     128,
		EmbeddingSize: 128,
	}
}

// Load reads a YAML experiment file on top of the defaults.
func Load(path string) (Experiment, error) {
	conf := Default()

	//nolint:gosec // G304: File path comes from user input, which is expected for config loading
	data, err := os.ReadFile(path)
	if err != nil {
		return Experiment{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return Experiment{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return Experiment{}, err
	}
	return conf, nil
}

// Validate checks field ranges, including the embedded data layout.
func (e Experiment) Validate() error {
	if e.Experiment == "" {
		return fmt.Errorf("experiment name must not be empty")
	}
	if e.BatchSize < 1 {
		return fmt.Errorf("batch size must be positive (got %d)", e.BatchSize)
	}
	if e.EmbeddingSize < 1 {
		return fmt.Errorf("embedding size must be positive (got %d)", e.EmbeddingSize)
	}
	if s := e.LabelSmoothing; s != nil && (*s < 0 || *s >= 1) {
		return fmt.Errorf("label smoothing %v outside [0, 1)", *s)
	}
	return e.DataConfig().Validate()
}

// DataConfig converts the data-layout fields for the dataset loader.
func (e Experiment) DataConfig() dataset.Config {
	conf := dataset.DefaultConfig()
	conf.SourceCol = e.SourceCol
	conf.TargetCol = e.TargetCol
	conf.FeaturesCol = e.FeaturesCol
	conf.SourceSep = e.SourceSep
	conf.TargetSep = e.TargetSep
	conf.FeaturesSep = e.FeaturesSep
	conf.Encoding = e.Encoding
	return conf
}

// IndexPath returns where the experiment stores its vocabulary index.
func (e Experiment) IndexPath() string {
	return filepath.Join(e.ModelDir, e.Experiment, "index.yidx")
}
