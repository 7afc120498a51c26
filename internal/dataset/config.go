package dataset

import (
	"fmt"

	"github.com/Abhishek-P/yoyodyne/internal/parallel"
)

// Config describes how examples are pulled out of a TSV file. Columns
// are 1-based; zero disables a column. An empty separator segments the
// column into characters.
type Config struct {
	SourceCol   int    // source column (required)
	TargetCol   int    // target column; 0 for unlabeled data
	FeaturesCol int    // features column; 0 when the data has no features
	SourceSep   string // source separator; "" segments into characters
	TargetSep   string // target separator; "" segments into characters
	FeaturesSep string // features separator

	// Encoding names a tiktoken BPE encoding used to segment the
	// source and target columns instead of the separators. Features
	// always segment by separator.
	Encoding string

	Parallel parallel.Config // fan-out for per-row segmentation
}

// DefaultConfig mirrors the common transduction layout: source in
// column 1, target in column 2, no features, character-level symbols,
// ";"-separated feature tags when a features column is switched on.
func DefaultConfig() Config {
	return Config{
		SourceCol:   1,
		TargetCol:   2,
		FeaturesCol: 0,
		FeaturesSep: ";",
		Parallel:    parallel.DefaultConfig(),
	}
}

// Validate checks column numbers.
func (c Config) Validate() error {
	if c.SourceCol < 1 {
		return fmt.Errorf("source column must be specified (got %d)", c.SourceCol)
	}
	if c.TargetCol < 0 {
		return fmt.Errorf("invalid target column %d", c.TargetCol)
	}
	if c.FeaturesCol < 0 {
		return fmt.Errorf("invalid features column %d", c.FeaturesCol)
	}
	return nil
}

// HasTarget reports whether the data carries a target column.
func (c Config) HasTarget() bool {
	return c.TargetCol > 0
}

// HasFeatures reports whether the data carries a features column.
func (c Config) HasFeatures() bool {
	return c.FeaturesCol > 0
}

func (c Config) sourceSegmenter() (Segmenter, error) {
	if c.Encoding != "" {
		return Subwords(c.Encoding)
	}
	return sepOrChars(c.SourceSep), nil
}

func (c Config) targetSegmenter() (Segmenter, error) {
	if c.Encoding != "" {
		return Subwords(c.Encoding)
	}
	return sepOrChars(c.TargetSep), nil
}

func (c Config) featuresSegmenter() Segmenter {
	return sepOrChars(c.FeaturesSep)
}

func sepOrChars(sep string) Segmenter {
	if sep == "" {
		return Chars()
	}
	return Split(sep)
}
