// Package config provides YAML-backed experiment configuration.
//
// This package wraps the internal configuration implementation and
// exports the experiment file format used by the toolkit.
//
// Example usage:
//
//	import "github.com/Abhishek-P/yoyodyne/config"
//
//	exp, err := config.Load("experiment.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ds, err := dataset.Load(exp.Train, exp.DataConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := ds.Index().Write(exp.IndexPath()); err != nil {
//	    log.Fatal(err)
//	}
package config

import (
	"github.com/Abhishek-P/yoyodyne/internal/config"
)

// Experiment is one experiment's configuration.
type Experiment = config.Experiment

// Default returns the configuration defaults: character segmentation,
// source in column 1, target in column 2, batch size 128.
func Default() Experiment {
	return config.Default()
}

// Load reads a YAML experiment file, applies defaults, and validates
// the result.
func Load(path string) (Experiment, error) {
	return config.Load(path)
}
