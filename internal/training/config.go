// Package training implements the offline pipeline that produces the
// model artifacts consumed by the scoring service: synthetic lead
// generation, encoder/scaler fitting, and logistic regression training.
package training

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls generation and training. Zero values are replaced by
// defaults so a partial YAML file works.
type Config struct {
	Seed         int64   `yaml:"seed"`
	Count        int     `yaml:"count"`
	TestFraction float64 `yaml:"test_fraction"`
	Epochs       int     `yaml:"epochs"`
	LearningRate float64 `yaml:"learning_rate"`
	ModelDir     string  `yaml:"model_dir"`
	DataPath     string  `yaml:"data_path"`
}

// DefaultConfig returns the standard training configuration.
func DefaultConfig() Config {
	return Config{
		Seed:         42,
		Count:        10000,
		TestFraction: 0.2,
		Epochs:       300,
		LearningRate: 0.1,
		ModelDir:     "model",
		DataPath:     "data/synthetic_leads.csv",
	}
}

// LoadConfig reads a YAML config file and fills in defaults for omitted
// fields. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read training config: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return Config{}, fmt.Errorf("parse training config: %w", err)
	}

	if fileCfg.Seed != 0 {
		cfg.Seed = fileCfg.Seed
	}
	if fileCfg.Count != 0 {
		cfg.Count = fileCfg.Count
	}
	if fileCfg.TestFraction != 0 {
		cfg.TestFraction = fileCfg.TestFraction
	}
	if fileCfg.Epochs != 0 {
		cfg.Epochs = fileCfg.Epochs
	}
	if fileCfg.LearningRate != 0 {
		cfg.LearningRate = fileCfg.LearningRate
	}
	if fileCfg.ModelDir != "" {
		cfg.ModelDir = fileCfg.ModelDir
	}
	if fileCfg.DataPath != "" {
		cfg.DataPath = fileCfg.DataPath
	}

	return cfg, nil
}
