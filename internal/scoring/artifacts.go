package scoring

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Artifact file names under the model directory. These are produced by
// cmd/train and treated as read-only for the process lifetime.
const (
	classifierFile   = "classifier.json"
	scalerFile       = "scaler.json"
	encodersFile     = "encoders.json"
	featureNamesFile = "feature_names.json"
)

// Classifier is a trained binary intent classifier. Weights are aligned
// with the training-time feature name order.
type Classifier struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

// Scaler holds training-time standardization parameters, aligned with the
// feature name order.
type Scaler struct {
	Mean []float64 `json:"mean"`
	Std  []float64 `json:"std"`
}

// EncodingSchema maps each categorical column to the ordered list of values
// seen during training. A value's index is its integer code, so encoding is
// reproducible without the training process.
type EncodingSchema struct {
	Version int                 `json:"version"`
	Columns map[string][]string `json:"columns"`
}

// Encode returns the integer code for value in the named column. Values
// never seen during training encode to 0; that is the explicit unseen
// category policy, not an error.
func (s EncodingSchema) Encode(column, value string) int {
	for i, known := range s.Columns[column] {
		if known == value {
			return i
		}
	}
	return 0
}

// HasColumn reports whether the column was present during training.
func (s EncodingSchema) HasColumn(column string) bool {
	_, ok := s.Columns[column]
	return ok
}

// Artifacts bundles everything the scorer needs: the trained classifier,
// scaler, categorical encoding tables, and the ordered feature name list.
type Artifacts struct {
	Classifier   Classifier
	Scaler       Scaler
	Encoders     EncodingSchema
	FeatureNames []string
}

// LoadArtifacts reads the four artifact files from dir. Any missing or
// unreadable file fails the whole load; the caller is expected to run the
// service in the unavailable state rather than with partial artifacts.
func LoadArtifacts(dir string) (*Artifacts, error) {
	var a Artifacts

	if err := readJSON(filepath.Join(dir, classifierFile), &a.Classifier); err != nil {
		return nil, fmt.Errorf("load classifier: %w", err)
	}
	if err := readJSON(filepath.Join(dir, scalerFile), &a.Scaler); err != nil {
		return nil, fmt.Errorf("load scaler: %w", err)
	}
	if err := readJSON(filepath.Join(dir, encodersFile), &a.Encoders); err != nil {
		return nil, fmt.Errorf("load encoders: %w", err)
	}
	if err := readJSON(filepath.Join(dir, featureNamesFile), &a.FeatureNames); err != nil {
		return nil, fmt.Errorf("load feature names: %w", err)
	}

	if len(a.FeatureNames) == 0 {
		return nil, fmt.Errorf("feature name list is empty")
	}
	if len(a.Classifier.Weights) != len(a.FeatureNames) {
		return nil, fmt.Errorf("classifier has %d weights for %d features", len(a.Classifier.Weights), len(a.FeatureNames))
	}
	if len(a.Scaler.Mean) != len(a.FeatureNames) || len(a.Scaler.Std) != len(a.FeatureNames) {
		return nil, fmt.Errorf("scaler dimensions do not match feature count %d", len(a.FeatureNames))
	}

	return &a, nil
}

// SaveArtifacts writes the artifact set to dir. Used by the offline trainer.
func SaveArtifacts(dir string, a *Artifacts) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	if err := writeJSON(filepath.Join(dir, classifierFile), a.Classifier); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, scalerFile), a.Scaler); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, encodersFile), a.Encoders); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, featureNamesFile), a.FeatureNames)
}

func readJSON(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func writeJSON(path string, in interface{}) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
