package scoring

import (
	"fmt"
	"math"
)

// Scorer turns an encoded feature vector into an initial intent score on
// the 0..100 scale. It standardizes the vector with the training-time
// scaler and runs the trained classifier over it.
type Scorer struct {
	artifacts *Artifacts
}

// NewScorer creates a scorer bound to a loaded artifact set.
func NewScorer(artifacts *Artifacts) *Scorer {
	return &Scorer{artifacts: artifacts}
}

// Score computes the initial intent score for a feature vector. The
// classifier's positive-class probability is scaled to 0..100 and
// truncated, never rounded, so a probability of 0.999 still scores 99.
func (s *Scorer) Score(vector FeatureVector) (int, error) {
	if len(vector) != len(s.artifacts.FeatureNames) {
		return 0, fmt.Errorf("feature vector has %d values, model expects %d", len(vector), len(s.artifacts.FeatureNames))
	}

	z := s.artifacts.Classifier.Bias
	for i, value := range vector {
		std := s.artifacts.Scaler.Std[i]
		if std == 0 {
			std = 1
		}
		scaled := (value - s.artifacts.Scaler.Mean[i]) / std
		z += s.artifacts.Classifier.Weights[i] * scaled
	}

	probability := 1 / (1 + math.Exp(-z))
	return int(math.Floor(probability * 100)), nil
}

// FeatureImportance returns each feature's absolute weight share of the
// model, keyed by feature name. Shares sum to 1 unless every weight is 0.
func (s *Scorer) FeatureImportance() map[string]float64 {
	total := 0.0
	for _, w := range s.artifacts.Classifier.Weights {
		total += math.Abs(w)
	}

	importance := make(map[string]float64, len(s.artifacts.FeatureNames))
	for i, name := range s.artifacts.FeatureNames {
		if total == 0 {
			importance[name] = 0
			continue
		}
		importance[name] = math.Abs(s.artifacts.Classifier.Weights[i]) / total
	}
	return importance
}
