package training

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"leadscore_backend/internal/scoring"
)

// Result summarizes a completed training run.
type Result struct {
	Artifacts       *scoring.Artifacts
	TrainSize       int
	TestSize        int
	HoldoutAccuracy float64
}

// Train fits the categorical encoders, the standard scaler, and a
// logistic regression on the generated samples, and reports accuracy on a
// held-out split. The run is fully deterministic for a given config.
func Train(cfg Config, samples []Sample) (*Result, error) {
	if len(samples) < 10 {
		return nil, fmt.Errorf("need at least 10 samples, got %d", len(samples))
	}

	encoders := fitEncoders(samples)
	featureNames := scoring.CanonicalFeatureNames()

	vectors := make([]scoring.FeatureVector, 0, len(samples))
	labels := make([]float64, 0, len(samples))
	for _, s := range samples {
		vector, err := scoring.EncodeFeatures(toScoringInput(s), encoders, featureNames)
		if err != nil {
			return nil, fmt.Errorf("encode training sample: %w", err)
		}
		vectors = append(vectors, vector)
		if s.HighIntent {
			labels = append(labels, 1)
		} else {
			labels = append(labels, 0)
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	order := rng.Perm(len(vectors))
	testSize := int(float64(len(vectors)) * cfg.TestFraction)
	if testSize < 1 {
		testSize = 1
	}
	trainIdx, testIdx := order[testSize:], order[:testSize]

	scaler := fitScaler(vectors, trainIdx)
	scaled := make([]scoring.FeatureVector, len(vectors))
	for i, vector := range vectors {
		scaled[i] = applyScaler(scaler, vector)
	}

	classifier := fitLogistic(cfg, scaled, labels, trainIdx)

	correct := 0
	for _, i := range testIdx {
		p := predict(classifier, scaled[i])
		if (p >= 0.5) == (labels[i] == 1) {
			correct++
		}
	}

	return &Result{
		Artifacts: &scoring.Artifacts{
			Classifier:   classifier,
			Scaler:       scaler,
			Encoders:     encoders,
			FeatureNames: featureNames,
		},
		TrainSize:       len(trainIdx),
		TestSize:        len(testIdx),
		HoldoutAccuracy: float64(correct) / float64(len(testIdx)),
	}, nil
}

// fitEncoders collects the sorted unique values per categorical column, so
// a value's code is stable across runs regardless of sample order.
func fitEncoders(samples []Sample) scoring.EncodingSchema {
	columns := map[string]map[string]bool{
		"age_group":         {},
		"family_background": {},
		"employment_type":   {},
		"property_type":     {},
	}
	for _, s := range samples {
		columns["age_group"][s.AgeGroup] = true
		columns["family_background"][s.FamilyBackground] = true
		columns["employment_type"][s.EmploymentType] = true
		columns["property_type"][s.PropertyType] = true
	}

	schema := scoring.EncodingSchema{Version: 1, Columns: make(map[string][]string, len(columns))}
	for column, values := range columns {
		ordered := make([]string, 0, len(values))
		for value := range values {
			ordered = append(ordered, value)
		}
		sort.Strings(ordered)
		schema.Columns[column] = ordered
	}
	return schema
}

func fitScaler(vectors []scoring.FeatureVector, trainIdx []int) scoring.Scaler {
	dims := len(vectors[0])
	mean := make([]float64, dims)
	std := make([]float64, dims)

	for _, i := range trainIdx {
		for d, v := range vectors[i] {
			mean[d] += v
		}
	}
	n := float64(len(trainIdx))
	for d := range mean {
		mean[d] /= n
	}

	for _, i := range trainIdx {
		for d, v := range vectors[i] {
			diff := v - mean[d]
			std[d] += diff * diff
		}
	}
	for d := range std {
		std[d] = math.Sqrt(std[d] / n)
		if std[d] == 0 {
			std[d] = 1
		}
	}

	return scoring.Scaler{Mean: mean, Std: std}
}

func applyScaler(scaler scoring.Scaler, vector scoring.FeatureVector) scoring.FeatureVector {
	scaled := make(scoring.FeatureVector, len(vector))
	for d, v := range vector {
		scaled[d] = (v - scaler.Mean[d]) / scaler.Std[d]
	}
	return scaled
}

// fitLogistic runs full-batch gradient descent for a fixed number of
// epochs. No early stopping keeps runs reproducible.
func fitLogistic(cfg Config, scaled []scoring.FeatureVector, labels []float64, trainIdx []int) scoring.Classifier {
	dims := len(scaled[0])
	weights := make([]float64, dims)
	bias := 0.0
	n := float64(len(trainIdx))

	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		gradW := make([]float64, dims)
		gradB := 0.0

		for _, i := range trainIdx {
			p := sigmoid(dot(weights, scaled[i]) + bias)
			residual := p - labels[i]
			for d, v := range scaled[i] {
				gradW[d] += residual * v
			}
			gradB += residual
		}

		for d := range weights {
			weights[d] -= cfg.LearningRate * gradW[d] / n
		}
		bias -= cfg.LearningRate * gradB / n
	}

	return scoring.Classifier{Weights: weights, Bias: bias}
}

func predict(classifier scoring.Classifier, scaled scoring.FeatureVector) float64 {
	return sigmoid(dot(classifier.Weights, scaled) + classifier.Bias)
}

func dot(a []float64, b scoring.FeatureVector) float64 {
	total := 0.0
	for i := range a {
		total += a[i] * b[i]
	}
	return total
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func toScoringInput(s Sample) scoring.Input {
	return scoring.Input{
		CreditScore:             &s.CreditScore,
		Income:                  &s.Income,
		LoanAmount:              &s.LoanAmount,
		DownPayment:             &s.DownPayment,
		PropertySearchFrequency: &s.PropertySearchFrequency,
		BudgetToolUsage:         &s.BudgetToolUsage,
		ListingSaves:            &s.ListingSaves,
		EmailClicks:             &s.EmailClicks,
		WhatsAppInteractions:    &s.WhatsAppInteractions,
		TimeToPurchase:          &s.TimeToPurchase,
		EMIAffordability:        &s.EMIAffordability,
		JobStability:            &s.JobStability,
		AgeGroup:                s.AgeGroup,
		FamilyBackground:        s.FamilyBackground,
		EmploymentType:          s.EmploymentType,
		PropertyType:            s.PropertyType,
	}
}
