package training

import (
	"os"
	"path/filepath"
	"testing"

	"leadscore_backend/internal/scoring"
)

func TestGenerateDeterministic(t *testing.T) {
	first := Generate(7, 50)
	second := Generate(7, 50)

	if len(first) != 50 || len(second) != 50 {
		t.Fatalf("expected 50 samples, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("sample %d differs between runs with same seed", i)
		}
	}

	other := Generate(8, 50)
	same := true
	for i := range first {
		if first[i] != other[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical datasets")
	}
}

func TestGenerateRanges(t *testing.T) {
	for _, s := range Generate(3, 200) {
		if s.CreditScore < 300 || s.CreditScore > 850 {
			t.Fatalf("credit score out of range: %v", s.CreditScore)
		}
		if s.Income <= 0 || s.LoanAmount <= 0 || s.DownPayment <= 0 {
			t.Fatalf("non-positive financials: %+v", s)
		}
		if s.TimeToPurchase < 0 || s.TimeToPurchase > 24 {
			t.Fatalf("time to purchase out of range: %v", s.TimeToPurchase)
		}
		ratio := s.DownPayment / s.LoanAmount
		if ratio < 0.19 || ratio > 0.41 {
			t.Fatalf("down payment ratio out of range: %v", ratio)
		}
	}
}

func TestTrainProducesLoadableArtifacts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 800
	cfg.Epochs = 50

	samples := Generate(cfg.Seed, cfg.Count)
	result, err := Train(cfg, samples)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}

	if result.TrainSize+result.TestSize != cfg.Count {
		t.Fatalf("split sizes %d+%d do not cover %d samples", result.TrainSize, result.TestSize, cfg.Count)
	}
	if result.HoldoutAccuracy < 0 || result.HoldoutAccuracy > 1 {
		t.Fatalf("accuracy out of range: %v", result.HoldoutAccuracy)
	}

	names := scoring.CanonicalFeatureNames()
	if len(result.Artifacts.Classifier.Weights) != len(names) {
		t.Fatalf("classifier has %d weights for %d features", len(result.Artifacts.Classifier.Weights), len(names))
	}

	dir := t.TempDir()
	if err := scoring.SaveArtifacts(dir, result.Artifacts); err != nil {
		t.Fatalf("SaveArtifacts: %v", err)
	}
	loaded, err := scoring.LoadArtifacts(dir)
	if err != nil {
		t.Fatalf("LoadArtifacts: %v", err)
	}
	if !loaded.Encoders.HasColumn("employment_type") {
		t.Fatal("encoder columns missing after round trip")
	}
}

func TestTrainDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 300
	cfg.Epochs = 20

	samples := Generate(cfg.Seed, cfg.Count)
	first, err := Train(cfg, samples)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	second, err := Train(cfg, samples)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}

	for i := range first.Artifacts.Classifier.Weights {
		if first.Artifacts.Classifier.Weights[i] != second.Artifacts.Classifier.Weights[i] {
			t.Fatalf("weight %d differs between identical runs", i)
		}
	}
	if first.HoldoutAccuracy != second.HoldoutAccuracy {
		t.Fatal("accuracy differs between identical runs")
	}
}

func TestEncodersSortedAndStable(t *testing.T) {
	samples := Generate(1, 500)
	schema := fitEncoders(samples)

	for column, values := range schema.Columns {
		for i := 1; i < len(values); i++ {
			if values[i-1] >= values[i] {
				t.Fatalf("column %s values not sorted: %v", column, values)
			}
		}
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "leads.csv")
	samples := Generate(2, 10)
	if err := WriteCSV(path, samples); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read dataset: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("dataset file is empty")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Count != 10000 || cfg.Seed != 42 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.yaml")
	content := "count: 500\nepochs: 25\nmodel_dir: out\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Count != 500 || cfg.Epochs != 25 || cfg.ModelDir != "out" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Seed != 42 {
		t.Fatalf("default seed lost: %d", cfg.Seed)
	}
}
