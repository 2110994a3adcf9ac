package scoring

import (
	"math"
	"testing"
)

func TestLoadArtifactsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	if err := SaveArtifacts(dir, testArtifacts()); err != nil {
		t.Fatalf("SaveArtifacts: %v", err)
	}

	loaded, err := LoadArtifacts(dir)
	if err != nil {
		t.Fatalf("LoadArtifacts: %v", err)
	}
	if len(loaded.FeatureNames) != len(testFeatureNames()) {
		t.Fatalf("feature names lost in round trip: %d", len(loaded.FeatureNames))
	}
	if !loaded.Encoders.HasColumn("age_group") {
		t.Fatal("encoder columns lost in round trip")
	}
}

func TestLoadArtifactsMissingFile(t *testing.T) {
	if _, err := LoadArtifacts(t.TempDir()); err == nil {
		t.Fatal("expected error for empty model dir")
	}
}

func TestLoadArtifactsDimensionMismatch(t *testing.T) {
	dir := t.TempDir()
	a := testArtifacts()
	a.Classifier.Weights = a.Classifier.Weights[:3]
	if err := SaveArtifacts(dir, a); err != nil {
		t.Fatalf("SaveArtifacts: %v", err)
	}

	if _, err := LoadArtifacts(dir); err == nil {
		t.Fatal("expected dimension mismatch error")
	}
}

func TestEncodingSchemaEncode(t *testing.T) {
	schema := testEncodingSchema()
	if got := schema.Encode("age_group", "36-50"); got != 2 {
		t.Fatalf("encode 36-50 = %d, want 2", got)
	}
	if got := schema.Encode("age_group", "unheard of"); got != 0 {
		t.Fatalf("unseen value should encode to 0, got %d", got)
	}
	if schema.HasColumn("shoe_size") {
		t.Fatal("unexpected column")
	}
}

func TestScorerTruncatesProbability(t *testing.T) {
	a := testArtifacts()
	// Zero weights: the probability is sigmoid(bias) for every input.
	// sigmoid(ln(999)) = 0.999, which must truncate to 99, not round to 100.
	a.Classifier.Bias = math.Log(999)

	vector := make(FeatureVector, len(a.FeatureNames))
	score, err := NewScorer(a).Score(vector)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if score != 99 {
		t.Fatalf("score = %d, want 99", score)
	}
}

func TestScorerRejectsWrongDimension(t *testing.T) {
	a := testArtifacts()
	if _, err := NewScorer(a).Score(FeatureVector{1, 2, 3}); err == nil {
		t.Fatal("expected dimension error")
	}
}
