package scoring

import (
	"context"
	"testing"

	"leadscore_backend/platform/apperr"
	"leadscore_backend/platform/logger"
)

// testArtifacts builds a zero-weight model whose classifier always outputs
// probability 0.5, so the initial score is exactly 50 for any input.
func testArtifacts() *Artifacts {
	names := testFeatureNames()
	return &Artifacts{
		Classifier: Classifier{
			Weights: make([]float64, len(names)),
			Bias:    0,
		},
		Scaler: Scaler{
			Mean: make([]float64, len(names)),
			Std:  onesVector(len(names)),
		},
		Encoders:     testEncodingSchema(),
		FeatureNames: names,
	}
}

func onesVector(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}
	return v
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	dir := t.TempDir()
	if err := SaveArtifacts(dir, testArtifacts()); err != nil {
		t.Fatalf("SaveArtifacts: %v", err)
	}
	svc := NewService(dir, logger.New("development"))
	if !svc.Loaded() {
		t.Fatal("service should be loaded")
	}
	return svc
}

func TestServiceUnavailableWithoutArtifacts(t *testing.T) {
	svc := NewService(t.TempDir(), logger.New("development"))
	if svc.Loaded() {
		t.Fatal("service should not be loaded from an empty dir")
	}

	_, err := svc.ScoreLead(context.Background(), Input{Email: "a@b.c", Phone: "+91-9876543210"})
	if err == nil {
		t.Fatal("expected error from unloaded service")
	}
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected unavailable kind, got %v", err)
	}
	if svc.FeatureImportance() != nil {
		t.Fatal("importance should be nil when not loaded")
	}
}

func TestServiceScoreLeadPipeline(t *testing.T) {
	svc := newTestService(t)

	// Zero-weight model gives initial 50; urgent + ready to buy + baby adds 40.
	result, err := svc.ScoreLead(context.Background(), Input{
		Email:    "buyer@example.com",
		Phone:    "+91-9876543210",
		Comments: "urgent, ready to buy, we have a baby on the way",
	})
	if err != nil {
		t.Fatalf("ScoreLead: %v", err)
	}

	if result.InitialScore != 50 {
		t.Fatalf("initial score = %d, want 50", result.InitialScore)
	}
	if result.RerankedScore != 90 {
		t.Fatalf("reranked score = %d, want 90", result.RerankedScore)
	}
	if result.IntentLevel != IntentVeryHigh {
		t.Fatalf("intent level = %q, want %q", result.IntentLevel, IntentVeryHigh)
	}
	if result.Timestamp.IsZero() {
		t.Fatal("timestamp not set")
	}
}

func TestServiceHashesPII(t *testing.T) {
	svc := newTestService(t)

	in := Input{Email: "buyer@example.com", Phone: "+91-9876543210"}
	first, err := svc.ScoreLead(context.Background(), in)
	if err != nil {
		t.Fatalf("ScoreLead: %v", err)
	}
	second, err := svc.ScoreLead(context.Background(), in)
	if err != nil {
		t.Fatalf("ScoreLead: %v", err)
	}

	if len(first.HashedEmail) != 16 || len(first.HashedPhone) != 16 {
		t.Fatalf("hashes should be 16 hex chars, got %q %q", first.HashedEmail, first.HashedPhone)
	}
	if first.HashedEmail != second.HashedEmail || first.HashedPhone != second.HashedPhone {
		t.Fatal("hashes should be deterministic")
	}
	if first.HashedEmail == in.Email || first.HashedPhone == in.Phone {
		t.Fatal("raw identifiers leaked into the result")
	}
}

func TestServiceSchemaMismatch(t *testing.T) {
	dir := t.TempDir()
	a := testArtifacts()
	a.FeatureNames[len(a.FeatureNames)-1] = "mystery_feature"
	if err := SaveArtifacts(dir, a); err != nil {
		t.Fatalf("SaveArtifacts: %v", err)
	}

	svc := NewService(dir, logger.New("development"))
	if !svc.Loaded() {
		t.Fatal("service should load, mismatch surfaces at scoring time")
	}

	_, err := svc.ScoreLead(context.Background(), Input{Email: "a@b.c", Phone: "+91-9876543210"})
	if !apperr.Is(err, apperr.KindInternal) {
		t.Fatalf("expected internal kind for schema mismatch, got %v", err)
	}
}

func TestServiceFeatureImportance(t *testing.T) {
	dir := t.TempDir()
	a := testArtifacts()
	a.Classifier.Weights[0] = 3
	a.Classifier.Weights[1] = -1
	if err := SaveArtifacts(dir, a); err != nil {
		t.Fatalf("SaveArtifacts: %v", err)
	}

	svc := NewService(dir, logger.New("development"))
	importance := svc.FeatureImportance()
	if importance == nil {
		t.Fatal("importance should be available")
	}
	if got := importance[a.FeatureNames[0]]; got != 0.75 {
		t.Fatalf("importance[0] = %v, want 0.75", got)
	}
	if got := importance[a.FeatureNames[1]]; got != 0.25 {
		t.Fatalf("importance[1] = %v, want 0.25", got)
	}
}
