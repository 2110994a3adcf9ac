package scoring

import (
	"context"
	"time"

	"leadscore_backend/platform/apperr"
	"leadscore_backend/platform/logger"
	"leadscore_backend/platform/piihash"
)

// Result is the outcome of scoring a single lead. Identifiers are hashed
// before they leave the service; raw email and phone never appear here.
type Result struct {
	InitialScore  int       `json:"initial_score"`
	RerankedScore int       `json:"reranked_score"`
	IntentLevel   string    `json:"intent_level"`
	Explanation   string    `json:"explanation"`
	HashedEmail   string    `json:"hashed_email"`
	HashedPhone   string    `json:"hashed_phone"`
	Timestamp     time.Time `json:"timestamp"`
}

// Service runs the scoring pipeline. It is stateless after construction;
// the artifact set is loaded once and treated as read-only, so concurrent
// ScoreLead calls need no synchronization.
type Service struct {
	artifacts *Artifacts
	scorer    *Scorer
	log       *logger.Logger
}

// NewService loads the model artifacts from dir. A failed load is not
// fatal: the service comes up in the unavailable state and every scoring
// call returns a typed unavailable error until the artifacts exist.
func NewService(modelDir string, log *logger.Logger) *Service {
	s := &Service{log: log}

	artifacts, err := LoadArtifacts(modelDir)
	if err != nil {
		log.Warn("model artifacts not loaded, scoring unavailable", "dir", modelDir, "error", err)
		return s
	}

	s.artifacts = artifacts
	s.scorer = NewScorer(artifacts)
	log.Info("model artifacts loaded", "dir", modelDir, "features", len(artifacts.FeatureNames))
	return s
}

// Loaded reports whether the trained artifacts are available.
func (s *Service) Loaded() bool {
	return s.artifacts != nil
}

// ScoreLead runs the full pipeline for one lead: encode, score, rerank,
// tier, hash PII.
func (s *Service) ScoreLead(ctx context.Context, in Input) (*Result, error) {
	if !s.Loaded() {
		return nil, apperr.Unavailable("model not loaded").WithOp("scoring.ScoreLead")
	}

	vector, err := EncodeFeatures(in, s.artifacts.Encoders, s.artifacts.FeatureNames)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to encode lead features", err).WithOp("scoring.ScoreLead")
	}

	initialScore, err := s.scorer.Score(vector)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to score lead", err).WithOp("scoring.ScoreLead")
	}

	rerankedScore, explanation := Rerank(initialScore, in.Comments)
	intentLevel := IntentLevel(rerankedScore)

	result := &Result{
		InitialScore:  initialScore,
		RerankedScore: rerankedScore,
		IntentLevel:   intentLevel,
		Explanation:   explanation,
		HashedEmail:   piihash.Hash(in.Email),
		HashedPhone:   piihash.Hash(in.Phone),
		Timestamp:     time.Now().UTC(),
	}

	s.log.WithContext(ctx).ScoringEvent(result.HashedEmail, result.InitialScore, result.RerankedScore, result.IntentLevel)
	return result, nil
}

// FeatureImportance exposes the model's per-feature weight shares for the
// stats endpoint. Returns nil when the model is not loaded.
func (s *Service) FeatureImportance() map[string]float64 {
	if !s.Loaded() {
		return nil
	}
	return s.scorer.FeatureImportance()
}
