// Package service orchestrates the lead scoring workflow: pipeline,
// persistence, domain events, and follow-up scheduling.
package service

import (
	"context"
	"time"

	"leadscore_backend/internal/events"
	"leadscore_backend/internal/leads/repository"
	"leadscore_backend/internal/leads/transport"
	"leadscore_backend/internal/scheduler"
	"leadscore_backend/internal/scoring"
	"leadscore_backend/platform/apperr"
	"leadscore_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

// batchConcurrency bounds how many leads of one batch are scored at once.
const batchConcurrency = 5

// Service coordinates scoring, persistence, and follow-up for leads.
type Service struct {
	repo          *repository.Repo
	scorer        *scoring.Service
	bus           events.Bus
	followUp      scheduler.FollowUpScheduler
	followUpDelay time.Duration
	log           *logger.Logger
}

// New creates the leads service. followUp may be nil when Redis is not
// configured; follow-up reminders are then skipped.
func New(repo *repository.Repo, scorer *scoring.Service, bus events.Bus, followUp scheduler.FollowUpScheduler, followUpDelay time.Duration, log *logger.Logger) *Service {
	return &Service{
		repo:          repo,
		scorer:        scorer,
		bus:           bus,
		followUp:      followUp,
		followUpDelay: followUpDelay,
		log:           log,
	}
}

// Score runs the pipeline for one lead, persists the record, publishes the
// LeadScored event, and schedules a follow-up for Very High intent leads.
func (s *Service) Score(ctx context.Context, req transport.ScoreLeadRequest) (*scoring.Result, error) {
	in := req.ToScoringInput()

	result, err := s.scorer.ScoreLead(ctx, in)
	if err != nil {
		return nil, err
	}

	leadID, err := s.repo.Insert(ctx, repository.Lead{
		Email:         in.Email,
		Phone:         in.Phone,
		InitialScore:  result.InitialScore,
		RerankedScore: result.RerankedScore,
		IntentLevel:   result.IntentLevel,
		Comments:      in.Comments,
	})
	if err != nil {
		s.log.DatabaseError("insert lead", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to store lead", err)
	}

	s.bus.Publish(ctx, events.LeadScored{
		BaseEvent:     events.NewBaseEvent(),
		LeadID:        leadID,
		HashedEmail:   result.HashedEmail,
		HashedPhone:   result.HashedPhone,
		InitialScore:  result.InitialScore,
		RerankedScore: result.RerankedScore,
		IntentLevel:   result.IntentLevel,
	})

	if result.IntentLevel == scoring.IntentVeryHigh {
		s.scheduleFollowUp(ctx, leadID, in, result)
	}

	return result, nil
}

// ScoreBatch scores up to 20 leads concurrently. Each item succeeds or
// fails on its own; results are returned in input order.
func (s *Service) ScoreBatch(ctx context.Context, reqs []transport.ScoreLeadRequest) []transport.BatchScoreItem {
	items := make([]transport.BatchScoreItem, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for i, req := range reqs {
		g.Go(func() error {
			result, err := s.Score(gctx, req)
			if err != nil {
				items[i] = transport.BatchScoreItem{Index: i, Error: err.Error()}
				return nil
			}
			items[i] = transport.BatchScoreItem{Index: i, Result: result}
			return nil
		})
	}
	_ = g.Wait()

	return items
}

// List returns all persisted lead records, newest first.
func (s *Service) List(ctx context.Context) ([]repository.Lead, error) {
	return s.repo.List(ctx)
}

// Stats aggregates stored records with the current model state.
func (s *Service) Stats(ctx context.Context) (transport.StatsResponse, error) {
	stats, err := s.repo.GetStats(ctx)
	if err != nil {
		s.log.DatabaseError("lead stats", err)
		return transport.StatsResponse{}, apperr.Wrap(apperr.KindInternal, "failed to aggregate lead stats", err)
	}

	return transport.StatsResponse{
		TotalLeads:           stats.TotalLeads,
		AverageInitialScore:  stats.AverageInitialScore,
		AverageRerankedScore: stats.AverageRerankedScore,
		IntentDistribution:   stats.IntentDistribution,
		ModelLoaded:          s.scorer.Loaded(),
		FeatureImportance:    s.scorer.FeatureImportance(),
	}, nil
}

// Health reports service status, model state, and stored row count.
func (s *Service) Health(ctx context.Context) transport.HealthResponse {
	resp := transport.HealthResponse{
		Status:      "ok",
		ModelLoaded: s.scorer.Loaded(),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		s.log.DatabaseError("count leads", err)
		resp.Status = "degraded"
		return resp
	}
	resp.TotalLeads = count

	if !resp.ModelLoaded {
		resp.Status = "degraded"
	}
	return resp
}

func (s *Service) scheduleFollowUp(ctx context.Context, leadID int64, in scoring.Input, result *scoring.Result) {
	if s.followUp == nil {
		return
	}

	payload := scheduler.LeadFollowUpPayload{
		LeadID:        leadID,
		HashedEmail:   result.HashedEmail,
		IntentLevel:   result.IntentLevel,
		RerankedScore: result.RerankedScore,
		Comments:      in.Comments,
	}
	if err := s.followUp.ScheduleLeadFollowUp(ctx, payload, s.followUpDelay); err != nil {
		// A lost reminder must not fail the scoring request.
		s.log.Warn("failed to schedule follow-up", "error", err, "leadId", leadID)
		return
	}

	s.bus.Publish(ctx, events.FollowUpScheduled{
		BaseEvent:   events.NewBaseEvent(),
		LeadID:      leadID,
		HashedEmail: result.HashedEmail,
	})
	s.log.Info("follow-up scheduled", "leadId", leadID, "delay", s.followUpDelay)
}
