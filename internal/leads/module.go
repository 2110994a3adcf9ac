// Package leads provides the lead scoring bounded context module.
// This file defines the module that encapsulates all leads setup and route registration.
package leads

import (
	"time"

	"leadscore_backend/internal/events"
	apphttp "leadscore_backend/internal/http"
	"leadscore_backend/internal/leads/handler"
	"leadscore_backend/internal/leads/repository"
	"leadscore_backend/internal/leads/service"
	"leadscore_backend/internal/scheduler"
	"leadscore_backend/internal/scoring"
	"leadscore_backend/platform/logger"
	"leadscore_backend/platform/phone"
	"leadscore_backend/platform/validator"

	playgroundvalidator "github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the leads module with all its dependencies.
// followUp may be nil; Very High intent leads then skip the reminder.
func NewModule(pool *pgxpool.Pool, eventBus events.Bus, followUp scheduler.FollowUpScheduler, followUpDelay time.Duration, scorer *scoring.Service, val *validator.Validator, log *logger.Logger) (*Module, error) {
	if err := val.RegisterValidation("leadphone", func(fl playgroundvalidator.FieldLevel) bool {
		return phone.IsValid(fl.Field().String())
	}); err != nil {
		return nil, err
	}

	subscribeAuditLog(eventBus, log)

	repo := repository.New(pool)
	svc := service.New(repo, scorer, eventBus, followUp, followUpDelay, log)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service returns the leads service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts leads routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Engine.GET("/api/health", m.handler.Health)

	ctx.V1.POST("/score", m.handler.Score)
	ctx.V1.POST("/score/batch", m.handler.ScoreBatch)
	ctx.V1.GET("/stats", m.handler.Stats)
	ctx.V1.GET("/sample-data", m.handler.SampleData)

	// Raw lead records stay behind auth
	ctx.Protected.GET("/leads", m.handler.List)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
