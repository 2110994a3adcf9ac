// Package transport defines the request and response DTOs for the leads
// HTTP API.
package transport

import (
	"leadscore_backend/internal/scoring"
	"leadscore_backend/platform/phone"
	"leadscore_backend/platform/sanitize"
)

// ScoreLeadRequest is the lead payload accepted by the scoring endpoints.
// Financial and demographic fields are mandatory; only the behavioral
// counters and affordability signals may be omitted, in which case the
// encoder substitutes the model's training-time defaults. Optional numeric
// fields are pointers so an omitted field is not read as zero.
type ScoreLeadRequest struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,leadphone"`

	CreditScore *float64 `json:"credit_score" validate:"required,gte=300,lte=850"`
	Income      *float64 `json:"income" validate:"required,gt=0"`
	LoanAmount  *float64 `json:"loan_amount" validate:"required,gt=0"`
	DownPayment *float64 `json:"down_payment" validate:"required,gt=0"`

	AgeGroup         string `json:"age_group" validate:"required,oneof=18-25 26-35 36-50 51+"`
	FamilyBackground string `json:"family_background" validate:"required,oneof=Single Married 'Married with Kids'"`
	EmploymentType   string `json:"employment_type" validate:"required,oneof=Salaried Self-Employed 'Business Owner' Freelancer"`
	PropertyType     string `json:"property_type" validate:"required,oneof=Apartment Villa Plot Commercial"`

	PropertySearchFrequency *float64 `json:"property_search_frequency" validate:"omitempty,gte=0"`
	BudgetToolUsage         *float64 `json:"budget_tool_usage" validate:"omitempty,gte=0"`
	ListingSaves            *float64 `json:"listing_saves" validate:"omitempty,gte=0"`
	EmailClicks             *float64 `json:"email_clicks" validate:"omitempty,gte=0"`
	WhatsAppInteractions    *float64 `json:"whatsapp_interactions" validate:"omitempty,gte=0"`

	TimeToPurchase   *float64 `json:"time_to_purchase" validate:"omitempty,gte=0"`
	EMIAffordability *float64 `json:"emi_affordability" validate:"omitempty,gte=0"`
	JobStability     *float64 `json:"job_stability" validate:"omitempty,gte=0,lte=10"`

	Comments string `json:"comments" validate:"omitempty,max=2000"`
	Consent  bool   `json:"consent" validate:"required,eq=true"`
}

// ToScoringInput converts the request into a pipeline input. The phone
// number is normalized to E.164 and the comments are stripped of HTML
// before they reach the pipeline or storage.
func (r ScoreLeadRequest) ToScoringInput() scoring.Input {
	return scoring.Input{
		Email:                   r.Email,
		Phone:                   phone.NormalizeE164(r.Phone),
		CreditScore:             r.CreditScore,
		Income:                  r.Income,
		LoanAmount:              r.LoanAmount,
		DownPayment:             r.DownPayment,
		PropertySearchFrequency: r.PropertySearchFrequency,
		BudgetToolUsage:         r.BudgetToolUsage,
		ListingSaves:            r.ListingSaves,
		EmailClicks:             r.EmailClicks,
		WhatsAppInteractions:    r.WhatsAppInteractions,
		TimeToPurchase:          r.TimeToPurchase,
		EMIAffordability:        r.EMIAffordability,
		JobStability:            r.JobStability,
		AgeGroup:                r.AgeGroup,
		FamilyBackground:        r.FamilyBackground,
		EmploymentType:          r.EmploymentType,
		PropertyType:            r.PropertyType,
		Comments:                sanitize.Text(r.Comments),
	}
}

// BatchScoreRequest wraps up to 20 leads for concurrent scoring.
type BatchScoreRequest struct {
	Leads []ScoreLeadRequest `json:"leads" validate:"required,min=1,max=20,dive"`
}

// BatchScoreItem is the per-lead outcome of a batch request, positioned at
// the same index as its input.
type BatchScoreItem struct {
	Index  int             `json:"index"`
	Result *scoring.Result `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// BatchScoreResponse is the full batch outcome.
type BatchScoreResponse struct {
	Results []BatchScoreItem `json:"results"`
}

// StatsResponse summarizes the stored leads and the loaded model.
type StatsResponse struct {
	TotalLeads           int64              `json:"total_leads"`
	AverageInitialScore  float64            `json:"average_initial_score"`
	AverageRerankedScore float64            `json:"average_reranked_score"`
	IntentDistribution   map[string]int64   `json:"intent_distribution"`
	ModelLoaded          bool               `json:"model_loaded"`
	FeatureImportance    map[string]float64 `json:"feature_importance,omitempty"`
}

// HealthResponse is the /api/health payload.
type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	TotalLeads  int64  `json:"total_leads"`
	Timestamp   string `json:"timestamp"`
}

// SampleData returns an example scoring payload for API consumers.
func SampleData() ScoreLeadRequest {
	creditScore := 720.0
	income := 1200000.0
	loanAmount := 5000000.0
	downPayment := 1500000.0
	searches := 8.0
	budgetTool := 4.0
	saves := 12.0
	clicks := 6.0
	whatsapp := 5.0
	months := 3.0
	emi := 3.2
	stability := 7.0

	return ScoreLeadRequest{
		Email:                   "priya.sharma@example.com",
		Phone:                   "+91-9876543210",
		CreditScore:             &creditScore,
		Income:                  &income,
		LoanAmount:              &loanAmount,
		DownPayment:             &downPayment,
		AgeGroup:                "26-35",
		FamilyBackground:        "Married",
		EmploymentType:          "Salaried",
		PropertyType:            "Apartment",
		PropertySearchFrequency: &searches,
		BudgetToolUsage:         &budgetTool,
		ListingSaves:            &saves,
		EmailClicks:             &clicks,
		WhatsAppInteractions:    &whatsapp,
		TimeToPurchase:          &months,
		EMIAffordability:        &emi,
		JobStability:            &stability,
		Comments:                "We are ready to buy and want to move in soon",
		Consent:                 true,
	}
}
