package transport

import (
	"strings"
	"testing"

	"leadscore_backend/platform/phone"
	"leadscore_backend/platform/validator"

	playgroundvalidator "github.com/go-playground/validator/v10"
)

func newTestValidator(t *testing.T) *validator.Validator {
	t.Helper()
	val := validator.New()
	err := val.RegisterValidation("leadphone", func(fl playgroundvalidator.FieldLevel) bool {
		return phone.IsValid(fl.Field().String())
	})
	if err != nil {
		t.Fatalf("RegisterValidation: %v", err)
	}
	return val
}

func TestScoreLeadRequestSampleIsValid(t *testing.T) {
	val := newTestValidator(t)
	if err := val.Struct(SampleData()); err != nil {
		t.Fatalf("sample payload should validate: %v", err)
	}
}

func TestScoreLeadRequestRequiresCoreFields(t *testing.T) {
	val := newTestValidator(t)

	// Contact details and consent alone are not enough; the financial and
	// demographic fields are mandatory.
	minimal := ScoreLeadRequest{
		Email:   "priya.sharma@example.com",
		Phone:   "+91-9876543210",
		Consent: true,
	}
	if err := val.Struct(minimal); err == nil {
		t.Fatal("expected validation error without financial and demographic fields")
	}

	required := []func(r *ScoreLeadRequest){
		func(r *ScoreLeadRequest) { r.CreditScore = nil },
		func(r *ScoreLeadRequest) { r.Income = nil },
		func(r *ScoreLeadRequest) { r.LoanAmount = nil },
		func(r *ScoreLeadRequest) { r.DownPayment = nil },
		func(r *ScoreLeadRequest) { r.AgeGroup = "" },
		func(r *ScoreLeadRequest) { r.FamilyBackground = "" },
		func(r *ScoreLeadRequest) { r.EmploymentType = "" },
		func(r *ScoreLeadRequest) { r.PropertyType = "" },
	}
	for i, clear := range required {
		req := SampleData()
		clear(&req)
		if err := val.Struct(req); err == nil {
			t.Fatalf("case %d: expected validation error for missing required field", i)
		}
	}
}

func TestScoreLeadRequestOptionalCounters(t *testing.T) {
	val := newTestValidator(t)

	req := SampleData()
	req.PropertySearchFrequency = nil
	req.BudgetToolUsage = nil
	req.ListingSaves = nil
	req.EmailClicks = nil
	req.WhatsAppInteractions = nil
	req.TimeToPurchase = nil
	req.EMIAffordability = nil
	req.JobStability = nil
	req.Comments = ""
	if err := val.Struct(req); err != nil {
		t.Fatalf("behavioral fields should be optional: %v", err)
	}
}

func TestScoreLeadRequestRequiresConsent(t *testing.T) {
	val := newTestValidator(t)
	req := SampleData()
	req.Consent = false
	if err := val.Struct(req); err == nil {
		t.Fatal("expected validation error without consent")
	}
}

func TestScoreLeadRequestRejectsBadEnum(t *testing.T) {
	val := newTestValidator(t)
	req := SampleData()
	req.AgeGroup = "toddler"
	if err := val.Struct(req); err == nil {
		t.Fatal("expected validation error for unknown age group")
	}
}

func TestScoreLeadRequestAcceptsSpacedEnum(t *testing.T) {
	val := newTestValidator(t)
	req := SampleData()
	req.FamilyBackground = "Married with Kids"
	req.EmploymentType = "Business Owner"
	if err := val.Struct(req); err != nil {
		t.Fatalf("multi-word enum values should validate: %v", err)
	}
}

func TestScoreLeadRequestCreditScoreRange(t *testing.T) {
	val := newTestValidator(t)
	req := SampleData()
	tooLow := 250.0
	req.CreditScore = &tooLow
	if err := val.Struct(req); err == nil {
		t.Fatal("expected validation error for credit score below 300")
	}
}

func TestScoreLeadRequestRejectsBadPhone(t *testing.T) {
	val := newTestValidator(t)
	req := SampleData()
	req.Phone = "12345"
	if err := val.Struct(req); err == nil {
		t.Fatal("expected validation error for invalid phone")
	}
}

func TestBatchScoreRequestLimit(t *testing.T) {
	val := newTestValidator(t)

	batch := BatchScoreRequest{}
	for i := 0; i < 21; i++ {
		batch.Leads = append(batch.Leads, SampleData())
	}
	if err := val.Struct(batch); err == nil {
		t.Fatal("expected validation error for more than 20 leads")
	}

	batch.Leads = batch.Leads[:20]
	if err := val.Struct(batch); err != nil {
		t.Fatalf("20 leads should validate: %v", err)
	}

	empty := BatchScoreRequest{}
	if err := val.Struct(empty); err == nil {
		t.Fatal("expected validation error for empty batch")
	}
}

func TestToScoringInputSanitizes(t *testing.T) {
	req := SampleData()
	req.Phone = "+91-9876543210"
	req.Comments = "<script>alert(1)</script>ready to buy"

	in := req.ToScoringInput()

	if in.Phone != "+919876543210" {
		t.Fatalf("phone not normalized: %q", in.Phone)
	}
	if strings.Contains(in.Comments, "<") {
		t.Fatalf("comments not sanitized: %q", in.Comments)
	}
	if !strings.Contains(in.Comments, "ready to buy") {
		t.Fatalf("comment text lost: %q", in.Comments)
	}
}
