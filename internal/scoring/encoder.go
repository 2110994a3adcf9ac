package scoring

import "fmt"

// Feature column names fixed at training time. The trained artifacts refer
// to these names; renaming one invalidates every stored model.
const (
	featCreditScore        = "credit_score"
	featIncome             = "income"
	featLoanAmount         = "loan_amount"
	featDownPayment        = "down_payment"
	featSearchFrequency    = "property_search_frequency"
	featBudgetToolUsage    = "budget_tool_usage"
	featListingSaves       = "listing_saves"
	featEmailClicks        = "email_clicks"
	featWhatsApp           = "whatsapp_interactions"
	featTimeToPurchase     = "time_to_purchase"
	featEMIAffordability   = "emi_affordability"
	featJobStability       = "job_stability"
	featAgeGroup           = "age_group"
	featFamilyBackground   = "family_background"
	featEmploymentType     = "employment_type"
	featPropertyType       = "property_type"
	featIncomeToLoanRatio  = "income_to_loan_ratio"
	featDownPaymentRatio   = "down_payment_ratio"
	featDigitalEngagement  = "digital_engagement"
	featUrgencyScore       = "urgency_score"
)

// CanonicalFeatureNames returns the feature order the trainer writes into
// feature_names.json. The scorer never assumes this order at runtime; it
// always follows the loaded artifact.
func CanonicalFeatureNames() []string {
	return []string{
		featCreditScore, featIncome, featLoanAmount, featDownPayment,
		featSearchFrequency, featBudgetToolUsage, featListingSaves,
		featEmailClicks, featWhatsApp, featTimeToPurchase,
		featEMIAffordability, featJobStability,
		featAgeGroup, featFamilyBackground, featEmploymentType, featPropertyType,
		featIncomeToLoanRatio, featDownPaymentRatio, featDigitalEngagement,
		featUrgencyScore,
	}
}

// Input is the lead record as seen by the scoring pipeline. Optional fields
// are pointers so an absent field can be told apart from a legitimate zero;
// absent fields fall back to the training-time defaults below. The API
// layer enforces its own stricter required-field validation before a lead
// reaches this point.
type Input struct {
	Email                   string
	Phone                   string
	CreditScore             *float64
	Income                  *float64
	LoanAmount              *float64
	DownPayment             *float64
	PropertySearchFrequency *float64
	BudgetToolUsage         *float64
	ListingSaves            *float64
	EmailClicks             *float64
	WhatsAppInteractions    *float64
	TimeToPurchase          *float64
	EMIAffordability        *float64
	JobStability            *float64
	AgeGroup                string
	FamilyBackground        string
	EmploymentType          string
	PropertyType            string
	Comments                string
}

// FeatureVector is an ordered numeric tuple whose column order matches the
// trained model's feature name list exactly.
type FeatureVector []float64

// EncodeFeatures maps a lead input onto the trained feature schema.
// Base and categorical features are assembled first; derived features are
// computed strictly afterwards from the already-assembled values, since the
// ratio features depend on loan_amount being present. The output is ordered
// by featureNames; a name the encoder cannot produce is a schema mismatch.
func EncodeFeatures(in Input, encoders EncodingSchema, featureNames []string) (FeatureVector, error) {
	features := map[string]float64{
		featCreditScore:      valueOr(in.CreditScore, 600),
		featIncome:           valueOr(in.Income, 500000),
		featLoanAmount:       valueOr(in.LoanAmount, 3000000),
		featDownPayment:      valueOr(in.DownPayment, 600000),
		featSearchFrequency:  valueOr(in.PropertySearchFrequency, 2),
		featBudgetToolUsage:  valueOr(in.BudgetToolUsage, 1),
		featListingSaves:     valueOr(in.ListingSaves, 3),
		featEmailClicks:      valueOr(in.EmailClicks, 1),
		featWhatsApp:         valueOr(in.WhatsAppInteractions, 2),
		featTimeToPurchase:   valueOr(in.TimeToPurchase, 8),
		featEMIAffordability: valueOr(in.EMIAffordability, 2.5),
		featJobStability:     valueOr(in.JobStability, 4.0),
	}

	categorical := map[string]string{
		featAgeGroup:         stringOr(in.AgeGroup, "26-35"),
		featFamilyBackground: stringOr(in.FamilyBackground, "Married"),
		featEmploymentType:   stringOr(in.EmploymentType, "Salaried"),
		featPropertyType:     stringOr(in.PropertyType, "Apartment"),
	}
	for column, value := range categorical {
		if encoders.HasColumn(column) {
			features[column] = float64(encoders.Encode(column, value))
		}
	}

	// Derived features, computed from the assembled values rather than the
	// raw input.
	features[featIncomeToLoanRatio] = features[featIncome] / features[featLoanAmount]
	features[featDownPaymentRatio] = features[featDownPayment] / features[featLoanAmount]
	features[featDigitalEngagement] = features[featSearchFrequency] +
		features[featBudgetToolUsage] +
		features[featListingSaves] +
		features[featEmailClicks] +
		features[featWhatsApp]
	features[featUrgencyScore] = 100 / (features[featTimeToPurchase] + 1)

	vector := make(FeatureVector, 0, len(featureNames))
	for _, name := range featureNames {
		value, ok := features[name]
		if !ok {
			return nil, fmt.Errorf("feature schema mismatch: missing feature %q", name)
		}
		vector = append(vector, value)
	}

	return vector, nil
}

func valueOr(value *float64, fallback float64) float64 {
	if value == nil {
		return fallback
	}
	return *value
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
