package scoring

import (
	"math"
	"testing"
)

func testFeatureNames() []string {
	return []string{
		"credit_score", "income", "loan_amount", "down_payment",
		"property_search_frequency", "budget_tool_usage", "listing_saves",
		"email_clicks", "whatsapp_interactions", "time_to_purchase",
		"emi_affordability", "job_stability",
		"age_group", "family_background", "employment_type", "property_type",
		"income_to_loan_ratio", "down_payment_ratio", "digital_engagement",
		"urgency_score",
	}
}

func testEncodingSchema() EncodingSchema {
	return EncodingSchema{
		Version: 1,
		Columns: map[string][]string{
			"age_group":         {"18-25", "26-35", "36-50", "51+"},
			"family_background": {"Married", "Married with Kids", "Single"},
			"employment_type":   {"Business Owner", "Freelancer", "Salaried", "Self-Employed"},
			"property_type":     {"Apartment", "Commercial", "Plot", "Villa"},
		},
	}
}

func floatPtr(v float64) *float64 { return &v }

func featureAt(t *testing.T, vector FeatureVector, names []string, name string) float64 {
	t.Helper()
	for i, n := range names {
		if n == name {
			return vector[i]
		}
	}
	t.Fatalf("feature %q not in name list", name)
	return 0
}

func TestEncodeFeaturesDefaults(t *testing.T) {
	names := testFeatureNames()
	vector, err := EncodeFeatures(Input{}, testEncodingSchema(), names)
	if err != nil {
		t.Fatalf("EncodeFeatures: %v", err)
	}
	if len(vector) != len(names) {
		t.Fatalf("expected %d features, got %d", len(names), len(vector))
	}

	checks := map[string]float64{
		"credit_score":       600,
		"income":             500000,
		"loan_amount":        3000000,
		"down_payment":       600000,
		"time_to_purchase":   8,
		"emi_affordability":  2.5,
		"job_stability":      4.0,
		"age_group":          1, // "26-35"
		"family_background":  0, // "Married"
		"employment_type":    2, // "Salaried"
		"property_type":      0, // "Apartment"
		"digital_engagement": 2 + 1 + 3 + 1 + 2,
	}
	for name, want := range checks {
		if got := featureAt(t, vector, names, name); got != want {
			t.Fatalf("%s = %v, want %v", name, got, want)
		}
	}
}

func TestEncodeFeaturesDerived(t *testing.T) {
	names := testFeatureNames()
	in := Input{
		Income:         floatPtr(1200000),
		LoanAmount:     floatPtr(6000000),
		DownPayment:    floatPtr(1500000),
		TimeToPurchase: floatPtr(3),
	}
	vector, err := EncodeFeatures(in, testEncodingSchema(), names)
	if err != nil {
		t.Fatalf("EncodeFeatures: %v", err)
	}

	if got := featureAt(t, vector, names, "income_to_loan_ratio"); got != 0.2 {
		t.Fatalf("income_to_loan_ratio = %v, want 0.2", got)
	}
	if got := featureAt(t, vector, names, "down_payment_ratio"); got != 0.25 {
		t.Fatalf("down_payment_ratio = %v, want 0.25", got)
	}
	if got := featureAt(t, vector, names, "urgency_score"); got != 25 {
		t.Fatalf("urgency_score = %v, want 25", got)
	}
}

func TestEncodeFeaturesZeroIsNotMissing(t *testing.T) {
	names := testFeatureNames()
	in := Input{ListingSaves: floatPtr(0)}
	vector, err := EncodeFeatures(in, testEncodingSchema(), names)
	if err != nil {
		t.Fatalf("EncodeFeatures: %v", err)
	}
	if got := featureAt(t, vector, names, "listing_saves"); got != 0 {
		t.Fatalf("explicit zero replaced by default: %v", got)
	}
	if got := featureAt(t, vector, names, "digital_engagement"); got != 2+1+0+1+2 {
		t.Fatalf("digital_engagement = %v, want 6", got)
	}
}

func TestEncodeFeaturesUnseenCategory(t *testing.T) {
	names := testFeatureNames()
	in := Input{PropertyType: "Castle"}
	vector, err := EncodeFeatures(in, testEncodingSchema(), names)
	if err != nil {
		t.Fatalf("EncodeFeatures: %v", err)
	}
	if got := featureAt(t, vector, names, "property_type"); got != 0 {
		t.Fatalf("unseen category should encode to 0, got %v", got)
	}
}

func TestEncodeFeaturesSchemaMismatch(t *testing.T) {
	names := append(testFeatureNames(), "mystery_feature")
	_, err := EncodeFeatures(Input{}, testEncodingSchema(), names)
	if err == nil {
		t.Fatal("expected schema mismatch error")
	}
}

func TestEncodeFeaturesDeterministic(t *testing.T) {
	names := testFeatureNames()
	in := Input{
		Income:   floatPtr(800000),
		AgeGroup: "36-50",
		Comments: "urgent",
		Email:    "a@b.c",
	}
	first, err := EncodeFeatures(in, testEncodingSchema(), names)
	if err != nil {
		t.Fatalf("EncodeFeatures: %v", err)
	}
	second, err := EncodeFeatures(in, testEncodingSchema(), names)
	if err != nil {
		t.Fatalf("EncodeFeatures: %v", err)
	}
	for i := range first {
		if math.Abs(first[i]-second[i]) != 0 {
			t.Fatalf("feature %d differs between runs: %v vs %v", i, first[i], second[i])
		}
	}
}
