package training

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

var csvHeader = []string{
	"credit_score", "income", "loan_amount", "down_payment",
	"property_search_frequency", "budget_tool_usage", "listing_saves",
	"email_clicks", "whatsapp_interactions", "time_to_purchase",
	"emi_affordability", "job_stability",
	"age_group", "family_background", "employment_type", "property_type",
	"high_intent",
}

// WriteCSV dumps the generated dataset for inspection and reuse.
func WriteCSV(path string, samples []Sample) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, s := range samples {
		label := "0"
		if s.HighIntent {
			label = "1"
		}
		record := []string{
			formatFloat(s.CreditScore),
			formatFloat(s.Income),
			formatFloat(s.LoanAmount),
			formatFloat(s.DownPayment),
			formatFloat(s.PropertySearchFrequency),
			formatFloat(s.BudgetToolUsage),
			formatFloat(s.ListingSaves),
			formatFloat(s.EmailClicks),
			formatFloat(s.WhatsAppInteractions),
			formatFloat(s.TimeToPurchase),
			formatFloat(s.EMIAffordability),
			formatFloat(s.JobStability),
			s.AgeGroup,
			s.FamilyBackground,
			s.EmploymentType,
			s.PropertyType,
			label,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
