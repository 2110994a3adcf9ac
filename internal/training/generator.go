package training

import (
	"math"
	"math/rand"
)

// Sample is one synthetic lead with its rule-derived intent label.
type Sample struct {
	CreditScore             float64
	Income                  float64
	LoanAmount              float64
	DownPayment             float64
	PropertySearchFrequency float64
	BudgetToolUsage         float64
	ListingSaves            float64
	EmailClicks             float64
	WhatsAppInteractions    float64
	TimeToPurchase          float64
	EMIAffordability        float64
	JobStability            float64
	AgeGroup                string
	FamilyBackground        string
	EmploymentType          string
	PropertyType            string
	HighIntent              bool
}

type weighted struct {
	value  string
	weight float64
}

var (
	ageGroups = []weighted{
		{"18-25", 0.15},
		{"26-35", 0.40},
		{"36-50", 0.30},
		{"51+", 0.15},
	}
	employmentTypes = []weighted{
		{"Salaried", 0.55},
		{"Self-Employed", 0.20},
		{"Business Owner", 0.15},
		{"Freelancer", 0.10},
	}
	familyBackgrounds = []weighted{
		{"Single", 0.30},
		{"Married", 0.40},
		{"Married with Kids", 0.30},
	}
	propertyTypes = []weighted{
		{"Apartment", 0.50},
		{"Villa", 0.20},
		{"Plot", 0.20},
		{"Commercial", 0.10},
	}

	baseIncomeByAge = map[string]float64{
		"18-25": 400000,
		"26-35": 800000,
		"36-50": 1200000,
		"51+":   1000000,
	}
	incomeMultiplierByEmployment = map[string]float64{
		"Salaried":       1.0,
		"Self-Employed":  1.2,
		"Business Owner": 1.5,
		"Freelancer":     0.9,
	}

	// Mean months until purchase; households with kids move faster.
	timeToPurchaseMeanByFamily = map[string]float64{
		"Single":            9,
		"Married":           6,
		"Married with Kids": 4,
	}
)

// Generate produces count synthetic leads from a seeded source, so the
// same seed always yields the same dataset.
func Generate(seed int64, count int) []Sample {
	rng := rand.New(rand.NewSource(seed))
	samples := make([]Sample, 0, count)
	for i := 0; i < count; i++ {
		samples = append(samples, generateOne(rng))
	}
	return samples
}

func generateOne(rng *rand.Rand) Sample {
	var s Sample

	s.AgeGroup = pickWeighted(rng, ageGroups)
	s.EmploymentType = pickWeighted(rng, employmentTypes)
	s.FamilyBackground = pickWeighted(rng, familyBackgrounds)
	s.PropertyType = pickWeighted(rng, propertyTypes)

	s.Income = baseIncomeByAge[s.AgeGroup] *
		incomeMultiplierByEmployment[s.EmploymentType] *
		(0.6 + rng.Float64()*0.9)

	// Higher income correlates with better credit, with noise.
	s.CreditScore = clampFloat(500+s.Income/2000000*250+rng.NormFloat64()*60, 300, 850)

	s.LoanAmount = s.Income * (5 + rng.Float64()*3)
	s.DownPayment = s.LoanAmount * (0.2 + rng.Float64()*0.2)

	s.PropertySearchFrequency = float64(poisson(rng, 4))
	s.BudgetToolUsage = float64(poisson(rng, 2))
	s.ListingSaves = float64(poisson(rng, 5))
	s.EmailClicks = float64(poisson(rng, 3))
	s.WhatsAppInteractions = float64(poisson(rng, 3))

	s.TimeToPurchase = clampFloat(rng.ExpFloat64()*timeToPurchaseMeanByFamily[s.FamilyBackground], 0, 24)

	monthlyIncome := s.Income / 12
	monthlyEMI := s.LoanAmount / 240
	s.EMIAffordability = monthlyIncome / monthlyEMI * (0.8 + rng.Float64()*0.4)
	s.JobStability = rng.Float64() * 10

	s.HighIntent = ruleScore(s) > 60

	return s
}

// ruleScore labels a sample on a 0..100 scale from hand-set weights. The
// trained model approximates this rule; the rule itself never runs in the
// serving path.
func ruleScore(s Sample) float64 {
	score := 0.0

	score += clampFloat((s.CreditScore-500)/350, 0, 1) * 20
	score += clampFloat(s.EMIAffordability/4, 0, 1) * 15
	score += clampFloat(s.DownPayment/s.LoanAmount/0.4, 0, 1) * 10

	engagement := s.PropertySearchFrequency + s.BudgetToolUsage + s.ListingSaves +
		s.EmailClicks + s.WhatsAppInteractions
	score += clampFloat(engagement/25, 0, 1) * 25

	score += clampFloat(100/(s.TimeToPurchase+1)/50, 0, 1) * 20
	score += clampFloat(s.JobStability/10, 0, 1) * 10

	return score
}

func pickWeighted(rng *rand.Rand, options []weighted) string {
	total := 0.0
	for _, opt := range options {
		total += opt.weight
	}

	target := rng.Float64() * total
	for _, opt := range options {
		target -= opt.weight
		if target <= 0 {
			return opt.value
		}
	}
	return options[len(options)-1].value
}

// poisson draws from a Poisson distribution via Knuth's method. The rates
// used here are small enough that the multiplicative loop stays cheap.
func poisson(rng *rand.Rand, lambda float64) int {
	limit := math.Exp(-lambda)
	product := rng.Float64()
	count := 0
	for product > limit {
		count++
		product *= rng.Float64()
	}
	return count
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
