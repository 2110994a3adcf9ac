package scoring

import "testing"

// The tier labels are part of the API and storage contract; consumers
// match on the exact strings.
func TestIntentLevelLabels(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{85, "Very High"},
		{65, "High"},
		{45, "Medium"},
		{25, "Low"},
		{5, "Very Low"},
	}

	for _, tc := range cases {
		if got := IntentLevel(tc.score); got != tc.want {
			t.Fatalf("IntentLevel(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestIntentLevelThresholds(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{100, IntentVeryHigh},
		{80, IntentVeryHigh},
		{79, IntentHigh},
		{60, IntentHigh},
		{59, IntentMedium},
		{40, IntentMedium},
		{39, IntentLow},
		{20, IntentLow},
		{19, IntentVeryLow},
		{0, IntentVeryLow},
	}

	for _, tc := range cases {
		if got := IntentLevel(tc.score); got != tc.want {
			t.Fatalf("IntentLevel(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestIntentLevelMonotonic(t *testing.T) {
	rank := map[string]int{
		IntentVeryLow:  0,
		IntentLow:      1,
		IntentMedium:   2,
		IntentHigh:     3,
		IntentVeryHigh: 4,
	}

	previous := rank[IntentLevel(0)]
	for score := 1; score <= 100; score++ {
		current := rank[IntentLevel(score)]
		if current < previous {
			t.Fatalf("tier dropped from %d to %d at score %d", previous, current, score)
		}
		previous = current
	}
}
