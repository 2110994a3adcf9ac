package scoring

import (
	"fmt"
	"strings"
)

type keywordAdjustment struct {
	keyword    string
	adjustment int
}

// Keyword adjustment tables. Each table is scanned in full and in order;
// every matched keyword contributes its adjustment, so repeated signals
// stack. Matching is case-insensitive substring matching over the raw
// comment text.
var (
	urgencyKeywords = []keywordAdjustment{
		{"urgent", 10},
		{"asap", 15},
		{"immediately", 15},
		{"quick", 8},
		{"fast", 8},
		{"soon", 5},
	}

	intentKeywords = []keywordAdjustment{
		{"ready to buy", 15},
		{"want to buy", 12},
		{"looking to purchase", 10},
		{"interested in buying", 8},
		{"ready to invest", 12},
		{"want to invest", 10},
	}

	lifeEventKeywords = []keywordAdjustment{
		{"marriage", 10},
		{"married", 5},
		{"baby", 15},
		{"child", 10},
		{"family", 8},
		{"relocation", 12},
		{"job change", 8},
		{"promotion", 5},
	}

	negativeKeywords = []keywordAdjustment{
		{"not interested", -15},
		{"just browsing", -10},
		{"not ready", -8},
		{"maybe later", -5},
		{"too expensive", -5},
		{"out of budget", -8},
	}
)

const (
	noCommentsExplanation    = "No comments provided"
	noKeywordsExplanation    = "No significant keywords found in comments"
	adjustmentExplanationFmt = "Score adjusted by %d points: %s"
)

// Rerank applies keyword-based adjustments from the lead's free-text
// comments to the initial score. The reranked score is clamped to 0..100;
// the initial score stays as computed. The explanation lists every matched
// keyword in table order, grouped under its signal category.
func Rerank(initialScore int, comments string) (int, string) {
	// Only a truly empty comment counts as absent. Whitespace goes through
	// the keyword scan and reports that nothing matched.
	if comments == "" {
		return clampScore(initialScore), noCommentsExplanation
	}

	lowered := strings.ToLower(comments)

	adjustment := 0
	var reasons []string

	scan := func(label string, table []keywordAdjustment) {
		var matched []string
		for _, entry := range table {
			if strings.Contains(lowered, entry.keyword) {
				matched = append(matched, entry.keyword)
				adjustment += entry.adjustment
			}
		}
		if len(matched) > 0 {
			reasons = append(reasons, label+": "+strings.Join(matched, ", "))
		}
	}

	scan("Urgency", urgencyKeywords)
	scan("Purchase intent", intentKeywords)
	scan("Life event", lifeEventKeywords)
	scan("Negative signal", negativeKeywords)

	if len(reasons) == 0 {
		return clampScore(initialScore), noKeywordsExplanation
	}

	explanation := fmt.Sprintf(adjustmentExplanationFmt, adjustment, strings.Join(reasons, "; "))
	return clampScore(initialScore + adjustment), explanation
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
