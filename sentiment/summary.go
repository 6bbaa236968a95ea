package sentiment

import "fmt"

const NoData = "No sentiment data available."

// Summary is the per-role sentiment record handed to report consumers.
// Numeric fields are nil when the role spoke no sentences.
type Summary struct {
	OverallSentiment   string   `json:"overall_sentiment"`
	Description        string   `json:"description"`
	PositivePercentage *float64 `json:"positive_percentage"`
	NegativePercentage *float64 `json:"negative_percentage"`
	NeutralPercentage  *float64 `json:"neutral_percentage"`
	CompoundScore      *float64 `json:"compound_score"`
}

func Summarize(a *Aggregate) Summary {
	if a == nil {
		return Summary{OverallSentiment: NoData, Description: NoData}
	}
	pos, neg, neu, compound := a.Positive*100, a.Negative*100, a.Neutral*100, a.Compound
	label := a.Label()
	return Summary{
		OverallSentiment:   string(label),
		Description:        label.Description(),
		PositivePercentage: &pos,
		NegativePercentage: &neg,
		NeutralPercentage:  &neu,
		CompoundScore:      &compound,
	}
}

// Available reports whether the summary carries numeric data.
func (s Summary) Available() bool { return s.CompoundScore != nil }

func (s Summary) String() string {
	if !s.Available() {
		return NoData
	}
	return fmt.Sprintf("%s (Positive: %.1f%%, Negative: %.1f%%, Neutral: %.1f%%). Compound Score: %.2f",
		s.Description, *s.PositivePercentage, *s.NegativePercentage, *s.NeutralPercentage, *s.CompoundScore)
}
