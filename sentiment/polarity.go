package sentiment

import "context"

// Polarity is the four-stream score of one sentence.
// Compound is in [-1, 1]; Positive, Negative and Neutral are in [0, 1] and sum to ~1.
type Polarity struct {
	Compound float64 `json:"compound"`
	Positive float64 `json:"pos"`
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
}

// Scorer assigns polarity scores to a single cleaned sentence.
type Scorer interface {
	Score(ctx context.Context, sentence string) (Polarity, error)
}

type Label string

const (
	Positive Label = "Positive"
	Negative Label = "Negative"
	Neutral  Label = "Neutral"
)

// Label thresholds on the mean compound score. These are fixed.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// Classify maps a mean compound score to a label.
func Classify(compound float64) Label {
	switch {
	case compound >= PositiveThreshold:
		return Positive
	case compound <= NegativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

// Description is the human-readable form used in reports.
func (l Label) Description() string {
	switch l {
	case Positive:
		return "Generally positive."
	case Negative:
		return "Generally negative."
	default:
		return "Neutral."
	}
}
