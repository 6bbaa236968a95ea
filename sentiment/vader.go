package sentiment

import (
	"context"

	"github.com/jonreiter/govader"
)

// Vader scores sentences with the VADER lexicon and rules.
type Vader struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVader() *Vader {
	return &Vader{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *Vader) Score(_ context.Context, sentence string) (Polarity, error) {
	s := v.analyzer.PolarityScores(sentence)
	return Polarity{
		Compound: s.Compound,
		Positive: s.Positive,
		Negative: s.Negative,
		Neutral:  s.Neutral,
	}, nil
}
