package sentiment

import (
	"context"
	"fmt"
)

// Aggregate is the flat mean of every sentence spoken by one role.
type Aggregate struct {
	Compound  float64 `json:"compound"`
	Positive  float64 `json:"positive"`
	Negative  float64 `json:"negative"`
	Neutral   float64 `json:"neutral"`
	Sentences int     `json:"sentences"`
}

func (a *Aggregate) Label() Label { return Classify(a.Compound) }

type Analyzer struct {
	scorer Scorer
	split  Splitter
}

func NewAnalyzer(scorer Scorer, split Splitter) *Analyzer {
	return &Analyzer{scorer: scorer, split: split}
}

// NewDefaultAnalyzer wires the VADER scorer and the punkt splitter.
func NewDefaultAnalyzer() (*Analyzer, error) {
	split, err := NewSplitter()
	if err != nil {
		return nil, err
	}
	return NewAnalyzer(NewVader(), split), nil
}

// Aggregate scores every sentence of every utterance and averages the four
// streams independently. It returns nil when there is nothing to score.
func (a *Analyzer) Aggregate(ctx context.Context, utterances []string) (*Aggregate, error) {
	if len(utterances) == 0 {
		return nil, nil
	}
	var sum Polarity
	n := 0
	for _, u := range utterances {
		for _, sentence := range a.split.Split(u) {
			p, err := a.scorer.Score(ctx, Clean(sentence))
			if err != nil {
				return nil, fmt.Errorf("score sentence: %w", err)
			}
			sum.Compound += p.Compound
			sum.Positive += p.Positive
			sum.Negative += p.Negative
			sum.Neutral += p.Neutral
			n++
		}
	}
	if n == 0 {
		return nil, nil
	}
	f := float64(n)
	return &Aggregate{
		Compound:  sum.Compound / f,
		Positive:  sum.Positive / f,
		Negative:  sum.Negative / f,
		Neutral:   sum.Neutral / f,
		Sentences: n,
	}, nil
}
