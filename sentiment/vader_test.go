package sentiment

import (
	"context"
	"math"
	"testing"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := NewDefaultAnalyzer()
	if err != nil {
		t.Fatalf("NewDefaultAnalyzer() error = %v", err)
	}
	return a
}

func TestSplitterSentences(t *testing.T) {
	split, err := NewSplitter()
	if err != nil {
		t.Fatalf("NewSplitter() error = %v", err)
	}
	got := split.Split("Hello there. How are you today?")
	if len(got) != 2 {
		t.Fatalf("Split() = %q, want 2 sentences", got)
	}
	if got[1] != "How are you today?" {
		t.Errorf("second sentence = %q", got[1])
	}
}

func TestVaderNeutralFactualSpeech(t *testing.T) {
	a := newTestAnalyzer(t)
	got, err := a.Aggregate(context.Background(), []string{
		"The array has five elements.",
		"The function returns an index.",
	})
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if got == nil {
		t.Fatal("Aggregate() = nil")
	}
	if math.Abs(got.Compound) > 1e-9 {
		t.Errorf("Compound = %v, want 0", got.Compound)
	}
	if got.Label() != Neutral {
		t.Errorf("Label() = %v, want Neutral", got.Label())
	}
}

func TestVaderPolarity(t *testing.T) {
	a := newTestAnalyzer(t)
	tests := []struct {
		name string
		text string
		want Label
	}{
		{"positive", "I love this problem, it is great!", Positive},
		{"negative", "This is terrible and I hate it.", Negative},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Aggregate(context.Background(), []string{tt.text})
			if err != nil {
				t.Fatalf("Aggregate() error = %v", err)
			}
			if got.Label() != tt.want {
				t.Errorf("Label() = %v (compound %v), want %v", got.Label(), got.Compound, tt.want)
			}
			sum := got.Positive + got.Negative + got.Neutral
			if math.Abs(sum-1) > 0.01 {
				t.Errorf("pos+neg+neu = %v, want ~1", sum)
			}
		})
	}
}
