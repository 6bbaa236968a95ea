package rubric

import (
	"errors"
	"fmt"
	"strings"

	"github.com/maastricht-university/interview-pipeline/transcript"
)

// Result-shaped error messages.
const (
	ErrFileNotFound = "Transcript file not found."
	ErrInvalidJSON  = "Invalid JSON format in transcript file."
	ErrNoText       = "No transcript text found in the JSON file."
)

// Rubric is an ordered, validated criterion table.
type Rubric struct {
	criteria []Criterion
}

// New validates the table and returns a rubric evaluating it in order.
func New(criteria []Criterion) (*Rubric, error) {
	seen := map[string]bool{}
	for _, c := range criteria {
		if seen[c.Name] {
			return nil, &ScoringError{Criterion: c.Name, Reason: "duplicate criterion"}
		}
		seen[c.Name] = true
		if err := c.validate(); err != nil {
			return nil, err
		}
	}
	return &Rubric{criteria: criteria}, nil
}

var defaultRubric = mustNew(defaultCriteria)

func mustNew(criteria []Criterion) *Rubric {
	r, err := New(criteria)
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the interview competency rubric.
func Default() *Rubric { return defaultRubric }

// Names returns the criterion names in output order.
func (r *Rubric) Names() []string {
	names := make([]string, len(r.criteria))
	for i, c := range r.criteria {
		names[i] = c.Name
	}
	return names
}

// Evaluate scores the whole interview text. Whitespace-only text yields an
// error result.
func (r *Rubric) Evaluate(text string) Result {
	if strings.TrimSpace(text) == "" {
		return ErrorResult(ErrNoText)
	}
	lower := strings.ToLower(text)
	res := Result{Criteria: make([]CriterionScore, 0, len(r.criteria))}
	scores := make([]Score, 0, len(r.criteria))
	for _, c := range r.criteria {
		cs := c.evaluate(lower)
		res.Criteria = append(res.Criteria, cs)
		scores = append(scores, cs.Score)
	}
	res.Verdict = Decide(scores)
	return res
}

// ScoreFile loads a transcript document and scores the dialogue of every
// entry, including entries with no speaker.
func (r *Rubric) ScoreFile(path string) Result {
	doc, err := transcript.LoadFile(path)
	if err != nil {
		var de *transcript.DecodeError
		if errors.As(err, &de) {
			return ErrorResult(ErrInvalidJSON)
		}
		return ErrorResult(ErrFileNotFound)
	}
	text, err := transcript.DialogueText(doc)
	if err != nil {
		return ErrorResult(ErrNoText)
	}
	return r.Evaluate(text)
}

func (r *Rubric) String() string {
	return fmt.Sprintf("rubric(%d criteria)", len(r.criteria))
}
