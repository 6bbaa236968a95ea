package orchestrator

import "github.com/maastricht-university/interview-pipeline/report"

// Failure records a transcript that could not be processed in a batch.
type Failure struct {
	Path string `json:"path"`
	Err  string `json:"error"`
}

type BatchReport struct {
	Results  []report.Combined
	Failures []Failure
}

// Rows flattens every successful result for the CSV writer.
func (b *BatchReport) Rows() []report.Row {
	rows := make([]report.Row, 0, len(b.Results))
	for _, c := range b.Results {
		rows = append(rows, c.Flatten())
	}
	return rows
}
