package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/maastricht-university/interview-pipeline/sentiment"
)

// Row is one flat CSV record keyed by column name.
type Row map[string]string

// ColumnName turns a criterion name into its CSV column.
func ColumnName(criterion string) string {
	return "score_" + strings.ToLower(strings.ReplaceAll(criterion, " ", "_"))
}

// Flatten renames every combined field to a flat column. Absent sentiment
// values become empty cells. recommendation is present once synthesized.
func (c Combined) Flatten() Row {
	row := Row{
		"transcript_name":       c.TranscriptName,
		"pass_fail":             string(c.Analysis.Verdict),
		"unknown_speaker_turns": strconv.Itoa(c.Unknown.Turns),
	}
	flattenSentiment(row, "candidate", c.CandidateSentiment)
	flattenSentiment(row, "interviewer", c.InterviewerSentiment)
	for _, cs := range c.Analysis.Criteria {
		row[ColumnName(cs.Name)] = cs.Score.String()
	}
	if c.Synthesis != nil {
		row["recommendation"] = c.Synthesis.Recommendation
	}
	return row
}

func flattenSentiment(row Row, role string, s sentiment.Summary) {
	row[role+"_sentiment"] = s.OverallSentiment
	row[role+"_positive"] = formatFloat(s.PositivePercentage)
	row[role+"_negative"] = formatFloat(s.NegativePercentage)
	row[role+"_neutral"] = formatFloat(s.NeutralPercentage)
	row[role+"_compound"] = formatFloat(s.CompoundScore)
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// Columns returns the sorted union of keys across rows.
func Columns(rows []Row) []string {
	set := map[string]struct{}{}
	for _, r := range rows {
		for k := range r {
			set[k] = struct{}{}
		}
	}
	cols := make([]string, 0, len(set))
	for k := range set {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

// WriteCSV writes a header row followed by one line per row.
func WriteCSV(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return fmt.Errorf("no results to write")
	}
	cols := Columns(rows)
	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	rec := make([]string, len(cols))
	for _, r := range rows {
		for i, col := range cols {
			rec[i] = r[col]
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
