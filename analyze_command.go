package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/maastricht-university/interview-pipeline/orchestrator"
	"github.com/maastricht-university/interview-pipeline/report"
	"github.com/maastricht-university/interview-pipeline/transcript"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var (
		dir         string
		csvPath     string
		save        bool
		outputs     string
		asJSON      bool
		candidate   string
		interviewer string
	)

	cmd := &cobra.Command{
		Use:   "analyze [transcript...]",
		Short: "Run sentiment and rubric analysis on transcripts",
		Long: "Analyze the given transcript files, or every .json/.yaml/.yml/.txt file in --dir " +
			"(default paths.transcripts). Failing transcripts are reported and skipped.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			p, err := ctx.pipeline(transcript.Roles{Candidate: candidate, Interviewer: interviewer})
			if err != nil {
				return err
			}

			var batch *orchestrator.BatchReport
			if len(args) > 0 {
				batch = &orchestrator.BatchReport{}
				for _, path := range args {
					c, err := p.RunFile(cmd.Context(), path)
					if err != nil {
						ctx.logger.WithField("file", path).WithError(err).Warn("transcript skipped")
						batch.Failures = append(batch.Failures, orchestrator.Failure{Path: path, Err: err.Error()})
						continue
					}
					batch.Results = append(batch.Results, *c)
				}
			} else {
				if dir == "" {
					dir = cfg.Paths.Transcripts
				}
				if batch, err = p.RunDir(cmd.Context(), dir); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				enc.SetEscapeHTML(false)
				if err := enc.Encode(batch.Results); err != nil {
					return err
				}
			} else {
				printSummary(out, batch)
			}

			if csvPath != "" && len(batch.Results) > 0 {
				if err := writeCSVFile(csvPath, batch.Rows()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d rows to %s\n", len(batch.Results), csvPath)
			}

			root := outputs
			if root == "" {
				root = cfg.Paths.Outputs
			}
			if save || root != "" {
				if root == "" {
					root = "outputs"
				}
				sessionDir, err := orchestrator.Save(root, batch)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved session to %s\n", sessionDir)
			}

			if len(batch.Results) == 0 {
				return fmt.Errorf("no transcript could be analyzed (%d failed)", len(batch.Failures))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory of transcripts (default paths.transcripts)")
	cmd.Flags().StringVarP(&csvPath, "output", "o", "", "Write the combined CSV to this path")
	cmd.Flags().BoolVar(&save, "save", false, "Write a session bundle (results.json, combined.csv)")
	cmd.Flags().StringVar(&outputs, "outputs", "", "Session bundle root (default paths.outputs, then ./outputs)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print combined results as JSON")
	cmd.Flags().StringVar(&candidate, "candidate", "", "Candidate speaker name, overrides transcript metadata")
	cmd.Flags().StringVar(&interviewer, "interviewer", "", "Interviewer speaker name, overrides transcript metadata")
	return cmd
}

func writeCSVFile(path string, rows []report.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	if err := report.WriteCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

var summaryHeaders = []string{"Transcript", "Verdict", "Candidate", "Interviewer", "Scored", "Unknown turns"}

func summaryRows(batch *orchestrator.BatchReport) [][]string {
	rows := make([][]string, 0, len(batch.Results)+len(batch.Failures))
	for _, c := range batch.Results {
		verdict := string(c.Analysis.Verdict)
		if c.Analysis.Failed() {
			verdict = "error"
		}
		scored := 0
		for _, cs := range c.Analysis.Criteria {
			if !cs.Score.IsNotApplicable() {
				scored++
			}
		}
		rows = append(rows, []string{
			c.TranscriptName,
			verdict,
			c.CandidateSentiment.OverallSentiment,
			c.InterviewerSentiment.OverallSentiment,
			fmt.Sprintf("%d/%d", scored, len(c.Analysis.Criteria)),
			strconv.Itoa(c.Unknown.Turns),
		})
	}
	for _, f := range batch.Failures {
		rows = append(rows, []string{f.Path, "skipped", "", "", "", ""})
	}
	return rows
}

func printSummary(w io.Writer, batch *orchestrator.BatchReport) {
	rows := summaryRows(batch)
	if isTerminal(w) {
		fmt.Fprintln(w, renderSummary(summaryHeaders, rows, 5, 6))
	} else {
		for _, r := range rows {
			fmt.Fprintln(w, strings.Join(r, "\t"))
		}
	}
	for _, f := range batch.Failures {
		fmt.Fprintf(w, "skipped %s: %s\n", f.Path, f.Err)
	}
}
