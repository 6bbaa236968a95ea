package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/maastricht-university/interview-pipeline/report"
)

func newSynthesizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "synthesize <results.json>",
		Short: "Write narrative feedback from combined results",
		Long:  "Accepts a single combined result or a session bundle (results.json) and prints the synthesis and recommendation for each transcript.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			results, err := decodeCombined(b)
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}
			for i, c := range results {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				printSynthesis(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

// decodeCombined reads either a session bundle or one combined result.
func decodeCombined(b []byte) ([]report.Combined, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(b, &probe); err != nil {
		return nil, err
	}
	if raw, ok := probe["results"]; ok {
		var results []report.Combined
		if err := json.Unmarshal(raw, &results); err != nil {
			return nil, err
		}
		if len(results) == 0 {
			return nil, fmt.Errorf("bundle has no results")
		}
		return results, nil
	}
	var c report.Combined
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return []report.Combined{c}, nil
}

func printSynthesis(w io.Writer, c report.Combined) {
	s := report.Synthesize(c)
	fmt.Fprintf(w, "%s\n\nSynthesis:\n%s\n\nRecommendation:\n%s\n", c.TranscriptName, indent(s.Synthesis), indent(s.Recommendation))
}
