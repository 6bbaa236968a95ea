package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maastricht-university/interview-pipeline/rubric"
	"github.com/maastricht-university/interview-pipeline/transcript"
)

func newScoreCommand(ctx *commandContext) *cobra.Command {
	var listCriteria bool

	cmd := &cobra.Command{
		Use:   "score <transcript>",
		Short: "Score one transcript against the interview rubric",
		Args: func(cmd *cobra.Command, args []string) error {
			if listCriteria {
				return nil
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r := rubric.Default()
			out := cmd.OutOrStdout()
			if listCriteria {
				for i, name := range r.Names() {
					fmt.Fprintf(out, "%2d. %s\n", i+1, name)
				}
				return nil
			}

			res := r.ScoreFile(args[0])
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			if err := enc.Encode(res); err != nil {
				return err
			}
			if res.Failed() {
				return errors.New(res.Err)
			}
			ctx.logger.WithField("file", args[0]).WithField("pass_fail", res.Verdict).Debug("transcript scored")
			return nil
		},
	}
	cmd.Flags().BoolVar(&listCriteria, "criteria", false, "List the rubric criteria and exit")
	return cmd
}

func newSentimentCommand(ctx *commandContext) *cobra.Command {
	var candidate, interviewer string

	cmd := &cobra.Command{
		Use:   "sentiment <transcript>",
		Short: "Summarize candidate and interviewer sentiment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.pipeline(transcript.Roles{Candidate: candidate, Interviewer: interviewer})
			if err != nil {
				return err
			}
			in, err := p.Ingest(args[0])
			if err != nil {
				return err
			}
			cand, intv, err := p.Sentiment(cmd.Context(), in)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Candidate (%s):\n%s\n\n", in.Roles.Candidate, indent(sentimentSummary(cand)))
			fmt.Fprintf(out, "Interviewer (%s):\n%s\n", in.Roles.Interviewer, indent(sentimentSummary(intv)))
			if in.Unknown.Turns > 0 {
				fmt.Fprintf(out, "\n%d turn(s) from unknown speakers were not attributed.\n", in.Unknown.Turns)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&candidate, "candidate", "", "Candidate speaker name")
	cmd.Flags().StringVar(&interviewer, "interviewer", "", "Interviewer speaker name")
	return cmd
}
