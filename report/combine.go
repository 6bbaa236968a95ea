package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/maastricht-university/interview-pipeline/rubric"
	"github.com/maastricht-university/interview-pipeline/sentiment"
	"github.com/maastricht-university/interview-pipeline/transcript"
)

// TurnStats summarizes who spoke how much.
type TurnStats struct {
	Turns            int     `json:"turns"`
	CandidateTurns   int     `json:"candidate_turns"`
	InterviewerTurns int     `json:"interviewer_turns"`
	UnknownTurns     int     `json:"unknown_turns"`
	CandidateWords   int     `json:"candidate_words"`
	InterviewerWords int     `json:"interviewer_words"`
	CandidateShare   float64 `json:"candidate_share"`
}

// Combined is the merged sentiment and rubric outcome of one transcript.
type Combined struct {
	TranscriptName       string
	Roles                transcript.Roles
	Metadata             map[string]string
	CandidateSentiment   sentiment.Summary
	InterviewerSentiment sentiment.Summary
	Analysis             rubric.Result
	Unknown              transcript.UnknownSpeakers
	Stats                TurnStats
	Synthesis            *Synthesis
}

func Combine(name string, in *transcript.Ingested, candidate, interviewer *sentiment.Aggregate, analysis rubric.Result) Combined {
	c := Combined{
		TranscriptName:       name,
		CandidateSentiment:   sentiment.Summarize(candidate),
		InterviewerSentiment: sentiment.Summarize(interviewer),
		Analysis:             analysis,
	}
	if in != nil {
		c.Roles = in.Roles
		c.Metadata = in.Metadata
		c.Unknown = in.Unknown
	}
	return c
}

type envelope struct {
	TranscriptName       string                     `json:"transcript_name"`
	Metadata             map[string]string          `json:"interview_metadata,omitempty"`
	Candidate            string                     `json:"candidate"`
	Interviewer          string                     `json:"interviewer"`
	CandidateSentiment   sentiment.Summary          `json:"candidate_sentiment"`
	InterviewerSentiment sentiment.Summary          `json:"interviewer_sentiment"`
	Scores               json.RawMessage            `json:"scores,omitempty"`
	AssessmentDetails    json.RawMessage            `json:"assessment_details,omitempty"`
	PassFail             rubric.Verdict             `json:"pass_fail,omitempty"`
	Error                string                     `json:"error,omitempty"`
	Unknown              transcript.UnknownSpeakers `json:"unknown_speakers"`
	Stats                TurnStats                  `json:"turn_stats"`
	Synthesis            *Synthesis                 `json:"synthesis_and_recommendation,omitempty"`
}

type analysisParts struct {
	Scores            json.RawMessage `json:"scores"`
	AssessmentDetails json.RawMessage `json:"assessment_details"`
	PassFail          rubric.Verdict  `json:"pass_fail"`
	Error             string          `json:"error,omitempty"`
}

// MarshalJSON lifts the rubric fields to the top level next to both sentiment records.
func (c Combined) MarshalJSON() ([]byte, error) {
	raw, err := c.Analysis.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var parts analysisParts
	if err := json.Unmarshal(raw, &parts); err != nil {
		return nil, fmt.Errorf("split analysis: %w", err)
	}
	env := envelope{
		TranscriptName:       c.TranscriptName,
		Metadata:             c.Metadata,
		Candidate:            c.Roles.Candidate,
		Interviewer:          c.Roles.Interviewer,
		CandidateSentiment:   c.CandidateSentiment,
		InterviewerSentiment: c.InterviewerSentiment,
		Scores:               parts.Scores,
		AssessmentDetails:    parts.AssessmentDetails,
		PassFail:             parts.PassFail,
		Error:                parts.Error,
		Unknown:              c.Unknown,
		Stats:                c.Stats,
		Synthesis:            c.Synthesis,
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(env); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (c *Combined) UnmarshalJSON(b []byte) error {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	var analysis rubric.Result
	if env.Error != "" {
		analysis = rubric.ErrorResult(env.Error)
	} else {
		raw, err := json.Marshal(analysisParts{Scores: env.Scores, AssessmentDetails: env.AssessmentDetails, PassFail: env.PassFail})
		if err != nil {
			return err
		}
		if err := json.Unmarshal(raw, &analysis); err != nil {
			return fmt.Errorf("decode analysis: %w", err)
		}
	}
	*c = Combined{
		TranscriptName:       env.TranscriptName,
		Roles:                transcript.Roles{Candidate: env.Candidate, Interviewer: env.Interviewer},
		Metadata:             env.Metadata,
		CandidateSentiment:   env.CandidateSentiment,
		InterviewerSentiment: env.InterviewerSentiment,
		Analysis:             analysis,
		Unknown:              env.Unknown,
		Stats:                env.Stats,
		Synthesis:            env.Synthesis,
	}
	return nil
}
