package report

import (
	"strings"

	"github.com/maastricht-university/interview-pipeline/rubric"
	"github.com/maastricht-university/interview-pipeline/sentiment"
)

type Synthesis struct {
	Synthesis      string `json:"synthesis"`
	Recommendation string `json:"recommendation"`
}

const (
	recExceptionalPass = "The candidate performed exceptionally well in this mock interview, demonstrating proficiency across all assessed areas. It is recommended that they try a more challenging mock interview next time to further refine their skills. In the meantime, they should focus on showcasing their abilities through portfolio projects and actively engage in their job search."
	recPass            = "The candidate passed this mock interview, indicating a good foundation in the assessed areas. To continue improving, they should keep practicing technical interview questions. Additionally, they should dedicate time to their job search and portfolio development to maximize their opportunities."
	recPoorFail        = "The candidate did not pass this mock interview and demonstrated weaknesses in several key areas. It is crucial for the candidate to focus on mastering fundamental computer science concepts and data structures before further interview practice. Targeted study in these areas will build a stronger foundation for future success."
	recFail            = "The candidate did not pass this mock interview, indicating areas for improvement in their technical interview skills. It is recommended they double down on practicing technical interview questions, paying particular attention to the identified areas for improvement. Consistent practice and focused effort will be key to passing future interviews."
	recUnknown         = "Unable to determine pass/fail status clearly. Please review the scores and reassess. In the meantime, focus on practicing all aspects of the technical interview."

	addendumAttention = "Additionally, the candidate should pay attention to their own and their interviewer's body language, tone, and facial expressions in future interviews to ensure a positive and engaging interaction."
	addendumPositive  = "Keep up the good work with your body language, tone, and facial expression! It seems like everyone had a positive sentiment during this interview."
)

// Synthesize writes the narrative feedback for a combined result.
func Synthesize(c Combined) Synthesis {
	var strengths, weaknesses []string
	for _, cs := range c.Analysis.Criteria {
		v, ok := cs.Score.Value()
		switch {
		case !ok:
		case v >= 3:
			strengths = append(strengths, cs.Name)
		default:
			weaknesses = append(weaknesses, cs.Name)
		}
	}

	cand, intv := c.CandidateSentiment.OverallSentiment, c.InterviewerSentiment.OverallSentiment

	var text strings.Builder
	text.WriteString("The candidate's overall sentiment during the interview was assessed as '" + cand +
		"', and the interviewer's sentiment was assessed as '" + intv + "'. ")
	if len(strengths) > 0 {
		text.WriteString("Strengths demonstrated in this interview include: " + strings.Join(strengths, ", ") + ". ")
	}
	if len(weaknesses) > 0 {
		text.WriteString("Areas for improvement include: " + strings.Join(weaknesses, ", ") + ". ")
	} else if len(strengths) == 0 {
		text.WriteString("No strengths or weaknesses identified based on numerical scores. ")
	}

	var rec string
	switch c.Analysis.Verdict {
	case rubric.Pass:
		if len(weaknesses) == 0 && len(strengths) > 0 {
			rec = recExceptionalPass
		} else {
			rec = recPass
		}
	case rubric.Fail:
		if len(weaknesses) >= 3 && len(strengths) == 0 {
			rec = recPoorFail
		} else {
			rec = recFail
		}
	default:
		rec = recUnknown
	}

	neg, neu, pos := string(sentiment.Negative), string(sentiment.Neutral), string(sentiment.Positive)
	switch {
	case cand == neg || cand == neu || intv == neg || intv == neu:
		rec += " " + addendumAttention
	case cand == pos && intv == pos:
		rec += " " + addendumPositive
	}

	return Synthesis{
		Synthesis:      strings.TrimSpace(text.String()),
		Recommendation: strings.TrimSpace(rec),
	}
}
