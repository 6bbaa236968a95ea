package orchestrator

import (
	"strings"

	"github.com/maastricht-university/interview-pipeline/report"
	"github.com/maastricht-university/interview-pipeline/transcript"
)

func words(utts []string) int {
	n := 0
	for _, u := range utts {
		n += len(strings.Fields(u))
	}
	return n
}

// turnStats counts turns per role and the candidate's share of role-attributed words.
func turnStats(in *transcript.Ingested) report.TurnStats {
	s := report.TurnStats{
		Turns:            len(in.Turns),
		CandidateTurns:   len(in.Candidate),
		InterviewerTurns: len(in.Interviewer),
		UnknownTurns:     in.Unknown.Turns,
		CandidateWords:   words(in.Candidate),
		InterviewerWords: words(in.Interviewer),
	}
	if total := s.CandidateWords + s.InterviewerWords; total > 0 {
		s.CandidateShare = float64(s.CandidateWords) / float64(total)
	}
	return s
}
