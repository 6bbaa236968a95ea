package transcript

import "strings"

const (
	DefaultCandidate   = "Candidate"
	DefaultInterviewer = "Interviewer"
)

type Turn struct {
	Speaker  string `json:"speaker" yaml:"speaker"`
	Time     string `json:"time,omitempty" yaml:"time,omitempty"`
	Dialogue string `json:"dialogue" yaml:"dialogue"`
}

// Roles holds the speaker names of the two interview participants.
type Roles struct {
	Candidate   string `json:"candidate"`
	Interviewer string `json:"interviewer"`
}

func (r Roles) withDefaults(base Roles) Roles {
	if strings.TrimSpace(r.Candidate) == "" {
		r.Candidate = base.Candidate
	}
	if strings.TrimSpace(r.Interviewer) == "" {
		r.Interviewer = base.Interviewer
	}
	return r
}

// Warning describes a transcript element that was skipped during ingestion.
type Warning struct {
	Index   int    `json:"index"`
	Speaker string `json:"speaker,omitempty"`
	Reason  string `json:"reason"`
}

// UnknownSpeakers counts turns whose speaker matched neither role.
type UnknownSpeakers struct {
	Turns     int            `json:"turns"`
	BySpeaker map[string]int `json:"by_speaker,omitempty"`
}

func (u *UnknownSpeakers) add(speaker string) {
	if u.BySpeaker == nil {
		u.BySpeaker = map[string]int{}
	}
	u.BySpeaker[speaker]++
	u.Turns++
}

// Ingested is the validated, role-attributed view of a transcript document.
type Ingested struct {
	Roles       Roles
	Metadata    map[string]string
	Turns       []Turn
	// Text is the dialogue of every valid turn plus turns rejected only for
	// their speaker, in document order.
	Text        []string
	Candidate   []string
	Interviewer []string
	Unknown     UnknownSpeakers
	Unmatched   []UnmatchedSpeakerWarning
	Warnings    []Warning
}

// FullText joins Text with a single space.
func (in *Ingested) FullText() string {
	if in == nil {
		return ""
	}
	return strings.Join(in.Text, " ")
}
