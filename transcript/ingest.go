package transcript

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
)

type Options struct {
	// Defaults apply when the document carries no interview.candidate / interview.interviewer.
	Defaults Roles
	// Override wins over document metadata when set.
	Override Roles
	Log      logrus.FieldLogger
}

func (o Options) logger() logrus.FieldLogger {
	if o.Log != nil {
		return o.Log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Ingest validates a decoded transcript document and attributes its turns to roles.
func Ingest(doc any, opts Options) (*Ingested, error) {
	log := opts.logger()

	interview, raw, err := transcriptList(doc)
	if err != nil {
		return nil, err
	}

	base := opts.Defaults.withDefaults(Roles{Candidate: DefaultCandidate, Interviewer: DefaultInterviewer})
	meta := metadata(interview)
	roles := opts.Override.withDefaults(Roles{Candidate: meta["candidate"], Interviewer: meta["interviewer"]}.withDefaults(base))

	out := &Ingested{Roles: roles, Metadata: meta, Turns: make([]Turn, 0, len(raw))}
	fold := cases.Fold()
	candidate := fold.String(strings.TrimSpace(roles.Candidate))
	interviewer := fold.String(strings.TrimSpace(roles.Interviewer))

	for i, elem := range raw {
		turn, reason, textOnly := validateTurn(elem)
		if reason != "" {
			w := Warning{Index: i, Speaker: turn.Speaker, Reason: reason}
			out.Warnings = append(out.Warnings, w)
			log.WithFields(logrus.Fields{"index": i, "speaker": turn.Speaker, "reason": reason}).Warn("skipping invalid turn")
			if textOnly {
				out.Text = append(out.Text, turn.Dialogue)
			}
			continue
		}
		out.Turns = append(out.Turns, turn)
		out.Text = append(out.Text, turn.Dialogue)

		switch fold.String(strings.TrimSpace(turn.Speaker)) {
		case candidate:
			out.Candidate = append(out.Candidate, turn.Dialogue)
		case interviewer:
			out.Interviewer = append(out.Interviewer, turn.Dialogue)
		default:
			out.Unknown.add(turn.Speaker)
			out.Unmatched = append(out.Unmatched, UnmatchedSpeakerWarning{Index: i, Speaker: turn.Speaker})
			log.WithFields(logrus.Fields{"index": i, "speaker": turn.Speaker}).Warn("unknown speaker, turn not attributed")
		}
	}

	if len(out.Turns) == 0 {
		return nil, &EmptyTranscriptError{Skipped: len(out.Warnings)}
	}
	return out, nil
}

// transcriptList checks the document structure and returns the interview
// object and its non-empty transcript array.
func transcriptList(doc any) (map[string]any, []any, error) {
	root, ok := asMap(doc)
	if !ok {
		return nil, nil, &FormatError{Reason: ReasonNotMapping}
	}
	interview, ok := asMap(root["interview"])
	if !ok {
		return nil, nil, &FormatError{Reason: ReasonMissingInterview}
	}
	raw, ok := interview["transcript"].([]any)
	if !ok {
		return nil, nil, &FormatError{Reason: ReasonTranscriptNoList}
	}
	if len(raw) == 0 {
		return nil, nil, &EmptyTranscriptError{}
	}
	return interview, raw, nil
}

// DialogueText joins the dialogue of every transcript entry with a single
// space, whatever its speaker. Entries without string dialogue are ignored.
func DialogueText(doc any) (string, error) {
	_, raw, err := transcriptList(doc)
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, len(raw))
	for _, elem := range raw {
		m, ok := asMap(elem)
		if !ok {
			continue
		}
		if d, ok := m["dialogue"].(string); ok && strings.TrimSpace(d) != "" {
			parts = append(parts, d)
		}
	}
	return strings.Join(parts, " "), nil
}

// validateTurn returns the reason a turn is unusable, if any. textOnly is set
// when the speaker is the only problem and the dialogue can still be scored.
func validateTurn(elem any) (t Turn, reason string, textOnly bool) {
	m, ok := asMap(elem)
	if !ok {
		return Turn{}, "turn is not a mapping", false
	}
	rawSpeaker, hasSpeaker := m["speaker"]
	speakerReason := ""
	switch s, ok := rawSpeaker.(string); {
	case !hasSpeaker || rawSpeaker == nil:
		speakerReason = "missing speaker"
	case !ok:
		speakerReason = fmt.Sprintf("speaker is %T, not a string", rawSpeaker)
	default:
		t.Speaker = s
	}

	rawDialogue, hasDialogue := m["dialogue"]
	dialogueReason := ""
	switch d, ok := rawDialogue.(string); {
	case !hasDialogue || rawDialogue == nil:
		dialogueReason = "missing dialogue"
	case !ok:
		dialogueReason = fmt.Sprintf("dialogue is %T, not a string", rawDialogue)
	case strings.TrimSpace(d) == "":
		dialogueReason = "empty dialogue"
	default:
		t.Dialogue = d
	}
	if tm, ok := m["time"].(string); ok {
		t.Time = tm
	}

	switch {
	case speakerReason == "missing speaker":
		return t, speakerReason, dialogueReason == ""
	case dialogueReason == "missing dialogue":
		return t, dialogueReason, false
	case speakerReason != "":
		return t, speakerReason, dialogueReason == ""
	}
	return t, dialogueReason, false
}

func metadata(interview map[string]any) map[string]string {
	meta := map[string]string{}
	for k, v := range interview {
		if k == "transcript" {
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			meta[k] = s
		}
	}
	return meta
}

// asMap accepts both JSON-decoded and YAML-decoded mappings.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}
