package transcript

import (
	"errors"
	"fmt"
)

// FormatError reports a document whose structure is not an interview transcript.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "invalid transcript format: " + e.Reason
}

const (
	ReasonNotMapping       = "not a mapping"
	ReasonMissingInterview = "missing interview key"
	ReasonTranscriptNoList = "transcript not a list"
)

// EmptyTranscriptError means the document held no usable turns.
type EmptyTranscriptError struct {
	// Skipped counts elements that were present but failed validation.
	Skipped int
}

func (e *EmptyTranscriptError) Error() string {
	if e.Skipped > 0 {
		return fmt.Sprintf("no usable turns in transcript (%d skipped)", e.Skipped)
	}
	return "no turns found in the transcript"
}

// Is lets errors.Is(err, ErrEmptyTranscript) match any EmptyTranscriptError.
func (e *EmptyTranscriptError) Is(target error) bool {
	_, ok := target.(*EmptyTranscriptError)
	return ok
}

var ErrEmptyTranscript = &EmptyTranscriptError{}

// FileError wraps I/O failures while reading a transcript.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("read transcript %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// DecodeError wraps a malformed JSON or YAML document.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode transcript %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// UnmatchedSpeakerWarning is recorded when a turn's speaker matches neither role.
// It is never returned as an error.
type UnmatchedSpeakerWarning struct {
	Index   int
	Speaker string
}

func (w UnmatchedSpeakerWarning) String() string {
	return fmt.Sprintf("turn %d: unknown speaker %q", w.Index, w.Speaker)
}

// IsFormat reports whether err is a structural format problem.
func IsFormat(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
