package sentiment

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Splitter breaks an utterance into sentences.
type Splitter interface {
	Split(text string) []string
}

type punktSplitter struct {
	tok *sentences.DefaultSentenceTokenizer
}

// NewSplitter returns the English punkt sentence splitter.
func NewSplitter() (Splitter, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load sentence tokenizer: %w", err)
	}
	return &punktSplitter{tok: tok}, nil
}

func (p *punktSplitter) Split(text string) []string {
	var out []string
	for _, s := range p.tok.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Clean drops every rune that is not an ASCII letter or digit, whitespace or one of . , ? ! '
// This is lossy: emoticons, dashes and quotes never reach the scorer.
func Clean(sentence string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', unicode.IsSpace(r):
			return r
		case r == '.', r == ',', r == '?', r == '!', r == '\'':
			return r
		}
		return -1
	}, sentence)
}
