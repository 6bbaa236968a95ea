package transcript

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var (
	timedLine   = regexp.MustCompile(`^(.*?)\s*\[([^\]]+)\]:\s*(.*)$`)
	speakerLine = regexp.MustCompile(`^(.*?):\s*(.*)$`)
)

// ConvertOptions controls text-to-document conversion.
type ConvertOptions struct {
	// Pattern may name the groups speaker, time and dialogue. Nil uses the
	// "Speaker [Time]: Dialogue" and "Speaker: Dialogue" forms.
	Pattern  *regexp.Regexp
	Metadata map[string]string
	Now      func() time.Time
}

// ParseLine parses one transcript line. Lines matching no pattern become
// dialogue-only entries.
func ParseLine(line string, pattern *regexp.Regexp) map[string]any {
	line = strings.TrimSpace(line)
	if pattern != nil {
		m := pattern.FindStringSubmatch(line)
		if m == nil {
			return map[string]any{"dialogue": line}
		}
		entry := map[string]any{}
		for _, name := range []string{"speaker", "time", "dialogue"} {
			if idx := pattern.SubexpIndex(name); idx >= 0 {
				entry[name] = strings.TrimSpace(m[idx])
			}
		}
		return entry
	}
	if m := timedLine.FindStringSubmatch(line); m != nil {
		return map[string]any{
			"speaker":  strings.TrimSpace(m[1]),
			"time":     strings.TrimSpace(m[2]),
			"dialogue": strings.TrimSpace(m[3]),
		}
	}
	if m := speakerLine.FindStringSubmatch(line); m != nil {
		return map[string]any{
			"speaker":  strings.TrimSpace(m[1]),
			"dialogue": strings.TrimSpace(m[2]),
		}
	}
	return map[string]any{"dialogue": line}
}

// Convert reads a plain-text transcript and builds an interview document.
// It returns the document and the number of transcript entries.
func Convert(r io.Reader, opts ConvertOptions) (map[string]any, int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("read text transcript: %w", err)
	}
	if !utf8.Valid(raw) {
		if raw, err = charmap.ISO8859_1.NewDecoder().Bytes(raw); err != nil {
			return nil, 0, fmt.Errorf("decode latin-1 transcript: %w", err)
		}
	}

	interview := opts.interview(nil)

	entries := []any{}
	sc := bufio.NewScanner(bytes.NewReader(raw))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, ParseLine(line, opts.Pattern))
	}
	if err := sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("scan text transcript: %w", err)
	}
	interview["transcript"] = entries
	return map[string]any{"interview": interview}, len(entries), nil
}

// interview starts an interview object from the string fields of src, then
// applies opts.Metadata. date defaults to today.
func (opts ConvertOptions) interview(src map[string]any) map[string]any {
	out := map[string]any{}
	for k, v := range src {
		if s, ok := v.(string); ok && k != "transcript" {
			out[k] = s
		}
	}
	for k, v := range opts.Metadata {
		if k != "transcript" {
			out[k] = v
		}
	}
	if _, ok := out["date"]; !ok {
		now := time.Now
		if opts.Now != nil {
			now = opts.Now
		}
		out["date"] = now().Format("2006-01-02")
	}
	return out
}

// Restructure rebuilds a decoded JSON or YAML document around the first
// transcript array it finds: the root itself when it is a list, otherwise a
// "transcript" key searched breadth-first ("interview" before other keys).
// Entries are kept as they are; the ingestor validates them.
func Restructure(doc any, opts ConvertOptions) (map[string]any, int, error) {
	entries, parent, ok := findTranscript(doc)
	if !ok {
		return nil, 0, &FormatError{Reason: ReasonTranscriptNoList}
	}
	interview := opts.interview(parent)
	interview["transcript"] = entries
	return map[string]any{"interview": interview}, len(entries), nil
}

func findTranscript(doc any) ([]any, map[string]any, bool) {
	if list, ok := doc.([]any); ok {
		return list, nil, true
	}
	queue := []any{doc}
	for len(queue) > 0 {
		m, ok := asMap(queue[0])
		queue = queue[1:]
		if !ok {
			continue
		}
		if list, ok := m["transcript"].([]any); ok {
			return list, m, true
		}
		if iv, ok := m["interview"]; ok {
			queue = append(queue, iv)
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			if k != "interview" {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			queue = append(queue, m[k])
		}
	}
	return nil, nil, false
}
