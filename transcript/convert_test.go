package transcript

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want map[string]any
	}{
		{"timed", "Alice [00:01:02]: Hello there", map[string]any{"speaker": "Alice", "time": "00:01:02", "dialogue": "Hello there"}},
		{"plain", "  Bob Smith:   Welcome!  ", map[string]any{"speaker": "Bob Smith", "dialogue": "Welcome!"}},
		{"first colon wins", "Alice: ratio is 1:2", map[string]any{"speaker": "Alice", "dialogue": "ratio is 1:2"}},
		{"no speaker", "just some words", map[string]any{"dialogue": "just some words"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ParseLine(tt.line, nil)); diff != "" {
				t.Errorf("ParseLine() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseLineCustomPattern(t *testing.T) {
	p := regexp.MustCompile(`^(?P<time>\d\d:\d\d) - (?P<speaker>[^:]+): (?P<dialogue>.*)$`)
	got := ParseLine("12:30 - Alice: I would use a heap.", p)
	want := map[string]any{"time": "12:30", "speaker": "Alice", "dialogue": "I would use a heap."}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseLine() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"dialogue": "no match"}, ParseLine("no match", p)); diff != "" {
		t.Errorf("ParseLine() unmatched mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertBuildsIngestibleDocument(t *testing.T) {
	text := "Interviewer [00:00]: Let's begin.\n\nCandidate: Sure, I'm ready.\n"
	fixed := func() time.Time { return time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC) }

	doc, n, err := Convert(strings.NewReader(text), ConvertOptions{
		Metadata: map[string]string{"position": "SRE", "transcript": "ignored"},
		Now:      fixed,
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if n != 2 {
		t.Errorf("entries = %d, want 2", n)
	}
	interview := doc["interview"].(map[string]any)
	if interview["date"] != "2024-03-09" || interview["position"] != "SRE" {
		t.Errorf("interview metadata = %v", interview)
	}

	in, err := Ingest(doc, Options{})
	if err != nil {
		t.Fatalf("Ingest(converted) error = %v", err)
	}
	if diff := cmp.Diff([]string{"Sure, I'm ready."}, in.Candidate); diff != "" {
		t.Errorf("Candidate mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertLatin1Fallback(t *testing.T) {
	// "Candidate: café" encoded as ISO-8859-1.
	raw := append([]byte("Candidate: caf"), 0xE9)
	doc, _, err := Convert(strings.NewReader(string(raw)), ConvertOptions{})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	entries := doc["interview"].(map[string]any)["transcript"].([]any)
	if got := entries[0].(map[string]any)["dialogue"]; got != "café" {
		t.Errorf("dialogue = %q, want café", got)
	}
}

func TestLoadFileFormats(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.json": `{"interview": {"transcript": [{"speaker": "Candidate", "dialogue": "json"}]}}`,
		"b.yaml": "interview:\n  transcript:\n    - speaker: Candidate\n      dialogue: yaml\n",
		"c.txt":  "Candidate: text\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	for name, want := range map[string]string{"a.json": "json", "b.yaml": "yaml", "c.txt": "text"} {
		t.Run(name, func(t *testing.T) {
			doc, err := LoadFile(filepath.Join(dir, name))
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			in, err := Ingest(doc, Options{})
			if err != nil {
				t.Fatalf("Ingest() error = %v", err)
			}
			if len(in.Candidate) != 1 || in.Candidate[0] != want {
				t.Errorf("Candidate = %v, want [%s]", in.Candidate, want)
			}
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadFile(filepath.Join(dir, "missing.json"))
	var fe *FileError
	if !errors.As(err, &fe) || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadFile(missing) error = %v, want FileError wrapping ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"interview": `), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadFile(bad)
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Errorf("LoadFile(bad) error = %v, want DecodeError", err)
	}
}

func TestSupported(t *testing.T) {
	for path, want := range map[string]bool{"a.json": true, "b.YML": true, "c.txt": true, "d.csv": false, "e": false} {
		if got := Supported(path); got != want {
			t.Errorf("Supported(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestRestructure(t *testing.T) {
	fixed := ConvertOptions{
		Metadata: map[string]string{"position": "SRE"},
		Now:      func() time.Time { return time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC) },
	}
	entries := []any{map[string]any{"speaker": "Candidate", "dialogue": "hi"}}
	tests := []struct {
		name     string
		doc      any
		wantMeta map[string]any
	}{
		{
			name:     "bare list",
			doc:      []any{entries[0]},
			wantMeta: map[string]any{"date": "2024-03-09", "position": "SRE"},
		},
		{
			name:     "nested under session",
			doc:      map[string]any{"session": map[string]any{"candidate": "Alice", "count": 1.0, "transcript": entries}},
			wantMeta: map[string]any{"date": "2024-03-09", "position": "SRE", "candidate": "Alice"},
		},
		{
			name:     "interview envelope keeps its date",
			doc:      map[string]any{"other": map[string]any{"transcript": "x"}, "interview": map[string]any{"date": "2023-01-01", "transcript": entries}},
			wantMeta: map[string]any{"date": "2023-01-01", "position": "SRE"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, n, err := Restructure(tt.doc, fixed)
			if err != nil {
				t.Fatalf("Restructure() error = %v", err)
			}
			if n != 1 {
				t.Errorf("entries = %d, want 1", n)
			}
			interview := doc["interview"].(map[string]any)
			got := map[string]any{}
			for k, v := range interview {
				if k != "transcript" {
					got[k] = v
				}
			}
			if diff := cmp.Diff(tt.wantMeta, got); diff != "" {
				t.Errorf("metadata mismatch (-want +got):\n%s", diff)
			}
			if _, err := Ingest(doc, Options{}); err != nil {
				t.Errorf("Ingest(restructured) error = %v", err)
			}
		})
	}

	if _, _, err := Restructure(map[string]any{"interview": map[string]any{}}, fixed); !IsFormat(err) {
		t.Errorf("Restructure(no transcript) error = %v, want FormatError", err)
	}
}
