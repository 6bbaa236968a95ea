package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/maastricht-university/interview-pipeline/rubric"
	"github.com/maastricht-university/interview-pipeline/transcript"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeTranscript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleTranscript = `{"interview": {"candidate": "Alice", "interviewer": "Bob", "transcript": [
  {"speaker": "Bob", "dialogue": "Please reverse a linked list."},
  {"speaker": "Alice", "dialogue": "Just to confirm, the input could be empty? I would use an iterative approach because it is simple."}
]}}`

func TestScoreCommand(t *testing.T) {
	path := writeTranscript(t, t.TempDir(), "t.json", sampleTranscript)
	out, err := runCLI(t, "score", path)
	if err != nil {
		t.Fatalf("score error = %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if _, ok := got["pass_fail"]; !ok {
		t.Errorf("output missing pass_fail: %s", out)
	}
	if !strings.Contains(out, "inputs & outputs") {
		t.Errorf("criterion names escaped: %s", out)
	}
}

func TestScoreCommandMissingFile(t *testing.T) {
	out, err := runCLI(t, "score", filepath.Join(t.TempDir(), "missing.json"))
	if err == nil || err.Error() != rubric.ErrFileNotFound {
		t.Errorf("score error = %v, want %q", err, rubric.ErrFileNotFound)
	}
	if !strings.Contains(out, `"error"`) {
		t.Errorf("output = %s", out)
	}
}

func TestScoreCommandListsCriteria(t *testing.T) {
	out, err := runCLI(t, "score", "--criteria")
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 16 {
		t.Errorf("got %d criteria lines, want 16", len(lines))
	}
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	src := writeTranscript(t, dir, "chat.txt", "Bob [00:01]: Hello\nAlice: Hi there\n")
	out, err := runCLI(t, "convert", src, "-m", "candidate=Alice", "-m", "interviewer=Bob")
	if err != nil {
		t.Fatalf("convert error = %v", err)
	}
	if !strings.Contains(out, "Converted 2 entries") {
		t.Errorf("output = %q", out)
	}
	b, err := os.ReadFile(filepath.Join(dir, "chat.json"))
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Interview struct {
			Candidate  string           `json:"candidate"`
			Transcript []map[string]any `json:"transcript"`
		} `json:"interview"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Interview.Candidate != "Alice" || len(doc.Interview.Transcript) != 2 || doc.Interview.Transcript[0]["time"] != "00:01" {
		t.Errorf("converted doc = %+v", doc)
	}

	if _, err := runCLI(t, "convert", src, "--pattern", `(?P<speaker>\w+)`); err == nil {
		t.Error("convert with pattern lacking dialogue group: error = nil")
	}
	if _, err := runCLI(t, "convert", src, "-m", "novalue"); err == nil {
		t.Error("convert with bad metadata: error = nil")
	}
}

func TestConvertCommandJSONInput(t *testing.T) {
	dir := t.TempDir()
	src := writeTranscript(t, dir, "raw.json", `{"meeting": {"transcript": [{"speaker": "Bob", "dialogue": "Hello"}]}}`)
	meta := writeTranscript(t, dir, "meta.json", `{"candidate": "Alice", "interviewer": "Bob", "round": 2}`)

	out, err := runCLI(t, "convert", src, "--metadata-file", meta, "-m", "candidate=Carol")
	if err != nil {
		t.Fatalf("convert error = %v", err)
	}
	dst := filepath.Join(dir, "raw.converted.json")
	if !strings.Contains(out, "Converted 1 entries to "+dst) {
		t.Errorf("output = %q", out)
	}
	b, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Interview map[string]any `json:"interview"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatal(err)
	}
	iv := doc.Interview
	if iv["candidate"] != "Carol" || iv["interviewer"] != "Bob" || iv["round"] != "2" {
		t.Errorf("interview = %v", iv)
	}
	if entries, _ := iv["transcript"].([]any); len(entries) != 1 {
		t.Errorf("transcript = %v", iv["transcript"])
	}

	if _, err := runCLI(t, "convert", writeTranscript(t, dir, "none.json", `{"a": 1}`)); err == nil {
		t.Error("convert of JSON without a transcript: error = nil")
	}
}

func TestRenderSummary(t *testing.T) {
	got := renderSummary([]string{"Transcript", "Turns"}, [][]string{{"a.json", "12"}}, 2)
	for _, want := range []string{"Transcript", "a.json", "12", "╭"} {
		if !strings.Contains(got, want) {
			t.Errorf("table missing %q:\n%s", want, got)
		}
	}
}

func TestAnalyzeSaveAndSynthesize(t *testing.T) {
	dir := t.TempDir()
	transcripts := filepath.Join(dir, "transcripts")
	if err := os.Mkdir(transcripts, 0o755); err != nil {
		t.Fatal(err)
	}
	writeTranscript(t, transcripts, "a.json", sampleTranscript)
	writeTranscript(t, transcripts, "b.json", `{"interview": {}}`)
	csvPath := filepath.Join(dir, "combined.csv")
	outputs := filepath.Join(dir, "outputs")

	out, err := runCLI(t, "analyze", "--dir", transcripts, "-o", csvPath, "--outputs", outputs)
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}
	if !strings.Contains(out, "a.json\t") || !strings.Contains(out, "skipped "+filepath.Join(transcripts, "b.json")+": ") || !strings.Contains(out, transcript.ReasonTranscriptNoList) {
		t.Errorf("summary = %q", out)
	}
	if _, err := os.Stat(csvPath); err != nil {
		t.Errorf("csv not written: %v", err)
	}

	sessions, err := filepath.Glob(filepath.Join(outputs, "session_*", "results.json"))
	if err != nil || len(sessions) != 1 {
		t.Fatalf("session bundles = %v, %v", sessions, err)
	}
	out, err = runCLI(t, "synthesize", sessions[0])
	if err != nil {
		t.Fatalf("synthesize error = %v", err)
	}
	if !strings.HasPrefix(out, "a.json") || !strings.Contains(out, "Recommendation:") {
		t.Errorf("synthesize output = %q", out)
	}
}

func TestAnalyzeAllFailing(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "bad.json", `not json`)
	if _, err := runCLI(t, "analyze", "--dir", dir); err == nil {
		t.Error("analyze with only failing transcripts: error = nil")
	}
}

func TestConfigShow(t *testing.T) {
	out, err := runCLI(t, "config", "show")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "candidate: Candidate") || !strings.Contains(out, "timeout_seconds: 60") {
		t.Errorf("config show = %s", out)
	}
}

func TestSentimentCommand(t *testing.T) {
	path := writeTranscript(t, t.TempDir(), "t.json", `{"interview": {"transcript": [
  {"speaker": "Candidate", "dialogue": "I love this problem, it is wonderful."},
  {"speaker": "Observer", "dialogue": "Noted."}
]}}`)
	out, err := runCLI(t, "sentiment", path)
	if err != nil {
		t.Fatalf("sentiment error = %v", err)
	}
	for _, want := range []string{"Candidate (Candidate):", "Generally positive.", "Interviewer (Interviewer):", "No sentiment data available.", "1 turn(s) from unknown speakers"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
