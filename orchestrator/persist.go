package orchestrator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/maastricht-university/interview-pipeline/report"
)

type PersistBundle struct {
	RunID       string            `json:"run_id"`
	GeneratedAt time.Time         `json:"generated_at"`
	Results     []report.Combined `json:"results"`
	Failures    []Failure         `json:"failures"`
}

func mkSessionDir(outputsRoot string, now time.Time) (string, string, error) {
	sid := "session_" + now.Format("20060102-150405")
	dir := filepath.Join(outputsRoot, sid)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", err
	}
	return sid, dir, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// Save writes results.json and, when anything succeeded, combined.csv into a
// fresh session directory under outputsRoot. It returns the session directory.
func Save(outputsRoot string, b *BatchReport) (string, error) {
	now := time.Now()
	_, dir, err := mkSessionDir(outputsRoot, now)
	if err != nil {
		return "", fmt.Errorf("create session dir: %w", err)
	}

	bundle := PersistBundle{
		RunID:       uuid.NewString(),
		GeneratedAt: now.UTC(),
		Results:     b.Results,
		Failures:    b.Failures,
	}
	if bundle.Results == nil {
		bundle.Results = []report.Combined{}
	}
	if bundle.Failures == nil {
		bundle.Failures = []Failure{}
	}
	if err := writeJSON(filepath.Join(dir, "results.json"), bundle); err != nil {
		return "", fmt.Errorf("write results: %w", err)
	}

	if len(b.Results) > 0 {
		f, err := os.Create(filepath.Join(dir, "combined.csv"))
		if err != nil {
			return "", fmt.Errorf("write csv: %w", err)
		}
		if err := report.WriteCSV(f, b.Rows()); err != nil {
			f.Close()
			return "", err
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("write csv: %w", err)
		}
	}
	return dir, nil
}
