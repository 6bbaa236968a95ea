package main

import (
	"fmt"
	"strings"

	"github.com/maastricht-university/interview-pipeline/sentiment"
)

func sentimentSummary(a *sentiment.Aggregate) string {
	return sentiment.Summarize(a).String()
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}

// parseMetadata turns key=value pairs into a map. Keys are trimmed.
func parseMetadata(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("metadata must be key=value, got %q", p)
		}
		out[k] = strings.TrimSpace(v)
	}
	return out, nil
}
