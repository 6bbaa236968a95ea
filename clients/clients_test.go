package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/maastricht-university/interview-pipeline/rubric"
	"github.com/maastricht-university/interview-pipeline/sentiment"
)

func TestSentimentClientScore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/polarity" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		var req PolarityReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Text != "great work" {
			t.Errorf("text = %q", req.Text)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"compound":0.62,"pos":0.7,"neg":0,"neu":0.3}`))
	}))
	defer srv.Close()

	c := NewSentimentClient(NewHTTP(time.Second), srv.URL+"/")
	got, err := c.Score(context.Background(), "great work")
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	want := sentiment.Polarity{Compound: 0.62, Positive: 0.7, Negative: 0, Neutral: 0.3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Score() mismatch (-want +got):\n%s", diff)
	}
}

func TestSentimentClientErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "bad status", status: http.StatusBadGateway, body: "upstream down\n", wantErr: "polarity 502 Bad Gateway: upstream down"},
		{name: "bad body", status: http.StatusOK, body: "not json", wantErr: "polarity decode:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewSentimentClient(NewHTTP(time.Second), srv.URL).Score(context.Background(), "x")
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Score() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestRadarFromResultSkipsNotApplicable(t *testing.T) {
	res := rubric.Result{Criteria: []rubric.CriterionScore{
		{Name: "A", Score: rubric.Scored(3)},
		{Name: "B", Score: rubric.NotApplicable},
		{Name: "C", Score: rubric.Scored(1)},
	}}
	got := RadarFromResult(res, "Alice", "out")
	want := RadarReq{Categories: []string{"A", "C"}, Values: []float64{3, 1}, StudentName: "Alice", OutputDir: "out"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RadarFromResult() mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateRadar(t *testing.T) {
	var got RadarReq
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/generate-radar" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"status":"ok","path":"out/radar.png"}`))
	}))
	defer srv.Close()

	req := RadarReq{Categories: []string{"A"}, Values: []float64{4}, StudentName: "Alice"}
	resp, err := NewHTTP(0).GenerateRadar(context.Background(), srv.URL, req)
	if err != nil {
		t.Fatalf("GenerateRadar() error = %v", err)
	}
	if resp.Status != "ok" || resp.Path != "out/radar.png" {
		t.Errorf("resp = %+v", resp)
	}
	if diff := cmp.Diff(req, got); diff != "" {
		t.Errorf("request mismatch (-want +got):\n%s", diff)
	}
}
