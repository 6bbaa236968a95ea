package clients

import (
	"context"

	"github.com/maastricht-university/interview-pipeline/sentiment"
)

// --- Polarity (/polarity) ---
type PolarityReq struct {
	Text string `json:"text"`
}
type PolarityResp struct {
	Compound float64 `json:"compound"`
	Pos      float64 `json:"pos"`
	Neg      float64 `json:"neg"`
	Neu      float64 `json:"neu"`
}

func (h *HTTP) Polarity(ctx context.Context, url, text string) (*PolarityResp, error) {
	var out PolarityResp
	if err := h.postJSON(ctx, "polarity", url, "/polarity", PolarityReq{Text: text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SentimentClient scores sentences with a remote polarity service.
type SentimentClient struct {
	http *HTTP
	url  string
}

func NewSentimentClient(h *HTTP, url string) *SentimentClient {
	return &SentimentClient{http: h, url: url}
}

func (s *SentimentClient) Score(ctx context.Context, sentence string) (sentiment.Polarity, error) {
	r, err := s.http.Polarity(ctx, s.url, sentence)
	if err != nil {
		return sentiment.Polarity{}, err
	}
	return sentiment.Polarity{Compound: r.Compound, Positive: r.Pos, Negative: r.Neg, Neutral: r.Neu}, nil
}
