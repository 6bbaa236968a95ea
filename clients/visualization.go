package clients

import (
	"context"

	"github.com/maastricht-university/interview-pipeline/rubric"
)

// --- Visualization ---
type RadarReq struct {
	Categories  []string  `json:"categories"`
	Values      []float64 `json:"values"`
	StudentName string    `json:"student_name"`
	OutputDir   string    `json:"output_dir,omitempty"`
}
type RadarResp struct{ Status, Path string }

// RadarFromResult plots every numeric criterion score; N/A criteria are left out.
func RadarFromResult(res rubric.Result, student, outputDir string) RadarReq {
	req := RadarReq{StudentName: student, OutputDir: outputDir}
	for _, cs := range res.Criteria {
		if v, ok := cs.Score.Value(); ok {
			req.Categories = append(req.Categories, cs.Name)
			req.Values = append(req.Values, float64(v))
		}
	}
	return req
}

func (h *HTTP) GenerateRadar(ctx context.Context, url string, req RadarReq) (*RadarResp, error) {
	var out RadarResp
	if err := h.postJSON(ctx, "viz radar", url, "/generate-radar", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
