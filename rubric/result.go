package rubric

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Result is the analysis of one transcript, or an error message when the
// transcript could not be scored.
type Result struct {
	Criteria []CriterionScore
	Verdict  Verdict
	Err      string
}

func ErrorResult(msg string) Result { return Result{Err: msg} }

func (r Result) Failed() bool { return r.Err != "" }

// Score returns the score of the named criterion.
func (r Result) Score(name string) (Score, bool) {
	for _, c := range r.Criteria {
		if c.Name == name {
			return c.Score, true
		}
	}
	return NotApplicable, false
}

// MarshalJSON keeps criteria in rubric order:
// {"scores": {...}, "assessment_details": {...}, "pass_fail": "Pass"} or {"error": "..."}.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(map[string]string{"error": r.Err})
	}
	var buf bytes.Buffer
	buf.WriteString(`{"scores":{`)
	for i, c := range r.Criteria {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, c.Name); err != nil {
			return nil, err
		}
		v, _ := c.Score.MarshalJSON()
		buf.Write(v)
	}
	buf.WriteString(`},"assessment_details":{`)
	for i, c := range r.Criteria {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, c.Name); err != nil {
			return nil, err
		}
		v, err := marshalRaw(c.Assessment)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteString(`},"pass_fail":`)
	v, err := marshalRaw(string(r.Verdict))
	if err != nil {
		return nil, err
	}
	buf.Write(v)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	k, err := marshalRaw(key)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	return nil
}

// marshalRaw encodes v without HTML escaping; criterion names contain '&'.
func marshalRaw(v any) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(b.Bytes(), "\n"), nil
}

// UnmarshalJSON orders criteria by the default rubric; unknown names follow in
// lexical order.
func (r *Result) UnmarshalJSON(b []byte) error {
	var raw struct {
		Error       *string           `json:"error"`
		Scores      map[string]Score  `json:"scores"`
		Assessments map[string]string `json:"assessment_details"`
		PassFail    Verdict           `json:"pass_fail"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Error != nil {
		*r = ErrorResult(*raw.Error)
		return nil
	}
	if raw.PassFail != Pass && raw.PassFail != Fail {
		return fmt.Errorf("rubric result: pass_fail %q", raw.PassFail)
	}

	names := make([]string, 0, len(raw.Scores))
	known := map[string]bool{}
	for _, n := range Default().Names() {
		known[n] = true
		if _, ok := raw.Scores[n]; ok {
			names = append(names, n)
		}
	}
	var extra []string
	for n := range raw.Scores {
		if !known[n] {
			extra = append(extra, n)
		}
	}
	sort.Strings(extra)
	names = append(names, extra...)

	out := Result{Verdict: raw.PassFail, Criteria: make([]CriterionScore, 0, len(names))}
	for _, n := range names {
		out.Criteria = append(out.Criteria, CriterionScore{Name: n, Score: raw.Scores[n], Assessment: raw.Assessments[n]})
	}
	*r = out
	return nil
}
