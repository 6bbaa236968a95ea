package rubric

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

const (
	MinScore = 1
	MaxScore = 4

	naText = "N/A"
)

// Score is either a value in 1..4 or NotApplicable. The zero value is NotApplicable.
type Score struct {
	value int
}

var NotApplicable = Score{}

// Scored returns a numeric score. The value must be in 1..4.
func Scored(n int) Score {
	if n < MinScore || n > MaxScore {
		panic(fmt.Sprintf("rubric: score %d out of range", n))
	}
	return Score{value: n}
}

// Value returns the numeric score and false for NotApplicable.
func (s Score) Value() (int, bool) {
	return s.value, s.value != 0
}

func (s Score) IsNotApplicable() bool { return s.value == 0 }

// Weak reports a numeric score of 1 or 2.
func (s Score) Weak() bool { return s.value == 1 || s.value == 2 }

func (s Score) String() string {
	if s.value == 0 {
		return naText
	}
	return strconv.Itoa(s.value)
}

func (s Score) MarshalJSON() ([]byte, error) {
	if s.value == 0 {
		return []byte(`"N/A"`), nil
	}
	return []byte(strconv.Itoa(s.value)), nil
}

func (s *Score) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte(`"N/A"`)) {
		*s = NotApplicable
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("rubric score: want 1..4 or \"N/A\", got %s", b)
	}
	if n < MinScore || n > MaxScore {
		return fmt.Errorf("rubric score %d out of range", n)
	}
	s.value = n
	return nil
}

type Verdict string

const (
	Pass Verdict = "Pass"
	Fail Verdict = "Fail"
)

// Decide fails when any numeric score is 1 or 2. NotApplicable is ignored.
func Decide(scores []Score) Verdict {
	for _, s := range scores {
		if s.Weak() {
			return Fail
		}
	}
	return Pass
}
