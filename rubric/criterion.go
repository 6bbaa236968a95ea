package rubric

import (
	"fmt"
	"strings"
)

type Kind string

const (
	Additive    Kind = "additive"
	Conjunctive Kind = "conjunctive"
	Inhibitory  Kind = "inhibitory"
	Fixed       Kind = "fixed"
)

// KeywordSet is a named list of lowercase phrases matched as substrings.
type KeywordSet struct {
	Name     string
	Keywords []string
}

// matches returns the distinct keywords of the set occurring in text.
// text must already be lowercased.
func (k KeywordSet) matches(text string) []string {
	var found []string
	for _, kw := range k.Keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			found = append(found, kw)
		}
	}
	return found
}

// Need requires the summed match counts of Sets to reach Min.
type Need struct {
	Sets []string
	Min  int
}

// Tier maps satisfied needs to a score. A tier with no needs always matches.
type Tier struct {
	Score int
	Note  string
	Needs []Need
}

type Criterion struct {
	Name string
	Kind Kind
	Sets []KeywordSet
	// Inhibitor names the set whose presence forces the last tier.
	Inhibitor string
	Tiers     []Tier
	// Note is the fixed assessment of a Fixed criterion.
	Note string
}

// CriterionScore is the outcome of one criterion.
type CriterionScore struct {
	Name       string
	Score      Score
	Assessment string
	// Matches holds the matched keywords per set, for diagnostics.
	Matches map[string][]string
}

func (c Criterion) evaluate(lower string) CriterionScore {
	if c.Kind == Fixed {
		return CriterionScore{Name: c.Name, Score: NotApplicable, Assessment: c.Note}
	}

	matches := make(map[string][]string, len(c.Sets))
	for _, set := range c.Sets {
		if found := set.matches(lower); len(found) > 0 {
			matches[set.Name] = found
		}
	}
	out := CriterionScore{Name: c.Name, Matches: matches}

	floor := c.Tiers[len(c.Tiers)-1]
	if c.Inhibitor != "" && len(matches[c.Inhibitor]) > 0 {
		out.Score, out.Assessment = Scored(floor.Score), floor.Note
		return out
	}
	for _, tier := range c.Tiers {
		if tier.satisfied(matches) {
			out.Score, out.Assessment = Scored(tier.Score), tier.Note
			return out
		}
	}
	// Unreachable for a validated criterion: the floor tier has no needs.
	out.Score, out.Assessment = Scored(floor.Score), floor.Note
	return out
}

func (t Tier) satisfied(matches map[string][]string) bool {
	for _, need := range t.Needs {
		total := 0
		for _, set := range need.Sets {
			total += len(matches[set])
		}
		if total < need.Min {
			return false
		}
	}
	return true
}

// ScoringError reports a rubric table that breaks an evaluator invariant.
type ScoringError struct {
	Criterion string
	Reason    string
}

func (e *ScoringError) Error() string {
	return fmt.Sprintf("rubric criterion %q: %s", e.Criterion, e.Reason)
}

func (c Criterion) validate() error {
	fail := func(format string, args ...any) error {
		return &ScoringError{Criterion: c.Name, Reason: fmt.Sprintf(format, args...)}
	}
	if strings.TrimSpace(c.Name) == "" {
		return fail("empty name")
	}
	if c.Kind == Fixed {
		if len(c.Tiers) > 0 || len(c.Sets) > 0 {
			return fail("fixed criterion must not carry keyword sets or tiers")
		}
		if c.Note == "" {
			return fail("fixed criterion needs an assessment note")
		}
		return nil
	}

	sets := map[string]bool{}
	for _, s := range c.Sets {
		if sets[s.Name] {
			return fail("duplicate keyword set %q", s.Name)
		}
		if len(s.Keywords) == 0 {
			return fail("keyword set %q is empty", s.Name)
		}
		sets[s.Name] = true
	}
	if len(c.Tiers) == 0 {
		return fail("no tiers")
	}
	switch c.Kind {
	case Additive, Conjunctive:
		if c.Inhibitor != "" {
			return fail("%s criterion must not have an inhibitor", c.Kind)
		}
	case Inhibitory:
		if !sets[c.Inhibitor] {
			return fail("inhibitor set %q not defined", c.Inhibitor)
		}
	default:
		return fail("unknown kind %q", c.Kind)
	}

	prev := MaxScore + 1
	for i, tier := range c.Tiers {
		if tier.Score < MinScore || tier.Score > MaxScore {
			return fail("tier %d score %d out of range", i, tier.Score)
		}
		if tier.Score >= prev {
			return fail("tier %d score %d not descending", i, tier.Score)
		}
		prev = tier.Score
		if tier.Note == "" {
			return fail("tier %d has no note", i)
		}
		last := i == len(c.Tiers)-1
		if last && len(tier.Needs) > 0 {
			return fail("last tier must have no needs")
		}
		if !last && len(tier.Needs) == 0 {
			return fail("tier %d has no needs and hides the tiers below it", i)
		}
		for _, need := range tier.Needs {
			if need.Min < 1 {
				return fail("tier %d need minimum %d", i, need.Min)
			}
			for _, name := range need.Sets {
				if !sets[name] {
					return fail("tier %d references unknown set %q", i, name)
				}
			}
		}
	}
	if c.Tiers[len(c.Tiers)-1].Score != MinScore {
		return fail("last tier must score %d", MinScore)
	}
	return nil
}
