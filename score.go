package docreview

import "strings"

// Score is a quality grade. The zero value is invalid.
// Scores are totally ordered: Poor < Fair < Good < Excellent.
type Score int

// Score values in ascending order.
const (
	ScorePoor Score = iota + 1
	ScoreFair
	ScoreGood
	ScoreExcellent
)

// String returns the score label.
func (s Score) String() string {
	switch s {
	case ScorePoor:
		return "Poor"
	case ScoreFair:
		return "Fair"
	case ScoreGood:
		return "Good"
	case ScoreExcellent:
		return "Excellent"
	}
	return ""
}

// Valid reports whether s is one of the four defined scores.
func (s Score) Valid() bool {
	return s >= ScorePoor && s <= ScoreExcellent
}

// ParseScore converts a label into a Score. Matching ignores case,
// surrounding whitespace, and trailing punctuation.
func ParseScore(label string) (Score, error) {
	cleaned := strings.ToLower(strings.Trim(strings.TrimSpace(label), `"'.!*`))
	switch cleaned {
	case "poor":
		return ScorePoor, nil
	case "fair":
		return ScoreFair, nil
	case "good":
		return ScoreGood, nil
	case "excellent":
		return ScoreExcellent, nil
	}
	return 0, Errorf(EINVALID, "invalid score %q", label)
}

// MarshalText encodes the score as its label.
func (s Score) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, Errorf(EINVALID, "invalid score %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a score label.
func (s *Score) UnmarshalText(text []byte) error {
	parsed, err := ParseScore(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Worst returns the lowest score in the list.
// An empty list yields ScorePoor; invalid entries count as Poor.
func Worst(scores ...Score) Score {
	if len(scores) == 0 {
		return ScorePoor
	}
	worst := ScoreExcellent
	for _, s := range scores {
		if !s.Valid() {
			return ScorePoor
		}
		if s < worst {
			worst = s
		}
	}
	return worst
}
