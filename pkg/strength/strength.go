// Package strength scores passwords against five fixed criteria. Every
// criterion is worth PointsPerCriterion and all of them are evaluated on each
// call, so the score is always a multiple of 20 between 0 and 100.
package strength

import (
	"strings"
	"unicode/utf8"
)

// Criterion names one scoring rule.
type Criterion string

const (
	CriterionLength    Criterion = "length"
	CriterionUppercase Criterion = "uppercase"
	CriterionLowercase Criterion = "lowercase"
	CriterionNumber    Criterion = "number"
	CriterionSpecial   Criterion = "special"
)

// Criteria lists every criterion in display order.
var Criteria = []Criterion{
	CriterionLength,
	CriterionUppercase,
	CriterionLowercase,
	CriterionNumber,
	CriterionSpecial,
}

const (
	PointsPerCriterion = 20
	MaxScore           = PointsPerCriterion * 5
	// MinAcceptable is the lowest score a password may have to be submitted.
	MinAcceptable = 60
	// MinLength is the character count required by CriterionLength.
	MinLength = 8
)

// Symbols is the punctuation set accepted by CriterionSpecial.
const Symbols = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// Description returns the checklist caption for a criterion.
func (c Criterion) Description() string {
	switch c {
	case CriterionLength:
		return "At least 8 characters"
	case CriterionUppercase:
		return "One uppercase letter"
	case CriterionLowercase:
		return "One lowercase letter"
	case CriterionNumber:
		return "One number"
	case CriterionSpecial:
		return "One special character"
	default:
		return string(c)
	}
}

// Assessment is the result of scoring one password.
type Assessment struct {
	Score    int
	Criteria map[Criterion]bool
}

// Score evaluates password against every criterion.
func Score(password string) Assessment {
	met := map[Criterion]bool{
		CriterionLength:    utf8.RuneCountInString(password) >= MinLength,
		CriterionUppercase: containsRange(password, 'A', 'Z'),
		CriterionLowercase: containsRange(password, 'a', 'z'),
		CriterionNumber:    containsRange(password, '0', '9'),
		CriterionSpecial:   strings.ContainsAny(password, Symbols),
	}
	score := 0
	for _, ok := range met {
		if ok {
			score += PointsPerCriterion
		}
	}
	return Assessment{Score: score, Criteria: met}
}

// Acceptable reports whether the assessment clears MinAcceptable.
func (a Assessment) Acceptable() bool {
	return a.Score >= MinAcceptable
}

// Met reports whether a single criterion is satisfied.
func (a Assessment) Met(c Criterion) bool {
	return a.Criteria[c]
}

// Band returns the label and severity for the assessment's score.
func (a Assessment) Band() Band {
	return BandFor(a.Score)
}

func containsRange(s string, lo, hi rune) bool {
	for _, r := range s {
		if r >= lo && r <= hi {
			return true
		}
	}
	return false
}
