package strength

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScore_Extremes(t *testing.T) {
	empty := Score("")
	if empty.Score != 0 {
		t.Fatalf("empty score = %d, want 0", empty.Score)
	}
	for _, c := range Criteria {
		if empty.Met(c) {
			t.Fatalf("criterion %s unexpectedly met for empty password", c)
		}
	}

	full := Score("Abcdef1!")
	want := map[Criterion]bool{
		CriterionLength:    true,
		CriterionUppercase: true,
		CriterionLowercase: true,
		CriterionNumber:    true,
		CriterionSpecial:   true,
	}
	if full.Score != MaxScore {
		t.Fatalf("score = %d, want %d", full.Score, MaxScore)
	}
	if diff := cmp.Diff(want, full.Criteria); diff != "" {
		t.Fatalf("criteria mismatch (-want +got):\n%s", diff)
	}
}

// fragments satisfy exactly one criterion each; the length filler is made of
// spaces so it does not trip any other rule.
var fragments = map[Criterion]string{
	CriterionLength:    "        ",
	CriterionUppercase: "Q",
	CriterionLowercase: "q",
	CriterionNumber:    "7",
	CriterionSpecial:   "?",
}

func TestScore_EverySubsetOfCriteria(t *testing.T) {
	for mask := 0; mask < 1<<len(Criteria); mask++ {
		var b strings.Builder
		want := 0
		for i, c := range Criteria {
			if mask&(1<<i) != 0 {
				b.WriteString(fragments[c])
				want += PointsPerCriterion
			}
		}
		pw := b.String()
		// Without the filler, at most four single-character fragments are
		// joined, which stays under MinLength.
		got := Score(pw)
		if got.Score != want {
			t.Errorf("Score(%q) = %d, want %d", pw, got.Score, want)
		}
		if got.Score%PointsPerCriterion != 0 || got.Score < 0 || got.Score > MaxScore {
			t.Errorf("Score(%q) = %d out of range", pw, got.Score)
		}
	}
}

func TestScore_MonotonicWhenAddingCriteria(t *testing.T) {
	pw := ""
	prev := Score(pw).Score
	for _, c := range []Criterion{CriterionSpecial, CriterionNumber, CriterionLowercase, CriterionUppercase, CriterionLength} {
		pw += fragments[c]
		next := Score(pw).Score
		if next < prev {
			t.Fatalf("score decreased from %d to %d after adding %s", prev, next, c)
		}
		prev = next
	}
	if prev != MaxScore {
		t.Fatalf("final score = %d, want %d", prev, MaxScore)
	}
}

func TestScore_SymbolSet(t *testing.T) {
	for _, r := range Symbols {
		if !Score(string(r)).Met(CriterionSpecial) {
			t.Errorf("symbol %q not recognised", r)
		}
	}
	for _, s := range []string{"~", "`", " ", "é"} {
		if Score(s).Met(CriterionSpecial) {
			t.Errorf("%q should not count as a special character", s)
		}
	}
}

func TestBandFor(t *testing.T) {
	cases := map[int]Band{
		0:   {Label: "Very Weak", Severity: SeverityDanger},
		20:  {Label: "Very Weak", Severity: SeverityDanger},
		40:  {Label: "Weak", Severity: SeverityWarning},
		60:  {Label: "Fair", Severity: SeverityInfo},
		80:  {Label: "Good", Severity: SeverityPrimary},
		100: {Label: "Strong", Severity: SeveritySuccess},
	}
	for score, want := range cases {
		if diff := cmp.Diff(want, BandFor(score)); diff != "" {
			t.Errorf("BandFor(%d) mismatch (-want +got):\n%s", score, diff)
		}
	}
}

func TestAcceptable(t *testing.T) {
	if Score("abcdefgh").Acceptable() {
		t.Fatalf("two criteria must not be acceptable")
	}
	if !Score("abcdefg1").Acceptable() {
		t.Fatalf("three criteria must be acceptable")
	}
}
