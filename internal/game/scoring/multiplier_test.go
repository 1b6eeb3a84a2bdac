package scoring

import (
	"testing"

	"github.com/lonng/roundscore/pkg/errutil"
	"github.com/pkg/errors"
)

func TestCombinedFactor(t *testing.T) {
	r := NewRegistry()
	cases := []struct {
		names  []string
		factor int
	}{
		{names: nil, factor: 1},
		{names: []string{PairOnly}, factor: 2},
		{names: []string{SingleSuitClean}, factor: 8},
		{names: []string{AllPairs, SingleSuitClean}, factor: 32},
		{names: []string{ConcealedHand, FiveInTheMiddle, FullStraight}, factor: 8},
		{names: []string{"no-such-hand"}, factor: 1},
		{names: []string{"no-such-hand", AllPairs}, factor: 4},
		{names: []string{"qiDui"}, factor: 4},
		{names: []string{"qiDui", AllPairs}, factor: 4},
		{names: []string{AllPairs, AllPairs}, factor: 4},
	}

	for _, c := range cases {
		if f := r.CombinedFactor(c.names); f != c.factor {
			t.Fatalf("expect: %d, got: %d, names: %v", c.factor, f, c.names)
		}
	}
}

func TestRegistryCheck(t *testing.T) {
	r := NewRegistry()
	if err := r.Check([]string{"menQing", SingleSuitClean}); err != nil {
		t.Fatal(err)
	}

	err := r.Check([]string{"menQing", "lucky"})
	if errors.Cause(err) != errutil.ErrUnknownMultiplier {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegistryMultipliers(t *testing.T) {
	list := NewRegistry().Multipliers()
	if len(list) != 6 {
		t.Fatalf("expect: 6, got: %d", len(list))
	}
	if last := list[len(list)-1]; last.Name != SingleSuitClean || last.Factor != 8 {
		t.Fatalf("unexpected last: %+v", last)
	}
}

func TestParseRounding(t *testing.T) {
	if r, err := ParseRounding(""); err != nil || r != RoundHalfAwayFromZero {
		t.Fail()
	}
	if r, err := ParseRounding("half-even"); err != nil || r != RoundHalfEven {
		t.Fail()
	}
	if _, err := ParseRounding("ceil"); errors.Cause(err) != errutil.ErrIllegalParameter {
		t.Fail()
	}
}

func TestRedistribute(t *testing.T) {
	cases := []struct {
		rounding Rounding
		extra    int
		scores   []int // east, south, west, north
	}{
		// shares 1/4, 1/2, 1/4 of 16
		{rounding: RoundHalfAwayFromZero, extra: 16, scores: []int{32, -16, -8, -8}},
		{rounding: RoundHalfAwayFromZero, extra: 2, scores: []int{19, -9, -5, -5}},
		{rounding: RoundHalfEven, extra: 2, scores: []int{17, -9, -4, -4}},
		{rounding: RoundHalfEven, extra: 0, scores: []int{16, -8, -4, -4}},
	}

	for _, c := range cases {
		ps := NewPlayerSet()
		ps.SetDealer(South)
		winner := ps.Player(East)
		base := applyBaseHand(ps, SelfDrawnNormal, winner, nil)
		redistribute(ps, winner, base, c.extra, c.rounding)

		for i, p := range ps.Players() {
			if p.Score != c.scores[i] {
				t.Fatalf("expect: %v, got: %+v, case: %+v", c.scores, ps.Players(), c)
			}
		}
		if ps.Sum() != 0 {
			t.Fatalf("unbalanced: %+v", ps.Players())
		}
	}
}
