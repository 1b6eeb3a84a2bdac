package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/lonng/roundscore/pkg/errutil"
	"github.com/lonng/roundscore/pkg/set"
	"github.com/pkg/errors"
)

// Canonical multiplier names.
const (
	ConcealedHand   = "concealed-hand"       // 门清
	PairOnly        = "clean-hand pair-only" // 大吊
	FiveInTheMiddle = "five-in-the-middle"   // 捉五魁
	FullStraight    = "full-straight"        // 一条龙
	AllPairs        = "all-pairs"            // 七对
	SingleSuitClean = "single-suit clean"    // 清一色
)

var defaultFactors = map[string]int{
	ConcealedHand:   2,
	PairOnly:        2,
	FiveInTheMiddle: 2,
	FullStraight:    2,
	AllPairs:        4,
	SingleSuitClean: 8,
}

// 拼音别名
var defaultAliases = map[string]string{
	"menqing":    ConcealedHand,
	"dadiao":     PairOnly,
	"zhuowukui":  FiveInTheMiddle,
	"yitiaolong": FullStraight,
	"qidui":      AllPairs,
	"qingyise":   SingleSuitClean,
}

type Multiplier struct {
	Name   string `json:"name"`
	Factor int    `json:"factor"`
}

// Registry maps scoring conditions to their factors. It is read-only once
// built and may be shared.
type Registry struct {
	factors map[string]int
	aliases map[string]string
}

func NewRegistry() *Registry {
	r := &Registry{
		factors: make(map[string]int, len(defaultFactors)),
		aliases: make(map[string]string, len(defaultAliases)),
	}
	for name, f := range defaultFactors {
		r.factors[name] = f
	}
	for alias, name := range defaultAliases {
		r.aliases[alias] = name
	}
	return r
}

// Resolve returns the canonical name for name or one of its aliases.
func (r *Registry) Resolve(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if _, ok := r.factors[name]; ok {
		return name, true
	}
	if canonical, ok := r.aliases[strings.ToLower(name)]; ok {
		return canonical, true
	}
	return "", false
}

// Factor returns 1 for names it does not know.
func (r *Registry) Factor(name string) int {
	canonical, ok := r.Resolve(name)
	if !ok {
		return 1
	}
	return r.factors[canonical]
}

// CombinedFactor multiplies the factors of all names, starting from 1. A
// condition named twice, directly or through an alias, counts once.
func (r *Registry) CombinedFactor(names []string) int {
	seen := set.New()
	factor := 1
	for _, name := range names {
		canonical, ok := r.Resolve(name)
		if !ok || !seen.Add(canonical) {
			continue
		}
		factor *= r.factors[canonical]
	}
	return factor
}

// Unknown lists the names that resolve to nothing.
func (r *Registry) Unknown(names []string) []string {
	var unknown []string
	for _, name := range names {
		if _, ok := r.Resolve(name); !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

func (r *Registry) Check(names []string) error {
	if unknown := r.Unknown(names); len(unknown) > 0 {
		return errors.Wrapf(errutil.ErrUnknownMultiplier, "%s", strings.Join(unknown, ", "))
	}
	return nil
}

// Multipliers lists the registered conditions ordered by factor, then name.
func (r *Registry) Multipliers() []Multiplier {
	list := make([]Multiplier, 0, len(r.factors))
	for name, f := range r.factors {
		list = append(list, Multiplier{Name: name, Factor: f})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Factor != list[j].Factor {
			return list[i].Factor < list[j].Factor
		}
		return list[i].Name < list[j].Name
	})
	return list
}

type Rounding int

const (
	RoundHalfAwayFromZero Rounding = iota
	RoundHalfEven
)

func ParseRounding(s string) (Rounding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "half-away", "half-up":
		return RoundHalfAwayFromZero, nil
	case "half-even", "bankers":
		return RoundHalfEven, nil
	}
	return 0, errors.Wrapf(errutil.ErrIllegalParameter, "rounding %q", s)
}

func (r Rounding) String() string {
	if r == RoundHalfEven {
		return "half-even"
	}
	return "half-away"
}

func (r Rounding) round(v float64) int {
	if r == RoundHalfEven {
		return int(math.RoundToEven(v))
	}
	return int(math.Round(v))
}

// redistribute charges the points a multiplier adds on top of the base hand
// to the players who paid the base, in proportion to what each of them paid.
// The shares are read back from negative balances, so it must run right after
// applyBaseHand and before any other payment. Rounding is per player and the
// deltas need not sum to extra.
func redistribute(ps *PlayerSet, winner *Player, base, extra int, rounding Rounding) {
	if extra <= 0 || base <= 0 {
		return
	}
	for _, p := range ps.players {
		if p == winner || p.Score >= 0 {
			continue
		}
		share := float64(-p.Score) / float64(base)
		ps.Transfer(p, winner, rounding.round(float64(extra)*share))
	}
}
