package scoring

import (
	log "github.com/sirupsen/logrus"
)

type options struct {
	registry *Registry
	rounding Rounding
	strict   bool
	logger   *log.Entry
}

// Option configures an Engine.
type Option func(*options)

// WithRegistry replaces the default multiplier registry.
func WithRegistry(r *Registry) Option {
	return func(opts *options) {
		opts.registry = r
	}
}

// WithRounding specifies how the multiplier bonus is rounded per player.
func WithRounding(r Rounding) Option {
	return func(opts *options) {
		opts.rounding = r
	}
}

// WithStrictMultipliers rejects unknown multiplier names instead of ignoring them.
func WithStrictMultipliers(strict bool) Option {
	return func(opts *options) {
		opts.strict = strict
	}
}

func WithLogger(logger *log.Entry) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// Engine settles rounds. It keeps no per-round state and is safe for
// concurrent use as long as every call gets its own PlayerSet.
type Engine struct {
	options
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		options: options{
			registry: NewRegistry(),
			rounding: RoundHalfAwayFromZero,
			logger:   log.WithField("component", "scoring"),
		},
	}
	for _, opt := range opts {
		opt(&e.options)
	}
	return e
}

func (e *Engine) Registry() *Registry {
	return e.registry
}

func (e *Engine) Rounding() Rounding {
	return e.rounding
}

// Compute resets ps and settles in onto it. Invalid input is rejected before
// ps is touched. It panics if the round cannot be classified, which means the
// win cases are no longer exhaustive.
func (e *Engine) Compute(ps *PlayerSet, in *RoundInput) (*RoundResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if unknown := e.registry.Unknown(in.Multipliers); len(unknown) > 0 {
		if e.strict {
			return nil, e.registry.Check(in.Multipliers)
		}
		e.logger.Warnf("忽略未知番型: %v", unknown)
	}

	ps.Reset()
	ps.SetDealer(in.Dealer)

	var (
		winner    = ps.Player(in.Winner)
		dealer    = ps.Dealer()
		discarder *Player
	)
	if !in.SelfDrawn() {
		discarder = ps.Player(in.TileSource)
	}

	wc, err := Classify(winner, dealer, discarder)
	if err != nil {
		panic(err)
	}

	// 顺序不能变: 倍数加分按底分的付款比例分摊
	base := applyBaseHand(ps, wc, winner, discarder)
	factor := e.registry.CombinedFactor(in.Multipliers)
	final := base * factor
	redistribute(ps, winner, base, final-base, e.rounding)

	applyRevealedMelds(ps, wc, winner, discarder, in.RevealedMelds)
	applyConcealedMelds(ps, wc, winner, discarder, in.ConcealedMelds)

	e.logger.Debugf("结算完成, Case=%s, Base=%d, Factor=%d, Final=%d, Revealed=%d, Concealed=%d",
		wc, base, factor, final, in.RevealedMelds, in.ConcealedMelds)

	if sum := ps.Sum(); sum != 0 {
		e.logger.Errorf("分数不平衡, Sum=%d", sum)
	}

	return &RoundResult{
		Case:       wc,
		BaseScore:  base,
		Factor:     factor,
		FinalScore: final,
		Players:    ps.Players(),
	}, nil
}

var defaultEngine = NewEngine()

// ComputeRound settles in with the default engine on a fresh table.
func ComputeRound(in *RoundInput) (*RoundResult, error) {
	return defaultEngine.Compute(NewPlayerSet(), in)
}
