package scoring

import (
	"github.com/lonng/roundscore/pkg/errutil"
	"github.com/lonng/roundscore/pkg/set"
	"github.com/pkg/errors"
)

// RoundInput holds the facts of one round. Build it with NewRoundInput and do
// not modify it afterwards.
type RoundInput struct {
	Winner         Seat
	Dealer         Seat
	TileSource     Seat // SelfDrawn 表示自摸
	Multipliers    []string
	RevealedMelds  int // 明杠
	ConcealedMelds int // 暗杠
}

// NewRoundInput copies multipliers and drops duplicated names.
func NewRoundInput(winner, dealer, source Seat, multipliers []string, revealed, concealed int) *RoundInput {
	return &RoundInput{
		Winner:         winner,
		Dealer:         dealer,
		TileSource:     source,
		Multipliers:    set.New(multipliers...).Values(),
		RevealedMelds:  revealed,
		ConcealedMelds: concealed,
	}
}

func (in *RoundInput) SelfDrawn() bool {
	return in.TileSource == SelfDrawn
}

// Validate rejects incomplete or contradictory input before any score moves.
func (in *RoundInput) Validate() error {
	if in == nil {
		return errors.Wrap(errutil.ErrIncompleteSelection, "empty round")
	}

	if in.Winner == SeatNone {
		return errors.Wrap(errutil.ErrIncompleteSelection, "winner")
	}
	if in.Dealer == SeatNone {
		return errors.Wrap(errutil.ErrIncompleteSelection, "dealer")
	}
	if in.TileSource == SeatNone {
		return errors.Wrap(errutil.ErrIncompleteSelection, "tile source")
	}

	if !in.Winner.Valid() {
		return errors.Wrapf(errutil.ErrInvalidSeat, "winner %d", in.Winner)
	}
	if !in.Dealer.Valid() {
		return errors.Wrapf(errutil.ErrInvalidSeat, "dealer %d", in.Dealer)
	}
	if !in.SelfDrawn() && !in.TileSource.Valid() {
		return errors.Wrapf(errutil.ErrInvalidSeat, "tile source %d", in.TileSource)
	}

	if in.TileSource == in.Winner {
		return errors.Wrapf(errutil.ErrSelfDiscard, "seat %s", in.Winner)
	}

	if in.RevealedMelds < 0 {
		return errors.Wrapf(errutil.ErrInvalidMeldCount, "revealed %d", in.RevealedMelds)
	}
	if in.ConcealedMelds < 0 {
		return errors.Wrapf(errutil.ErrInvalidMeldCount, "concealed %d", in.ConcealedMelds)
	}

	return nil
}

// RoundResult is the settlement of a round. Scores of Players always sum to 0.
type RoundResult struct {
	Case       WinCase
	BaseScore  int
	Factor     int
	FinalScore int
	Players    []Player
}
