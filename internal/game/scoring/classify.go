package scoring

import (
	"github.com/lonng/roundscore/pkg/errutil"
	"github.com/pkg/errors"
)

type WinCase int

const (
	SelfDrawnNormal  WinCase = iota + 1 // 闲家自摸
	SelfDrawnDealer                     // 庄家自摸
	NormalFromNormal                    // 闲家胡闲家
	NormalFromDealer                    // 闲家胡庄家
	DealerFromNormal                    // 庄家胡闲家
)

var winCaseDesc = [...]string{
	SelfDrawnNormal:  "SelfDrawnNormal",
	SelfDrawnDealer:  "SelfDrawnDealer",
	NormalFromNormal: "NormalFromNormal",
	NormalFromDealer: "NormalFromDealer",
	DealerFromNormal: "DealerFromNormal",
}

func (w WinCase) String() string {
	if w < SelfDrawnNormal || w > DealerFromNormal {
		return "Unknown"
	}
	return winCaseDesc[w]
}

// Classify derives the win case of a round. A nil discarder means the winner
// drew the tile. The rules are checked in a fixed order and the last error
// return signals that the cases are no longer exhaustive.
func Classify(winner, dealer, discarder *Player) (WinCase, error) {
	if winner == nil {
		return 0, errors.Wrap(errutil.ErrUnreachableClassification, "no winner")
	}

	selfDrawn := discarder == nil
	winnerIsDealer := winner.IsDealer

	switch {
	case selfDrawn && !winnerIsDealer:
		return SelfDrawnNormal, nil
	case selfDrawn && winnerIsDealer:
		return SelfDrawnDealer, nil
	case !selfDrawn && !winnerIsDealer && !discarder.IsDealer:
		return NormalFromNormal, nil
	case !selfDrawn && !winnerIsDealer && discarder.IsDealer:
		return NormalFromDealer, nil
	case !selfDrawn && winnerIsDealer:
		return DealerFromNormal, nil
	}

	return 0, errors.Wrapf(errutil.ErrUnreachableClassification,
		"winner=%s dealer=%v self-drawn=%v", winner.Seat, dealer != nil, selfDrawn)
}
