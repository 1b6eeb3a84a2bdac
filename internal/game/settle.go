package game

import (
	"github.com/lonng/roundscore/internal/game/scoring"
	"github.com/lonng/roundscore/pkg/errutil"
	"github.com/lonng/roundscore/protocol"
	"github.com/pborman/uuid"
	"github.com/pkg/errors"
)

// 解析客户端提交的选择
func roundInput(req *protocol.SettleRequest) (*scoring.RoundInput, error) {
	if req == nil {
		return nil, errutil.ErrIllegalParameter
	}

	winner, err := scoring.ParseSeat(req.Winner)
	if err != nil {
		return nil, errors.Wrap(err, "winner")
	}
	dealer, err := scoring.ParseSeat(req.Dealer)
	if err != nil {
		return nil, errors.Wrap(err, "dealer")
	}
	source, err := scoring.ParseTileSource(req.TileSource)
	if err != nil {
		return nil, errors.Wrap(err, "tile source")
	}

	return scoring.NewRoundInput(winner, dealer, source, req.Multipliers, req.RevealedMelds, req.ConcealedMelds), nil
}

// Settle computes one round on a fresh table with the configured engine.
func Settle(req *protocol.SettleRequest) (*protocol.SettleResponse, error) {
	in, err := roundInput(req)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	res, err := currentEngine().Compute(scoring.NewPlayerSet(), in)
	if err != nil {
		logger.WithField("round", id).Debugf("结算参数错误, Request=%+v, Error=%v", req, err)
		return nil, err
	}

	resp := &protocol.SettleResponse{
		RoundID:    id,
		WinCase:    res.Case.String(),
		BaseScore:  res.BaseScore,
		Factor:     res.Factor,
		FinalScore: res.FinalScore,
		Scores:     make([]protocol.PlayerScore, len(res.Players)),
	}
	for i, p := range res.Players {
		resp.Scores[i] = protocol.PlayerScore{
			Seat:     p.Seat.String(),
			Label:    p.Label,
			Score:    p.Score,
			IsDealer: p.IsDealer,
		}
	}

	logger.WithField("round", id).Infof("结算完成, Case=%s, Final=%d, Scores=%+v", resp.WinCase, resp.FinalScore, resp.Scores)
	return resp, nil
}

// Multipliers lists the scoring conditions of the configured engine.
func Multipliers() *protocol.MultiplierListResponse {
	e := currentEngine()
	resp := &protocol.MultiplierListResponse{Rounding: e.Rounding().String()}
	for _, m := range e.Registry().Multipliers() {
		resp.Multipliers = append(resp.Multipliers, protocol.MultiplierInfo{Name: m.Name, Factor: m.Factor})
	}
	return resp
}
