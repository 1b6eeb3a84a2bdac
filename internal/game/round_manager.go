package game

import (
	"github.com/lonng/nano/component"
	"github.com/lonng/nano/session"
	"github.com/lonng/roundscore/pkg/errutil"
	"github.com/lonng/roundscore/protocol"
)

// RoundManager 牌局结算组件
type RoundManager struct {
	component.Base
}

func NewRoundManager() *RoundManager {
	return &RoundManager{}
}

func (m *RoundManager) Settle(s *session.Session, req *protocol.SettleRequest) error {
	resp, err := Settle(req)
	if err != nil {
		return s.Response(&protocol.ErrorResponse{
			Code:  errutil.Code(err),
			Error: err.Error(),
		})
	}
	return s.Response(resp)
}

func (m *RoundManager) Multipliers(s *session.Session, _ []byte) error {
	return s.Response(Multipliers())
}
