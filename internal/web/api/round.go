package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/lonng/nex"
	"github.com/lonng/roundscore/internal/game"
	"github.com/lonng/roundscore/protocol"
)

func MakeRoundService() http.Handler {
	router := mux.NewRouter()
	router.Handle("/v1/round/settle", nex.Handler(settle)).Methods("POST")           //结算一局
	router.Handle("/v1/round/multipliers", nex.Handler(multipliers)).Methods("GET") //番型列表
	return router
}

func settle(req *protocol.SettleRequest) (*protocol.SettleResponse, error) {
	return game.Settle(req)
}

func multipliers() (*protocol.MultiplierListResponse, error) {
	return game.Multipliers(), nil
}
