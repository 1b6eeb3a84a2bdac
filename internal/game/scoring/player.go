package scoring

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Player struct {
	Seat     Seat   `json:"seat"`
	Label    string `json:"label"`
	Score    int    `json:"score"`
	IsDealer bool   `json:"isDealer"`
}

// PlayerSet holds the four seats of one table. It is owned by a single
// computation and must not be shared between concurrent rounds.
type PlayerSet struct {
	players [seatCount]*Player
}

func NewPlayerSet() *PlayerSet {
	title := cases.Title(language.English)
	ps := &PlayerSet{}
	for i, s := range Seats() {
		ps.players[i] = &Player{Seat: s, Label: title.String(s.String())}
	}
	return ps
}

// Reset 每局开始时清零分数并清除庄家标记
func (ps *PlayerSet) Reset() {
	for _, p := range ps.players {
		p.Score = 0
		p.IsDealer = false
	}
}

func (ps *PlayerSet) SetDealer(seat Seat) {
	for _, p := range ps.players {
		p.IsDealer = false
	}
	if p := ps.Player(seat); p != nil {
		p.IsDealer = true
	}
}

// Player returns nil when no player sits at seat.
func (ps *PlayerSet) Player(seat Seat) *Player {
	if !seat.Valid() {
		return nil
	}
	return ps.players[seat-East]
}

func (ps *PlayerSet) Dealer() *Player {
	for _, p := range ps.players {
		if p.IsDealer {
			return p
		}
	}
	return nil
}

// 闲家
func (ps *PlayerSet) NonDealers() []*Player {
	var list []*Player
	for _, p := range ps.players {
		if !p.IsDealer {
			list = append(list, p)
		}
	}
	return list
}

// Transfer moves amount from one player to another. A missing player or a
// non-positive amount leaves every balance untouched.
func (ps *PlayerSet) Transfer(from, to *Player, amount int) {
	if from == nil || to == nil || amount <= 0 {
		return
	}
	from.Score -= amount
	to.Score += amount
}

// Players returns a copy of the table in East, South, West, North order.
func (ps *PlayerSet) Players() []Player {
	list := make([]Player, seatCount)
	for i, p := range ps.players {
		list[i] = *p
	}
	return list
}

func (ps *PlayerSet) Sum() int {
	sum := 0
	for _, p := range ps.players {
		sum += p.Score
	}
	return sum
}
