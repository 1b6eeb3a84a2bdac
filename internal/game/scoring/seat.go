package scoring

import (
	"strings"

	"github.com/lonng/roundscore/pkg/errutil"
	"github.com/pkg/errors"
)

type Seat int

const (
	SeatNone Seat = iota // 未选择
	East
	South
	West
	North
)

// SelfDrawn is the tile source of a self-drawn win (自摸), there is no discarder.
const SelfDrawn Seat = -1

const seatCount = 4

var seatNames = [...]string{
	SeatNone: "",
	East:     "east",
	South:    "south",
	West:     "west",
	North:    "north",
}

// Seats returns the four seats in table order.
func Seats() []Seat {
	return []Seat{East, South, West, North}
}

func (s Seat) Valid() bool {
	return s >= East && s <= North
}

func (s Seat) String() string {
	if s == SelfDrawn {
		return "self-drawn"
	}
	if s < SeatNone || s > North {
		return "unknown"
	}
	return seatNames[s]
}

// ParseSeat parses a seat name, an empty string yields SeatNone.
func ParseSeat(name string) (Seat, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return SeatNone, nil
	}
	for _, s := range Seats() {
		if seatNames[s] == name {
			return s, nil
		}
	}
	return SeatNone, errors.Wrapf(errutil.ErrInvalidSeat, "seat %q", name)
}

// ParseTileSource parses a seat name or one of the self-drawn markers.
func ParseTileSource(name string) (Seat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "self-drawn", "selfdrawn", "none", "zimo":
		return SelfDrawn, nil
	}
	return ParseSeat(name)
}
