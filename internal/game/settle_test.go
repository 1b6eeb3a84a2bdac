package game

import (
	"testing"

	"github.com/lonng/roundscore/pkg/errutil"
	"github.com/lonng/roundscore/protocol"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettle(t *testing.T) {
	resp, err := Settle(&protocol.SettleRequest{
		Winner:      "south",
		Dealer:      "south",
		TileSource:  "west",
		Multipliers: []string{"single-suit clean"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.RoundID)
	assert.Equal(t, "DealerFromNormal", resp.WinCase)
	assert.Equal(t, 16, resp.BaseScore)
	assert.Equal(t, 8, resp.Factor)
	assert.Equal(t, 128, resp.FinalScore)
	assert.Equal(t, []protocol.PlayerScore{
		{Seat: "east", Label: "East", Score: 0},
		{Seat: "south", Label: "South", Score: 128, IsDealer: true},
		{Seat: "west", Label: "West", Score: -128},
		{Seat: "north", Label: "North", Score: 0},
	}, resp.Scores)
}

func TestSettleSelfDrawnMarkers(t *testing.T) {
	for _, source := range []string{"none", "self-drawn"} {
		resp, err := Settle(&protocol.SettleRequest{Winner: "east", Dealer: "south", TileSource: source})
		require.NoError(t, err)
		assert.Equal(t, "SelfDrawnNormal", resp.WinCase)
		assert.Equal(t, 16, resp.Scores[0].Score)
	}
}

func TestSettleErrors(t *testing.T) {
	cases := []struct {
		req *protocol.SettleRequest
		err error
	}{
		{req: nil, err: errutil.ErrIllegalParameter},
		{req: &protocol.SettleRequest{Dealer: "south", TileSource: "none"}, err: errutil.ErrIncompleteSelection},
		{req: &protocol.SettleRequest{Winner: "east", Dealer: "south"}, err: errutil.ErrIncompleteSelection},
		{req: &protocol.SettleRequest{Winner: "east", Dealer: "south", TileSource: "east"}, err: errutil.ErrSelfDiscard},
		{req: &protocol.SettleRequest{Winner: "centre", Dealer: "south", TileSource: "none"}, err: errutil.ErrInvalidSeat},
		{req: &protocol.SettleRequest{Winner: "east", Dealer: "south", TileSource: "none", RevealedMelds: -1}, err: errutil.ErrInvalidMeldCount},
	}

	for _, c := range cases {
		_, err := Settle(c.req)
		assert.Equal(t, c.err, errors.Cause(err), "request: %+v", c.req)
		assert.True(t, errutil.IsValidation(err))
	}
}

func TestSetup(t *testing.T) {
	defer func() {
		viper.Reset()
		require.NoError(t, Setup())
	}()

	viper.Set("scoring.rounding", "half-even")
	viper.Set("scoring.strict_multipliers", true)
	require.NoError(t, Setup())

	assert.Equal(t, "half-even", Multipliers().Rounding)
	_, err := Settle(&protocol.SettleRequest{Winner: "east", Dealer: "south", TileSource: "none", Multipliers: []string{"lucky"}})
	assert.Equal(t, errutil.ErrUnknownMultiplier, errors.Cause(err))

	viper.Set("scoring.rounding", "ceil")
	assert.Error(t, Setup())
}

func TestMultipliers(t *testing.T) {
	resp := Multipliers()
	require.Len(t, resp.Multipliers, 6)
	assert.Equal(t, protocol.MultiplierInfo{Name: "single-suit clean", Factor: 8}, resp.Multipliers[5])
}
