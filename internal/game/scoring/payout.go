package scoring

// payout describes who pays the winner and how much. Every player other than
// the winner pays dealer or nonDealer by role, plus discarder when it fed the
// winning tile.
type payout struct {
	nonDealer int // 每个闲家
	dealer    int // 庄家
	discarder int // 点炮者
	total     int // 底分合计
}

// 底分
var basePayouts = map[WinCase]payout{
	SelfDrawnNormal:  {nonDealer: 4, dealer: 8, total: 16},
	SelfDrawnDealer:  {nonDealer: 8, total: 24},
	NormalFromNormal: {discarder: 10, total: 10},
	NormalFromDealer: {dealer: 12, total: 12},
	DealerFromNormal: {discarder: 16, total: 16},
}

// 每个明杠的分数, 暗杠按两个明杠计算
var meldPayouts = map[WinCase]payout{
	SelfDrawnNormal:  {nonDealer: 2, dealer: 4, total: 8},
	SelfDrawnDealer:  {nonDealer: 4, total: 12},
	NormalFromNormal: {discarder: 8, total: 8},
	NormalFromDealer: {dealer: 8, total: 8},
	DealerFromNormal: {discarder: 12, total: 12},
}

func (p payout) owedBy(player, discarder *Player) int {
	amount := p.nonDealer
	if player.IsDealer {
		amount = p.dealer
	}
	if player == discarder {
		amount += p.discarder
	}
	return amount
}

// apply pays units times the rule to the winner and returns the points moved.
func (p payout) apply(ps *PlayerSet, winner, discarder *Player, units int) int {
	moved := 0
	for _, player := range ps.players {
		if player == winner {
			continue
		}
		amount := p.owedBy(player, discarder) * units
		ps.Transfer(player, winner, amount)
		if amount > 0 {
			moved += amount
		}
	}
	return moved
}

// applyBaseHand settles the base hand and returns the base total of the case.
func applyBaseHand(ps *PlayerSet, wc WinCase, winner, discarder *Player) int {
	rule := basePayouts[wc]
	rule.apply(ps, winner, discarder, 1)
	return rule.total
}

func applyRevealedMelds(ps *PlayerSet, wc WinCase, winner, discarder *Player, count int) {
	if count <= 0 {
		return
	}
	meldPayouts[wc].apply(ps, winner, discarder, count)
}

func applyConcealedMelds(ps *PlayerSet, wc WinCase, winner, discarder *Player, count int) {
	if count <= 0 {
		return
	}
	applyRevealedMelds(ps, wc, winner, discarder, count*2)
}
