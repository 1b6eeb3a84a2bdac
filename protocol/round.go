package protocol

type SettleRequest struct {
	Winner         string   `json:"winner"`         //胡牌玩家方位: east/south/west/north
	Dealer         string   `json:"dealer"`         //庄家方位
	TileSource     string   `json:"tileSource"`     //点炮者方位, "none"或"self-drawn"表示自摸
	Multipliers    []string `json:"multipliers"`    //番型
	RevealedMelds  int      `json:"revealedMelds"`  //明杠数量
	ConcealedMelds int      `json:"concealedMelds"` //暗杠数量
}

type PlayerScore struct {
	Seat     string `json:"seat"`
	Label    string `json:"label"`
	Score    int    `json:"score"`
	IsDealer bool   `json:"isDealer"`
}

type SettleResponse struct {
	Code       int           `json:"code"`
	RoundID    string        `json:"roundId"`
	WinCase    string        `json:"winCase"`
	BaseScore  int           `json:"baseScore"`
	Factor     int           `json:"factor"`
	FinalScore int           `json:"finalScore"`
	Scores     []PlayerScore `json:"scores"`
}

type MultiplierInfo struct {
	Name   string `json:"name"`
	Factor int    `json:"factor"`
}

type MultiplierListResponse struct {
	Code        int              `json:"code"`
	Rounding    string           `json:"rounding"`
	Multipliers []MultiplierInfo `json:"multipliers"`
}
