package game

import (
	"slices"

	"github.com/palemoky/big-two/internal/game/card"
	"github.com/palemoky/big-two/internal/game/rule"
)

// Standing 一名玩家的结算信息
type Standing struct {
	Seat      int
	Name      string
	CardsLeft int
	Cards     []card.Card // 剩余手牌
	Place     int         // 名次，从 1 开始；剩余张数相同则名次相同
}

// Winner 出完牌的玩家即为赢家
func (s Standing) Winner() bool {
	return s.CardsLeft == 0
}

// Standings 按剩余张数从少到多排列，张数相同按座位
func (g *Game) Standings() []Standing {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.standings()
}

func (g *Game) standings() []Standing {
	standings := make([]Standing, NumPlayers)
	for i, p := range g.players {
		standings[i] = Standing{
			Seat:      i,
			Name:      p.Name,
			CardsLeft: p.CardsLeft(),
			Cards:     p.Hand(),
		}
	}
	slices.SortStableFunc(standings, func(a, b Standing) int {
		return a.CardsLeft - b.CardsLeft
	})
	for i := range standings {
		switch {
		case i == 0:
			standings[i].Place = 1
		case standings[i].CardsLeft == standings[i-1].CardsLeft:
			standings[i].Place = standings[i-1].Place
		default:
			standings[i].Place = i + 1
		}
	}
	return standings
}

// Snapshot 牌桌的只读快照，供界面和状态接口使用
type Snapshot struct {
	State     State
	Disabled  bool
	Current   int
	LocalID   int
	Seq       int
	Names     [NumPlayers]string
	CardsLeft [NumPlayers]int
	LastHand  *rule.Hand
	TableSize int
	FreeLead  bool
	LocalHand []card.Card // 本地玩家手牌；服务端为空
	Standings []Standing  // 仅在本局结束后填充
}

// Snapshot 生成当前快照
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := Snapshot{
		State:     g.state,
		Disabled:  g.disabled,
		Current:   g.current,
		LocalID:   g.localID,
		Seq:       g.seq,
		LastHand:  g.lastHand(),
		TableSize: len(g.table),
		FreeLead:  g.state == StateTurnInProgress && g.freeLead(),
	}
	for i, p := range g.players {
		s.Names[i] = p.Name
		s.CardsLeft[i] = p.CardsLeft()
	}
	if validSeat(g.localID) {
		s.LocalHand = g.players[g.localID].Hand()
	}
	if g.state == StateRoundOver {
		s.Standings = g.standings()
	}
	return s
}
