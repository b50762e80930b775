package game

import (
	"github.com/palemoky/big-two/internal/game/card"
)

// Player 玩家。手牌只能通过 Receive 和 Play 修改。
type Player struct {
	Name string
	hand card.List
}

// NewPlayer 创建空手牌的玩家
func NewPlayer(name string) *Player {
	return &Player{Name: name}
}

// Receive 接收发到的牌
func (p *Player) Receive(cards ...card.Card) {
	for _, c := range cards {
		p.hand.Add(c)
	}
}

// SortHand 整理手牌
func (p *Player) SortHand() {
	p.hand.Sort()
}

// Select 按下标取出将要出的牌，不修改手牌
func (p *Player) Select(indices []int) ([]card.Card, error) {
	return p.hand.Select(indices)
}

// Play 从手牌中移除已校验的牌
func (p *Player) Play(cards []card.Card) {
	p.hand.Remove(cards)
}

// Hand 手牌拷贝
func (p *Player) Hand() []card.Card {
	return p.hand.Cards()
}

// CardsLeft 剩余张数
func (p *Player) CardsLeft() int {
	return p.hand.Len()
}

// Holds 是否持有某张牌
func (p *Player) Holds(c card.Card) bool {
	return p.hand.Contains(c)
}

func (p *Player) clearHand() {
	p.hand.Clear()
}
