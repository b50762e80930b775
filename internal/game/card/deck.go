package card

import (
	"fmt"
	"math/rand/v2"
)

// DeckSize 一副牌的张数（不含大小王）
const DeckSize = NumSuits * NumRanks

// Deck 一副牌
type Deck struct {
	List
}

// NewDeck 创建并初始化一副完整的牌
func NewDeck() *Deck {
	d := &Deck{}
	d.Initialize()
	return d
}

// DeckFrom 用给定顺序的牌构造牌堆（用于接收服务端下发的牌序）
func DeckFrom(cards []Card) (*Deck, error) {
	if err := ValidateFullDeck(cards); err != nil {
		return nil, err
	}
	return &Deck{List: *NewList(cards...)}, nil
}

// Initialize 清空并按固定顺序放入 52 张牌：每种花色依次为 3..K, A, 2
func (d *Deck) Initialize() {
	d.Clear()
	for s := Diamond; s <= Spade; s++ {
		for j := range NumRanks {
			d.Add(Card{Suit: s, Rank: Rank((j + 2) % NumRanks)})
		}
	}
}

// Shuffle 洗牌
func (d *Deck) Shuffle() {
	rand.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// ShuffleWith 使用指定的随机源洗牌（测试中可复现）
func (d *Deck) ShuffleWith(r *rand.Rand) {
	r.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// RemoveCard 发牌时取出第 i 张
func (d *Deck) RemoveCard(i int) (Card, error) {
	return d.RemoveAt(i)
}

// ValidateFullDeck 检查是否恰好为 52 张互不相同的合法牌
func ValidateFullDeck(cards []Card) error {
	if len(cards) != DeckSize {
		return fmt.Errorf("牌数错误: 期望 %d 张, 实际 %d 张", DeckSize, len(cards))
	}
	seen := make(map[Card]bool, DeckSize)
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("无效的牌: %+v", c)
		}
		if seen[c] {
			return fmt.Errorf("重复的牌: %s", c)
		}
		seen[c] = true
	}
	return nil
}
