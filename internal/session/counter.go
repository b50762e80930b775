package session

import (
	"sync"

	"github.com/palemoky/big-two/internal/game/card"
)

// CardCounter 记牌器：统计本地玩家看不到的牌（不在自己手里，也还没出过）
type CardCounter struct {
	mu        sync.Mutex
	remaining map[card.Rank]int
}

// NewCardCounter 创建记牌器，初始为整副牌
func NewCardCounter() *CardCounter {
	cc := &CardCounter{
		remaining: make(map[card.Rank]int, card.NumRanks),
	}
	cc.Reset()
	return cc
}

// Reset 恢复为整副 52 张
func (cc *CardCounter) Reset() {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	for rank := card.RankA; rank <= card.RankK; rank++ {
		cc.remaining[rank] = card.NumSuits
	}
}

// DeductCards 从计数中扣除已知的牌
func (cc *CardCounter) DeductCards(cards []card.Card) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	for _, c := range cards {
		if cc.remaining[c.Rank] > 0 {
			cc.remaining[c.Rank]--
		}
	}
}

// GetRemaining 返回各点数剩余张数的拷贝
func (cc *CardCounter) GetRemaining() map[card.Rank]int {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	out := make(map[card.Rank]int, len(cc.remaining))
	for rank, n := range cc.remaining {
		out[rank] = n
	}
	return out
}

// Total 看不到的牌总数
func (cc *CardCounter) Total() int {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	total := 0
	for _, n := range cc.remaining {
		total += n
	}
	return total
}
