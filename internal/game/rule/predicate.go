package rule

import "github.com/palemoky/big-two/internal/game/card"

// 以下校验函数都假定 cards 已按牌序排好

func sameRank(cards []card.Card) bool {
	for _, c := range cards[1:] {
		if c.Rank != cards[0].Rank {
			return false
		}
	}
	return true
}

func sameSuit(cards []card.Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// consecutive 相邻两张的优先级恰好差 1（2 是最大的牌，不与 3 相连）
func consecutive(cards []card.Card) bool {
	if len(cards) == 0 {
		return false
	}
	for i := 1; i < len(cards); i++ {
		if cards[i].Rank.Priority() != cards[i-1].Rank.Priority()+1 {
			return false
		}
	}
	return true
}

func isStraightFlush(cards []card.Card) bool {
	return consecutive(cards) && sameSuit(cards)
}

// tripleLow [a a a b b]
func tripleLow(cards []card.Card) bool {
	return cards[0].Rank == cards[1].Rank && cards[1].Rank == cards[2].Rank && cards[3].Rank == cards[4].Rank
}

// tripleHigh [a a b b b]
func tripleHigh(cards []card.Card) bool {
	return cards[0].Rank == cards[1].Rank && cards[2].Rank == cards[3].Rank && cards[3].Rank == cards[4].Rank
}

func isFullHouse(cards []card.Card) bool {
	return tripleLow(cards) || tripleHigh(cards)
}

// fourLow [a a a a b]
func fourLow(cards []card.Card) bool {
	return sameRank(cards[:4])
}

// fourHigh [a b b b b]
func fourHigh(cards []card.Card) bool {
	return sameRank(cards[1:])
}

func isQuad(cards []card.Card) bool {
	return fourLow(cards) || fourHigh(cards)
}

func lastIndex(cards []card.Card) int {
	return len(cards) - 1
}

func fullHouseTop(cards []card.Card) int {
	if tripleLow(cards) {
		return 2
	}
	return 4
}

func quadTop(cards []card.Card) int {
	if fourLow(cards) {
		return 3
	}
	return 4
}
