package card

import (
	"fmt"
	"strings"
)

// Suit 定义花色，数值即大小顺序：方块 < 梅花 < 红心 < 黑桃
type Suit int

// Rank 定义原始点数（A=0, 2=1, 3=2 ... K=12）
type Rank int

const (
	Diamond Suit = iota // 方块
	Club                // 梅花
	Heart               // 红心
	Spade               // 黑桃
)

// NumSuits 花色数量
const NumSuits = 4

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Diamond: "♦",
	Club:    "♣",
	Heart:   "♥",
	Spade:   "♠",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return "?"
}

// IsRed 方块和红心为红色
func (s Suit) IsRed() bool {
	return s == Diamond || s == Heart
}

const (
	RankA Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
)

// NumRanks 点数数量
const NumRanks = 13

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	RankA:  "A",
	Rank2:  "2",
	Rank3:  "3",
	Rank4:  "4",
	Rank5:  "5",
	Rank6:  "6",
	Rank7:  "7",
	Rank8:  "8",
	Rank9:  "9",
	Rank10: "10",
	RankJ:  "J",
	RankQ:  "Q",
	RankK:  "K",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return "?"
}

// Priority 按锄大地规则重新解释点数：3 最小，2 最大
func (r Rank) Priority() int {
	return (int(r) + 11) % NumRanks
}

// Card 定义一张牌，以 (花色, 点数) 作为身份，按值比较
type Card struct {
	Suit Suit
	Rank Rank
}

// OpeningCard 方块 3，持有者先出，且首手牌必须包含它
var OpeningCard = Card{Suit: Diamond, Rank: Rank3}

// New 创建一张牌，越界时返回错误
func New(suit Suit, rank Rank) (Card, error) {
	c := Card{Suit: suit, Rank: rank}
	if !c.Valid() {
		return Card{}, fmt.Errorf("无效的牌: suit=%d rank=%d", suit, rank)
	}
	return c, nil
}

// Valid 检查花色与点数是否在合法范围内
func (c Card) Valid() bool {
	return c.Suit >= Diamond && c.Suit <= Spade && c.Rank >= RankA && c.Rank <= RankK
}

func (c Card) String() string {
	return c.Suit.String() + c.Rank.String()
}

// Compare 按游戏规则比较两张牌，先比点数优先级，再比花色。
// 返回 -1、0、1。
func Compare(a, b Card) int {
	pa, pb := a.Rank.Priority(), b.Rank.Priority()
	switch {
	case pa > pb:
		return 1
	case pa < pb:
		return -1
	case a.Suit > b.Suit:
		return 1
	case a.Suit < b.Suit:
		return -1
	default:
		return 0
	}
}

// Beats 当前牌是否严格大于 other
func (c Card) Beats(other Card) bool {
	return Compare(c, other) > 0
}

// FormatCards 把一组牌格式化为 [♦3 ♣3 ♥3]
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
