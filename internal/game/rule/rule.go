package rule

import (
	"fmt"
	"slices"

	"github.com/palemoky/big-two/internal/apperrors"
	"github.com/palemoky/big-two/internal/game/card"
)

// HandKind 定义牌型，数值即牌型等级（Level）
type HandKind int

const (
	Single        HandKind = iota // 单张
	Pair                          // 对子
	Triple                        // 三条
	Straight                      // 顺子
	Flush                         // 同花
	FullHouse                     // 葫芦（三带二）
	Quad                          // 铁支（四带一）
	StraightFlush                 // 同花顺
)

// kindSpec 牌型的张数、校验函数和关键牌位置
type kindSpec struct {
	name    string
	display string
	size    int
	valid   func(cards []card.Card) bool
	top     func(cards []card.Card) int
}

// kindSpecs 牌型分发表
var kindSpecs = map[HandKind]kindSpec{
	Single:        {name: "Single", display: "单张", size: 1, valid: func([]card.Card) bool { return true }, top: lastIndex},
	Pair:          {name: "Pair", display: "对子", size: 2, valid: sameRank, top: lastIndex},
	Triple:        {name: "Triple", display: "三条", size: 3, valid: sameRank, top: lastIndex},
	Straight:      {name: "Straight", display: "顺子", size: 5, valid: consecutive, top: lastIndex},
	Flush:         {name: "Flush", display: "同花", size: 5, valid: sameSuit, top: lastIndex},
	FullHouse:     {name: "FullHouse", display: "葫芦", size: 5, valid: isFullHouse, top: fullHouseTop},
	Quad:          {name: "Quad", display: "铁支", size: 5, valid: isQuad, top: quadTop},
	StraightFlush: {name: "StraightFlush", display: "同花顺", size: 5, valid: isStraightFlush, top: lastIndex},
}

// fiveCardOrder 五张牌的识别顺序，返回第一个合法的牌型
var fiveCardOrder = []HandKind{StraightFlush, Quad, FullHouse, Flush, Straight}

func (k HandKind) String() string {
	if spec, ok := kindSpecs[k]; ok {
		return spec.name
	}
	return "Invalid"
}

// DisplayName 牌型的中文名称
func (k HandKind) DisplayName() string {
	if spec, ok := kindSpecs[k]; ok {
		return spec.display
	}
	return "无效"
}

// Level 牌型等级，跨牌型比较时使用
func (k HandKind) Level() int {
	return int(k)
}

// Size 牌型要求的张数
func (k HandKind) Size() int {
	return kindSpecs[k].size
}

// Hand 一手已识别的牌。构造后不可变，Cards 是排好序的拷贝。
type Hand struct {
	Owner int
	Kind  HandKind
	Cards []card.Card
}

// Classify 按张数和固定顺序识别牌型
func Classify(owner int, cards []card.Card) (*Hand, error) {
	sorted := card.SortCards(cards)
	switch len(sorted) {
	case 1:
		return build(Single, owner, sorted)
	case 2:
		return build(Pair, owner, sorted)
	case 3:
		return build(Triple, owner, sorted)
	case 5:
		for _, kind := range fiveCardOrder {
			if kindSpecs[kind].valid(sorted) {
				return newHand(kind, owner, sorted), nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidHandShape, card.FormatCards(sorted))
}

// ClassifyAs 按指定牌型校验
func ClassifyAs(kind HandKind, owner int, cards []card.Card) (*Hand, error) {
	if _, ok := kindSpecs[kind]; !ok {
		return nil, fmt.Errorf("%w: 未知牌型 %d", apperrors.ErrInvalidHandShape, int(kind))
	}
	return build(kind, owner, card.SortCards(cards))
}

func build(kind HandKind, owner int, sorted []card.Card) (*Hand, error) {
	spec := kindSpecs[kind]
	if len(sorted) != spec.size || !spec.valid(sorted) {
		return nil, fmt.Errorf("%w: %s 不是%s", apperrors.ErrInvalidHandShape, card.FormatCards(sorted), spec.display)
	}
	return newHand(kind, owner, sorted), nil
}

func newHand(kind HandKind, owner int, sorted []card.Card) *Hand {
	return &Hand{Owner: owner, Kind: kind, Cards: sorted}
}

// Level 牌型等级
func (h *Hand) Level() int {
	return h.Kind.Level()
}

// Size 张数
func (h *Hand) Size() int {
	return len(h.Cards)
}

// TopCard 同牌型比较时使用的关键牌
func (h *Hand) TopCard() card.Card {
	return h.Cards[kindSpecs[h.Kind].top(h.Cards)]
}

// Beats 判断 h 能否压过 ref。
//
// 规则依次为：
//  1. 同一玩家的牌视为可以压过（正常流程中不会出现，见 game 包的自由出牌）
//  2. 张数不同不能压
//  3. 等级高的压等级低的
//  4. 同为同花时先比第一张牌的花色，花色相同再比关键牌
//  5. 比较关键牌
//
// ref 为 nil 表示桌面为空，任何牌型都可以出。
func (h *Hand) Beats(ref *Hand) bool {
	if ref == nil || h.Owner == ref.Owner {
		return true
	}
	if h.Size() != ref.Size() {
		return false
	}
	if h.Level() != ref.Level() {
		return h.Level() > ref.Level()
	}
	if h.Kind == Flush {
		if s, rs := h.Cards[0].Suit, ref.Cards[0].Suit; s != rs {
			return s > rs
		}
	}
	return h.TopCard().Beats(ref.TopCard())
}

// Contains 是否包含某张牌
func (h *Hand) Contains(c card.Card) bool {
	return slices.Contains(h.Cards, c)
}

func (h *Hand) String() string {
	return "{" + h.Kind.String() + "} " + card.FormatCards(h.Cards)
}
