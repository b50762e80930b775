package card

import (
	"fmt"
	"strings"
)

var suitLetters = map[string]Suit{
	"D": Diamond, "♦": Diamond,
	"C": Club, "♣": Club,
	"H": Heart, "♥": Heart,
	"S": Spade, "♠": Spade,
}

// Parse 解析 "D3"、"♠10"、"hq" 这样的牌面
func Parse(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for prefix, suit := range suitLetters {
		rest, ok := strings.CutPrefix(s, prefix)
		if !ok {
			continue
		}
		for rank, name := range rankNames {
			if rest == name {
				return Card{Suit: suit, Rank: rank}, nil
			}
		}
		return Card{}, fmt.Errorf("无法识别的点数: %q", s)
	}
	return Card{}, fmt.Errorf("无法识别的花色: %q", s)
}

// ParseList 解析以空白分隔的多张牌
func ParseList(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := Parse(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
