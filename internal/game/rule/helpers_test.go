package rule

import (
	"testing"

	"github.com/palemoky/big-two/internal/game/card"
)

// cs 把 "D3 C3 H10" 这样的描述解析为牌
func cs(t testing.TB, text string) []card.Card {
	t.Helper()
	cards, err := card.ParseList(text)
	if err != nil {
		t.Fatalf("parse %q: %v", text, err)
	}
	return cards
}

func mustHand(t testing.TB, owner int, text string) *Hand {
	t.Helper()
	h, err := Classify(owner, cs(t, text))
	if err != nil {
		t.Fatalf("classify %q: %v", text, err)
	}
	return h
}
