package game

import (
	"slices"
	"testing"

	"github.com/palemoky/big-two/internal/game/card"
)

// stackDeck 构造一副牌，使 Start 发牌后指定座位拿到指定的牌，其余座位按牌序补齐。
// 发牌时第 i 张给座位 i%4。
func stackDeck(t testing.TB, hands map[int]string) *card.Deck {
	t.Helper()

	var seats [NumPlayers][]card.Card
	used := make(map[card.Card]bool)
	for seat, text := range hands {
		cards, err := card.ParseList(text)
		if err != nil {
			t.Fatalf("parse %q: %v", text, err)
		}
		if len(cards) > CardsPerPlayer {
			t.Fatalf("seat %d gets %d cards", seat, len(cards))
		}
		for _, c := range cards {
			if used[c] {
				t.Fatalf("card %s dealt twice", c)
			}
			used[c] = true
		}
		seats[seat] = cards
	}

	var rest []card.Card
	for _, c := range card.NewDeck().Cards() {
		if !used[c] {
			rest = append(rest, c)
		}
	}
	for seat := range seats {
		need := CardsPerPlayer - len(seats[seat])
		seats[seat] = append(seats[seat], rest[:need]...)
		rest = rest[need:]
	}

	cards := make([]card.Card, 0, card.DeckSize)
	for r := range CardsPerPlayer {
		for seat := range seats {
			cards = append(cards, seats[seat][r])
		}
	}
	deck, err := card.DeckFrom(cards)
	if err != nil {
		t.Fatalf("stack deck: %v", err)
	}
	return deck
}

// startGame 用叠好的牌开局
func startGame(t testing.TB, hands map[int]string) *Game {
	t.Helper()
	g := New()
	if err := g.Start(stackDeck(t, hands)); err != nil {
		t.Fatalf("start: %v", err)
	}
	return g
}

// idx 返回某些牌在座位手牌（已排序）中的下标
func idx(t testing.TB, g *Game, seat int, text string) []int {
	t.Helper()
	cards, err := card.ParseList(text)
	if err != nil {
		t.Fatalf("parse %q: %v", text, err)
	}
	hand := g.Hand(seat)
	out := make([]int, 0, len(cards))
	for _, c := range cards {
		i := slices.Index(hand, c)
		if i < 0 {
			t.Fatalf("seat %d does not hold %s", seat, c)
		}
		out = append(out, i)
	}
	return out
}

// play 执行一次必须成功的出牌
func play(t testing.TB, g *Game, seat int, text string) *MoveResult {
	t.Helper()
	var indices []int
	if text != "" {
		indices = idx(t, g, seat, text)
	}
	res, err := g.SubmitMove(seat, indices)
	if err != nil {
		t.Fatalf("seat %d play %q: %v", seat, text, err)
	}
	return res
}
