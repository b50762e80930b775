package card

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	t.Parallel()

	deck := NewDeck()
	require.Equal(t, DeckSize, deck.Len())
	assert.NoError(t, ValidateFullDeck(deck.Cards()))

	cards := deck.Cards()
	assert.Equal(t, OpeningCard, cards[0], "每种花色从 3 开始")
	assert.Equal(t, Card{Diamond, Rank2}, cards[12], "每种花色以 2 结束")
	assert.Equal(t, Card{Spade, Rank2}, cards[51])
}

func TestDeck_InitializeResets(t *testing.T) {
	t.Parallel()

	deck := NewDeck()
	_, err := deck.RemoveCard(0)
	require.NoError(t, err)
	assert.Equal(t, DeckSize-1, deck.Len())

	deck.Initialize()
	assert.Equal(t, DeckSize, deck.Len())
}

func TestDeck_RemoveCardOutOfRange(t *testing.T) {
	t.Parallel()

	deck := NewDeck()
	_, err := deck.RemoveCard(DeckSize)
	assert.Error(t, err)
	assert.Equal(t, DeckSize, deck.Len())
}

func TestDeck_ShuffleKeepsCards(t *testing.T) {
	t.Parallel()

	deck := NewDeck()
	deck.ShuffleWith(rand.New(rand.NewPCG(1, 2)))

	assert.NoError(t, ValidateFullDeck(deck.Cards()))
	assert.NotEqual(t, NewDeck().Cards(), deck.Cards())
}

func TestValidateFullDeck(t *testing.T) {
	t.Parallel()

	cards := NewDeck().Cards()
	assert.NoError(t, ValidateFullDeck(cards))

	assert.Error(t, ValidateFullDeck(cards[:51]), "缺牌")

	dup := append([]Card(nil), cards...)
	dup[1] = dup[0]
	assert.Error(t, ValidateFullDeck(dup), "重复")

	_, err := DeckFrom(dup)
	assert.Error(t, err)
}
