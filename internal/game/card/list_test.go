package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_AddRemove(t *testing.T) {
	t.Parallel()

	l := NewList()
	assert.True(t, l.IsEmpty())

	l.Add(Card{Spade, Rank2})
	l.Add(OpeningCard)
	l.Add(Card{Heart, Rank7})
	assert.Equal(t, 3, l.Len())
	assert.True(t, l.Contains(OpeningCard))

	c, err := l.RemoveAt(1)
	require.NoError(t, err)
	assert.Equal(t, OpeningCard, c)
	assert.False(t, l.Contains(OpeningCard))
	assert.Equal(t, 2, l.Len())

	_, err = l.RemoveAt(2)
	assert.Error(t, err)
	_, err = l.RemoveAt(-1)
	assert.Error(t, err)
}

func TestList_Sort(t *testing.T) {
	t.Parallel()

	l := NewList(
		Card{Spade, Rank2},
		Card{Heart, Rank3},
		Card{Diamond, RankA},
		OpeningCard,
	)
	l.Sort()

	assert.Equal(t, []Card{
		OpeningCard,
		{Heart, Rank3},
		{Diamond, RankA},
		{Spade, Rank2},
	}, l.Cards())
}

func TestList_Select(t *testing.T) {
	t.Parallel()

	l := NewList(OpeningCard, Card{Club, Rank3}, Card{Heart, Rank9})

	cards, err := l.Select([]int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, []Card{{Heart, Rank9}, OpeningCard}, cards)
	assert.Equal(t, 3, l.Len(), "Select 不修改列表")

	_, err = l.Select([]int{0, 0})
	assert.Error(t, err, "重复下标")

	_, err = l.Select([]int{3})
	assert.Error(t, err, "越界")
}

func TestList_Remove(t *testing.T) {
	t.Parallel()

	l := NewList(OpeningCard, Card{Club, Rank3}, Card{Heart, Rank9})
	n := l.Remove([]Card{OpeningCard, {Heart, Rank9}, {Spade, RankK}})

	assert.Equal(t, 2, n)
	assert.Equal(t, []Card{{Club, Rank3}}, l.Cards())
}

func TestList_CardsIsCopy(t *testing.T) {
	t.Parallel()

	l := NewList(OpeningCard)
	cards := l.Cards()
	cards[0] = Card{Spade, Rank2}

	assert.Equal(t, OpeningCard, l.Cards()[0])
}
