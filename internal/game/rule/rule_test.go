package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/big-two/internal/apperrors"
	"github.com/palemoky/big-two/internal/game/card"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards string
		kind  HandKind
		top   string
	}{
		{"single", "D3", Single, "D3"},
		{"pair", "S7 D7", Pair, "S7"},
		{"triple", "H9 D9 C9", Triple, "H9"},
		{"straight", "D7 C4 H5 S6 D3", Straight, "D7"},
		{"straight ending in two", "DJ CQ HK SA D2", Straight, "D2"},
		{"flush", "H3 H5 H9 HJ HK", Flush, "HK"},
		{"full house aaabb", "D3 C3 H3 D5 S5", FullHouse, "H3"},
		{"full house aabbb", "D3 S3 D5 C5 H5", FullHouse, "H5"},
		{"quad aaaab", "D3 C3 H3 S3 D7", Quad, "S3"},
		{"quad abbbb", "D3 D9 C9 H9 S9", Quad, "S9"},
		{"straight flush", "S9 S10 SJ SQ SK", StraightFlush, "SK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, err := Classify(1, cs(t, tt.cards))
			require.NoError(t, err)
			assert.Equal(t, tt.kind, h.Kind)
			assert.Equal(t, 1, h.Owner)
			assert.Equal(t, cs(t, tt.top)[0], h.TopCard())
			assert.Equal(t, tt.kind.Level(), h.Level())
		})
	}
}

func TestClassify_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards string
	}{
		{"empty", ""},
		{"mismatched pair", "D3 D4"},
		{"mismatched triple", "D3 C3 D4"},
		{"four cards", "D3 C3 H3 S3"},
		{"six cards", "D3 D4 D5 D6 D7 D8"},
		{"two does not wrap to three", "DK SA D2 C3 H4"},
		{"two pair and kicker", "D3 C3 D5 C5 D9"},
		{"junk", "D3 C5 H7 S9 DJ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, err := Classify(0, cs(t, tt.cards))
			assert.Nil(t, h)
			assert.ErrorIs(t, err, apperrors.ErrInvalidHandShape)
		})
	}
}

func TestClassify_SortsCopy(t *testing.T) {
	t.Parallel()

	input := cs(t, "S5 D5 H3 C3 D3")
	h, err := Classify(2, input)
	require.NoError(t, err)

	assert.Equal(t, cs(t, "D3 C3 H3 D5 S5"), h.Cards)
	assert.Equal(t, cs(t, "S5 D5 H3 C3 D3"), input, "input must not be reordered")
	assert.Equal(t, "{FullHouse} [♦3 ♣3 ♥3 ♦5 ♠5]", h.String())
}

// 四条带一张同时满足"含三条"，但按固定顺序应识别为铁支
func TestClassify_QuadWinsOverSubsets(t *testing.T) {
	t.Parallel()

	h := mustHand(t, 0, "D3 C3 H3 S3 D7")
	assert.Equal(t, Quad, h.Kind)
}

func TestClassifyAs(t *testing.T) {
	t.Parallel()

	h, err := ClassifyAs(Flush, 0, cs(t, "S9 S10 SJ SQ SK"))
	require.NoError(t, err)
	assert.Equal(t, Flush, h.Kind)

	_, err = ClassifyAs(Straight, 0, cs(t, "H3 H5 H9 HJ HK"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidHandShape)

	_, err = ClassifyAs(Pair, 0, cs(t, "D3 C3 H3"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidHandShape)

	_, err = ClassifyAs(HandKind(99), 0, cs(t, "D3"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidHandShape)
}

func TestBeats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate string
		reference string
		want      bool
	}{
		{"higher single", "D4", "S3", true},
		{"two is highest single", "D2", "SA", true},
		{"pair of 7 beats pair of 5", "D7 C7", "H5 S5", true},
		{"pair of 5 with lower top loses", "D5 C5", "H5 S5", false},
		{"pair of 5 with higher top wins", "H5 S5", "D5 C5", true},
		{"size mismatch", "D2 C2", "S3", false},
		{"triple by rank", "D4 C4 H4", "DK CK SK", false},
		{"flush beats straight", "H3 H5 H9 HJ HK", "DJ CQ SK SA D2", true},
		{"straight loses to flush", "D4 C5 H6 S7 D8", "H3 H5 H9 HJ HQ", false},
		{"full house beats flush", "D3 C3 H3 D4 C4", "S5 S7 S9 SJ S2", true},
		{"quad beats full house", "D4 C4 H4 S4 D3", "D2 C2 H2 SA HA", true},
		{"straight flush beats quad", "D3 D4 D5 D6 D7", "D2 C2 H2 S2 SK", true},
		{"flush higher suit wins outright", "S3 S5 S7 S9 SJ", "D4 D6 D8 D10 D2", true},
		{"flush lower suit loses outright", "D4 D6 D8 D10 D2", "S3 S5 S7 S9 SJ", false},
		{"flush same suit falls through to top card", "H4 H6 H8 H10 HQ", "H3 H5 H7 H9 HJ", true},
		{"full house by triple", "D4 C4 H4 D2 C2", "DK CK SK D3 C3", false},
		{"full house triple high arrangement", "D3 C3 DK CK SK", "D4 C4 H4 D2 C2", true},
		{"quad by four", "D5 C5 H5 S5 D3", "D4 C4 H4 S4 D2", true},
		{"straight by top", "D4 C5 H6 S7 D8", "S3 S4 D5 C6 H7", true},
		{"straight flush by top", "C4 C5 C6 C7 C8", "S3 S4 S5 S6 S7", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cand := mustHand(t, 0, tt.candidate)
			ref := mustHand(t, 1, tt.reference)
			assert.Equal(t, tt.want, cand.Beats(ref))
		})
	}
}

func TestBeats_EmptyTable(t *testing.T) {
	t.Parallel()

	assert.True(t, mustHand(t, 0, "D3").Beats(nil))
}

// 同一玩家的牌总是"压过"自己：正常流程不会走到这里（自由出牌由 game 包处理），
// 这里只记录该退化分支的存在。
func TestBeats_SameOwnerDegenerate(t *testing.T) {
	t.Parallel()

	low := mustHand(t, 2, "D3 C3")
	high := mustHand(t, 2, "D2 S2")
	assert.True(t, low.Beats(high))
	assert.True(t, high.Beats(low))
	assert.True(t, mustHand(t, 2, "D3").Beats(high), "size check is skipped for the same owner")
}

func TestBeats_Asymmetric(t *testing.T) {
	t.Parallel()

	specs := []string{
		"D3", "S3", "D2", "HK",
		"D5 C5", "H5 S5", "D7 C7",
		"D4 C4 H4", "DK CK SK",
		"D4 C5 H6 S7 D8", "S3 S4 D5 C6 H7", "DJ CQ HK SA D2",
		"H3 H5 H9 HJ HK", "D4 D6 D8 D10 D2", "S3 S5 S7 S9 SJ",
		"D3 C3 H3 D4 C4", "D3 C3 DK CK SK",
		"D4 C4 H4 S4 D3", "D5 C5 H5 S5 D3",
		"C4 C5 C6 C7 C8", "S3 S4 S5 S6 S7",
	}

	for _, a := range specs {
		for _, b := range specs {
			ha, hb := mustHand(t, 0, a), mustHand(t, 1, b)
			if ha.Beats(hb) {
				assert.False(t, hb.Beats(ha), "%s beats %s and vice versa", ha, hb)
			}
		}
	}
}

// 同牌型同张数的两手不同牌不会相等：总有一方压过另一方
func TestBeats_TotalWithinKind(t *testing.T) {
	t.Parallel()

	pairs := []string{"D5 C5", "D5 H5", "H5 S5", "D7 C7", "D2 S2"}
	for i, a := range pairs {
		for j, b := range pairs {
			if i == j {
				continue
			}
			ha, hb := mustHand(t, 0, a), mustHand(t, 1, b)
			assert.True(t, ha.Beats(hb) != hb.Beats(ha), "%s vs %s", ha, hb)
		}
	}
}

func TestHandKind_Names(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind    HandKind
		name    string
		display string
		level   int
		size    int
	}{
		{Single, "Single", "单张", 0, 1},
		{Pair, "Pair", "对子", 1, 2},
		{Triple, "Triple", "三条", 2, 3},
		{Straight, "Straight", "顺子", 3, 5},
		{Flush, "Flush", "同花", 4, 5},
		{FullHouse, "FullHouse", "葫芦", 5, 5},
		{Quad, "Quad", "铁支", 6, 5},
		{StraightFlush, "StraightFlush", "同花顺", 7, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.name, tt.kind.String())
			assert.Equal(t, tt.display, tt.kind.DisplayName())
			assert.Equal(t, tt.level, tt.kind.Level())
			assert.Equal(t, tt.size, tt.kind.Size())
		})
	}

	assert.Equal(t, "Invalid", HandKind(99).String())
	assert.Equal(t, "无效", HandKind(-1).DisplayName())
}

func TestHand_Contains(t *testing.T) {
	t.Parallel()

	h := mustHand(t, 0, "D3 C3")
	assert.True(t, h.Contains(card.OpeningCard))
	assert.False(t, h.Contains(card.Card{Suit: card.Spade, Rank: card.Rank3}))
}
