package game

import (
	"slices"

	"github.com/palemoky/big-two/internal/apperrors"
	"github.com/palemoky/big-two/internal/game/card"
	"github.com/palemoky/big-two/internal/game/rule"
)

// MoveResult 一次生效的动作
type MoveResult struct {
	Seat      int
	Pass      bool
	Hand      *rule.Hand // 不出时为 nil
	CardsLeft int
	Next      int // 下一个出牌的座位；本局结束时无意义
	Seq       int
	RoundOver bool
}

// SubmitMove 校验并执行一次出牌，indices 为空表示不出。
// 被拒绝时返回 *MoveError，状态不变，也不轮转。
func (g *Game) SubmitMove(seat int, indices []int) (*MoveResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	hand, cards, err := g.check(seat, indices)
	if err != nil {
		return nil, err
	}

	player := g.players[seat]
	result := &MoveResult{Seat: seat, Pass: hand == nil, Hand: hand}
	if hand != nil {
		player.Play(cards)
		g.table = append(g.table, hand)
	}
	g.seq++
	result.Seq = g.seq
	result.CardsLeft = player.CardsLeft()

	if player.CardsLeft() == 0 {
		g.state = StateRoundOver
		result.RoundOver = true
	} else {
		g.current = (g.current + 1) % NumPlayers
	}
	result.Next = g.current
	return result, nil
}

// Validate 只做校验不修改状态，客户端在发送前用它预检
func (g *Game) Validate(seat int, indices []int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, _, err := g.check(seat, indices)
	return err
}

// check 依次校验牌桌状态、轮次、下标、首轮方块 3、牌型和大小。
// 不出时返回的 hand 为 nil。调用方需持有 mu。
func (g *Game) check(seat int, indices []int) (*rule.Hand, []card.Card, error) {
	if g.disabled {
		return nil, nil, reject(apperrors.ErrTableDisabled, seat, nil, "等待所有玩家重新准备")
	}
	if g.state != StateTurnInProgress {
		return nil, nil, reject(apperrors.ErrRoundNotActive, seat, nil, "当前状态为 %s", g.state)
	}
	if !validSeat(seat) {
		return nil, nil, reject(apperrors.ErrProtocolViolation, seat, nil, "座位号越界")
	}
	if seat != g.current {
		return nil, nil, reject(apperrors.ErrOutOfTurn, seat, nil, "当前轮到座位 %d", g.current)
	}

	if len(indices) == 0 {
		if g.freeLead() {
			return nil, nil, reject(apperrors.ErrIllegalMove, seat, nil, "轮到您自由出牌，不能不出")
		}
		return nil, nil, nil
	}

	player := g.players[seat]
	for i, idx := range indices {
		if idx < 0 {
			return nil, nil, reject(apperrors.ErrProtocolViolation, seat, nil, "非法下标 %d", idx)
		}
		for _, prev := range indices[:i] {
			if prev == idx {
				return nil, nil, reject(apperrors.ErrProtocolViolation, seat, nil, "重复的下标 %d", idx)
			}
		}
	}
	cards, err := player.Select(indices)
	if err != nil {
		return nil, nil, reject(apperrors.ErrStaleReference, seat, nil, "%v", err)
	}
	cards = card.SortCards(cards)

	if len(g.table) == 0 && !slices.Contains(cards, card.OpeningCard) {
		return nil, cards, reject(apperrors.ErrIllegalMove, seat, cards, "首手牌必须包含 %s", card.OpeningCard)
	}

	hand, err := rule.Classify(seat, cards)
	if err != nil {
		return nil, cards, reject(apperrors.ErrInvalidHandShape, seat, cards, "无法组成任何牌型")
	}

	if !g.freeLead() {
		last := g.lastHand()
		if !hand.Beats(last) {
			return nil, cards, reject(apperrors.ErrIllegalMove, seat, cards, "%s 大不过 %s", hand, last)
		}
	}
	return hand, cards, nil
}

// Hint 为座位 seat 找出能出的最小组合的下标，没有可出的牌时返回 nil
func (g *Game) Hint(seat int) []int {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateTurnInProgress || !validSeat(seat) {
		return nil
	}
	ref := g.lastHand()
	if ref != nil && ref.Owner == seat {
		ref = nil
	}
	var must *card.Card
	if len(g.table) == 0 {
		opening := card.OpeningCard
		must = &opening
	}
	return rule.FindSmallestBeating(seat, g.players[seat].Hand(), ref, must)
}
