package game

import (
	"fmt"

	"github.com/palemoky/big-two/internal/apperrors"
	"github.com/palemoky/big-two/internal/game/card"
)

// MoveError 出牌被拒绝。Kind 是 apperrors 中的哨兵错误，可用 errors.Is 判断。
type MoveError struct {
	Kind   *apperrors.GameError
	Seat   int
	Cards  []card.Card
	Reason string
}

func (e *MoveError) Error() string {
	if len(e.Cards) == 0 {
		return fmt.Sprintf("座位 %d: %s: %s", e.Seat, e.Kind.Message, e.Reason)
	}
	return fmt.Sprintf("座位 %d 出 %s: %s: %s", e.Seat, card.FormatCards(e.Cards), e.Kind.Message, e.Reason)
}

func (e *MoveError) Unwrap() error {
	return e.Kind
}

func reject(kind *apperrors.GameError, seat int, cards []card.Card, format string, args ...any) *MoveError {
	return &MoveError{
		Kind:   kind,
		Seat:   seat,
		Cards:  cards,
		Reason: fmt.Sprintf(format, args...),
	}
}
