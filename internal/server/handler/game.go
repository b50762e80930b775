package handler

import (
	"errors"
	"fmt"
	"log"

	"github.com/palemoky/big-two/internal/apperrors"
	"github.com/palemoky/big-two/internal/game"
	"github.com/palemoky/big-two/internal/protocol"
	"github.com/palemoky/big-two/internal/protocol/codec"
	"github.com/palemoky/big-two/internal/protocol/convert"
	"github.com/palemoky/big-two/internal/types"
)

// handleMove 校验并执行出牌；拒绝只发给提交方，生效的动作带上序号广播
func (h *Handler) handleMove(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.MovePayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}
	seat := client.GetSeat()
	if seat == types.NoSeat {
		h.sendError(client, apperrors.ErrNotSeated)
		return
	}

	// 序号为 0 表示客户端不关心；否则必须是下一步
	if next := h.game.Seq() + 1; payload.Seq > 0 && payload.Seq != next {
		h.sendError(client, fmt.Errorf("%w: 期望第 %d 步, 收到第 %d 步",
			apperrors.ErrStaleReference, next, payload.Seq))
		return
	}

	result, err := h.game.SubmitMove(seat, payload.Indices)
	if err != nil {
		log.Printf("🚫 拒绝出牌: %v", err)
		h.sendError(client, err)
		return
	}

	h.table.Broadcast(codec.MustNewMessage(protocol.MsgMove, protocol.MovePayload{
		PlayerID: seat,
		Indices:  payload.Indices,
		Seq:      result.Seq,
	}))

	if result.RoundOver {
		h.logStandings()
	}
}

func (h *Handler) logStandings() {
	for _, s := range h.game.Standings() {
		if s.Winner() {
			log.Printf("🏆 %s (座位 %d) 获胜", s.Name, s.Seat)
			continue
		}
		log.Printf("   第 %d 名 %s (座位 %d) 剩余 %d 张", s.Place, s.Name, s.Seat, s.CardsLeft)
	}
}

// sendError 把错误转换为 error 消息发给客户端
func (h *Handler) sendError(client types.ClientInterface, err error) {
	var moveErr *game.MoveError
	if errors.As(err, &moveErr) {
		client.SendMessage(codec.NewErrorMessageWithText(
			apperrors.Code(err), err.Error(), convert.CardsToInfos(moveErr.Cards)...))
		return
	}

	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		client.SendMessage(codec.NewErrorMessageWithText(gameErr.Code, err.Error()))
		return
	}
	client.SendMessage(codec.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}
