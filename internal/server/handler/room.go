package handler

import (
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/palemoky/big-two/internal/apperrors"
	"github.com/palemoky/big-two/internal/game"
	"github.com/palemoky/big-two/internal/game/card"
	"github.com/palemoky/big-two/internal/protocol"
	"github.com/palemoky/big-two/internal/protocol/codec"
	"github.com/palemoky/big-two/internal/protocol/convert"
	"github.com/palemoky/big-two/internal/types"
)

// maxNameLength 昵称最大字符数
const maxNameLength = 16

// handleJoin 设置昵称并广播
func (h *Handler) handleJoin(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.JoinPayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}
	seat := client.GetSeat()
	if seat == types.NoSeat {
		h.sendError(client, apperrors.ErrNotSeated)
		return
	}

	name := normalizeName(payload.Name, seat)
	client.SetName(name)
	h.table.SetName(seat, name)
	h.game.SetName(seat, name)

	log.Printf("🙋 座位 %d 昵称: %s", seat, name)
	h.table.Broadcast(codec.MustNewMessage(protocol.MsgJoin, protocol.JoinPayload{
		PlayerID: seat,
		Name:     name,
	}))
}

// handleReady 标记准备，四人都准备好且没有进行中的牌局时开局
func (h *Handler) handleReady(client types.ClientInterface) {
	seat := client.GetSeat()
	if seat == types.NoSeat {
		h.sendError(client, apperrors.ErrNotSeated)
		return
	}
	if h.roundActive() {
		log.Printf("座位 %d 在牌局进行中准备，忽略", seat)
		return
	}

	allReady := h.table.SetReady(seat)
	h.table.Broadcast(codec.MustNewMessage(protocol.MsgReady, protocol.ReadyPayload{PlayerID: seat}))
	if allReady {
		h.startRound()
	}
}

// startRound 洗牌、开局并把牌序广播给所有玩家
func (h *Handler) startRound() {
	deck := card.NewDeck()
	h.shuffle(deck)
	infos := convert.CardsToInfos(deck.Cards())

	if err := h.game.Start(deck); err != nil {
		log.Printf("⚠️ 开局失败: %v", err)
		return
	}
	h.table.ResetReady()

	log.Printf("🃏 新的一局开始，座位 %d 先出", h.game.Current())
	h.table.Broadcast(codec.MustNewMessage(protocol.MsgStart, protocol.StartPayload{Deck: infos}))
}

func (h *Handler) roundActive() bool {
	return h.game.State() == game.StateTurnInProgress && !h.game.Disabled()
}

func normalizeName(name string, seat int) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > maxNameLength {
		name = string([]rune(name)[:maxNameLength])
	}
	if name == "" {
		name = fmt.Sprintf("玩家%d", seat+1)
	}
	return name
}
