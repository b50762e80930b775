package handler

import (
	"errors"
	"log"

	"github.com/palemoky/big-two/internal/apperrors"
	"github.com/palemoky/big-two/internal/protocol"
	"github.com/palemoky/big-two/internal/protocol/codec"
	"github.com/palemoky/big-two/internal/types"
)

// Connect 新连接：分配座位并下发玩家列表；牌桌已满时发送 FULL 并关闭连接
func (h *Handler) Connect(client types.ClientInterface) {
	h.server.RegisterClient(client.GetID(), client)

	ctx, cancel := storeContext()
	defer cancel()

	seat, err := h.table.Join(ctx, client)
	if err != nil {
		if errors.Is(err, apperrors.ErrTableFull) {
			log.Printf("🚫 牌桌已满，拒绝连接 %s", client.GetID())
			client.SendMessage(codec.MustNewMessage(protocol.MsgFull, nil))
		} else {
			log.Printf("⚠️ 连接 %s 入座失败: %v", client.GetID(), err)
			client.SendMessage(codec.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
		}
		client.Close()
		return
	}

	client.SendMessage(codec.MustNewMessage(protocol.MsgPlayerList, protocol.PlayerListPayload{
		LocalID: seat,
		Names:   h.table.Names(),
	}))
}

// Disconnect 连接断开（读协程退出）
func (h *Handler) Disconnect(client types.ClientInterface) {
	h.leave(client)
	h.server.UnregisterClient(client.GetID())
}

// handleQuit 玩家主动离开
func (h *Handler) handleQuit(client types.ClientInterface) {
	h.leave(client)
	client.Close()
}

// leave 释放座位，通知其他玩家；牌局进行中时牌桌暂停
func (h *Handler) leave(client types.ClientInterface) {
	ctx, cancel := storeContext()
	defer cancel()

	seat := h.table.Leave(ctx, client)
	if seat == types.NoSeat {
		return
	}
	h.game.Quit(seat)
	if h.game.Disabled() {
		log.Printf("⏸️ 座位 %d 离开，牌局暂停", seat)
	}
	h.table.Broadcast(codec.MustNewMessage(protocol.MsgQuit, protocol.QuitPayload{PlayerID: seat}))
}
