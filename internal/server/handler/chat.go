package handler

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/palemoky/big-two/internal/apperrors"
	"github.com/palemoky/big-two/internal/protocol"
	"github.com/palemoky/big-two/internal/protocol/codec"
	"github.com/palemoky/big-two/internal/types"
)

// maxChatLength 单条聊天最大字符数
const maxChatLength = 200

// handleChat 聊天消息加上发送者昵称后广播
func (h *Handler) handleChat(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.ChatPayload](msg)
	if err != nil {
		return
	}
	seat := client.GetSeat()
	if seat == types.NoSeat {
		h.sendError(client, apperrors.ErrNotSeated)
		return
	}

	text := strings.TrimSpace(payload.Text)
	if text == "" {
		return
	}
	if utf8.RuneCountInString(text) > maxChatLength {
		text = string([]rune(text)[:maxChatLength])
	}

	name := client.GetName()
	if name == "" {
		name = fmt.Sprintf("座位%d", seat+1)
	}

	h.table.Broadcast(codec.MustNewMessage(protocol.MsgChat, protocol.ChatPayload{
		PlayerID: seat,
		Text:     name + ": " + text,
	}))
}
