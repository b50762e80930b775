package session

import (
	"strings"

	"github.com/palemoky/big-two/internal/apperrors"
	"github.com/palemoky/big-two/internal/protocol"
	"github.com/palemoky/big-two/internal/protocol/codec"
	"github.com/palemoky/big-two/internal/types"
)

// Join 设置昵称
func (s *Session) Join(name string) error {
	return s.send(protocol.MsgJoin, protocol.JoinPayload{PlayerID: types.NoSeat, Name: name})
}

// Ready 准备开始下一局
func (s *Session) Ready() error {
	return s.send(protocol.MsgReady, protocol.ReadyPayload{PlayerID: types.NoSeat})
}

// Play 出牌，indices 指向已排序的本地手牌。
// 先用本地副本校验，不合法的出牌不会发出，返回 *game.MoveError。
func (s *Session) Play(indices []int) error {
	seat := s.game.LocalID()
	if seat == types.NoSeat {
		return apperrors.ErrNotSeated
	}
	if err := s.game.Validate(seat, indices); err != nil {
		return err
	}
	return s.send(protocol.MsgMove, protocol.MovePayload{
		PlayerID: types.NoSeat,
		Indices:  indices,
		Seq:      s.game.Seq() + 1,
	})
}

// Pass 不出
func (s *Session) Pass() error {
	return s.Play(nil)
}

// Chat 发送聊天消息，空白消息直接忽略
func (s *Session) Chat(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return s.send(protocol.MsgChat, protocol.ChatPayload{PlayerID: types.NoSeat, Text: text})
}

// Hint 提示能出的最小组合，没有时返回 nil
func (s *Session) Hint() []int {
	seat := s.game.LocalID()
	if seat == types.NoSeat {
		return nil
	}
	return s.game.Hint(seat)
}

func (s *Session) send(msgType protocol.MessageType, payload any) error {
	msg, err := codec.NewMessage(msgType, payload)
	if err != nil {
		return err
	}
	return s.sender.SendMessage(msg)
}
