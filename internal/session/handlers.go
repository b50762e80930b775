package session

import (
	"fmt"
	"log"

	"github.com/palemoky/big-two/internal/apperrors"
	"github.com/palemoky/big-two/internal/game"
	"github.com/palemoky/big-two/internal/protocol"
	"github.com/palemoky/big-two/internal/protocol/codec"
	"github.com/palemoky/big-two/internal/protocol/convert"
)

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrProtocolViolation, fmt.Sprintf(format, args...))
}

func (s *Session) handlePlayerList(msg *protocol.Message) error {
	payload, err := codec.ParsePayload[protocol.PlayerListPayload](msg)
	if err != nil {
		return violation("%v", err)
	}
	s.game.SetPlayerList(payload.LocalID, payload.Names)
	s.listener.OnPlayerList(payload.LocalID, s.game.Names())
	return nil
}

func (s *Session) handleJoin(msg *protocol.Message) error {
	payload, err := codec.ParsePayload[protocol.JoinPayload](msg)
	if err != nil {
		log.Printf("忽略无法解析的 JOIN: %v", err)
		return nil
	}
	s.game.SetName(payload.PlayerID, payload.Name)
	s.listener.OnJoin(payload.PlayerID, payload.Name)
	return nil
}

// handleFull 牌桌已满，连接即将被服务端关闭。
// 只有尚未发过牌时才是致命错误，之后收到的 FULL 只记录日志。
func (s *Session) handleFull(*protocol.Message) error {
	if state := s.game.State(); state != game.StateWaiting {
		log.Printf("忽略 %s 状态下收到的 FULL", state)
		return nil
	}
	return apperrors.ErrConnectionRejected
}

// handleQuit 清空名字；牌局进行中则暂停，需要重新准备
func (s *Session) handleQuit(msg *protocol.Message) error {
	payload, err := codec.ParsePayload[protocol.QuitPayload](msg)
	if err != nil {
		log.Printf("忽略无法解析的 QUIT: %v", err)
		return nil
	}
	seat := payload.PlayerID
	if seat < 0 || seat >= game.NumPlayers {
		log.Printf("忽略越界的 QUIT: 座位 %d", seat)
		return nil
	}

	name := s.game.Names()[seat]
	s.game.Quit(seat)
	disabled := s.game.Disabled()
	s.listener.OnQuit(seat, name, disabled)

	if disabled && s.AutoReady {
		return s.Ready()
	}
	return nil
}

func (s *Session) handleReady(msg *protocol.Message) error {
	payload, err := codec.ParsePayload[protocol.ReadyPayload](msg)
	if err != nil {
		log.Printf("忽略无法解析的 READY: %v", err)
		return nil
	}
	s.listener.OnReady(payload.PlayerID)
	return nil
}

// handleStart 用服务端给出的牌序开局
func (s *Session) handleStart(msg *protocol.Message) error {
	payload, err := codec.ParsePayload[protocol.StartPayload](msg)
	if err != nil {
		return violation("%v", err)
	}
	deck, err := convert.DeckFromInfos(payload.Deck)
	if err != nil {
		return violation("牌序无效: %v", err)
	}
	if err := s.game.Start(deck); err != nil {
		return err
	}

	s.counter.Reset()
	s.counter.DeductCards(s.game.Hand(s.game.LocalID()))
	s.listener.OnStart(s.game.Current())
	return nil
}

// handleMove 执行服务端确认过的动作。序号不连续或本地执行失败说明副本已经和服务端不一致。
func (s *Session) handleMove(msg *protocol.Message) error {
	payload, err := codec.ParsePayload[protocol.MovePayload](msg)
	if err != nil {
		return violation("%v", err)
	}
	if next := s.game.Seq() + 1; payload.Seq != next {
		return violation("期望第 %d 步, 收到第 %d 步", next, payload.Seq)
	}

	result, err := s.game.SubmitMove(payload.PlayerID, payload.Indices)
	if err != nil {
		return violation("副本与服务端不一致: %v", err)
	}
	if !result.Pass && result.Seat != s.game.LocalID() {
		s.counter.DeductCards(result.Hand.Cards)
	}
	s.listener.OnMove(result)

	if result.RoundOver {
		s.listener.OnRoundOver(s.game.Standings())
		if s.AutoReady {
			return s.Ready()
		}
	}
	return nil
}

func (s *Session) handleChat(msg *protocol.Message) error {
	payload, err := codec.ParsePayload[protocol.ChatPayload](msg)
	if err != nil {
		log.Printf("忽略无法解析的聊天消息: %v", err)
		return nil
	}
	s.listener.OnChat(payload.PlayerID, payload.Text)
	return nil
}

// handleError 服务端拒绝了本地玩家的操作，不影响牌局
func (s *Session) handleError(msg *protocol.Message) error {
	payload, err := codec.ParsePayload[protocol.ErrorPayload](msg)
	if err != nil {
		log.Printf("忽略无法解析的错误消息: %v", err)
		return nil
	}

	remote := &RemoteError{Code: payload.Code, Message: payload.Message}
	remote.Kind, _ = apperrors.FromCode(payload.Code)
	if cards, err := convert.InfosToCards(payload.Cards); err == nil {
		remote.Cards = cards
	}
	if remote.Message == "" {
		remote.Message = protocol.ErrorMessages[payload.Code]
	}
	s.listener.OnRejected(remote)
	return nil
}
