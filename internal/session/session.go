// Package session 客户端的牌局副本：按服务端广播的顺序驱动本地 game.Game，
// 并把本地玩家的操作编码为消息发给服务端。
package session

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/palemoky/big-two/internal/apperrors"
	"github.com/palemoky/big-two/internal/game"
	"github.com/palemoky/big-two/internal/game/card"
	"github.com/palemoky/big-two/internal/protocol"
	"github.com/palemoky/big-two/internal/types"
)

// ErrConnectionClosed 消息通道在会话结束前被关闭
var ErrConnectionClosed = errors.New("与服务器的连接已断开")

// Listener 接收会话事件，终端界面实现它。
// 所有回调都在 Run 所在的 goroutine 中按消息顺序调用。
type Listener interface {
	OnPlayerList(localID int, names [game.NumPlayers]string)
	OnJoin(seat int, name string)
	OnReady(seat int)
	OnQuit(seat int, name string, disabled bool)
	OnStart(current int)
	OnMove(result *game.MoveResult)
	OnRoundOver(standings []game.Standing)
	OnRejected(err error)
	OnChat(seat int, text string)
	OnFatal(err error)
}

// RemoteError 服务端返回给本地玩家的拒绝
type RemoteError struct {
	Kind    *apperrors.GameError // 未知错误码时为 nil
	Code    int
	Message string
	Cards   []card.Card
}

func (e *RemoteError) Error() string {
	if len(e.Cards) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Message, card.FormatCards(e.Cards))
}

func (e *RemoteError) Unwrap() error {
	if e.Kind == nil {
		return nil
	}
	return e.Kind
}

// messageHandler 处理一条服务端消息；返回的错误会结束会话
type messageHandler func(msg *protocol.Message) error

// Session 客户端会话
type Session struct {
	game     *game.Game
	sender   types.MessageSender
	listener Listener
	counter  *CardCounter
	handlers map[protocol.MessageType]messageHandler

	// AutoReady 本局结束或有人中途离开后自动重新准备
	AutoReady bool
}

// New 创建会话
func New(sender types.MessageSender, listener Listener) *Session {
	s := &Session{
		game:      game.New(),
		sender:    sender,
		listener:  listener,
		counter:   NewCardCounter(),
		AutoReady: true,
	}
	s.initHandlers()
	return s
}

func (s *Session) initHandlers() {
	s.handlers = map[protocol.MessageType]messageHandler{
		protocol.MsgPlayerList: s.handlePlayerList,
		protocol.MsgJoin:       s.handleJoin,
		protocol.MsgFull:       s.handleFull,
		protocol.MsgQuit:       s.handleQuit,
		protocol.MsgReady:      s.handleReady,
		protocol.MsgStart:      s.handleStart,
		protocol.MsgMove:       s.handleMove,
		protocol.MsgChat:       s.handleChat,
		protocol.MsgError:      s.handleError,
	}
}

// Game 本地副本，只读使用
func (s *Session) Game() *game.Game {
	return s.game
}

// Counter 记牌器
func (s *Session) Counter() *CardCounter {
	return s.counter
}

// Run 依次处理收到的消息，直到通道关闭、ctx 取消或出现致命错误。
// 致命错误会先通知 Listener.OnFatal 再返回。
func (s *Session) Run(ctx context.Context, in <-chan *protocol.Message) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-in:
			if !ok {
				s.listener.OnFatal(ErrConnectionClosed)
				return ErrConnectionClosed
			}
			if err := s.Handle(msg); err != nil {
				log.Printf("会话结束: %v", err)
				s.listener.OnFatal(err)
				return err
			}
		}
	}
}

// Handle 处理单条消息。未知类型只记录日志。
func (s *Session) Handle(msg *protocol.Message) error {
	handler, ok := s.handlers[msg.Type]
	if !ok {
		log.Printf("忽略未知消息类型: %s", msg.Type)
		return nil
	}
	return handler(msg)
}
