package handler

import (
	"context"
	"log"
	"time"

	"github.com/palemoky/big-two/internal/game"
	"github.com/palemoky/big-two/internal/game/card"
	"github.com/palemoky/big-two/internal/protocol"
	"github.com/palemoky/big-two/internal/protocol/codec"
	"github.com/palemoky/big-two/internal/server/table"
	"github.com/palemoky/big-two/internal/types"
)

// storeTimeout 座位存储操作的超时
const storeTimeout = 3 * time.Second

// HandlerDeps 处理器依赖
type HandlerDeps struct {
	Server types.ServerInterface
	Table  *table.Table
	Game   *game.Game
	// Shuffle 开局洗牌，为空时使用 Deck.Shuffle
	Shuffle func(*card.Deck)
}

// Handler 消息处理器。所有方法都在服务器的单一消费协程中调用。
type Handler struct {
	server   types.ServerInterface
	table    *table.Table
	game     *game.Game
	shuffle  func(*card.Deck)
	handlers map[protocol.MessageType]handlerFunc
}

// handlerFunc 统一的处理器函数签名
type handlerFunc func(client types.ClientInterface, msg *protocol.Message)

// NewHandler 创建处理器
func NewHandler(deps HandlerDeps) *Handler {
	h := &Handler{
		server:  deps.Server,
		table:   deps.Table,
		game:    deps.Game,
		shuffle: deps.Shuffle,
	}
	if h.game == nil {
		h.game = game.New()
	}
	if h.shuffle == nil {
		h.shuffle = (*card.Deck).Shuffle
	}
	h.initHandlers()
	return h
}

// Game 服务端的权威牌局
func (h *Handler) Game() *game.Game {
	return h.game
}

// initHandlers 初始化消息处理器映射
func (h *Handler) initHandlers() {
	h.handlers = map[protocol.MessageType]handlerFunc{
		protocol.MsgJoin:  h.handleJoin,
		protocol.MsgReady: func(c types.ClientInterface, _ *protocol.Message) { h.handleReady(c) },
		protocol.MsgMove:  h.handleMove,
		protocol.MsgChat:  h.handleChat,
		protocol.MsgQuit:  func(c types.ClientInterface, _ *protocol.Message) { h.handleQuit(c) },
	}
}

// Handle 处理消息
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	if handler, ok := h.handlers[msg.Type]; ok {
		handler(client, msg)
		return
	}

	log.Printf("⚠️  未知消息类型: '%s' (来自玩家: %s, ID: %s)", msg.Type, client.GetName(), client.GetID())
	log.Printf("    消息详情: Payload长度=%d bytes", len(msg.Payload))
	client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
}

func storeContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), storeTimeout)
}
