package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/palemoky/big-two/internal/config"
	"github.com/palemoky/big-two/internal/game"
	"github.com/palemoky/big-two/internal/logger"
	"github.com/palemoky/big-two/internal/protocol"
	"github.com/palemoky/big-two/internal/protocol/codec"
	"github.com/palemoky/big-two/internal/server/handler"
	"github.com/palemoky/big-two/internal/server/storage"
	"github.com/palemoky/big-two/internal/server/table"
)

// inboxSize 消费协程的队列长度
const inboxSize = 256

type eventKind int

const (
	eventConnect eventKind = iota
	eventMessage
	eventDisconnect
)

// event 交给消费协程处理的一件事
type event struct {
	kind   eventKind
	client *Client
	msg    *protocol.Message
}

// Server WebSocket 服务器。所有连接的消息都汇入同一个 inbox，
// 由 Run 在单个协程中按到达顺序交给 handler。
type Server struct {
	config  *config.Config
	redis   *redis.Client // 未配置 Redis 时为 nil
	store   storage.SeatStore
	table   *table.Table
	handler *handler.Handler

	clients   map[string]*Client
	clientsMu sync.RWMutex

	inbox chan event
	done  chan struct{}
	once  sync.Once

	upgrader       websocket.Upgrader
	originChecker  *OriginChecker
	messageLimiter *MessageRateLimiter
	semaphore      chan struct{} // 信号量控制并发连接数

	httpServer *http.Server
	httpMu     sync.Mutex
}

// NewServer 创建服务器实例；配置了 Redis 地址时座位记录保存在 Redis 中
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg.Redis.Addr == "" {
		log.Println("💾 未配置 Redis，座位记录保存在内存中")
		return NewServerWithStore(cfg, storage.NewMemorySeatStore(game.NumPlayers), nil)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis 连接失败: %w", err)
	}

	store := storage.NewRedisSeatStore(rdb, game.NumPlayers)
	store.SetExpiration(cfg.Table.SeatTTLDuration())
	return NewServerWithStore(cfg, store, rdb)
}

// NewServerWithStore 使用指定的座位存储创建服务器，rdb 可为 nil
func NewServerWithStore(cfg *config.Config, store storage.SeatStore, rdb *redis.Client) (*Server, error) {
	s := &Server{
		config:         cfg,
		redis:          rdb,
		store:          store,
		table:          table.New(cfg.Table.ID, store),
		clients:        make(map[string]*Client),
		inbox:          make(chan event, inboxSize),
		done:           make(chan struct{}),
		originChecker:  NewOriginChecker(cfg.Security.AllowedOrigins),
		messageLimiter: NewMessageRateLimiter(cfg.Security.MessageLimit.MaxPerSecond),
		semaphore:      make(chan struct{}, cfg.Server.MaxConnections),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.originChecker.Check,
	}

	// 清理上次异常退出残留的座位
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.table.Reset(ctx); err != nil {
		return nil, fmt.Errorf("清理座位记录失败: %w", err)
	}

	s.handler = handler.NewHandler(handler.HandlerDeps{
		Server: s,
		Table:  s.table,
		Game:   game.New(),
	})

	log.Printf("🔒 安全配置: 消息限制=%d/s, 最大连接数=%d, 牌桌=%s",
		cfg.Security.MessageLimit.MaxPerSecond, cfg.Server.MaxConnections, cfg.Table.ID)
	return s, nil
}

// Run 消费 inbox，直到 ctx 结束或服务器关闭
func (s *Server) Run(ctx context.Context) {
	for {
		select {
		case ev := <-s.inbox:
			s.dispatch(ev)
		case <-ctx.Done():
			return
		case <-s.done:
			return
		}
	}
}

func (s *Server) dispatch(ev event) {
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
		}
	}()

	switch ev.kind {
	case eventConnect:
		s.handler.Connect(ev.client)
	case eventMessage:
		// handler 同步解析负载，返回后消息即可回收
		s.handler.Handle(ev.client, ev.msg)
		codec.PutMessage(ev.msg)
	case eventDisconnect:
		s.handler.Disconnect(ev.client)
	}
}

// enqueue 投递事件，服务器已关闭时返回 false
func (s *Server) enqueue(ev event) bool {
	select {
	case s.inbox <- ev:
		return true
	case <-s.done:
		return false
	}
}

// Start 启动服务器，阻塞直到 HTTP 服务退出
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	go s.Run(ctx)
	go s.monitorStats(ctx)

	log.Printf("🚀 服务器启动在 ws://%s/ws (CPU核心数: %d)", addr, runtime.NumCPU())
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	s.httpMu.Lock()
	s.httpServer = srv
	s.httpMu.Unlock()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
