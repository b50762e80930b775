package transport

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/palemoky/big-two/internal/protocol"
	"github.com/palemoky/big-two/internal/protocol/codec"
)

const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	handshakeTimeout = 10 * time.Second
)

// ErrClosed 连接已关闭
var ErrClosed = errors.New("连接已关闭")

// Client WebSocket 客户端。收到的消息按到达顺序写入 Receive 通道，
// 连接断开后通道关闭。
type Client struct {
	ServerURL string

	conn    *websocket.Conn
	send    chan []byte
	receive chan *protocol.Message
	done    chan struct{}

	// 回调
	OnError func(error) // 非正常断开时调用
	OnClose func()      // 读协程退出后调用

	mu     sync.RWMutex
	closed bool
	err    error
}

// NewClient 创建客户端
func NewClient(serverURL string) *Client {
	return &Client{
		ServerURL: serverURL,
		send:      make(chan []byte, 256),
		receive:   make(chan *protocol.Message, 256),
		done:      make(chan struct{}),
	}
}

// Connect 连接服务器并启动读写协程
func (c *Client) Connect(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}

	conn, _, err := dialer.DialContext(ctx, c.ServerURL, nil)
	if err != nil {
		return err
	}
	c.conn = conn

	go c.readPump()
	go c.writePump()
	return nil
}

// Receive 入站消息通道
func (c *Client) Receive() <-chan *protocol.Message {
	return c.receive
}

// SendMessage 编码并排队发送
func (c *Client) SendMessage(msg *protocol.Message) error {
	data, err := codec.Encode(msg)
	if err != nil {
		return err
	}

	// 排队时不能持有 mu，Close 需要写锁
	if c.IsClosed() {
		return ErrClosed
	}

	select {
	case c.send <- data:
		return nil
	case <-c.done:
		return ErrClosed
	}
}

// Err 连接结束的原因；收到 FULL 时为 apperrors.ErrConnectionRejected
func (c *Client) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

func (c *Client) setErr(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err == nil {
		c.err = err
	}
}

// Close 关闭连接
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.done)
	}
}

// IsClosed 是否已关闭
func (c *Client) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

func rejected(msg *protocol.Message) bool {
	return msg.Type == protocol.MsgFull
}
