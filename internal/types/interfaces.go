package types

import (
	"github.com/palemoky/big-two/internal/protocol"
)

// NoSeat 尚未入座
const NoSeat = -1

// ServerInterface 定义服务器接口（用于打破循环依赖）
type ServerInterface interface {
	GetOnlineCount() int
	GetClientByID(id string) ClientInterface
	RegisterClient(id string, client ClientInterface)
	UnregisterClient(id string)
}

// ClientInterface 定义服务端持有的一个连接
type ClientInterface interface {
	GetID() string
	GetName() string
	SetName(name string)
	GetSeat() int
	SetSeat(seat int)
	SendMessage(msg *protocol.Message)
	Close()
}

// MessageSender 客户端侧的出站通道（WebSocket 连接）
type MessageSender interface {
	SendMessage(msg *protocol.Message) error
}
