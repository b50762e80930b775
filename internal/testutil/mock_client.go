//go:build !production

package testutil

import (
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/palemoky/big-two/internal/protocol"
	"github.com/palemoky/big-two/internal/types"
)

// MockClient 实现 types.ClientInterface 的 mock
type MockClient struct {
	mock.Mock
}

func (m *MockClient) GetID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) GetName() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) SetName(name string) {
	m.Called(name)
}

func (m *MockClient) GetSeat() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockClient) SetSeat(seat int) {
	m.Called(seat)
}

func (m *MockClient) SendMessage(msg *protocol.Message) {
	m.Called(msg)
}

func (m *MockClient) Close() {
	m.Called()
}

// SimpleClient 简单的 mock 客户端，不使用 testify（用于不需要断言调用的测试）
type SimpleClient struct {
	ID   string
	Name string
	Seat int

	mu       sync.Mutex
	messages []*protocol.Message
	closed   bool
}

// NewSimpleClient 创建未入座的客户端
func NewSimpleClient(id string) *SimpleClient {
	return &SimpleClient{ID: id, Seat: types.NoSeat}
}

func (m *SimpleClient) GetID() string { return m.ID }

func (m *SimpleClient) GetName() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Name
}

func (m *SimpleClient) SetName(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Name = name
}

func (m *SimpleClient) GetSeat() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Seat
}

func (m *SimpleClient) SetSeat(seat int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Seat = seat
}

func (m *SimpleClient) SendMessage(msg *protocol.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

func (m *SimpleClient) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
}

// Closed 是否已被关闭
func (m *SimpleClient) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Messages 已收到消息的拷贝
func (m *SimpleClient) Messages() []*protocol.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*protocol.Message(nil), m.messages...)
}

// Types 已收到消息的类型序列
func (m *SimpleClient) Types() []protocol.MessageType {
	m.mu.Lock()
	defer m.mu.Unlock()
	kinds := make([]protocol.MessageType, len(m.messages))
	for i, msg := range m.messages {
		kinds[i] = msg.Type
	}
	return kinds
}

// Last 最后一条指定类型的消息，不存在时返回 nil
func (m *SimpleClient) Last(msgType protocol.MessageType) *protocol.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.messages) - 1; i >= 0; i-- {
		if m.messages[i].Type == msgType {
			return m.messages[i]
		}
	}
	return nil
}

// Reset 清空已收到的消息
func (m *SimpleClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = nil
}
