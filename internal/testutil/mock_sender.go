//go:build !production

package testutil

import (
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/palemoky/big-two/internal/protocol"
)

// MockSender 实现 types.MessageSender 的 mock
type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendMessage(msg *protocol.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

// RecordingSender 记录所有出站消息，可注入发送错误
type RecordingSender struct {
	Err error

	mu   sync.Mutex
	sent []*protocol.Message
}

func (r *RecordingSender) SendMessage(msg *protocol.Message) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, msg)
	return nil
}

// Sent 已发送消息的拷贝
func (r *RecordingSender) Sent() []*protocol.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*protocol.Message(nil), r.sent...)
}

// Last 最后一条发送的消息
func (r *RecordingSender) Last() *protocol.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return nil
	}
	return r.sent[len(r.sent)-1]
}
