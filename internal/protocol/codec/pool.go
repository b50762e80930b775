package codec

import (
	"bytes"
	"sync"

	"github.com/palemoky/big-two/internal/protocol"
)

// 服务端读协程解码入站消息和编码出站消息时复用的对象池
var (
	messagePool = sync.Pool{
		New: func() any {
			return &protocol.Message{}
		},
	}

	bufferPool = sync.Pool{
		New: func() any {
			return new(bytes.Buffer)
		},
	}
)

// GetMessage retrieves a Message from the pool
func GetMessage() *protocol.Message {
	return messagePool.Get().(*protocol.Message)
}

// PutMessage returns a Message to the pool.
// Fields are reset so the pool does not pin payload bytes.
func PutMessage(msg *protocol.Message) {
	if msg == nil {
		return
	}
	msg.Type = ""
	msg.Payload = nil
	messagePool.Put(msg)
}

// DecodePooled decodes into a pooled Message. Callers must PutMessage it once the
// payload has been parsed.
func DecodePooled(data []byte) (*protocol.Message, error) {
	msg := GetMessage()
	if err := decodeInto(msg, data); err != nil {
		PutMessage(msg)
		return nil, err
	}
	return msg, nil
}

// GetBuffer retrieves a bytes.Buffer from the pool
func GetBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// PutBuffer returns a bytes.Buffer to the pool.
// The buffer is reset but capacity is preserved.
func PutBuffer(buf *bytes.Buffer) {
	if buf == nil {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
