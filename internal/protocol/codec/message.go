package codec

import (
	"bytes"
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/palemoky/big-two/internal/protocol"
)

// ErrEmptyType 消息缺少类型字段
var ErrEmptyType = errors.New("message type is empty")

// NewMessage 创建一个新消息，payload 为 nil 时负载为空
func NewMessage(msgType protocol.MessageType, payload any) (*protocol.Message, error) {
	var data []byte
	if payload != nil {
		var err error
		data, err = EncodePayload(payload)
		if err != nil {
			return nil, err
		}
	}
	return &protocol.Message{
		Type:    msgType,
		Payload: data,
	}, nil
}

// MustNewMessage 创建消息，失败时 panic
func MustNewMessage(msgType protocol.MessageType, payload any) *protocol.Message {
	msg, err := NewMessage(msgType, payload)
	if err != nil {
		panic(err)
	}
	return msg
}

// ParsePayload 解析消息的 Payload 到指定类型
func ParsePayload[T any](msg *protocol.Message) (*T, error) {
	var payload T
	if err := DecodePayload(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("解析 %s 负载失败: %w", msg.Type, err)
	}
	return &payload, nil
}

// Encode 将消息编码为线格式字节（字段 1 为类型，字段 2 为负载）
func Encode(msg *protocol.Message) ([]byte, error) {
	if msg.Type == "" {
		return nil, ErrEmptyType
	}
	buf := GetBuffer()
	defer PutBuffer(buf)

	b := appendString(buf.AvailableBuffer(), 1, string(msg.Type))
	if len(msg.Payload) > 0 {
		b = appendBytes(b, 2, msg.Payload)
	}
	buf.Write(b)
	return bytes.Clone(buf.Bytes()), nil
}

// Decode 从线格式字节解码消息。未知类型不会报错，由调用方决定如何处理。
func Decode(data []byte) (*protocol.Message, error) {
	msg := &protocol.Message{}
	if err := decodeInto(msg, data); err != nil {
		return nil, err
	}
	return msg, nil
}

func decodeInto(msg *protocol.Message, data []byte) error {
	err := walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			s, n, err := consumeString(typ, b)
			msg.Type = protocol.MessageType(s)
			return n, err
		case 2:
			v, n, err := consumeBytes(typ, b)
			msg.Payload = append([]byte(nil), v...)
			return n, err
		}
		return 0, nil
	})
	if err != nil {
		return err
	}
	if msg.Type == "" {
		return ErrEmptyType
	}
	return nil
}

// NewErrorMessage 创建错误消息
func NewErrorMessage(code int) *protocol.Message {
	return MustNewMessage(protocol.MsgError, protocol.ErrorPayload{
		Code:    code,
		Message: protocol.ErrorMessages[code],
	})
}

// NewErrorMessageWithText 创建带自定义文本和被拒绝牌的错误消息
func NewErrorMessageWithText(code int, text string, cards ...protocol.CardInfo) *protocol.Message {
	return MustNewMessage(protocol.MsgError, protocol.ErrorPayload{
		Code:    code,
		Message: text,
		Cards:   cards,
	})
}
