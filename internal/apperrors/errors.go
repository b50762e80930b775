package apperrors

import (
	"errors"

	"github.com/palemoky/big-two/internal/protocol"
)

// GameError 游戏错误，服务端和客户端共享
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrInvalidHandShape  = &GameError{Code: protocol.ErrCodeInvalidHand, Message: "无效的牌型"}
	ErrIllegalMove       = &GameError{Code: protocol.ErrCodeIllegalMove, Message: "不合法的出牌"}
	ErrOutOfTurn         = &GameError{Code: protocol.ErrCodeOutOfTurn, Message: "还没轮到您"}
	ErrStaleReference    = &GameError{Code: protocol.ErrCodeStaleReference, Message: "所选的牌不在手中"}
	ErrProtocolViolation = &GameError{Code: protocol.ErrCodeInvalidMsg, Message: "协议违规"}
	ErrRoundNotActive    = &GameError{Code: protocol.ErrCodeRoundNotActive, Message: "本局尚未开始"}
	ErrTableDisabled     = &GameError{Code: protocol.ErrCodeTableDisabled, Message: "有玩家离开，牌局已暂停"}
	ErrTableFull         = &GameError{Code: protocol.ErrCodeTableFull, Message: "牌桌已满"}
	ErrNotSeated         = &GameError{Code: protocol.ErrCodeNotSeated, Message: "您不在牌桌上"}
)

// ConnectionRejectedError 服务端拒绝连接（收到 FULL）。
// 与普通 I/O 错误不同，重试同一牌桌没有意义。
type ConnectionRejectedError struct {
	Reason string
}

func (e *ConnectionRejectedError) Error() string {
	if e.Reason == "" {
		return "连接被拒绝"
	}
	return "连接被拒绝: " + e.Reason
}

// ErrConnectionRejected 牌桌已满时的连接拒绝
var ErrConnectionRejected = &ConnectionRejectedError{Reason: "牌桌已满"}

// IsConnectionRejected 判断错误链中是否包含连接拒绝
func IsConnectionRejected(err error) bool {
	var rejected *ConnectionRejectedError
	return errors.As(err, &rejected)
}

// Code 提取错误码，非 GameError 返回 ErrCodeUnknown
func Code(err error) int {
	var gameErr *GameError
	if errors.As(err, &gameErr) {
		return gameErr.Code
	}
	return protocol.ErrCodeUnknown
}

// byCode 错误码到哨兵错误的映射
var byCode = map[int]*GameError{}

func init() {
	for _, e := range []*GameError{
		ErrInvalidHandShape, ErrIllegalMove, ErrOutOfTurn, ErrStaleReference, ErrProtocolViolation,
		ErrRoundNotActive, ErrTableDisabled, ErrTableFull, ErrNotSeated,
	} {
		byCode[e.Code] = e
	}
}

// FromCode 按错误码找回哨兵错误，客户端用它还原服务端的拒绝原因
func FromCode(code int) (*GameError, bool) {
	e, ok := byCode[code]
	return e, ok
}
