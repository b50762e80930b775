// Package model defines the terminal client's bubbletea model.
package model

import (
	"github.com/palemoky/big-two/internal/game"
)

// --- Tea Messages ---
// 会话事件经 handler.Bridge 转换为以下消息，再由 Update 统一处理。

// PlayerListMsg 收到座位表
type PlayerListMsg struct {
	LocalID int
	Names   [game.NumPlayers]string
}

// JoinMsg 有玩家设置了昵称
type JoinMsg struct {
	Seat int
	Name string
}

// ReadyMsg 有玩家准备
type ReadyMsg struct {
	Seat int
}

// QuitMsg 有玩家离开
type QuitMsg struct {
	Seat     int
	Name     string
	Disabled bool
}

// StartMsg 新的一局开始
type StartMsg struct {
	Current int
}

// MoveMsg 服务端确认的一次出牌或不出
type MoveMsg struct {
	Result *game.MoveResult
}

// RoundOverMsg 本局结束
type RoundOverMsg struct {
	Standings []game.Standing
}

// RejectedMsg 本地玩家的操作被拒绝
type RejectedMsg struct {
	Err error
}

// ChatMsg 聊天
type ChatMsg struct {
	Seat int
	Text string
}

// FatalMsg 会话结束
type FatalMsg struct {
	Err error
}

// ClearNoticeMsg 清除临时提示
type ClearNoticeMsg struct{}
