// Package handler turns session events into bubbletea messages.
package handler

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/big-two/internal/game"
	"github.com/palemoky/big-two/internal/ui/model"
)

// Bridge 实现 session.Listener，把回调转发给 tea.Program
type Bridge struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

// NewBridge 创建桥接器，send 通常为 (*tea.Program).Send
func NewBridge(send func(tea.Msg)) *Bridge {
	return &Bridge{send: send}
}

// Attach 替换发送函数
func (b *Bridge) Attach(send func(tea.Msg)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.send = send
}

func (b *Bridge) emit(msg tea.Msg) {
	b.mu.RLock()
	send := b.send
	b.mu.RUnlock()
	if send != nil {
		send(msg)
	}
}

func (b *Bridge) OnPlayerList(localID int, names [game.NumPlayers]string) {
	b.emit(model.PlayerListMsg{LocalID: localID, Names: names})
}

func (b *Bridge) OnJoin(seat int, name string) {
	b.emit(model.JoinMsg{Seat: seat, Name: name})
}

func (b *Bridge) OnReady(seat int) {
	b.emit(model.ReadyMsg{Seat: seat})
}

func (b *Bridge) OnQuit(seat int, name string, disabled bool) {
	b.emit(model.QuitMsg{Seat: seat, Name: name, Disabled: disabled})
}

func (b *Bridge) OnStart(current int) {
	b.emit(model.StartMsg{Current: current})
}

func (b *Bridge) OnMove(result *game.MoveResult) {
	b.emit(model.MoveMsg{Result: result})
}

func (b *Bridge) OnRoundOver(standings []game.Standing) {
	b.emit(model.RoundOverMsg{Standings: standings})
}

func (b *Bridge) OnRejected(err error) {
	b.emit(model.RejectedMsg{Err: err})
}

func (b *Bridge) OnChat(seat int, text string) {
	b.emit(model.ChatMsg{Seat: seat, Text: text})
}

func (b *Bridge) OnFatal(err error) {
	b.emit(model.FatalMsg{Err: err})
}
