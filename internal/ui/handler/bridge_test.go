package handler

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/palemoky/big-two/internal/game"
	"github.com/palemoky/big-two/internal/session"
	"github.com/palemoky/big-two/internal/ui/model"
)

var _ session.Listener = (*Bridge)(nil)

func TestBridge_Forwards(t *testing.T) {
	t.Parallel()

	var got []tea.Msg
	b := NewBridge(func(msg tea.Msg) { got = append(got, msg) })

	names := [game.NumPlayers]string{"东", "南"}
	result := &game.MoveResult{Seat: 1, Pass: true, Seq: 3}
	boom := errors.New("boom")

	b.OnPlayerList(1, names)
	b.OnJoin(2, "西")
	b.OnReady(2)
	b.OnQuit(3, "北", true)
	b.OnStart(0)
	b.OnMove(result)
	b.OnRoundOver(nil)
	b.OnRejected(boom)
	b.OnChat(0, "东: hi")
	b.OnFatal(boom)

	assert.Equal(t, []tea.Msg{
		model.PlayerListMsg{LocalID: 1, Names: names},
		model.JoinMsg{Seat: 2, Name: "西"},
		model.ReadyMsg{Seat: 2},
		model.QuitMsg{Seat: 3, Name: "北", Disabled: true},
		model.StartMsg{Current: 0},
		model.MoveMsg{Result: result},
		model.RoundOverMsg{},
		model.RejectedMsg{Err: boom},
		model.ChatMsg{Seat: 0, Text: "东: hi"},
		model.FatalMsg{Err: boom},
	}, got)
}

func TestBridge_Detached(t *testing.T) {
	t.Parallel()

	b := NewBridge(nil)
	assert.NotPanics(t, func() { b.OnStart(0) })

	var got []tea.Msg
	b.Attach(func(msg tea.Msg) { got = append(got, msg) })
	b.OnReady(1)
	assert.Equal(t, []tea.Msg{model.ReadyMsg{Seat: 1}}, got)
}
