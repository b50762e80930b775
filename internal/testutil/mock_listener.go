//go:build !production

package testutil

import (
	"github.com/stretchr/testify/mock"

	"github.com/palemoky/big-two/internal/game"
)

// MockListener 实现 session.Listener 的 mock
type MockListener struct {
	mock.Mock
}

func (m *MockListener) OnPlayerList(localID int, names [game.NumPlayers]string) {
	m.Called(localID, names)
}

func (m *MockListener) OnJoin(seat int, name string) {
	m.Called(seat, name)
}

func (m *MockListener) OnReady(seat int) {
	m.Called(seat)
}

func (m *MockListener) OnQuit(seat int, name string, disabled bool) {
	m.Called(seat, name, disabled)
}

func (m *MockListener) OnStart(current int) {
	m.Called(current)
}

func (m *MockListener) OnMove(result *game.MoveResult) {
	m.Called(result)
}

func (m *MockListener) OnRoundOver(standings []game.Standing) {
	m.Called(standings)
}

func (m *MockListener) OnRejected(err error) {
	m.Called(err)
}

func (m *MockListener) OnChat(seat int, text string) {
	m.Called(seat, text)
}

func (m *MockListener) OnFatal(err error) {
	m.Called(err)
}
