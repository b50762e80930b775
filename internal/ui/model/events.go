package model

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/big-two/internal/game"
	"github.com/palemoky/big-two/internal/sound"
)

// handleEvent 处理会话事件，不是会话事件时返回 false
func (m *Model) handleEvent(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case PlayerListMsg:
		return m.onPlayerList(msg), true
	case JoinMsg:
		m.addEvent("%d号 %s 入座", msg.Seat+1, msg.Name)
	case ReadyMsg:
		m.addEvent("%s 已准备", m.seatName(msg.Seat))
	case QuitMsg:
		m.onQuit(msg)
	case StartMsg:
		m.onStart(msg)
	case MoveMsg:
		m.onMove(msg.Result)
	case RoundOverMsg:
		m.standings = msg.Standings
		m.playSound(sound.SoundWin)
	case RejectedMsg:
		return m.reject(msg.Err), true
	case ChatMsg:
		m.chat = append(m.chat, msg.Text)
		if len(m.chat) > maxChat {
			m.chat = m.chat[len(m.chat)-maxChat:]
		}
	default:
		return nil, false
	}
	return nil, true
}

// onPlayerList 第一次收到座位表时设置昵称并准备
func (m *Model) onPlayerList(msg PlayerListMsg) tea.Cmd {
	m.addEvent("已入座 %d号", msg.LocalID+1)
	if m.joined {
		return nil
	}
	m.joined = true

	if err := m.player.Join(m.name); err != nil {
		log.Printf("发送昵称失败: %v", err)
		return m.setNotice(err.Error())
	}
	if err := m.player.Ready(); err != nil {
		log.Printf("发送准备失败: %v", err)
		return m.setNotice(err.Error())
	}
	return nil
}

func (m *Model) onQuit(msg QuitMsg) {
	name := msg.Name
	if name == "" {
		name = fmt.Sprintf("%d号", msg.Seat+1)
	}
	if msg.Disabled {
		m.addEvent("%s 离开了牌桌，本局暂停", name)
		return
	}
	m.addEvent("%s 离开了牌桌", name)
}

func (m *Model) onStart(msg StartMsg) {
	m.standings = nil
	m.hint = nil
	m.addEvent("🃏 新的一局开始，%s 先出", m.seatName(msg.Current))
	if msg.Current == m.player.Game().LocalID() {
		m.playSound(sound.SoundTurn)
	}
}

func (m *Model) onMove(result *game.MoveResult) {
	name := m.seatName(result.Seat)
	if result.Pass {
		m.addEvent("%s: 不要", name)
	} else {
		m.addEvent("%s: %s", name, result.Hand)
	}

	switch {
	case result.RoundOver:
	case result.Next == m.player.Game().LocalID():
		m.playSound(sound.SoundTurn)
	case !result.Pass:
		m.playSound(sound.SoundPlay)
	}
}

func (m *Model) seatName(seat int) string {
	names := m.player.Game().Names()
	if seat < 0 || seat >= len(names) || names[seat] == "" {
		return fmt.Sprintf("%d号", seat+1)
	}
	return names[seat]
}
