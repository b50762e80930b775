package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/big-two/internal/apperrors"
	"github.com/palemoky/big-two/internal/game"
	"github.com/palemoky/big-two/internal/session"
	"github.com/palemoky/big-two/internal/sound"
	"github.com/palemoky/big-two/internal/ui/input"
)

const (
	noticeDuration = 3 * time.Second
	maxEvents      = 50
	maxChat        = 50
)

// Player 本地玩家能做的操作，由 *session.Session 实现
type Player interface {
	Game() *game.Game
	Counter() *session.CardCounter
	Join(name string) error
	Ready() error
	Play(indices []int) error
	Pass() error
	Chat(text string) error
	Hint() []int
}

// Sounds 提示音，由 *sound.SoundManager 实现
type Sounds interface {
	Init() error
	Play(name string)
	Close()
}

// Model 终端客户端的主模型
type Model struct {
	player Player
	sounds Sounds
	name   string

	input  textinput.Model
	joined bool

	events    []string
	chat      []string
	standings []game.Standing
	hint      []int

	notice      string
	fatal       error
	showCounter bool
	showHelp    bool

	width  int
	height int
}

// New 创建模型。sounds 为 nil 时不播放声音。
func New(player Player, name string, sounds Sounds) *Model {
	ti := textinput.New()
	ti.Placeholder = "出牌序号如 0 4，p 不出，/聊天，? 帮助"
	ti.CharLimit = 200
	ti.Width = 40
	ti.Focus()

	return &Model{
		player:      player,
		sounds:      sounds,
		name:        name,
		input:       ti,
		showCounter: true,
	}
}

func (m *Model) Init() tea.Cmd {
	if m.sounds != nil {
		go func() {
			_ = m.sounds.Init()
		}()
	}
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case ClearNoticeMsg:
		m.notice = ""
		return m, nil
	case FatalMsg:
		m.fatal = msg.Err
		return m, nil
	}

	if cmd, ok := m.handleEvent(msg); ok {
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Fatal 导致会话结束的错误
func (m *Model) Fatal() error {
	return m.fatal
}

// Events 牌桌事件记录
func (m *Model) Events() []string {
	return m.events
}

// ChatHistory 聊天记录
func (m *Model) ChatHistory() []string {
	return m.chat
}

// Notice 当前提示
func (m *Model) Notice() string {
	return m.notice
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.fatal != nil {
		return m, tea.Quit
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		return m, tea.Quit
	case tea.KeyEnter:
		line := m.input.Value()
		m.input.SetValue("")
		return m, m.execute(line)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execute 执行一行命令
func (m *Model) execute(line string) tea.Cmd {
	cmd, err := input.Parse(line)
	if errors.Is(err, input.ErrEmpty) {
		return nil
	}
	if err != nil {
		return m.setNotice(err.Error())
	}

	switch cmd.Kind {
	case input.KindPlay:
		err = m.player.Play(cmd.Indices)
	case input.KindPass:
		err = m.player.Pass()
	case input.KindChat:
		err = m.player.Chat(cmd.Text)
	case input.KindReady:
		err = m.player.Ready()
	case input.KindHint:
		m.hint = m.player.Hint()
		if m.hint == nil {
			return m.setNotice("没有能压过的牌，输入 p 不出")
		}
		return m.setNotice("提示: " + input.FormatIndices(m.hint))
	case input.KindCounter:
		m.showCounter = !m.showCounter
	case input.KindHelp:
		m.showHelp = !m.showHelp
	case input.KindQuit:
		return tea.Quit
	}

	if err != nil {
		return m.reject(err)
	}
	if cmd.Kind == input.KindPlay || cmd.Kind == input.KindPass {
		m.hint = nil
	}
	return nil
}

// reject 显示被拒绝的原因
func (m *Model) reject(err error) tea.Cmd {
	m.playSound(sound.SoundReject)

	var moveErr *game.MoveError
	if errors.As(err, &moveErr) {
		return m.setNotice(fmt.Sprintf("%s: %s", moveErr.Kind.Message, moveErr.Reason))
	}
	if errors.Is(err, apperrors.ErrNotSeated) {
		return m.setNotice("尚未入座")
	}
	return m.setNotice(err.Error())
}

func (m *Model) setNotice(text string) tea.Cmd {
	m.notice = text
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return ClearNoticeMsg{}
	})
}

func (m *Model) addEvent(format string, args ...any) {
	m.events = append(m.events, fmt.Sprintf(format, args...))
	if len(m.events) > maxEvents {
		m.events = m.events[len(m.events)-maxEvents:]
	}
}

func (m *Model) playSound(name string) {
	if m.sounds != nil {
		m.sounds.Play(name)
	}
}
