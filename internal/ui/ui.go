// Package ui provides the main entry point for the terminal client.
package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/big-two/internal/session"
	"github.com/palemoky/big-two/internal/sound"
	"github.com/palemoky/big-two/internal/transport"
	"github.com/palemoky/big-two/internal/ui/handler"
	"github.com/palemoky/big-two/internal/ui/model"
)

// Options 客户端选项
type Options struct {
	Name  string
	Sound bool
}

// Run 在已连接的 client 上运行会话和终端界面，直到用户退出或会话结束。
// 会话因错误结束时返回该错误。
func Run(ctx context.Context, client *transport.Client, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bridge := handler.NewBridge(nil)
	sess := session.New(client, bridge)

	var sounds model.Sounds
	if opts.Sound {
		sm := sound.NewSoundManager()
		defer sm.Close()
		sounds = sm
	}

	m := model.New(sess, opts.Name, sounds)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	bridge.Attach(p.Send)

	go func() {
		_ = sess.Run(ctx, client.Receive())
	}()

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	if err := client.Err(); err != nil {
		return err
	}
	return m.Fatal()
}
