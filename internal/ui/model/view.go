package model

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/big-two/internal/game"
	"github.com/palemoky/big-two/internal/ui/common"
	"github.com/palemoky/big-two/internal/ui/view"
)

// eventLines 事件区显示的行数
const eventLines = 6

func (m *Model) View() string {
	if m.fatal != nil {
		msg := common.ErrorStyle.Render("⚠️ " + m.fatal.Error())
		return common.DocStyle.Render(msg + "\n\n按任意键退出")
	}
	if m.showHelp {
		return m.place(view.RenderGameRules() + "\n" + common.GrayStyle.Render("按 ESC 或输入 ? 返回"))
	}

	snap := m.player.Game().Snapshot()

	var sections []string
	sections = append(sections, common.TitleStyle("🃏 锄大地"))
	sections = append(sections, view.RenderSeats(snap))

	middle := view.RenderLastHand(snap)
	if m.showCounter && snap.State == game.StateTurnInProgress {
		middle = lipgloss.JoinHorizontal(lipgloss.Top, middle, " ", view.RenderCounter(m.player.Counter().GetRemaining()))
	}
	sections = append(sections, middle)

	if len(m.standings) > 0 {
		sections = append(sections, view.RenderStandings(m.standings, snap.LocalID))
	}
	sections = append(sections, view.RenderHand(snap.LocalHand, m.hint))

	if events := view.RenderEvents(m.events, eventLines); events != "" {
		sections = append(sections, events)
	}

	prompt := view.RenderStatus(snap) + "\n" + m.input.View()
	if m.notice != "" {
		prompt += "\n" + common.ErrorStyle.Render(m.notice)
	}
	sections = append(sections, common.PromptStyle.Render(prompt))

	if chat := view.RenderChatBox(m.chat); chat != "" {
		sections = append(sections, chat)
	}

	return m.place(strings.Join(sections, "\n"))
}

func (m *Model) place(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, content)
}
