// Package view provides UI rendering functions.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/big-two/internal/game"
	"github.com/palemoky/big-two/internal/game/card"
	"github.com/palemoky/big-two/internal/ui/common"
)

// maxNameWidth 座位框里名字的最大宽度
const maxNameWidth = 8

// RenderSeats renders the four seats in seat order.
func RenderSeats(s game.Snapshot) string {
	parts := make([]string, 0, game.NumPlayers)
	for seat := range game.NumPlayers {
		parts = append(parts, renderSeat(s, seat))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderSeat(s game.Snapshot, seat int) string {
	name := s.Names[seat]
	icon := ""
	switch {
	case name == "":
		name, icon = "(空座)", common.EmptyIcon
	case seat == s.LocalID:
		icon = common.LocalIcon
	}

	playing := s.State == game.StateTurnInProgress && !s.Disabled
	if playing && seat == s.Current {
		icon = common.TurnIcon
	}

	info := fmt.Sprintf("%s %d号 %s", icon, seat+1, common.TruncateName(name, maxNameWidth))
	if s.State != game.StateWaiting {
		info += fmt.Sprintf("\n🃏 %d张", s.CardsLeft[seat])
	}

	style := common.BoxStyle
	if playing && seat == s.Current {
		style = common.ActiveBoxStyle
	}
	return style.Width(16).Render(info)
}

// RenderLastHand renders the most recent hand on the table.
func RenderLastHand(s game.Snapshot) string {
	if s.LastHand == nil {
		return common.BoxStyle.Width(34).Render("(等待出牌...)")
	}

	owner := s.Names[s.LastHand.Owner]
	if owner == "" {
		owner = fmt.Sprintf("%d号", s.LastHand.Owner+1)
	}
	content := fmt.Sprintf("%s 出了 %s\n%s", owner, s.LastHand.Kind.DisplayName(), renderCards(s.LastHand.Cards))
	if s.FreeLead {
		content += "\n" + common.GrayStyle.Render("其余玩家都不要")
	}
	return common.BoxStyle.Width(34).Render(content)
}

func renderCards(cards []card.Card) string {
	strs := make([]string, len(cards))
	for i, c := range cards {
		strs[i] = common.CardStyle(c).Render(c.String())
	}
	return strings.Join(strs, " ")
}

// RenderHand renders the local hand with the index to type under each card.
func RenderHand(hand []card.Card, highlight []int) string {
	if len(hand) == 0 {
		return common.BoxStyle.Render("(无手牌)")
	}

	marked := make(map[int]bool, len(highlight))
	for _, idx := range highlight {
		marked[idx] = true
	}

	var rankStr, suitStr, idxStr strings.Builder
	for i, c := range hand {
		style := common.CardStyle(c).Align(lipgloss.Center).Margin(0, 1)
		if marked[i] {
			style = style.Underline(true)
		}
		rankStr.WriteString(style.Render(fmt.Sprintf("%-2s", c.Rank.String())))
		suitStr.WriteString(style.Render(fmt.Sprintf("%-2s", c.Suit.String())))
		idxStr.WriteString(lipgloss.NewStyle().Margin(0, 1).Render(fmt.Sprintf("%-2d", i)))
	}

	title := fmt.Sprintf("我的手牌 (%d张)", len(hand))
	content := lipgloss.JoinVertical(lipgloss.Center, title, rankStr.String(), suitStr.String(), common.GrayStyle.Render(idxStr.String()))
	return common.BoxStyle.Render(content)
}

// RenderCounter renders the unseen cards per rank.
func RenderCounter(remaining map[card.Rank]int) string {
	if remaining == nil {
		return ""
	}

	names := make([]string, len(common.DisplayOrder))
	counts := make([]string, len(common.DisplayOrder))
	for i, rank := range common.DisplayOrder {
		names[i] = fmt.Sprintf("%-2s", rank.String())
		counts[i] = fmt.Sprintf("%-2d", remaining[rank])
	}

	var sb strings.Builder
	sb.WriteString("记牌器\n")
	sb.WriteString(strings.Join(names, "│") + "\n")
	sb.WriteString(strings.Repeat("─", 38) + "\n")
	sb.WriteString(strings.Join(counts, "│"))
	return common.BoxStyle.Render(sb.String())
}

// RenderStatus renders the one-line state of the round for the local player.
func RenderStatus(s game.Snapshot) string {
	switch {
	case s.LocalID == game.NoSeat:
		return "正在入座..."
	case s.Disabled:
		return "⏸ 有玩家离开，等待所有玩家重新准备"
	case s.State == game.StateWaiting:
		return "等待四位玩家准备 (输入 r 准备)"
	case s.State == game.StateRoundOver:
		return "本局结束，等待下一局开始"
	case s.Current == s.LocalID && s.FreeLead:
		return "⏳ 轮到你出牌! 可以出任意牌型"
	case s.Current == s.LocalID:
		return "⏳ 轮到你出牌!"
	}

	name := s.Names[s.Current]
	if name == "" {
		name = fmt.Sprintf("%d号", s.Current+1)
	}
	return fmt.Sprintf("等待 %s 出牌...", name)
}

// RenderStandings renders the round-over report.
func RenderStandings(standings []game.Standing, local int) string {
	if len(standings) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(common.TitleStyle("🎮 本局结束") + "\n\n")
	for _, s := range standings {
		name := s.Name
		if s.Seat == local {
			name += " (你)"
		}
		if s.Winner() {
			fmt.Fprintf(&sb, "%s %s 获胜!\n", common.WinnerIcon, name)
			continue
		}
		fmt.Fprintf(&sb, "第 %d 名 %s 剩余 %d 张: %s\n", s.Place, name, s.CardsLeft, renderCards(s.Cards))
	}
	return common.BoxStyle.Render(strings.TrimRight(sb.String(), "\n"))
}
