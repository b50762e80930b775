// Package common provides shared styles and utilities for the UI.
package common

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/big-two/internal/game/card"
)

// Icon constants
const (
	TurnIcon   = "👉"
	WinnerIcon = "🏆"
	LocalIcon  = "🙂"
	EmptyIcon  = "🪑"
)

// Lipgloss Styles
var (
	DocStyle       = lipgloss.NewStyle().Margin(1, 2)
	RedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	BlackStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	GrayStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	TitleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	ActiveBoxStyle = BoxStyle.BorderForeground(lipgloss.Color("220"))
	PromptStyle    = lipgloss.NewStyle().MarginTop(1)
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	// DisplayOrder 记牌器从大到小显示
	DisplayOrder = []card.Rank{card.Rank2, card.RankA, card.RankK, card.RankQ, card.RankJ, card.Rank10, card.Rank9, card.Rank8, card.Rank7, card.Rank6, card.Rank5, card.Rank4, card.Rank3}
)

// CardStyle 红色花色用红字
func CardStyle(c card.Card) lipgloss.Style {
	if c.Suit.IsRed() {
		return RedStyle
	}
	return BlackStyle
}
