package view

import (
	"strings"

	"github.com/palemoky/big-two/internal/ui/common"
)

// chatLines 聊天框显示的最近条数
const chatLines = 5

// RenderChatBox renders the chat box for game view.
func RenderChatBox(history []string) string {
	if len(history) == 0 {
		return ""
	}

	start := max(len(history)-chatLines, 0)
	return common.BoxStyle.Width(40).Render(strings.Join(history[start:], "\n"))
}

// RenderEvents renders the most recent table events.
func RenderEvents(events []string, n int) string {
	if len(events) == 0 || n <= 0 {
		return ""
	}

	start := max(len(events)-n, 0)
	return common.GrayStyle.Render(strings.Join(events[start:], "\n"))
}
