package view

import (
	"strings"

	"github.com/palemoky/big-two/internal/ui/common"
)

// RenderGameRules renders the game rules.
func RenderGameRules() string {
	var sb strings.Builder

	sb.WriteString("【游戏目标】\n")
	sb.WriteString("四人各 13 张牌，最先出完手牌的玩家获胜\n\n")

	sb.WriteString("【大小】\n")
	sb.WriteString("点数: 3 < 4 < ... < K < A < 2\n")
	sb.WriteString("花色: ♦ 方块 < ♣ 梅花 < ♥ 红心 < ♠ 黑桃\n\n")

	sb.WriteString("【牌型】\n")
	sb.WriteString("• 单张、对子、三条\n")
	sb.WriteString("• 五张牌型由小到大: 顺子 < 同花 < 葫芦 < 铁支 < 同花顺\n")
	sb.WriteString("• 只能用相同张数的牌去压\n\n")

	sb.WriteString("【出牌规则】\n")
	sb.WriteString("1. 持有 ♦3 的玩家先出，首手牌必须包含 ♦3\n")
	sb.WriteString("2. 后续玩家出更大的牌或不出\n")
	sb.WriteString("3. 其余三家都不要时，最后出牌的玩家可以出任意牌型\n\n")

	sb.WriteString("【命令】\n")
	sb.WriteString("• 3 5 7：出手牌下方序号对应的牌\n")
	sb.WriteString("• p：不出    h：提示    r：准备\n")
	sb.WriteString("• /文字：聊天    c：记牌器    ?：帮助    q：退出\n")

	return common.BoxStyle.Render(sb.String())
}
