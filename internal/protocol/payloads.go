package protocol

// --- 客户端 → 服务端 ---

// JoinPayload 加入牌桌；服务端广播时填充座位号
type JoinPayload struct {
	PlayerID int
	Name     string
}

// MovePayload 出牌。Indices 为空表示不出（PASS）。
// 客户端发送时 PlayerID 为 -1，由服务端按连接填充；Seq 为本局第几步（从 1 开始）。
type MovePayload struct {
	PlayerID int
	Indices  []int
	Seq      int
}

// IsPass 是否为不出
func (p MovePayload) IsPass() bool {
	return len(p.Indices) == 0
}

// ChatPayload 聊天消息
type ChatPayload struct {
	PlayerID int
	Text     string
}

// --- 服务端 → 客户端 ---

// PlayerListPayload 玩家列表。Names 按座位排列，空字符串表示空座位。
type PlayerListPayload struct {
	LocalID int
	Names   []string
}

// QuitPayload 玩家离开
type QuitPayload struct {
	PlayerID int
}

// ReadyPayload 玩家准备
type ReadyPayload struct {
	PlayerID int
}

// StartPayload 开局，附带完整的 52 张牌序
type StartPayload struct {
	Deck []CardInfo
}

// ErrorPayload 错误响应
type ErrorPayload struct {
	Code    int
	Message string
	Cards   []CardInfo // 被拒绝的牌（如有）
}

// --- 通用数据结构 ---

// CardInfo 牌信息
type CardInfo struct {
	Suit int // 花色: 0=方块, 1=梅花, 2=红心, 3=黑桃
	Rank int // 点数: 0=A, 1=2, 2=3 ... 12=K
}
