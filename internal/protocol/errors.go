package protocol

// 错误码
const (
	ErrCodeUnknown        = 1000
	ErrCodeInvalidMsg     = 1001 // 协议违规：格式错误或不应出现的消息
	ErrCodeTableFull      = 2002
	ErrCodeNotSeated      = 2003
	ErrCodeRoundNotActive = 3001
	ErrCodeOutOfTurn      = 3002
	ErrCodeInvalidHand    = 3003
	ErrCodeIllegalMove    = 3004
	ErrCodeStaleReference = 3005
	ErrCodeTableDisabled  = 3006
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:        "未知错误",
	ErrCodeInvalidMsg:     "无效的消息格式",
	ErrCodeTableFull:      "牌桌已满",
	ErrCodeNotSeated:      "您不在牌桌上",
	ErrCodeRoundNotActive: "本局尚未开始",
	ErrCodeOutOfTurn:      "还没轮到您",
	ErrCodeInvalidHand:    "无效的牌型",
	ErrCodeIllegalMove:    "不合法的出牌",
	ErrCodeStaleReference: "所选的牌不在手中",
	ErrCodeTableDisabled:  "有玩家离开，牌局已暂停",
}
