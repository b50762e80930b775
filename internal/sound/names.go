package sound

// 内置音效名，assets/sounds 下的同名文件优先
const (
	SoundTurn   = "turn"   // 轮到自己
	SoundPlay   = "play"   // 有人出牌
	SoundReject = "reject" // 出牌被拒绝
	SoundWin    = "win"    // 本局结束
)
