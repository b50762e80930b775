package game

// State 牌局状态
type State int

const (
	StateWaiting        State = iota // 等待玩家
	StateDealt                       // 已发牌
	StateTurnInProgress              // 轮流出牌中
	StateRoundOver                   // 本局结束
)

var stateNames = map[State]string{
	StateWaiting:        "waiting",
	StateDealt:          "dealt",
	StateTurnInProgress: "playing",
	StateRoundOver:      "round_over",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
