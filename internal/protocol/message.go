package protocol

// Message 基础消息结构，Payload 为 protobuf 线格式编码的负载
type Message struct {
	Type    MessageType
	Payload []byte
}

// MessageType 消息类型
type MessageType string

// 双向消息类型
const (
	MsgPlayerList MessageType = "player_list" // 玩家列表（含本地座位号）
	MsgJoin       MessageType = "join"        // 加入牌桌
	MsgFull       MessageType = "full"        // 牌桌已满
	MsgQuit       MessageType = "quit"        // 玩家离开
	MsgReady      MessageType = "ready"       // 准备就绪
	MsgStart      MessageType = "start"       // 开局（附带整副牌）
	MsgMove       MessageType = "move"        // 出牌或不出
	MsgChat       MessageType = "msg"         // 聊天
	MsgError      MessageType = "error"       // 错误/拒绝（只发给提交方）
)

// Known 是否为已知的消息类型
func (t MessageType) Known() bool {
	switch t {
	case MsgPlayerList, MsgJoin, MsgFull, MsgQuit, MsgReady, MsgStart, MsgMove, MsgChat, MsgError:
		return true
	}
	return false
}
