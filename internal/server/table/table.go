package table

import (
	"context"
	"log"
	"sync"

	"github.com/palemoky/big-two/internal/apperrors"
	"github.com/palemoky/big-two/internal/game"
	"github.com/palemoky/big-two/internal/protocol"
	"github.com/palemoky/big-two/internal/server/storage"
	"github.com/palemoky/big-two/internal/types"
)

// Seat 牌桌上的一个座位
type Seat struct {
	Client types.ClientInterface
	Name   string
	Ready  bool
}

// Table 一张四人牌桌：座位、名字和准备状态。出牌状态由 game.Game 负责。
type Table struct {
	ID    string
	store storage.SeatStore
	seats [game.NumPlayers]*Seat

	mu sync.RWMutex
}

// New 创建牌桌
func New(id string, store storage.SeatStore) *Table {
	return &Table{ID: id, store: store}
}

// Join 为连接分配最小的空座位，坐满时返回 ErrTableFull
func (t *Table) Join(ctx context.Context, client types.ClientInterface) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for seat := range t.seats {
		if t.seats[seat] != nil {
			continue
		}
		ok, err := t.store.Claim(ctx, t.ID, seat, client.GetID())
		if err != nil {
			return types.NoSeat, err
		}
		if !ok {
			continue
		}
		t.seats[seat] = &Seat{Client: client}
		client.SetSeat(seat)
		log.Printf("👤 连接 %s 入座 %d (牌桌 %s)", client.GetID(), seat, t.ID)
		return seat, nil
	}
	return types.NoSeat, apperrors.ErrTableFull
}

// Leave 离座并释放座位记录，返回离开的座位号
func (t *Table) Leave(ctx context.Context, client types.ClientInterface) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	seat := client.GetSeat()
	if !validSeat(seat) || t.seats[seat] == nil || t.seats[seat].Client != client {
		return types.NoSeat
	}
	t.seats[seat] = nil
	client.SetSeat(types.NoSeat)
	if err := t.store.Release(ctx, t.ID, seat, client.GetID()); err != nil {
		log.Printf("⚠️ 释放座位 %d 失败: %v", seat, err)
	}
	log.Printf("👋 %s 离开座位 %d (牌桌 %s)", client.GetName(), seat, t.ID)
	return seat
}

// SetName 设置座位上的玩家名
func (t *Table) SetName(seat int, name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if validSeat(seat) && t.seats[seat] != nil {
		t.seats[seat].Name = name
	}
}

// SetReady 标记准备，返回是否四个座位都已坐满并准备
func (t *Table) SetReady(seat int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !validSeat(seat) || t.seats[seat] == nil {
		return false
	}
	t.seats[seat].Ready = true
	for _, s := range t.seats {
		if s == nil || !s.Ready {
			return false
		}
	}
	return true
}

// ResetReady 清空所有准备状态，开局后调用
func (t *Table) ResetReady() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, s := range t.seats {
		if s != nil {
			s.Ready = false
		}
	}
}

// Names 按座位返回玩家名，空座位为空字符串
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, len(t.seats))
	for i, s := range t.seats {
		if s != nil {
			names[i] = s.Name
		}
	}
	return names
}

// SeatInfo 座位摘要，供状态接口使用
type SeatInfo struct {
	Seat     int    `json:"seat"`
	Occupied bool   `json:"occupied"`
	Name     string `json:"name,omitempty"`
	Ready    bool   `json:"ready"`
	Holder   string `json:"holder,omitempty"` // 座位存储中记录的连接 ID
}

// Info 所有座位的摘要
func (t *Table) Info() []SeatInfo {
	t.mu.RLock()
	defer t.mu.RUnlock()

	infos := make([]SeatInfo, len(t.seats))
	for i, s := range t.seats {
		infos[i] = SeatInfo{Seat: i}
		if s != nil {
			infos[i].Occupied = true
			infos[i].Name = s.Name
			infos[i].Ready = s.Ready
		}
	}
	return infos
}

// Holders 读取座位存储中每个座位的占用者
func (t *Table) Holders(ctx context.Context) (map[int]string, error) {
	return t.store.Occupants(ctx, t.ID)
}

// Seated 已入座人数
func (t *Table) Seated() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := 0
	for _, s := range t.seats {
		if s != nil {
			n++
		}
	}
	return n
}

// Broadcast 广播消息给所有入座的玩家
func (t *Table) Broadcast(msg *protocol.Message) {
	t.BroadcastExcept(types.NoSeat, msg)
}

// BroadcastExcept 广播消息给除 except 外的玩家
func (t *Table) BroadcastExcept(except int, msg *protocol.Message) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for seat, s := range t.seats {
		if s != nil && seat != except {
			s.Client.SendMessage(msg)
		}
	}
}

// Reset 清空座位记录（启动时调用）
func (t *Table) Reset(ctx context.Context) error {
	return t.store.Reset(ctx, t.ID)
}

func validSeat(seat int) bool {
	return seat >= 0 && seat < game.NumPlayers
}
