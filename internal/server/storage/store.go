package storage

import (
	"context"
	"errors"
)

// ErrSeatOutOfRange 座位号越界
var ErrSeatOutOfRange = errors.New("座位号越界")

// SeatStore 牌桌座位占用记录。Claim 必须是原子的：同一座位只能被一个连接占用。
type SeatStore interface {
	// Claim 尝试占用座位，座位已被占用时返回 false
	Claim(ctx context.Context, tableID string, seat int, clientID string) (bool, error)
	// Release 释放座位，仅当占用者是 clientID 时生效
	Release(ctx context.Context, tableID string, seat int, clientID string) error
	// Occupants 返回座位到连接 ID 的映射
	Occupants(ctx context.Context, tableID string) (map[int]string, error)
	// Reset 清空牌桌的所有座位（服务启动时清理上次遗留的记录）
	Reset(ctx context.Context, tableID string) error
}
