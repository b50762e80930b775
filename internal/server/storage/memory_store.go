package storage

import (
	"context"
	"maps"
	"sync"
)

// MemorySeatStore 进程内座位存储，未配置 Redis 时使用
type MemorySeatStore struct {
	seats  int
	tables map[string]map[int]string
	mu     sync.Mutex
}

// NewMemorySeatStore 创建内存座位存储
func NewMemorySeatStore(seats int) *MemorySeatStore {
	return &MemorySeatStore{
		seats:  seats,
		tables: make(map[string]map[int]string),
	}
}

func (ms *MemorySeatStore) Claim(_ context.Context, tableID string, seat int, clientID string) (bool, error) {
	if seat < 0 || seat >= ms.seats {
		return false, ErrSeatOutOfRange
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()

	table, ok := ms.tables[tableID]
	if !ok {
		table = make(map[int]string)
		ms.tables[tableID] = table
	}
	if _, taken := table[seat]; taken {
		return false, nil
	}
	table[seat] = clientID
	return true, nil
}

func (ms *MemorySeatStore) Release(_ context.Context, tableID string, seat int, clientID string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if table, ok := ms.tables[tableID]; ok && table[seat] == clientID {
		delete(table, seat)
	}
	return nil
}

func (ms *MemorySeatStore) Occupants(_ context.Context, tableID string) (map[int]string, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return maps.Clone(ms.tables[tableID]), nil
}

func (ms *MemorySeatStore) Reset(_ context.Context, tableID string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.tables, tableID)
	return nil
}
