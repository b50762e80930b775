//go:build !production

package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSeatStore 实现 storage.SeatStore 的 mock
type MockSeatStore struct {
	mock.Mock
}

func (m *MockSeatStore) Claim(ctx context.Context, tableID string, seat int, clientID string) (bool, error) {
	args := m.Called(ctx, tableID, seat, clientID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSeatStore) Release(ctx context.Context, tableID string, seat int, clientID string) error {
	args := m.Called(ctx, tableID, seat, clientID)
	return args.Error(0)
}

func (m *MockSeatStore) Occupants(ctx context.Context, tableID string) (map[int]string, error) {
	args := m.Called(ctx, tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]string), args.Error(1)
}

func (m *MockSeatStore) Reset(ctx context.Context, tableID string) error {
	args := m.Called(ctx, tableID)
	return args.Error(0)
}
