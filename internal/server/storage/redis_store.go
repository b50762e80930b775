package storage

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key 前缀
	tableKeyPrefix = "bigtwo:table:"

	// 默认座位记录过期时间，服务异常退出后自动清理
	seatExpiration = 6 * time.Hour
)

// releaseScript 只有占用者本人才能释放座位
var releaseScript = redis.NewScript(`
if redis.call("HGET", KEYS[1], ARGV[1]) == ARGV[2] then
	return redis.call("HDEL", KEYS[1], ARGV[1])
end
return 0
`)

// RedisSeatStore 基于 Redis Hash 的座位存储，多个服务实例可共享同一牌桌
type RedisSeatStore struct {
	client     *redis.Client
	seats      int
	expiration time.Duration
}

// NewRedisSeatStore 创建 Redis 座位存储
func NewRedisSeatStore(client *redis.Client, seats int) *RedisSeatStore {
	return &RedisSeatStore{client: client, seats: seats, expiration: seatExpiration}
}

// SetExpiration 修改座位记录的过期时间，非正数时忽略
func (rs *RedisSeatStore) SetExpiration(d time.Duration) {
	if d > 0 {
		rs.expiration = d
	}
}

func seatsKey(tableID string) string {
	return tableKeyPrefix + tableID + ":seats"
}

// Claim 使用 HSETNX 原子地占用座位
func (rs *RedisSeatStore) Claim(ctx context.Context, tableID string, seat int, clientID string) (bool, error) {
	if seat < 0 || seat >= rs.seats {
		return false, ErrSeatOutOfRange
	}
	key := seatsKey(tableID)
	ok, err := rs.client.HSetNX(ctx, key, strconv.Itoa(seat), clientID).Result()
	if err != nil {
		return false, fmt.Errorf("占用座位失败: %w", err)
	}
	if !ok {
		return false, nil
	}
	// 没有过期时间的座位记录在服务异常退出后不会被清理，此时放弃占用
	if err := rs.client.Expire(ctx, key, rs.expiration).Err(); err != nil {
		log.Printf("设置座位 %d 过期时间失败: %v", seat, err)
		if delErr := rs.client.HDel(ctx, key, strconv.Itoa(seat)).Err(); delErr != nil {
			log.Printf("回滚座位 %d 失败: %v", seat, delErr)
		}
		return false, fmt.Errorf("设置座位过期时间失败: %w", err)
	}
	return true, nil
}

// Release 释放座位
func (rs *RedisSeatStore) Release(ctx context.Context, tableID string, seat int, clientID string) error {
	err := releaseScript.Run(ctx, rs.client, []string{seatsKey(tableID)}, strconv.Itoa(seat), clientID).Err()
	if err != nil {
		return fmt.Errorf("释放座位失败: %w", err)
	}
	return nil
}

// Occupants 读取所有已占用座位
func (rs *RedisSeatStore) Occupants(ctx context.Context, tableID string) (map[int]string, error) {
	fields, err := rs.client.HGetAll(ctx, seatsKey(tableID)).Result()
	if err != nil {
		return nil, err
	}
	occupants := make(map[int]string, len(fields))
	for field, id := range fields {
		seat, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		occupants[seat] = id
	}
	return occupants, nil
}

// Reset 删除牌桌的座位记录
func (rs *RedisSeatStore) Reset(ctx context.Context, tableID string) error {
	return rs.client.Del(ctx, seatsKey(tableID)).Err()
}
