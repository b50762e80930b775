package card

import (
	"fmt"
	"slices"
)

// List 有序、可变的牌列表，手牌、牌堆和出牌都基于它
type List struct {
	cards []Card
}

// NewList 从给定的牌创建列表（拷贝，不共享底层数组）
func NewList(cards ...Card) *List {
	return &List{cards: slices.Clone(cards)}
}

// Len 牌数
func (l *List) Len() int {
	return len(l.cards)
}

// IsEmpty 是否为空
func (l *List) IsEmpty() bool {
	return len(l.cards) == 0
}

// Get 返回第 i 张牌
func (l *List) Get(i int) (Card, error) {
	if i < 0 || i >= len(l.cards) {
		return Card{}, fmt.Errorf("下标越界: %d (共 %d 张)", i, len(l.cards))
	}
	return l.cards[i], nil
}

// Add 在末尾追加一张牌
func (l *List) Add(c Card) {
	l.cards = append(l.cards, c)
}

// RemoveAt 移除并返回第 i 张牌
func (l *List) RemoveAt(i int) (Card, error) {
	c, err := l.Get(i)
	if err != nil {
		return Card{}, err
	}
	l.cards = slices.Delete(l.cards, i, i+1)
	return c, nil
}

// Remove 移除列表中与 toRemove 相同的牌，返回实际移除的数量
func (l *List) Remove(toRemove []Card) int {
	before := len(l.cards)
	l.cards = slices.DeleteFunc(l.cards, func(c Card) bool {
		return slices.Contains(toRemove, c)
	})
	return before - len(l.cards)
}

// Contains 是否包含某张牌
func (l *List) Contains(c Card) bool {
	return slices.Contains(l.cards, c)
}

// Clear 清空
func (l *List) Clear() {
	l.cards = l.cards[:0]
}

// Sort 按游戏规则从小到大原地排序
func (l *List) Sort() {
	slices.SortFunc(l.cards, Compare)
}

// Cards 返回牌的拷贝
func (l *List) Cards() []Card {
	return slices.Clone(l.cards)
}

// Select 按下标取出若干张牌（不修改列表）。
// 下标必须在范围内且不重复。
func (l *List) Select(indices []int) ([]Card, error) {
	seen := make(map[int]bool, len(indices))
	selected := make([]Card, 0, len(indices))
	for _, i := range indices {
		if seen[i] {
			return nil, fmt.Errorf("重复的下标: %d", i)
		}
		seen[i] = true
		c, err := l.Get(i)
		if err != nil {
			return nil, err
		}
		selected = append(selected, c)
	}
	return selected, nil
}

// IndexOf 返回牌的下标，不存在时返回 -1
func (l *List) IndexOf(c Card) int {
	return slices.Index(l.cards, c)
}

func (l *List) String() string {
	return FormatCards(l.cards)
}

// SortCards 返回按游戏规则排序后的拷贝
func SortCards(cards []Card) []Card {
	sorted := slices.Clone(cards)
	slices.SortFunc(sorted, Compare)
	return sorted
}
