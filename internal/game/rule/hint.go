package rule

import (
	"slices"

	"github.com/palemoky/big-two/internal/game/card"
)

// leadSizes 自由出牌时按张数从小到大尝试
var leadSizes = []int{1, 2, 3, 5}

// FindSmallestBeating 在 hand 中找出能压过 ref 的最小组合，返回其下标（升序）。
// ref 为 nil 表示自由出牌；mustInclude 非 nil 时组合必须包含该牌（首轮的方块 3）。
// 找不到时返回 nil。
func FindSmallestBeating(owner int, hand []card.Card, ref *Hand, mustInclude *card.Card) []int {
	sizes := leadSizes
	if ref != nil {
		sizes = []int{ref.Size()}
	}

	for _, size := range sizes {
		var best *Hand
		var bestIdx []int
		eachCombination(len(hand), size, func(idx []int) {
			picked := make([]card.Card, len(idx))
			for i, j := range idx {
				picked[i] = hand[j]
			}
			if mustInclude != nil && !slices.Contains(picked, *mustInclude) {
				return
			}
			h, err := Classify(owner, picked)
			if err != nil || (ref != nil && !h.Beats(ref)) {
				return
			}
			if best == nil || smaller(h, best) {
				best, bestIdx = h, slices.Clone(idx)
			}
		})
		if best != nil {
			return bestIdx
		}
	}
	return nil
}

// smaller 同张数的两手牌谁更"便宜"：先比等级，再比关键牌
func smaller(a, b *Hand) bool {
	if a.Level() != b.Level() {
		return a.Level() < b.Level()
	}
	return card.Compare(a.TopCard(), b.TopCard()) < 0
}

// eachCombination 按字典序枚举 [0,n) 中取 k 个下标的所有组合
func eachCombination(n, k int, fn func(idx []int)) {
	if k <= 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
