package game

import (
	"fmt"
	"sync"

	"github.com/palemoky/big-two/internal/apperrors"
	"github.com/palemoky/big-two/internal/game/card"
	"github.com/palemoky/big-two/internal/game/rule"
)

const (
	NumPlayers     = 4
	CardsPerPlayer = card.DeckSize / NumPlayers
)

// NoSeat 服务端没有本地玩家
const NoSeat = -1

// Game 一张牌桌的权威状态。所有读写都经过 mu，调用方无需额外加锁。
type Game struct {
	players  [NumPlayers]*Player
	current  int
	table    []*rule.Hand
	deck     *card.Deck
	localID  int
	state    State
	disabled bool
	seq      int // 本局已生效的动作数（出牌和不出都算）

	mu sync.Mutex
}

// New 创建一张空牌桌
func New() *Game {
	g := &Game{localID: NoSeat}
	for i := range g.players {
		g.players[i] = NewPlayer("")
	}
	return g
}

// Start 用给定牌堆开始新的一局：清空手牌和桌面，轮流发牌，
// 每人整理手牌，持有方块 3 的玩家先出。牌堆会在发牌过程中被取空。
func (g *Game) Start(deck *card.Deck) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := card.ValidateFullDeck(deck.Cards()); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrProtocolViolation, err)
	}

	for _, p := range g.players {
		p.clearHand()
	}
	g.table = nil
	g.seq = 0
	g.disabled = false
	g.deck = deck

	for i := 0; !deck.IsEmpty(); i++ {
		c, err := deck.RemoveCard(0)
		if err != nil {
			return err
		}
		g.players[i%NumPlayers].Receive(c)
	}
	g.state = StateDealt

	for i, p := range g.players {
		p.SortHand()
		if p.Holds(card.OpeningCard) {
			g.current = i
		}
	}
	g.state = StateTurnInProgress
	return nil
}

// Quit 玩家离开：清空名字；若本局进行中，牌桌暂停直到下一次 Start
func (g *Game) Quit(seat int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !validSeat(seat) {
		return
	}
	g.players[seat].Name = ""
	if g.state == StateDealt || g.state == StateTurnInProgress {
		g.disabled = true
	}
}

// SetName 设置座位上的玩家名
func (g *Game) SetName(seat int, name string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if validSeat(seat) {
		g.players[seat].Name = name
	}
}

// SetPlayerList 按座位设置所有名字和本地座位号
func (g *Game) SetPlayerList(localID int, names []string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.localID = localID
	for i, p := range g.players {
		p.Name = ""
		if i < len(names) {
			p.Name = names[i]
		}
	}
}

// LocalID 本地玩家座位号，服务端为 NoSeat
func (g *Game) LocalID() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.localID
}

// Names 按座位返回玩家名
func (g *Game) Names() [NumPlayers]string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var names [NumPlayers]string
	for i, p := range g.players {
		names[i] = p.Name
	}
	return names
}

// State 当前状态
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Disabled 是否因玩家离开而暂停
func (g *Game) Disabled() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.disabled
}

// Current 当前出牌的座位
func (g *Game) Current() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// Seq 本局已生效的动作数
func (g *Game) Seq() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seq
}

// Hand 某座位手牌的拷贝（已排序，出牌下标即指向它）
func (g *Game) Hand(seat int) []card.Card {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !validSeat(seat) {
		return nil
	}
	return g.players[seat].Hand()
}

// Table 本局已出的牌，最近的在最后
func (g *Game) Table() []*rule.Hand {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]*rule.Hand(nil), g.table...)
}

// LastHand 桌面上最后一手牌，空桌返回 nil
func (g *Game) LastHand() *rule.Hand {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastHand()
}

func (g *Game) lastHand() *rule.Hand {
	if len(g.table) == 0 {
		return nil
	}
	return g.table[len(g.table)-1]
}

// freeLead 当前玩家是否可以自由出牌：首轮，或其余三家都不要
func (g *Game) freeLead() bool {
	last := g.lastHand()
	return last == nil || last.Owner == g.current
}

func validSeat(seat int) bool {
	return seat >= 0 && seat < NumPlayers
}
