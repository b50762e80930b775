package handler

import (
	"context"
	"log"

	"github.com/palemoky/big-two/internal/game"
	"github.com/palemoky/big-two/internal/game/card"
	"github.com/palemoky/big-two/internal/server/table"
)

// TableStatus 牌桌状态，供 HTTP 状态接口以 JSON 输出
type TableStatus struct {
	TableID   string               `json:"table_id"`
	Online    int                  `json:"online"`
	State     string               `json:"state"`
	Disabled  bool                 `json:"disabled"`
	Current   int                  `json:"current"`
	Seq       int                  `json:"seq"`
	Seats     []table.SeatInfo     `json:"seats"`
	CardsLeft [game.NumPlayers]int `json:"cards_left"`
	LastHand  string               `json:"last_hand,omitempty"`
	Standings []StandingInfo       `json:"standings,omitempty"`
}

// StandingInfo 结算信息
type StandingInfo struct {
	Place     int    `json:"place"`
	Seat      int    `json:"seat"`
	Name      string `json:"name"`
	CardsLeft int    `json:"cards_left"`
	Cards     string `json:"cards"`
}

// Status 生成牌桌状态，可在任意协程调用。
// 牌局信息来自同一次快照，座位占用者来自座位存储。
func (h *Handler) Status(ctx context.Context) TableStatus {
	snap := h.game.Snapshot()
	status := TableStatus{
		TableID:   h.table.ID,
		Online:    h.server.GetOnlineCount(),
		State:     snap.State.String(),
		Disabled:  snap.Disabled,
		Current:   snap.Current,
		Seq:       snap.Seq,
		Seats:     h.table.Info(),
		CardsLeft: snap.CardsLeft,
	}
	if snap.LastHand != nil {
		status.LastHand = snap.LastHand.String()
	}
	if holders, err := h.table.Holders(ctx); err != nil {
		log.Printf("读取座位记录失败: %v", err)
	} else {
		for i := range status.Seats {
			status.Seats[i].Holder = holders[status.Seats[i].Seat]
		}
	}
	for _, s := range snap.Standings {
		status.Standings = append(status.Standings, StandingInfo{
			Place:     s.Place,
			Seat:      s.Seat,
			Name:      s.Name,
			CardsLeft: s.CardsLeft,
			Cards:     card.FormatCards(s.Cards),
		})
	}
	return status
}
