package convert

import (
	"fmt"

	"github.com/palemoky/big-two/internal/game/card"
	"github.com/palemoky/big-two/internal/protocol"
)

// CardToInfo 将 card.Card 转换为 protocol.CardInfo
func CardToInfo(c card.Card) protocol.CardInfo {
	return protocol.CardInfo{
		Suit: int(c.Suit),
		Rank: int(c.Rank),
	}
}

// CardsToInfos 将 []card.Card 转换为 []protocol.CardInfo
func CardsToInfos(cards []card.Card) []protocol.CardInfo {
	infos := make([]protocol.CardInfo, len(cards))
	for i, c := range cards {
		infos[i] = CardToInfo(c)
	}
	return infos
}

// InfoToCard 将 protocol.CardInfo 转换为 card.Card，越界时返回错误
func InfoToCard(info protocol.CardInfo) (card.Card, error) {
	return card.New(card.Suit(info.Suit), card.Rank(info.Rank))
}

// InfosToCards 将 []protocol.CardInfo 转换为 []card.Card，遇到非法牌立即返回错误
func InfosToCards(infos []protocol.CardInfo) ([]card.Card, error) {
	cards := make([]card.Card, len(infos))
	for i, info := range infos {
		c, err := InfoToCard(info)
		if err != nil {
			return nil, fmt.Errorf("第 %d 张: %w", i, err)
		}
		cards[i] = c
	}
	return cards, nil
}

// DeckFromInfos 把 START 消息中的牌序还原为牌堆，要求恰好 52 张且不重复
func DeckFromInfos(infos []protocol.CardInfo) (*card.Deck, error) {
	cards, err := InfosToCards(infos)
	if err != nil {
		return nil, err
	}
	return card.DeckFrom(cards)
}
