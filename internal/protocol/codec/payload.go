package codec

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/palemoky/big-two/internal/protocol"
)

// EncodePayload encodes a payload struct (value or pointer) into protobuf wire format.
func EncodePayload(payload any) ([]byte, error) {
	switch p := payload.(type) {
	case protocol.PlayerListPayload:
		return encodePlayerList(p), nil
	case *protocol.PlayerListPayload:
		return encodePlayerList(*p), nil
	case protocol.JoinPayload:
		return encodeJoin(p), nil
	case *protocol.JoinPayload:
		return encodeJoin(*p), nil
	case protocol.QuitPayload:
		return appendInt(nil, 1, p.PlayerID), nil
	case *protocol.QuitPayload:
		return appendInt(nil, 1, p.PlayerID), nil
	case protocol.ReadyPayload:
		return appendInt(nil, 1, p.PlayerID), nil
	case *protocol.ReadyPayload:
		return appendInt(nil, 1, p.PlayerID), nil
	case protocol.StartPayload:
		return appendCards(nil, 1, p.Deck), nil
	case *protocol.StartPayload:
		return appendCards(nil, 1, p.Deck), nil
	case protocol.MovePayload:
		return encodeMove(p), nil
	case *protocol.MovePayload:
		return encodeMove(*p), nil
	case protocol.ChatPayload:
		return encodeChat(p), nil
	case *protocol.ChatPayload:
		return encodeChat(*p), nil
	case protocol.ErrorPayload:
		return encodeError(p), nil
	case *protocol.ErrorPayload:
		return encodeError(*p), nil
	default:
		return nil, fmt.Errorf("unsupported payload type %T", payload)
	}
}

// DecodePayload decodes wire bytes into the payload struct pointed to by out.
func DecodePayload(data []byte, out any) error {
	switch p := out.(type) {
	case *protocol.PlayerListPayload:
		return walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
			switch num {
			case 1:
				v, n, err := consumeInt(typ, b)
				p.LocalID = v
				return n, err
			case 2:
				s, n, err := consumeString(typ, b)
				p.Names = append(p.Names, s)
				return n, err
			}
			return 0, nil
		})
	case *protocol.JoinPayload:
		return walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
			switch num {
			case 1:
				v, n, err := consumeInt(typ, b)
				p.PlayerID = v
				return n, err
			case 2:
				s, n, err := consumeString(typ, b)
				p.Name = s
				return n, err
			}
			return 0, nil
		})
	case *protocol.QuitPayload:
		return decodePlayerID(data, &p.PlayerID)
	case *protocol.ReadyPayload:
		return decodePlayerID(data, &p.PlayerID)
	case *protocol.StartPayload:
		return walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
			if num != 1 {
				return 0, nil
			}
			return consumeCard(typ, b, &p.Deck)
		})
	case *protocol.MovePayload:
		return walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
			switch num {
			case 1:
				v, n, err := consumeInt(typ, b)
				p.PlayerID = v
				return n, err
			case 2:
				return consumePackedInts(typ, b, &p.Indices)
			case 3:
				v, n, err := consumeInt(typ, b)
				p.Seq = v
				return n, err
			}
			return 0, nil
		})
	case *protocol.ChatPayload:
		return walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
			switch num {
			case 1:
				v, n, err := consumeInt(typ, b)
				p.PlayerID = v
				return n, err
			case 2:
				s, n, err := consumeString(typ, b)
				p.Text = s
				return n, err
			}
			return 0, nil
		})
	case *protocol.ErrorPayload:
		return walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
			switch num {
			case 1:
				v, n, err := consumeInt(typ, b)
				p.Code = v
				return n, err
			case 2:
				s, n, err := consumeString(typ, b)
				p.Message = s
				return n, err
			case 3:
				return consumeCard(typ, b, &p.Cards)
			}
			return 0, nil
		})
	default:
		return fmt.Errorf("unsupported payload type %T", out)
	}
}

func encodePlayerList(p protocol.PlayerListPayload) []byte {
	b := appendInt(nil, 1, p.LocalID)
	for _, name := range p.Names {
		b = appendString(b, 2, name)
	}
	return b
}

func encodeJoin(p protocol.JoinPayload) []byte {
	b := appendInt(nil, 1, p.PlayerID)
	return appendString(b, 2, p.Name)
}

func encodeMove(p protocol.MovePayload) []byte {
	b := appendInt(nil, 1, p.PlayerID)
	if len(p.Indices) > 0 {
		b = appendPackedInts(b, 2, p.Indices)
	}
	return appendInt(b, 3, p.Seq)
}

func encodeChat(p protocol.ChatPayload) []byte {
	b := appendInt(nil, 1, p.PlayerID)
	return appendString(b, 2, p.Text)
}

func encodeError(p protocol.ErrorPayload) []byte {
	b := appendInt(nil, 1, p.Code)
	b = appendString(b, 2, p.Message)
	return appendCards(b, 3, p.Cards)
}

func appendCards(b []byte, num protowire.Number, cards []protocol.CardInfo) []byte {
	for _, c := range cards {
		var sub []byte
		sub = appendInt(sub, 1, c.Suit)
		sub = appendInt(sub, 2, c.Rank)
		b = appendBytes(b, num, sub)
	}
	return b
}

func consumeCard(typ protowire.Type, b []byte, out *[]protocol.CardInfo) (int, error) {
	sub, n, err := consumeBytes(typ, b)
	if err != nil {
		return 0, err
	}
	var info protocol.CardInfo
	err = walkFields(sub, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, m, err := consumeInt(typ, b)
			info.Suit = v
			return m, err
		case 2:
			v, m, err := consumeInt(typ, b)
			info.Rank = v
			return m, err
		}
		return 0, nil
	})
	if err != nil {
		return 0, err
	}
	*out = append(*out, info)
	return n, nil
}

func decodePlayerID(data []byte, out *int) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != 1 {
			return 0, nil
		}
		v, n, err := consumeInt(typ, b)
		*out = v
		return n, err
	})
}
