package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/big-two/internal/apperrors"
	"github.com/palemoky/big-two/internal/game"
	"github.com/palemoky/big-two/internal/game/card"
	"github.com/palemoky/big-two/internal/protocol"
	"github.com/palemoky/big-two/internal/protocol/codec"
	"github.com/palemoky/big-two/internal/protocol/convert"
	"github.com/palemoky/big-two/internal/testutil"
)

// recorder 记录所有回调，供按顺序断言
type recorder struct {
	mu        sync.Mutex
	local     int
	names     [game.NumPlayers]string
	started   []int
	moves     []*game.MoveResult
	standings []game.Standing
	rejected  []error
	chats     []string
	quits     []int
	disabled  bool
	fatal     error
}

func (r *recorder) OnPlayerList(localID int, names [game.NumPlayers]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.local, r.names = localID, names
}

func (r *recorder) OnJoin(seat int, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names[seat] = name
}

func (r *recorder) OnReady(int) {}

func (r *recorder) OnQuit(seat int, _ string, disabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quits = append(r.quits, seat)
	r.disabled = disabled
}

func (r *recorder) OnStart(current int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = append(r.started, current)
}

func (r *recorder) OnMove(result *game.MoveResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.moves = append(r.moves, result)
}

func (r *recorder) OnRoundOver(standings []game.Standing) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.standings = standings
}

func (r *recorder) OnRejected(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected = append(r.rejected, err)
}

func (r *recorder) OnChat(_ int, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chats = append(r.chats, text)
}

func (r *recorder) OnFatal(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fatal = err
}

func newSession(t *testing.T, local int) (*Session, *recorder, *testutil.RecordingSender) {
	t.Helper()

	rec := &recorder{}
	sender := &testutil.RecordingSender{}
	s := New(sender, rec)
	require.NoError(t, s.Handle(codec.MustNewMessage(protocol.MsgPlayerList, protocol.PlayerListPayload{
		LocalID: local,
		Names:   []string{"东", "南", "西", "北"},
	})))
	return s, rec, sender
}

// startMsg 未洗的牌：座位 0 拿到方块 3
func startMsg() *protocol.Message {
	return codec.MustNewMessage(protocol.MsgStart, protocol.StartPayload{
		Deck: convert.CardsToInfos(card.NewDeck().Cards()),
	})
}

func moveMsg(seat int, seq int, indices ...int) *protocol.Message {
	return codec.MustNewMessage(protocol.MsgMove, protocol.MovePayload{
		PlayerID: seat,
		Indices:  indices,
		Seq:      seq,
	})
}

func parseMove(t *testing.T, msg *protocol.Message) *protocol.MovePayload {
	t.Helper()
	require.NotNil(t, msg)
	require.Equal(t, protocol.MsgMove, msg.Type)
	payload, err := codec.ParsePayload[protocol.MovePayload](msg)
	require.NoError(t, err)
	return payload
}

func TestSession_PlayerListAndJoin(t *testing.T) {
	t.Parallel()

	s, rec, _ := newSession(t, 2)
	assert.Equal(t, 2, s.Game().LocalID())
	assert.Equal(t, 2, rec.local)
	assert.Equal(t, "西", rec.names[2])

	require.NoError(t, s.Handle(codec.MustNewMessage(protocol.MsgJoin, protocol.JoinPayload{PlayerID: 1, Name: "小南"})))
	assert.Equal(t, "小南", s.Game().Names()[1])
	assert.Equal(t, "小南", rec.names[1])
}

func TestSession_StartDealsAndCounts(t *testing.T) {
	t.Parallel()

	s, rec, _ := newSession(t, 1)
	require.NoError(t, s.Handle(startMsg()))

	assert.Equal(t, []int{0}, rec.started)
	assert.Equal(t, game.StateTurnInProgress, s.Game().State())
	hand := s.Game().Hand(1)
	require.Len(t, hand, game.CardsPerPlayer)
	assert.Equal(t, card.Card{Suit: card.Club, Rank: card.Rank3}, hand[0])

	assert.Equal(t, card.DeckSize-game.CardsPerPlayer, s.Counter().Total())
	assert.Equal(t, 3, s.Counter().GetRemaining()[card.Rank3])
}

func TestSession_AppliesBroadcastMoves(t *testing.T) {
	t.Parallel()

	s, rec, _ := newSession(t, 1)
	require.NoError(t, s.Handle(startMsg()))
	require.NoError(t, s.Handle(moveMsg(0, 1, 0)))

	require.Len(t, rec.moves, 1)
	assert.Equal(t, "{Single} [♦3]", rec.moves[0].Hand.String())
	assert.Equal(t, 1, s.Game().Seq())
	assert.Equal(t, 1, s.Game().Current())
	assert.Equal(t, 2, s.Counter().GetRemaining()[card.Rank3])

	// 自己出的牌在开局时已经扣过
	require.NoError(t, s.Handle(moveMsg(1, 2, 0)))
	assert.Equal(t, 2, s.Counter().GetRemaining()[card.Rank3])
	assert.Equal(t, 12, s.Game().Snapshot().CardsLeft[1])
}

func TestSession_SeqGapIsFatal(t *testing.T) {
	t.Parallel()

	s, _, _ := newSession(t, 1)
	require.NoError(t, s.Handle(startMsg()))

	err := s.Handle(moveMsg(0, 2, 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrProtocolViolation)
	assert.Equal(t, 0, s.Game().Seq())
}

func TestSession_DivergentMoveIsFatal(t *testing.T) {
	t.Parallel()

	s, _, _ := newSession(t, 1)
	require.NoError(t, s.Handle(startMsg()))

	// 座位 0 的首手牌不含方块 3，本地副本拒绝
	err := s.Handle(moveMsg(0, 1, 1))
	assert.ErrorIs(t, err, apperrors.ErrProtocolViolation)
}

func TestSession_BadStartDeck(t *testing.T) {
	t.Parallel()

	s, _, _ := newSession(t, 0)
	cards := card.NewDeck().Cards()[:51]
	err := s.Handle(codec.MustNewMessage(protocol.MsgStart, protocol.StartPayload{Deck: convert.CardsToInfos(cards)}))
	assert.ErrorIs(t, err, apperrors.ErrProtocolViolation)
	assert.Equal(t, game.StateWaiting, s.Game().State())
}

func TestSession_PlayPrevalidates(t *testing.T) {
	t.Parallel()

	s, _, sender := newSession(t, 0)
	require.NoError(t, s.Handle(startMsg()))

	tests := []struct {
		name    string
		indices []int
		want    error
	}{
		{"missing opening card", []int{1}, apperrors.ErrIllegalMove},
		{"not a hand", []int{0, 1}, apperrors.ErrInvalidHandShape},
		{"out of range", []int{13}, apperrors.ErrStaleReference},
		{"pass on free lead", nil, apperrors.ErrIllegalMove},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Play(tt.indices)
			assert.ErrorIs(t, err, tt.want)
			var moveErr *game.MoveError
			assert.True(t, errors.As(err, &moveErr))
		})
	}
	assert.Empty(t, sender.Sent())

	require.NoError(t, s.Play([]int{0}))
	payload := parseMove(t, sender.Last())
	assert.Equal(t, []int{0}, payload.Indices)
	assert.Equal(t, 1, payload.Seq)
	assert.Equal(t, -1, payload.PlayerID)
	assert.Equal(t, 0, s.Game().Seq(), "the replica waits for the broadcast")
}

func TestSession_PlayOutOfTurn(t *testing.T) {
	t.Parallel()

	s, _, sender := newSession(t, 2)
	require.NoError(t, s.Handle(startMsg()))

	assert.ErrorIs(t, s.Play([]int{0}), apperrors.ErrOutOfTurn)
	assert.ErrorIs(t, s.Pass(), apperrors.ErrOutOfTurn)
	assert.Empty(t, sender.Sent())
}

func TestSession_PlayNotSeated(t *testing.T) {
	t.Parallel()

	s := New(&testutil.RecordingSender{}, &recorder{})
	assert.ErrorIs(t, s.Play([]int{0}), apperrors.ErrNotSeated)
	assert.Nil(t, s.Hint())
}

func TestSession_PassAfterLead(t *testing.T) {
	t.Parallel()

	s, _, sender := newSession(t, 1)
	require.NoError(t, s.Handle(startMsg()))
	require.NoError(t, s.Handle(moveMsg(0, 1, 0)))

	require.NoError(t, s.Pass())
	payload := parseMove(t, sender.Last())
	assert.True(t, payload.IsPass())
	assert.Equal(t, 2, payload.Seq)
}

func TestSession_SendError(t *testing.T) {
	t.Parallel()

	s, _, sender := newSession(t, 0)
	require.NoError(t, s.Handle(startMsg()))
	sender.Err = errors.New("connection closed")

	assert.EqualError(t, s.Play([]int{0}), "connection closed")
	assert.EqualError(t, s.Ready(), "connection closed")
}

func TestSession_Hint(t *testing.T) {
	t.Parallel()

	s, _, _ := newSession(t, 0)
	assert.Nil(t, s.Hint())

	require.NoError(t, s.Handle(startMsg()))
	assert.Equal(t, []int{0}, s.Hint())
}

func TestSession_RemoteRejection(t *testing.T) {
	t.Parallel()

	s, rec, _ := newSession(t, 0)
	bad := []card.Card{{Suit: card.Spade, Rank: card.Rank4}}
	require.NoError(t, s.Handle(codec.NewErrorMessageWithText(
		protocol.ErrCodeIllegalMove, "首手牌必须包含 ♦3", convert.CardsToInfos(bad)...)))
	require.NoError(t, s.Handle(codec.NewErrorMessage(protocol.ErrCodeUnknown)))

	require.Len(t, rec.rejected, 2)
	assert.ErrorIs(t, rec.rejected[0], apperrors.ErrIllegalMove)
	var remote *RemoteError
	require.True(t, errors.As(rec.rejected[0], &remote))
	assert.Equal(t, bad, remote.Cards)
	assert.Contains(t, remote.Error(), "♠4")

	require.True(t, errors.As(rec.rejected[1], &remote))
	assert.Nil(t, remote.Kind)
	assert.Nil(t, errors.Unwrap(remote))
	assert.Equal(t, protocol.ErrorMessages[protocol.ErrCodeUnknown], remote.Error())
}

func TestSession_QuitMidRoundReadiesAgain(t *testing.T) {
	t.Parallel()

	s, rec, sender := newSession(t, 0)
	require.NoError(t, s.Handle(startMsg()))
	require.NoError(t, s.Handle(codec.MustNewMessage(protocol.MsgQuit, protocol.QuitPayload{PlayerID: 3})))

	assert.Equal(t, []int{3}, rec.quits)
	assert.True(t, rec.disabled)
	assert.True(t, s.Game().Disabled())
	assert.Empty(t, s.Game().Names()[3])
	require.NotNil(t, sender.Last())
	assert.Equal(t, protocol.MsgReady, sender.Last().Type)

	assert.ErrorIs(t, s.Play([]int{0}), apperrors.ErrTableDisabled)

	// 重新开局后恢复
	require.NoError(t, s.Handle(startMsg()))
	assert.False(t, s.Game().Disabled())
}

func TestSession_QuitBeforeStart(t *testing.T) {
	t.Parallel()

	s, rec, sender := newSession(t, 0)
	require.NoError(t, s.Handle(codec.MustNewMessage(protocol.MsgQuit, protocol.QuitPayload{PlayerID: 2})))
	require.NoError(t, s.Handle(codec.MustNewMessage(protocol.MsgQuit, protocol.QuitPayload{PlayerID: 9})))

	assert.Equal(t, []int{2}, rec.quits)
	assert.False(t, rec.disabled)
	assert.Empty(t, sender.Sent())
}

func TestSession_PlaysRoundToTheEnd(t *testing.T) {
	t.Parallel()

	s, rec, sender := newSession(t, 0)
	require.NoError(t, s.Handle(startMsg()))

	// 每个座位都出最小能压过的牌，压不过就不出
	for seq := 1; s.Game().State() == game.StateTurnInProgress; seq++ {
		require.Less(t, seq, 500, "round did not finish")
		current := s.Game().Current()
		require.NoError(t, s.Handle(moveMsg(current, seq, s.Game().Hint(current)...)))
	}

	require.Len(t, rec.standings, game.NumPlayers)
	assert.True(t, rec.standings[0].Winner())
	assert.Equal(t, 1, rec.standings[0].Place)
	assert.Equal(t, protocol.MsgReady, sender.Last().Type)

	last := rec.moves[len(rec.moves)-1]
	assert.True(t, last.RoundOver)
	assert.Equal(t, rec.standings[0].Seat, last.Seat)
}

func TestSession_ChatAndUnknown(t *testing.T) {
	t.Parallel()

	s, rec, sender := newSession(t, 0)
	require.NoError(t, s.Handle(codec.MustNewMessage(protocol.MsgChat, protocol.ChatPayload{PlayerID: 1, Text: "南: 你好"})))
	require.NoError(t, s.Handle(&protocol.Message{Type: "leaderboard"}))
	require.NoError(t, s.Handle(&protocol.Message{Type: protocol.MsgChat, Payload: []byte{0xff}}))
	assert.Equal(t, []string{"南: 你好"}, rec.chats)

	require.NoError(t, s.Chat("   "))
	assert.Empty(t, sender.Sent())
	require.NoError(t, s.Chat(" 出牌啊 "))
	payload, err := codec.ParsePayload[protocol.ChatPayload](sender.Last())
	require.NoError(t, err)
	assert.Equal(t, "出牌啊", payload.Text)
}

func TestSession_JoinAndReadySend(t *testing.T) {
	t.Parallel()

	s, _, sender := newSession(t, 0)
	require.NoError(t, s.Join("阿东"))
	require.NoError(t, s.Ready())

	sent := sender.Sent()
	require.Len(t, sent, 2)
	join, err := codec.ParsePayload[protocol.JoinPayload](sent[0])
	require.NoError(t, err)
	assert.Equal(t, "阿东", join.Name)
	assert.Equal(t, protocol.MsgReady, sent[1].Type)
}

func TestRun_FullIsFatal(t *testing.T) {
	t.Parallel()

	listener := &testutil.MockListener{}
	listener.On("OnFatal", mock.MatchedBy(apperrors.IsConnectionRejected)).Once()
	s := New(&testutil.RecordingSender{}, listener)

	in := make(chan *protocol.Message, 1)
	in <- codec.MustNewMessage(protocol.MsgFull, nil)

	err := s.Run(context.Background(), in)
	assert.True(t, apperrors.IsConnectionRejected(err))
	assert.Equal(t, game.StateWaiting, s.Game().State())
	listener.AssertExpectations(t)
}

func TestSession_FullOnlyFatalBeforeDeal(t *testing.T) {
	t.Parallel()

	s, _, _ := newSession(t, 1)
	err := s.Handle(codec.MustNewMessage(protocol.MsgFull, nil))
	assert.ErrorIs(t, err, apperrors.ErrConnectionRejected, "seated but not dealt yet")

	require.NoError(t, s.Handle(startMsg()))
	require.NoError(t, s.Handle(moveMsg(0, 1, 0)))
	require.NoError(t, s.Handle(codec.MustNewMessage(protocol.MsgFull, nil)))
	assert.Equal(t, game.StateTurnInProgress, s.Game().State())
	assert.Equal(t, 1, s.Game().Seq())
	assert.Equal(t, 1, s.Game().Current())
}

func TestRun_ClosedChannel(t *testing.T) {
	t.Parallel()

	listener := &testutil.MockListener{}
	listener.On("OnPlayerList", 0, mock.Anything).Once()
	listener.On("OnFatal", ErrConnectionClosed).Once()
	s := New(&testutil.RecordingSender{}, listener)

	in := make(chan *protocol.Message, 1)
	in <- codec.MustNewMessage(protocol.MsgPlayerList, protocol.PlayerListPayload{LocalID: 0, Names: []string{"东"}})
	close(in)

	assert.ErrorIs(t, s.Run(context.Background(), in), ErrConnectionClosed)
	listener.AssertExpectations(t)
}

func TestRun_ContextCancel(t *testing.T) {
	t.Parallel()

	s := New(&testutil.RecordingSender{}, &testutil.MockListener{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, make(chan *protocol.Message)) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return")
	}
}
