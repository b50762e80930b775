package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Command
	}{
		{"indices", "3 5 7", Command{Kind: KindPlay, Indices: []int{3, 5, 7}}},
		{"comma separated", "0,1", Command{Kind: KindPlay, Indices: []int{0, 1}}},
		{"padded", "  4  ", Command{Kind: KindPlay, Indices: []int{4}}},
		{"pass", "p", Command{Kind: KindPass}},
		{"pass upper", "PASS", Command{Kind: KindPass}},
		{"chat", "/ 快点吧 ", Command{Kind: KindChat, Text: "快点吧"}},
		{"hint", "h", Command{Kind: KindHint}},
		{"ready", "r", Command{Kind: KindReady}},
		{"counter", "C", Command{Kind: KindCounter}},
		{"help", "?", Command{Kind: KindHelp}},
		{"quit", "q", Command{Kind: KindQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cmd, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cmd)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	_, err := Parse("   ")
	assert.ErrorIs(t, err, ErrEmpty)

	for _, in := range []string{"3 x", "-1", "D3"} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}

func TestFormatIndices(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0 4 12", FormatIndices([]int{0, 4, 12}))
	assert.Empty(t, FormatIndices(nil))
}
