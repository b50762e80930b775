// Package input parses the command line typed under the table.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind 命令类型
type Kind int

const (
	KindPlay    Kind = iota // 出牌：空格分隔的手牌下标
	KindPass                // p：不出
	KindChat                // /文字：聊天
	KindHint                // h：提示
	KindReady               // r：准备
	KindCounter             // c：切换记牌器
	KindHelp                // ?：显示/隐藏帮助
	KindQuit                // q：退出
)

// Command 一条解析后的命令
type Command struct {
	Kind    Kind
	Indices []int  // KindPlay
	Text    string // KindChat
}

// ErrEmpty 空输入
var ErrEmpty = errors.New("请输入命令")

var keywords = map[string]Kind{
	"p":    KindPass,
	"pass": KindPass,
	"h":    KindHint,
	"r":    KindReady,
	"c":    KindCounter,
	"?":    KindHelp,
	"q":    KindQuit,
}

// Parse 解析输入。数字按空格或逗号分隔，指向手牌下面标注的序号。
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, ErrEmpty
	}
	if text, ok := strings.CutPrefix(line, "/"); ok {
		return Command{Kind: KindChat, Text: strings.TrimSpace(text)}, nil
	}
	if kind, ok := keywords[strings.ToLower(line)]; ok {
		return Command{Kind: kind}, nil
	}

	fields := strings.FieldsFunc(line, func(r rune) bool { return r == ' ' || r == ',' })
	indices := make([]int, 0, len(fields))
	for _, f := range fields {
		idx, err := strconv.Atoi(f)
		if err != nil || idx < 0 {
			return Command{}, fmt.Errorf("无法识别的输入: %q (输入 ? 查看帮助)", f)
		}
		indices = append(indices, idx)
	}
	return Command{Kind: KindPlay, Indices: indices}, nil
}

// FormatIndices 把下标格式化为可以直接输入的形式
func FormatIndices(indices []int) string {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, " ")
}
