// Package description はDESC.DAT（DOS版のアイテム・仙術説明）を説明セクションの本文に変換します
package description

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/sdlpal/scripts/internal/makemessage/charset"
)

// parenthetical は行内の最初の '(' から最後の ')' までに一致します
var parenthetical = regexp.MustCompile(`\(.*\)`)

// Transform は説明データをデコードし、行ごとに変換して返します。
// データが空の場合は ok が false になります。
func Transform(blob []byte, enc charset.Encoding) (text string, ok bool) {
	if len(blob) == 0 {
		return "", false
	}

	lines := SplitLines(enc.DecodeLossy(blob))
	for i, line := range lines {
		lines[i] = TransformLine(line)
	}
	return strings.Join(lines, "\n"), true
}

// TransformLine は1行を変換します。
// '=' を含む行は括弧書きを取り除き、それ以外の行はコメントにします。
func TransformLine(line string) string {
	if strings.Contains(line, "=") {
		return parenthetical.ReplaceAllString(line, "")
	}
	return "#" + line
}

// SplitLines は文字列を改行で分割します。
// \r\n, \r, \n のほか \v, \f, \x1c-\x1e, U+0085, U+2028, U+2029 も行区切りとして扱い、
// 末尾の改行は空行を作りません。
func SplitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}
		lines = append(lines, s[start:i])
		i += size
		if r == '\r' && i < len(s) && s[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}
