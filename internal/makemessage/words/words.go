// Package words はWORD.DATの固定長スロットテーブルをデコードします
package words

import (
	"bytes"
	"fmt"

	"github.com/sdlpal/scripts/internal/makemessage/charset"
	"github.com/sdlpal/scripts/internal/makemessage/models"
)

const (
	// DefaultWidth は1スロットのデフォルトのバイト数
	DefaultWidth = 10

	// ReservedBase 以降のIDは固定の追加単語用に予約されています
	ReservedBase = 600
)

// Pad はテーブル長が width の倍数になるよう末尾を空白で埋めます。
// 元のスライスは変更しません。
func Pad(table []byte, width int) []byte {
	if width <= 0 || len(table)%width == 0 {
		return table
	}
	padded := make([]byte, len(table), len(table)+width-len(table)%width)
	copy(padded, table)
	return append(padded, bytes.Repeat([]byte{' '}, width-len(table)%width)...)
}

// TrimSlot はスロット末尾の空白とNULを取り除きます
func TrimSlot(slot []byte) []byte {
	return bytes.TrimRight(slot, "\x20\x00")
}

// Decode はテーブルの各スロットをデコードし、位置順に返します。
// 末尾の半端なスロットは空白で埋めてから扱います。
func Decode(table []byte, width int, enc charset.Encoding) ([]models.Word, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}

	table = Pad(table, width)
	count := len(table) / width
	if count > ReservedBase {
		return nil, fmt.Errorf("%w: %d スロット (上限 %d)", ErrTableTooLarge, count, ReservedBase)
	}

	result := make([]models.Word, 0, count)
	for i := 0; i < count; i++ {
		text, err := enc.DecodeStrict(TrimSlot(table[i*width : (i+1)*width]))
		if err != nil {
			return nil, NewSlotError(i, err)
		}
		result = append(result, models.Word{Index: i, Text: text})
	}

	return result, nil
}
