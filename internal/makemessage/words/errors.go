package words

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWidth はスロット幅が不正な場合のエラー
	ErrInvalidWidth = errors.New("単語の幅が不正です")

	// ErrTableTooLarge は予約済みIDに届くほどスロットがある場合のエラー
	ErrTableTooLarge = errors.New("単語テーブルが予約済みIDの範囲に達しています")
)

// SlotError は単語スロットのデコードエラー
type SlotError struct {
	Index int   // スロット番号
	Err   error // 元のエラー
}

// Error はエラーメッセージを返します
func (e *SlotError) Error() string {
	return fmt.Sprintf("単語 %d: %v", e.Index, e.Err)
}

// Unwrap は元のエラーを返します
func (e *SlotError) Unwrap() error {
	return e.Err
}

// NewSlotError は新しいSlotErrorを作成します
func NewSlotError(index int, err error) *SlotError {
	return &SlotError{
		Index: index,
		Err:   err,
	}
}
