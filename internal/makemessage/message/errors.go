package message

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange はインデックステーブルの範囲外のIDが参照された場合のエラー
var ErrIndexOutOfRange = errors.New("メッセージIDがインデックスの範囲外です")

// LookupError はメッセージ参照時のエラー
type LookupError struct {
	ID     int   // メッセージID
	Offset int   // インデックステーブル内の位置
	Err    error // 元のエラー
}

// Error はエラーメッセージを返します
func (e *LookupError) Error() string {
	return fmt.Sprintf("メッセージ %d (offset %#x): %v", e.ID, e.Offset, e.Err)
}

// Unwrap は元のエラーを返します
func (e *LookupError) Unwrap() error {
	return e.Err
}

// NewLookupError は新しいLookupErrorを作成します
func NewLookupError(id, offset int, err error) *LookupError {
	return &LookupError{
		ID:     id,
		Offset: offset,
		Err:    err,
	}
}
