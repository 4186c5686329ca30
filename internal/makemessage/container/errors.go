package container

import (
	"errors"
	"fmt"
)

// ErrMalformedArchive はSSS.MKFのヘッダやオフセットが不正な場合のエラー
var ErrMalformedArchive = errors.New("不正なアーカイブです")

// ArchiveError はアーカイブ解析時のエラーにオフセット情報を付加します
type ArchiveError struct {
	Op      string  // 実行していた操作
	Offsets Offsets // 読み取ったオフセット
	Err     error   // 元のエラー
}

// Error はエラーメッセージを返します
func (e *ArchiveError) Error() string {
	return fmt.Sprintf("%s (index=%#x script=%#x end=%#x): %v",
		e.Op, e.Offsets.IndexBegin, e.Offsets.ScriptBegin, e.Offsets.FileEnd, e.Err)
}

// Unwrap は元のエラーを返します
func (e *ArchiveError) Unwrap() error {
	return e.Err
}

// NewArchiveError は新しいArchiveErrorを作成します
func NewArchiveError(op string, off Offsets, err error) *ArchiveError {
	return &ArchiveError{
		Op:      op,
		Offsets: off,
		Err:     err,
	}
}
