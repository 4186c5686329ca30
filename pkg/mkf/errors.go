package mkf

import "errors"

var (
	// ErrInvalidHeader はオフセット表が不正な場合のエラー
	ErrInvalidHeader = errors.New("MKFのオフセット表が不正です")

	// ErrInvalidChunk はチャンクの範囲が不正な場合のエラー
	ErrInvalidChunk = errors.New("MKFのチャンク範囲が不正です")

	// ErrChunkOutOfRange は存在しないチャンクを参照した場合のエラー
	ErrChunkOutOfRange = errors.New("チャンク番号が範囲外です")
)
