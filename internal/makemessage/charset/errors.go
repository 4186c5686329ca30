package charset

import "errors"

var (
	// ErrUnsupported はサポートされていない文字コードが指定された場合のエラー
	ErrUnsupported = errors.New("サポートされていない文字コードです")

	// ErrEncoding は文字コード変換に失敗した場合のエラー
	ErrEncoding = errors.New("文字コード変換エラー")
)
