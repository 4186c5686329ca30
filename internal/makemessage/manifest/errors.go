package manifest

import "errors"

// ErrEncode はYAMLへの変換に失敗した場合のエラー
var ErrEncode = errors.New("レポートのYAML変換に失敗しました")
