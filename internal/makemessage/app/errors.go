package app

import "errors"

var (
	// ErrLoadResources はリソースの読み込みに失敗した場合のエラー
	ErrLoadResources = errors.New("リソースの読み込みに失敗しました")

	// ErrReadArchive はSSS.MKFの解析に失敗した場合のエラー
	ErrReadArchive = errors.New("SSS.MKFの解析に失敗しました")

	// ErrDecodeWords はWORD.DATのデコードに失敗した場合のエラー
	ErrDecodeWords = errors.New("WORD.DATのデコードに失敗しました")

	// ErrSegment はスクリプトの解析に失敗した場合のエラー
	ErrSegment = errors.New("スクリプトの解析に失敗しました")

	// ErrSaveFile はファイルの保存に失敗した場合のエラー
	ErrSaveFile = errors.New("ファイルの保存に失敗しました")

	// ErrSaveManifest はレポートの保存に失敗した場合のエラー
	ErrSaveManifest = errors.New("レポートの保存に失敗しました")
)
