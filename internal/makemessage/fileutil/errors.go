package fileutil

import "errors"

var (
	// ErrCreateDirectory は出力先ディレクトリの作成に失敗した場合のエラー
	ErrCreateDirectory = errors.New("出力先ディレクトリの作成に失敗しました")

	// ErrWriteContent は内容の書き込みに失敗した場合のエラー
	ErrWriteContent = errors.New("内容の書き込みに失敗しました")

	// ErrReadDirectory はディレクトリ内のファイル一覧を取得できない場合のエラー
	ErrReadDirectory = errors.New("ディレクトリ内のファイル一覧を取得できませんでした")

	// ErrReadFile はリソースの読み込みに失敗した場合のエラー
	ErrReadFile = errors.New("リソースの読み込みに失敗しました")

	// ErrResourceNotFound は必須のリソースが見つからない場合のエラー
	ErrResourceNotFound = errors.New("必要なリソースファイルが見つかりませんでした")
)
