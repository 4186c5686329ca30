// Package mkf はSDLPALのMKFコンテナ（SSS.MKF、FBP.MKF など）を読み込むためのパッケージです。
//
// MKFファイルの先頭はリトルエンディアンの uint32 オフセット表で、
// 最初のオフセットが表自体のサイズを兼ねます。チャンク i は offset[i] から offset[i+1] までです。
//
// 基本的な使い方:
//
//	archive := mkf.NewMKFArchive()
//	if ok, err := archive.Open("SSS.MKF"); ok {
//	    defer archive.Close()
//	    for archive.EnumFirst(); ; {
//	        name := archive.GetEntryName()
//	        // エントリを処理...
//	        if !archive.EnumNext() {
//	            break
//	        }
//	    }
//	}
package mkf

import "io"

// Archive はアーカイブファイルの基本インターフェース
type Archive interface {
	// Open はアーカイブファイルを開きます
	Open(filename string) (bool, error)

	// Close はアーカイブファイルを閉じます
	Close() error

	// EnumFirst は最初のエントリに移動します
	EnumFirst() bool

	// EnumNext は次のエントリに移動します
	EnumNext() bool

	// GetEntryName は現在のエントリ名を取得します
	GetEntryName() string

	// GetOriginalSize は元のサイズを取得します
	GetOriginalSize() uint32

	// GetCompressedSize は格納サイズを取得します
	GetCompressedSize() uint32

	// GetEntry は現在のエントリを取得します
	GetEntry() Entry

	// Extract は現在のエントリを抽出します。
	// callback は進捗報告用のコールバック関数で、falseを返すと処理を中断します。
	Extract(w io.Writer, callback func(string, interface{}) bool, user interface{}) bool

	// ExtractAll は全てのエントリを dir に抽出します。
	ExtractAll(dir string, callback func(string, interface{}) bool, user interface{}) bool
}

// Entry はアーカイブ内のエントリを表すインターフェース
type Entry interface {
	// GetEntryName はエントリ名を取得します
	GetEntryName() string

	// GetOriginalSize は元のサイズを取得します
	GetOriginalSize() uint32

	// GetCompressedSize は格納サイズを取得します
	GetCompressedSize() uint32

	// Extract はエントリを抽出します
	Extract(w io.Writer, callback func(string, interface{}) bool, user interface{}) bool
}
