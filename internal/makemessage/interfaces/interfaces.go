// Package interfaces はmakemessageで使用するインターフェースを定義します
package interfaces

import "github.com/sdlpal/scripts/internal/makemessage/models"

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	FileExists(filename string) bool
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte, perm uint32) error
	MkdirAll(path string, perm uint32) error
	ReadDir(dirname string) ([]DirEntry, error)
}

// DirEntry はディレクトリエントリのインターフェース
type DirEntry interface {
	Name() string
	IsDir() bool
}

// ResourceLoader はゲームディレクトリからリソースを読み込むインターフェース
type ResourceLoader interface {
	Load(dir string) (models.Resources, error)
}

// Logger はログ出力のインターフェース
type Logger interface {
	Printf(format string, a ...any)
}
