// Package fileutil はリソースファイルの検索・読み込みと出力ファイルの保存を行います
package fileutil

import (
	"fmt"
	"hash/crc32"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sdlpal/scripts/internal/makemessage/interfaces"
	"github.com/sdlpal/scripts/internal/makemessage/models"
)

// リソースファイル名（大文字小文字は区別しない）
const (
	SSSFile         = "sss.mkf"
	MessageFile     = "m.msg"
	WordFile        = "word.dat"
	DescriptionFile = "desc.dat"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CRC32 はバッファのCRC32を "0x..." 形式で返します
func CRC32(data []byte) string {
	return fmt.Sprintf("%#x", crc32.ChecksumIEEE(data))
}

// SaveToFile は内容をUTF-8で保存します。bom が true ならBOMを付けます。
func SaveToFile(fs interfaces.FileSystem, outputPath, content string, bom bool) error {
	dir := filepath.Dir(outputPath)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateDirectory, err)
	}

	data := make([]byte, 0, len(utf8BOM)+len(content))
	if bom {
		data = append(data, utf8BOM...)
	}
	data = append(data, content...)

	if err := fs.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteContent, err)
	}
	return nil
}

// ResourceLoader はゲームディレクトリからリソースを探して読み込みます
type ResourceLoader struct {
	fs interfaces.FileSystem
}

// NewResourceLoader は新しいResourceLoaderを作成します
func NewResourceLoader(fs interfaces.FileSystem) *ResourceLoader {
	return &ResourceLoader{fs: fs}
}

// Find はディレクトリ内のリソースファイルのパスを、小文字化したファイル名をキーにして返します
func (l *ResourceLoader) Find(dir string) (map[string]string, error) {
	entries, err := l.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadDirectory, dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	found := make(map[string]string)
	for _, name := range names {
		key := strings.ToLower(name)
		switch key {
		case SSSFile, MessageFile, WordFile, DescriptionFile:
			if _, ok := found[key]; !ok {
				found[key] = filepath.Join(dir, name)
			}
		}
	}
	return found, nil
}

// Load はSSS.MKF、M.MSG、WORD.DAT と（あれば）DESC.DAT を読み込みます
func (l *ResourceLoader) Load(dir string) (models.Resources, error) {
	found, err := l.Find(dir)
	if err != nil {
		return models.Resources{}, err
	}

	var missing []string
	for _, name := range []string{SSSFile, MessageFile, WordFile} {
		if _, ok := found[name]; !ok {
			missing = append(missing, strings.ToUpper(name))
		}
	}
	if len(missing) > 0 {
		return models.Resources{}, fmt.Errorf("%w: %s (%s)", ErrResourceNotFound, strings.Join(missing, ", "), dir)
	}

	var res models.Resources
	targets := []struct {
		name string
		dst  *[]byte
	}{
		{SSSFile, &res.SSS},
		{MessageFile, &res.Messages},
		{WordFile, &res.Words},
		{DescriptionFile, &res.Description},
	}
	for _, t := range targets {
		path, ok := found[t.name]
		if !ok {
			continue
		}
		data, err := l.fs.ReadFile(path)
		if err != nil {
			return models.Resources{}, fmt.Errorf("%w: %s: %w", ErrReadFile, path, err)
		}
		*t.dst = data
	}

	return res, nil
}
