package mkf

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Chunk はMKF内の1チャンクを表します
type Chunk struct {
	Index  int
	Offset uint32
	Size   uint32
	parent *MKFArchive
}

// GetEntryName はチャンク番号から作ったエントリ名を返します
func (c *Chunk) GetEntryName() string {
	return fmt.Sprintf("%04d.bin", c.Index)
}

// GetOriginalSize は元のサイズを取得します
func (c *Chunk) GetOriginalSize() uint32 {
	return c.Size
}

// GetCompressedSize は格納サイズを取得します。
// MKF自体は圧縮を持たないため元のサイズと同じです。
func (c *Chunk) GetCompressedSize() uint32 {
	return c.Size
}

// Extract はチャンクを抽出します
func (c *Chunk) Extract(w io.Writer, callback func(string, interface{}) bool, user interface{}) bool {
	if c.parent == nil {
		return false
	}
	return c.parent.ExtractEntry(c, w, callback, user)
}

// MKFArchive はメモリ上に読み込んだMKFコンテナ
type MKFArchive struct {
	data     []byte
	chunks   []Chunk
	curIndex int
}

// NewMKFArchive は新しいMKFArchiveを作成します
func NewMKFArchive() *MKFArchive {
	return &MKFArchive{
		chunks:   make([]Chunk, 0),
		curIndex: -1,
	}
}

// Parse はバイト列をMKFとして解析します
func Parse(data []byte) (*MKFArchive, error) {
	a := NewMKFArchive()
	if err := a.load(data); err != nil {
		return nil, err
	}
	return a, nil
}

// Open はアーカイブファイルを開きます
func (a *MKFArchive) Open(filename string) (bool, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return false, err
	}
	if err := a.load(data); err != nil {
		return false, fmt.Errorf("%s: %w", filename, err)
	}
	return true, nil
}

func (a *MKFArchive) load(data []byte) error {
	if len(data) < 4 {
		return fmt.Errorf("%w: %d バイトしかありません", ErrInvalidHeader, len(data))
	}

	tableSize := binary.LittleEndian.Uint32(data)
	if tableSize < 4 || tableSize%4 != 0 || uint64(tableSize) > uint64(len(data)) {
		return fmt.Errorf("%w: オフセット表のサイズ %d", ErrInvalidHeader, tableSize)
	}

	count := int(tableSize/4) - 1
	chunks := make([]Chunk, 0, count)
	for i := 0; i < count; i++ {
		begin := binary.LittleEndian.Uint32(data[i*4:])
		end := binary.LittleEndian.Uint32(data[(i+1)*4:])
		if begin > end || uint64(end) > uint64(len(data)) {
			return fmt.Errorf("%w: チャンク %d [%#x:%#x] (ファイルサイズ %d)", ErrInvalidChunk, i, begin, end, len(data))
		}
		chunks = append(chunks, Chunk{
			Index:  i,
			Offset: begin,
			Size:   end - begin,
			parent: a,
		})
	}

	a.data = data
	a.chunks = chunks
	a.curIndex = -1
	return nil
}

// Close はアーカイブを閉じます
func (a *MKFArchive) Close() error {
	a.data = nil
	a.chunks = a.chunks[:0]
	a.curIndex = -1
	return nil
}

// ChunkCount はチャンク数を返します
func (a *MKFArchive) ChunkCount() int {
	return len(a.chunks)
}

// ChunkData はチャンク i の内容を返します。返すスライスは内部バッファのビューです。
func (a *MKFArchive) ChunkData(i int) ([]byte, error) {
	if i < 0 || i >= len(a.chunks) {
		return nil, fmt.Errorf("%w: %d (チャンク数 %d)", ErrChunkOutOfRange, i, len(a.chunks))
	}
	c := a.chunks[i]
	return a.data[c.Offset : c.Offset+c.Size], nil
}

// EnumFirst は最初のエントリに移動します
func (a *MKFArchive) EnumFirst() bool {
	if len(a.chunks) == 0 {
		return false
	}
	a.curIndex = 0
	return true
}

// EnumNext は次のエントリに移動します
func (a *MKFArchive) EnumNext() bool {
	if a.curIndex < 0 || a.curIndex >= len(a.chunks)-1 {
		return false
	}
	a.curIndex++
	return true
}

func (a *MKFArchive) current() *Chunk {
	if a.curIndex < 0 || a.curIndex >= len(a.chunks) {
		return nil
	}
	return &a.chunks[a.curIndex]
}

// GetEntryName は現在のエントリ名を取得します
func (a *MKFArchive) GetEntryName() string {
	if c := a.current(); c != nil {
		return c.GetEntryName()
	}
	return ""
}

// GetOriginalSize は元のサイズを取得します
func (a *MKFArchive) GetOriginalSize() uint32 {
	if c := a.current(); c != nil {
		return c.Size
	}
	return 0
}

// GetCompressedSize は格納サイズを取得します
func (a *MKFArchive) GetCompressedSize() uint32 {
	return a.GetOriginalSize()
}

// GetEntry は現在のエントリを取得します
func (a *MKFArchive) GetEntry() Entry {
	if c := a.current(); c != nil {
		return c
	}
	return nil
}

// Extract は現在のエントリを抽出します
func (a *MKFArchive) Extract(w io.Writer, callback func(string, interface{}) bool, user interface{}) bool {
	c := a.current()
	if c == nil {
		return false
	}
	return a.ExtractEntry(c, w, callback, user)
}

// ExtractEntry は指定されたチャンクを抽出します
func (a *MKFArchive) ExtractEntry(c *Chunk, w io.Writer, callback func(string, interface{}) bool, user interface{}) bool {
	if callback != nil {
		if !callback(c.GetEntryName(), user) {
			return false
		}
		if !callback(" extracting...", user) {
			return false
		}
	}

	data, err := a.ChunkData(c.Index)
	if err != nil {
		return false
	}
	if _, err := w.Write(data); err != nil {
		return false
	}

	if callback != nil {
		if !callback("finished.\n", user) {
			return false
		}
	}
	return true
}

// ExtractAll は全てのチャンクを dir に書き出します
func (a *MKFArchive) ExtractAll(dir string, callback func(string, interface{}) bool, user interface{}) bool {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false
	}
	for i := range a.chunks {
		c := &a.chunks[i]
		f, err := os.Create(filepath.Join(dir, c.GetEntryName()))
		if err != nil {
			return false
		}
		ok := a.ExtractEntry(c, f, callback, user)
		if err := f.Close(); err != nil || !ok {
			return false
		}
	}
	return true
}
