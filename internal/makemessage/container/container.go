// Package container はSSS.MKFからインデックステーブルとスクリプトストリームの領域を切り出します
package container

import (
	"encoding/binary"
	"fmt"

	"github.com/sdlpal/scripts/pkg/mkf"
)

const (
	// HeaderOffset は領域オフセット3つが格納されている位置
	HeaderOffset = 12

	// HeaderSize はオフセットを読むのに必要な最小サイズ
	HeaderSize = HeaderOffset + 12
)

// Offsets はSSS.MKFヘッダから読み取った領域境界
type Offsets struct {
	IndexBegin  uint32
	ScriptBegin uint32
	FileEnd     uint32
}

// Archive はSSS.MKFとM.MSGから得られる3つの領域を保持します。
// IndexTable と ScriptStream は Raw のビューで、コピーではありません。
type Archive struct {
	Raw          []byte
	Offsets      Offsets
	IndexTable   []byte
	ScriptStream []byte
	MessagePool  []byte
}

// Read はSSS.MKFのバッファから領域を切り出し、M.MSGのバッファを結び付けます
func Read(sss, pool []byte) (*Archive, error) {
	if len(sss) < HeaderSize {
		return nil, NewArchiveError("ヘッダ読み込み", Offsets{}, fmt.Errorf("%w: %d バイトしかありません", ErrMalformedArchive, len(sss)))
	}

	off := Offsets{
		IndexBegin:  binary.LittleEndian.Uint32(sss[HeaderOffset:]),
		ScriptBegin: binary.LittleEndian.Uint32(sss[HeaderOffset+4:]),
		FileEnd:     binary.LittleEndian.Uint32(sss[HeaderOffset+8:]),
	}

	if off.IndexBegin > off.ScriptBegin || off.ScriptBegin > off.FileEnd {
		return nil, NewArchiveError("オフセット検証", off, ErrMalformedArchive)
	}
	if uint64(off.FileEnd) > uint64(len(sss)) {
		return nil, NewArchiveError("オフセット検証", off, fmt.Errorf("%w: 終端 %d がファイルサイズ %d を超えています", ErrMalformedArchive, off.FileEnd, len(sss)))
	}

	return &Archive{
		Raw:          sss,
		Offsets:      off,
		IndexTable:   sss[off.IndexBegin:off.ScriptBegin],
		ScriptStream: sss[off.ScriptBegin:off.FileEnd],
		MessagePool:  pool,
	}, nil
}

// MessageSlots はインデックステーブルから参照可能なメッセージIDの数を返します
func (a *Archive) MessageSlots() int {
	if len(a.IndexTable) < 8 {
		return 0
	}
	return (len(a.IndexTable)-8)/4 + 1
}

// ChunkCount はSSS.MKFをMKFとして解釈した場合のチャンク数を返します。
// チャンクテーブルが壊れている場合は0を返します。
func (a *Archive) ChunkCount() int {
	arc, err := mkf.Parse(a.Raw)
	if err != nil {
		return 0
	}
	return arc.ChunkCount()
}
