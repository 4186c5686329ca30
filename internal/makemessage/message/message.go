// Package message はインデックステーブルを介してM.MSGからメッセージ本文を取り出します
package message

import (
	"encoding/binary"

	"github.com/sdlpal/scripts/internal/makemessage/charset"
	"github.com/sdlpal/scripts/internal/makemessage/container"
)

// EntrySize はインデックスエントリ1件のバイト数（begin, end の2値）
const EntrySize = 8

// Span はメッセージプール内のバイト範囲
type Span struct {
	Begin uint32
	End   uint32
}

// Lookup はインデックステーブルからIDに対応する範囲を読み取ります。
// エントリは4バイト間隔で並び、ID p の範囲は p*4 から8バイトです。
func Lookup(index []byte, id int) (Span, error) {
	if id < 0 || id*4+EntrySize > len(index) {
		return Span{}, NewLookupError(id, id*4, ErrIndexOutOfRange)
	}
	off := id * 4
	return Span{
		Begin: binary.LittleEndian.Uint32(index[off:]),
		End:   binary.LittleEndian.Uint32(index[off+4:]),
	}, nil
}

// Resolve はメッセージIDに対応する本文をデコードして返します。
// 変換できないバイトは置換文字になります。
// 範囲はメッセージプールに収まるよう切り詰め、空になる範囲は空文字列になります。
func Resolve(pool, index []byte, id int, enc charset.Encoding) (string, error) {
	span, err := Lookup(index, id)
	if err != nil {
		return "", err
	}
	return enc.DecodeLossy(span.Slice(pool)), nil
}

// Slice はプールから範囲を切り出します。
// 終了位置はプールの長さに切り詰め、開始位置が終了位置以降なら空を返します。
func (s Span) Slice(pool []byte) []byte {
	end := min(uint64(s.End), uint64(len(pool)))
	if uint64(s.Begin) >= end {
		return nil
	}
	return pool[s.Begin:end]
}

// Resolver はアーカイブと文字コードを束ねてメッセージを引きます
type Resolver struct {
	archive *container.Archive
	enc     charset.Encoding
}

// NewResolver は新しいResolverを作成します
func NewResolver(archive *container.Archive, enc charset.Encoding) *Resolver {
	return &Resolver{
		archive: archive,
		enc:     enc,
	}
}

// Message はIDに対応する本文を返します
func (r *Resolver) Message(id int) (string, error) {
	return Resolve(r.archive.MessagePool, r.archive.IndexTable, id, r.enc)
}
