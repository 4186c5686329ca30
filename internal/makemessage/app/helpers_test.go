package app

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sdlpal/scripts/internal/makemessage/charset"
	"github.com/sdlpal/scripts/internal/makemessage/models"
	"github.com/sdlpal/scripts/internal/makemessage/script"
)

// gameFixture はテスト用のゲームリソースを組み立てます
type gameFixture struct {
	enc      charset.Encoding
	messages []string
	records  []script.Record
	words    []string
	width    int
	desc     string
}

func (f gameFixture) build(t *testing.T) models.Resources {
	t.Helper()

	// M.MSG とインデックス表
	var pool []byte
	index := make([]byte, 4*(len(f.messages)+1))
	for i, text := range f.messages {
		binary.LittleEndian.PutUint32(index[i*4:], uint32(len(pool)))
		raw, err := f.enc.Encode(text)
		require.NoError(t, err)
		pool = append(pool, raw...)
	}
	binary.LittleEndian.PutUint32(index[len(f.messages)*4:], uint32(len(pool)))

	stream := make([]byte, len(f.records)*script.RecordSize)
	for i, r := range f.records {
		r.Marshal(stream[i*script.RecordSize:])
	}

	// SSS.MKF: 5チャンク、チャンク3がインデックス、チャンク4がスクリプト
	const table = 24
	sss := make([]byte, table)
	offsets := []uint32{table, table, table, table, table + uint32(len(index)), table + uint32(len(index)+len(stream))}
	for i, off := range offsets {
		binary.LittleEndian.PutUint32(sss[i*4:], off)
	}
	sss = append(sss, index...)
	sss = append(sss, stream...)

	width := f.width
	if width == 0 {
		width = 10
	}
	var wordTable []byte
	for _, w := range f.words {
		raw, err := f.enc.Encode(w)
		require.NoError(t, err)
		require.LessOrEqual(t, len(raw), width)
		wordTable = append(wordTable, raw...)
		wordTable = append(wordTable, bytes.Repeat([]byte{' '}, width-len(raw))...)
	}

	res := models.Resources{SSS: sss, Messages: pool, Words: wordTable}
	if f.desc != "" {
		raw, err := f.enc.Encode(f.desc)
		require.NoError(t, err)
		res.Description = raw
	}
	return res
}

func msg(id uint16) script.Record {
	return script.Record{Opcode: script.OpMessage, Arg1: id}
}

func clearOp() script.Record {
	return script.Record{Opcode: script.OpClear}
}

func other() script.Record {
	return script.Record{Opcode: 0x0001}
}

// defaultFixture は2つのグループに分かれる簡体字版のデータ
func defaultFixture() gameFixture {
	return gameFixture{
		enc:      charset.GBK,
		messages: []string{"李逍遥：", "你好", "再见"},
		records:  []script.Record{msg(0), msg(1), clearOp(), msg(2), other(), msg(0)},
		words:    []string{"攻击", "防御"},
		desc:     "; 说明\r\n1=止血草 (恢复体力)\r\n",
	}
}
