package script

import "encoding/binary"

const (
	// RecordSize はスクリプトレコード1件のバイト数
	RecordSize = 8

	// OpMessage はメッセージ表示命令（Arg1 がメッセージID）
	OpMessage uint16 = 0xFFFF

	// OpClear は画面クリア命令
	OpClear uint16 = 0x008E
)

// Record はスクリプトストリームの1命令です
type Record struct {
	Opcode uint16
	Arg1   uint16
	Arg2   uint16
	Arg3   uint16
}

// ParseRecord は8バイトのリトルエンディアン列からレコードを読み取ります。
// 呼び出し側で長さを保証してください。
func ParseRecord(b []byte) Record {
	return Record{
		Opcode: binary.LittleEndian.Uint16(b[0:]),
		Arg1:   binary.LittleEndian.Uint16(b[2:]),
		Arg2:   binary.LittleEndian.Uint16(b[4:]),
		Arg3:   binary.LittleEndian.Uint16(b[6:]),
	}
}

// Marshal はレコードを8バイトに書き込みます
func (r Record) Marshal(dst []byte) {
	binary.LittleEndian.PutUint16(dst[0:], r.Opcode)
	binary.LittleEndian.PutUint16(dst[2:], r.Arg1)
	binary.LittleEndian.PutUint16(dst[4:], r.Arg2)
	binary.LittleEndian.PutUint16(dst[6:], r.Arg3)
}

// Records はストリームをレコード列に分解します。末尾の端数は無視します。
func Records(stream []byte) []Record {
	n := len(stream) / RecordSize
	records := make([]Record, n)
	for i := range records {
		records[i] = ParseRecord(stream[i*RecordSize:])
	}
	return records
}
