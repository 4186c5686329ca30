// Package models はmakemessageで使用するデータモデルを定義します
package models

// Word は単語テーブルの1エントリを表します
type Word struct {
	Index int
	Text  string
}

// LineKind はメッセージブロック内の行の種類
type LineKind int

const (
	LineMessage LineKind = iota // メッセージ本文
	LineClear                   // 画面クリア指示
)

// ClearMarker は画面クリア指示を表す行
const ClearMarker = "[CLEAR MESSAGE]"

// Line はメッセージブロック内の1行を表します
type Line struct {
	Kind LineKind
	ID   int    // LineMessage の場合のメッセージID
	Text string // LineClear の場合は ClearMarker
}

// Block は連続したメッセージをまとめた翻訳単位です
type Block struct {
	StartID int
	EndID   int
	Lines   []Line
	Comment string // コメント生成が有効な場合のみ
}

// MessageCount はブロックに含まれるメッセージ行の数を返します
func (b Block) MessageCount() int {
	n := 0
	for _, l := range b.Lines {
		if l.Kind == LineMessage {
			n++
		}
	}
	return n
}

// ClearCount はブロックに含まれる画面クリア指示の数を返します
func (b Block) ClearCount() int {
	return len(b.Lines) - b.MessageCount()
}

// Resources はゲームディレクトリから読み込んだリソースを表します
type Resources struct {
	SSS         []byte
	Messages    []byte
	Words       []byte
	Description []byte // DESC.DAT がない場合は nil
}

// Extraction は抽出結果全体を表します
type Extraction struct {
	Words        []Word
	Blocks       []Block
	MessageCount int
	Description  string
	HasDesc      bool
	ChunkCount   int
}
