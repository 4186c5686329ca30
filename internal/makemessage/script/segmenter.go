// Package script はスクリプトストリームを走査し、メッセージブロックを再構成します
package script

import (
	"fmt"
	"strings"

	"github.com/sdlpal/scripts/internal/makemessage/models"
)

// Lookup はメッセージIDから本文を引くインターフェース
type Lookup interface {
	Message(id int) (string, error)
}

// Options はセグメンタの動作設定
type Options struct {
	// Compact はインデックス圧縮されたリソース向けの分割判定を有効にします
	Compact bool
	// Comment は各ブロックに原文コメントを付けます
	Comment bool
}

// Result はセグメンテーションの結果
type Result struct {
	Blocks       []models.Block
	MessageCount int
}

type state int

const (
	stateIdle state = iota
	stateInGroup
)

// Segmenter はメッセージグループを追跡する状態機械です
type Segmenter struct {
	lookup Lookup
	opts   Options

	state        state
	lastID       int
	continuation int // グループを開いてから追加したメッセージ数
	count        int // 処理したメッセージの総数

	current models.Block
	comment strings.Builder
	blocks  []models.Block
}

// NewSegmenter は新しいSegmenterを作成します
func NewSegmenter(lookup Lookup, opts Options) *Segmenter {
	return &Segmenter{
		lookup: lookup,
		opts:   opts,
		state:  stateIdle,
		lastID: -1,
	}
}

// Segment はストリーム全体を処理してブロック列を返します
func Segment(stream []byte, lookup Lookup, opts Options) (*Result, error) {
	s := NewSegmenter(lookup, opts)
	for i, r := range Records(stream) {
		if err := s.Feed(r); err != nil {
			return nil, fmt.Errorf("レコード %d (offset %#x): %w", i, i*RecordSize, err)
		}
	}
	return s.Close(), nil
}

// Feed はレコードを1件処理します
func (s *Segmenter) Feed(r Record) error {
	switch r.Opcode {
	case OpMessage:
		return s.feedMessage(int(r.Arg1))

	case OpClear:
		if s.state == stateInGroup {
			s.appendLine(models.Line{Kind: models.LineClear, Text: models.ClearMarker})
		}

	default:
		if s.state == stateInGroup {
			s.closeGroup()
		}
	}
	return nil
}

func (s *Segmenter) feedMessage(id int) error {
	text, err := s.lookup.Message(id)
	if err != nil {
		return err
	}

	if s.state == stateInGroup {
		split, err := s.breaksGroup(id)
		if err != nil {
			return err
		}
		if split {
			s.closeGroup()
		}
	}

	if s.state == stateIdle {
		s.openGroup(id)
	}

	s.appendLine(models.Line{Kind: models.LineMessage, ID: id, Text: text})
	s.lastID = id
	s.continuation++
	s.count++
	return nil
}

// breaksGroup は id のメッセージで現在のグループを閉じるべきか判定します。
// 圧縮モードでは、1行だけのグループの直前メッセージがコロンで終わる場合も分割します。
func (s *Segmenter) breaksGroup(id int) (bool, error) {
	if id != s.lastID+1 {
		return true, nil
	}
	if !s.opts.Compact || s.continuation != 1 {
		return false, nil
	}
	prev, err := s.lookup.Message(s.lastID)
	if err != nil {
		return false, err
	}
	return endsWithColon(prev), nil
}

func endsWithColon(text string) bool {
	return strings.HasSuffix(text, "：") || strings.HasSuffix(text, ":")
}

func (s *Segmenter) openGroup(id int) {
	s.state = stateInGroup
	s.continuation = 0
	s.current = models.Block{StartID: id}
	s.comment.Reset()
	if s.opts.Comment {
		fmt.Fprintf(&s.comment, "# Original message: %d\n", id)
	}
}

func (s *Segmenter) appendLine(line models.Line) {
	s.current.Lines = append(s.current.Lines, line)
	if s.opts.Comment {
		s.comment.WriteString("# " + line.Text + "\n")
	}
}

func (s *Segmenter) closeGroup() {
	s.current.EndID = s.lastID
	s.current.Comment = s.comment.String()
	s.blocks = append(s.blocks, s.current)
	s.current = models.Block{}
	s.comment.Reset()
	s.state = stateIdle
}

// Close はストリーム終端を処理し、結果を返します。
// グループが開いたままなら閉じてから返します。
func (s *Segmenter) Close() *Result {
	if s.state == stateInGroup {
		s.closeGroup()
	}
	return &Result{
		Blocks:       s.blocks,
		MessageCount: s.count,
	}
}
