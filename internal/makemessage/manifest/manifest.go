// Package manifest は抽出結果のYAMLレポートを生成します
package manifest

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sdlpal/scripts/internal/makemessage/document"
	"github.com/sdlpal/scripts/internal/makemessage/fileutil"
	"github.com/sdlpal/scripts/internal/makemessage/interfaces"
	"github.com/sdlpal/scripts/internal/makemessage/models"
)

// Report は抽出レポートの内容
type Report struct {
	GeneratorVersion string            `yaml:"generator_version"`
	SLFVersion       string            `yaml:"slf_version"`
	Encoding         string            `yaml:"encoding"`
	WordWidth        int               `yaml:"word_width"`
	Flags            Flags             `yaml:"flags"`
	CRC32            map[string]string `yaml:"crc32"`
	SSSChunks        int               `yaml:"sss_chunks"`
	WordCount        int               `yaml:"word_count"`
	MessageCount     int               `yaml:"message_count"`
	Description      bool              `yaml:"description"`
	Blocks           []BlockEntry      `yaml:"blocks"`
}

// Flags は生成時に有効だったオプション
type Flags struct {
	Comment     bool `yaml:"comment"`
	Description bool `yaml:"description"`
	Compact     bool `yaml:"compact"`
}

// BlockEntry はメッセージブロック1つ分の概要
type BlockEntry struct {
	Start  int `yaml:"start"`
	End    int `yaml:"end"`
	Lines  int `yaml:"lines"`
	Clears int `yaml:"clears,omitempty"`
}

// New は抽出結果からレポートを作成します
func New(ext *models.Extraction, sums document.Checksums, opts document.Options, width int, flags Flags) *Report {
	crc := map[string]string{
		"SSS.MKF":  sums.SSS,
		"M.MSG":    sums.Messages,
		"WORD.DAT": sums.Words,
	}
	if sums.Description != "" {
		crc["DESC.DAT"] = sums.Description
	}

	blocks := make([]BlockEntry, 0, len(ext.Blocks))
	for _, b := range ext.Blocks {
		blocks = append(blocks, BlockEntry{
			Start:  b.StartID,
			End:    b.EndID,
			Lines:  len(b.Lines),
			Clears: b.ClearCount(),
		})
	}

	return &Report{
		GeneratorVersion: document.GeneratorVersion,
		SLFVersion:       document.SLFVersion,
		Encoding:         opts.Encoding.String(),
		WordWidth:        width,
		Flags:            flags,
		CRC32:            crc,
		SSSChunks:        ext.ChunkCount,
		WordCount:        len(ext.Words),
		MessageCount:     ext.MessageCount,
		Description:      ext.HasDesc,
		Blocks:           blocks,
	}
}

// Encode はレポートをYAMLに変換します
func (r *Report) Encode() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return buf.Bytes(), nil
}

// Save はレポートをファイルに書き出します
func (r *Report) Save(fs interfaces.FileSystem, path string) error {
	data, err := r.Encode()
	if err != nil {
		return err
	}
	return fileutil.SaveToFile(fs, path, string(data), false)
}
