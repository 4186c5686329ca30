// Package document はSDLPAL言語ファイル（SLF）のテキストを組み立てます
package document

import (
	"fmt"
	"strings"

	"github.com/sdlpal/scripts/internal/makemessage/charset"
	"github.com/sdlpal/scripts/internal/makemessage/models"
)

// ヘッダーに記録するバージョン
const (
	SLFVersion       = "3.1"
	GeneratorVersion = "2024.03"
)

// Options は文書の生成設定
type Options struct {
	Encoding    charset.Encoding
	CommandLine string
	Comment     bool // 単語ごとに原文コメントを付ける
	Description bool // 説明文セクションを出力する
}

// Checksums はリソースファイルのCRC32
type Checksums struct {
	SSS         string
	Messages    string
	Words       string
	Description string // DESC.DAT がない場合は空
}

// Build は抽出結果から言語ファイルの全文を組み立てます
func Build(ext *models.Extraction, sums Checksums, opts Options) string {
	var b strings.Builder

	writeHeader(&b, sums, opts)
	b.WriteString(commentNote)
	b.WriteString(creditsSection)
	b.WriteString(layoutSection)
	writeWords(&b, ext.Words, opts)

	b.WriteString("# The following sections contain dialog/description texts used by the game.\n\n")
	for _, block := range ext.Blocks {
		WriteBlock(&b, block)
	}

	writeDescription(&b, ext, opts)
	return b.String()
}

func writeHeader(b *strings.Builder, sums Checksums, opts Options) {
	b.WriteString("# SDLPAL localization file\n")
	fmt.Fprintf(b, "# Version %s\n", SLFVersion)
	fmt.Fprintf(b, "# This document is generated with MakeMessage Utility ver. %s\n", GeneratorVersion)
	b.WriteString("# Please visit https://github.com/sdlpal/sdlpal/ for more information.\n\n")
	fmt.Fprintf(b, "# Command line: %s\n\n", opts.CommandLine)

	b.WriteString("# CRC32 of the resource files:\n")
	fmt.Fprintf(b, "# SSS.MKF:  %s\n", sums.SSS)
	fmt.Fprintf(b, "# M.MSG:    %s\n", sums.Messages)
	fmt.Fprintf(b, "# WORD.DAT: %s\n", sums.Words)
	// DESC.DAT の行は改行を伴わず、続く空行の改行で終わる
	if opts.Description && sums.Description != "" {
		fmt.Fprintf(b, "# DESC.DAT: %s", sums.Description)
	}
	b.WriteString("\n")
}

func writeWords(b *strings.Builder, words []models.Word, opts Options) {
	b.WriteString("# This section contains the words used by the game.\n")
	b.WriteString("[BEGIN WORDS]\n")
	b.WriteString("# Each line is a pattern of 'key=value', where key is an integer and value is a string.\n")

	for _, w := range words {
		if opts.Comment {
			fmt.Fprintf(b, "# Original word: %d=%s\n", w.Index, w.Text)
		}
		fmt.Fprintf(b, "%d=%s\n", w.Index, w.Text)
	}

	b.WriteString("# 600 .. 605 are extra description lines in the equipments menu: Headgear, Body Gear, Clothing, Weapon, Footwear, Accessory.\n")
	for i, w := range equipmentWords {
		fmt.Fprintf(b, "%d=%s\n", 600+i, w)
	}

	fixed := fixedWords(opts.Encoding)
	b.WriteString("# The following six words are for ATB only: Battle Speed, 1, 2, 3, 4, 5. They are not used in classical mode.\n")
	fmt.Fprintf(b, "606=%s\n", fixed.battleSpeed)
	b.WriteString("# The following five words are for ATB battle speed. It is not used in classical mode.\n")
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(b, "%d=%d\n", 606+i, i)
	}
	b.WriteString("# The following word is used to ask user whether to launch setting interface on next game start.\n")
	fmt.Fprintf(b, "612=%s\n", fixed.launchSetting)
	b.WriteString("[END WORDS]\n\n")
}

// WriteBlock はメッセージブロックを1つ書き出します。
// コメントがあればブロックの直前に置きます。
func WriteBlock(b *strings.Builder, block models.Block) {
	b.WriteString(block.Comment)
	fmt.Fprintf(b, "[BEGIN MESSAGE] %d\n", block.StartID)
	for _, line := range block.Lines {
		b.WriteString(line.Text)
		b.WriteString("\n")
	}
	fmt.Fprintf(b, "[END MESSAGE] %d\n\n", block.EndID)
}

func writeDescription(b *strings.Builder, ext *models.Extraction, opts Options) {
	if !opts.Description {
		return
	}
	if !ext.HasDesc {
		b.WriteString("# No DESCRIPTION section in this document.\n")
		return
	}
	b.WriteString("[BEGIN DESCRIPTION]\n")
	b.WriteString(ext.Description)
	b.WriteString("\n")
	b.WriteString("[END DESCRIPTION]\n")
}
