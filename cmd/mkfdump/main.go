package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/sdlpal/scripts/pkg/mkf"
)

var (
	extractFlag  = flag.Bool("x", false, "extract chunks")
	listFlag     = flag.Bool("l", false, "list chunks")
	outputDir    = flag.String("o", ".", "output directory")
	debugFlag    = flag.Bool("d", false, "debug mode (show more info)")
	parallelFlag = flag.Bool("p", false, "use parallel extraction")
	workerCount  = flag.Int("w", 4, "number of worker threads for parallel extraction")
)

// コールバック関数
func callback(msg string, user interface{}) bool {
	fmt.Print(msg)
	return true
}

func main() {
	flag.Parse()

	// 引数チェック
	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("使用方法: mkfdump [オプション] <MKFファイル> [チャンク...]")
		fmt.Println("オプション:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	filename := args[0]

	archive := mkf.NewMKFArchive()
	if _, err := archive.Open(filename); err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		os.Exit(1)
	}
	defer archive.Close()

	if *debugFlag {
		fmt.Printf("ファイル: %s\n", filename)
		fmt.Printf("チャンク数: %d\n\n", archive.ChunkCount())
	}

	if *listFlag {
		listArchive(archive)
	}

	// 抽出対象のチャンク名 (番号でも "0003.bin" でもよい)
	filesToExtract := make([]string, 0, len(args)-1)
	for _, arg := range args[1:] {
		filesToExtract = append(filesToExtract, chunkName(arg))
	}

	if *extractFlag || len(filesToExtract) > 0 {
		if len(filesToExtract) > 0 {
			fmt.Printf("%d 個の指定されたチャンクを抽出中...\n", len(filesToExtract))
		} else {
			fmt.Println("全チャンクを抽出中...")
		}

		var count int
		var notFound []string
		var extractErr error

		switch {
		case *parallelFlag:
			count, notFound, extractErr = extractArchiveParallel(archive, *outputDir, *workerCount, filesToExtract)
		case len(filesToExtract) == 0:
			count, extractErr = extractAll(archive, *outputDir)
		default:
			count, notFound, extractErr = extractArchiveSequential(archive, *outputDir, filesToExtract)
		}

		if extractErr != nil {
			fmt.Fprintf(os.Stderr, "抽出処理中にエラーが発生しました: %v\n", extractErr)
		}

		if len(notFound) > 0 {
			fmt.Fprintf(os.Stderr, "\n警告: 指定されたチャンクのうち、以下は見つかりませんでした:\n")
			for _, f := range notFound {
				fmt.Fprintf(os.Stderr, "- %s\n", f)
			}
		}

		if extractErr == nil || count > 0 {
			fmt.Printf("\n%d 個のチャンクを抽出しました\n", count)
		}
		if extractErr != nil && count == 0 {
			os.Exit(1)
		}
	}
}

// chunkName は数値で指定されたチャンクをエントリ名に変換します
func chunkName(arg string) string {
	if n, err := strconv.Atoi(arg); err == nil && n >= 0 {
		return fmt.Sprintf("%04d.bin", n)
	}
	return arg
}

// チャンクの一覧を表示
func listArchive(archive mkf.Archive) {
	fmt.Println("チャンク一覧:")
	fmt.Println("----------------------------")
	fmt.Printf("%-16s %10s\n", "エントリ名", "サイズ")
	fmt.Println("----------------------------")

	if !archive.EnumFirst() {
		fmt.Println("チャンクがありません")
		return
	}

	for do := true; do; do = archive.EnumNext() {
		fmt.Printf("%-16s %10d\n", archive.GetEntryName(), archive.GetOriginalSize())
	}
	fmt.Println("----------------------------")
}
