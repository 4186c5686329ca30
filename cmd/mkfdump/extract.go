package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/sdlpal/scripts/pkg/mkf"
)

var errEmptyArchive = errors.New("アーカイブにチャンクがありません")

// 抽出ジョブ
type extractJob struct {
	entry   mkf.Entry
	outPath string
}

// 抽出結果
type extractResult struct {
	entryName string
	err       error
}

// selection は抽出対象の絞り込みを管理します
type selection struct {
	want  map[string]bool
	found map[string]bool
}

func newSelection(files []string) *selection {
	s := &selection{want: make(map[string]bool), found: make(map[string]bool)}
	for _, f := range files {
		s.want[f] = true
	}
	return s
}

func (s *selection) accept(name string) bool {
	if len(s.want) == 0 {
		return true
	}
	if !s.want[name] {
		return false
	}
	s.found[name] = true
	return true
}

func (s *selection) notFound() []string {
	var missing []string
	for f := range s.want {
		if !s.found[f] {
			missing = append(missing, f)
		}
	}
	sort.Strings(missing)
	return missing
}

// 並列処理で抽出を実行
func extractArchiveParallel(archive mkf.Archive, outDir string, numWorkers int, filesToExtract []string) (successCount int, notFoundFiles []string, err error) {
	if numWorkers <= 0 {
		numWorkers = 4
	}
	if errMkdir := os.MkdirAll(outDir, 0755); errMkdir != nil {
		return 0, nil, fmt.Errorf("出力ディレクトリを作成できません: %w", errMkdir)
	}
	if !archive.EnumFirst() {
		return 0, filesToExtract, errEmptyArchive
	}

	jobs := make(chan extractJob, numWorkers*2)
	results := make(chan extractResult, numWorkers*2)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results <- extractResult{entryName: job.entry.GetEntryName(), err: extractTo(job.entry, job.outPath)}
			}
		}()
	}

	// 結果の集計
	var mu sync.Mutex
	var firstErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		for result := range results {
			if result.err == nil {
				successCount++
				if *debugFlag {
					mu.Lock()
					fmt.Printf("成功: %s\n", result.entryName)
					mu.Unlock()
				}
				continue
			}
			mu.Lock()
			fmt.Fprintf(os.Stderr, "抽出に失敗しました: %s - %v\n", result.entryName, result.err)
			mu.Unlock()
			if firstErr == nil {
				firstErr = fmt.Errorf("抽出エラー: %s: %w", result.entryName, result.err)
			}
		}
	}()

	sel := newSelection(filesToExtract)
	for do := true; do; do = archive.EnumNext() {
		name := archive.GetEntryName()
		if !sel.accept(name) {
			continue
		}
		jobs <- extractJob{entry: archive.GetEntry(), outPath: filepath.Join(outDir, name)}
	}
	close(jobs)

	wg.Wait()
	close(results)
	<-done

	return successCount, sel.notFound(), firstErr
}

// 並列処理なしで抽出
func extractArchiveSequential(archive mkf.Archive, outDir string, filesToExtract []string) (successCount int, notFoundFiles []string, err error) {
	if errMkdir := os.MkdirAll(outDir, 0755); errMkdir != nil {
		return 0, nil, fmt.Errorf("出力ディレクトリを作成できません: %w", errMkdir)
	}
	if !archive.EnumFirst() {
		return 0, filesToExtract, errEmptyArchive
	}

	var firstErr error
	sel := newSelection(filesToExtract)
	for do := true; do; do = archive.EnumNext() {
		name := archive.GetEntryName()
		if !sel.accept(name) {
			continue
		}

		if *debugFlag {
			callback(name+"\n", nil)
		}
		if errExtract := extractTo(archive.GetEntry(), filepath.Join(outDir, name)); errExtract != nil {
			fmt.Fprintf(os.Stderr, "抽出に失敗しました: %s - %v\n", name, errExtract)
			if firstErr == nil {
				firstErr = fmt.Errorf("抽出エラー: %s: %w", name, errExtract)
			}
			continue
		}
		successCount++
	}

	return successCount, sel.notFound(), firstErr
}

// 全チャンクを一括で抽出
func extractAll(archive *mkf.MKFArchive, outDir string) (int, error) {
	if archive.ChunkCount() == 0 {
		return 0, errEmptyArchive
	}
	var progress func(string, interface{}) bool
	if *debugFlag {
		progress = callback
	}
	if !archive.ExtractAll(outDir, progress, nil) {
		return 0, fmt.Errorf("抽出エラー: %s", outDir)
	}
	return archive.ChunkCount(), nil
}

// extractTo はエントリをファイルに書き出します。失敗した場合はファイルを削除します。
func extractTo(entry mkf.Entry, outPath string) error {
	outFile, err := os.Create(outPath)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(outFile)
	ok := entry.Extract(writer, nil, nil)
	flushErr := writer.Flush()
	closeErr := outFile.Close()

	switch {
	case !ok:
		os.Remove(outPath)
		return errors.New("extraction failed")
	case flushErr != nil:
		return flushErr
	default:
		return closeErr
	}
}
