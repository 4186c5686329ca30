// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sdlpal/scripts/internal/makemessage/config"
	"github.com/sdlpal/scripts/internal/makemessage/container"
	"github.com/sdlpal/scripts/internal/makemessage/description"
	"github.com/sdlpal/scripts/internal/makemessage/document"
	"github.com/sdlpal/scripts/internal/makemessage/fileutil"
	"github.com/sdlpal/scripts/internal/makemessage/interfaces"
	"github.com/sdlpal/scripts/internal/makemessage/manifest"
	"github.com/sdlpal/scripts/internal/makemessage/message"
	"github.com/sdlpal/scripts/internal/makemessage/models"
	"github.com/sdlpal/scripts/internal/makemessage/script"
	"github.com/sdlpal/scripts/internal/makemessage/words"
)

// App はアプリケーションのメインロジックを管理します
type App struct {
	config *config.Config
	logger interfaces.Logger
	loader interfaces.ResourceLoader
	fs     interfaces.FileSystem
	stdout io.Writer
}

// Options はAppの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
	Loader     interfaces.ResourceLoader
	Logger     interfaces.Logger
	Stdout     io.Writer
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	// デフォルトのファイルシステムを設定
	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	var loader interfaces.ResourceLoader
	if opts.Loader != nil {
		loader = opts.Loader
	} else {
		loader = fileutil.NewResourceLoader(fs)
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	var logger interfaces.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		logger = config.NewDebugLogger(cfg.DebugMode, stdout)
	}

	return &App{
		config: cfg,
		logger: logger,
		loader: loader,
		fs:     fs,
		stdout: stdout,
	}
}

// Run はアプリケーションを実行します
func (a *App) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "MakeMessage Utility by SDLPal Team ver. %s\n", document.GeneratorVersion)
	fmt.Fprintln(a.stdout, "Now Processing. Please wait...")

	a.logger.Printf("ゲームディレクトリ %s からリソースを読み込みます...\n", a.config.GamePath)
	res, err := a.loader.Load(a.config.GamePath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadResources, err)
	}

	ext, err := a.Extract(ctx, res)
	if err != nil {
		return err
	}

	sums := a.checksums(res)
	docOpts := document.Options{
		Encoding:    a.config.Encoding,
		CommandLine: a.config.CommandLine(),
		Comment:     a.config.Comment,
		Description: a.config.Description,
	}
	output := document.Build(ext, sums, docOpts)

	if a.config.Description && !ext.HasDesc {
		fmt.Fprintln(a.stdout, "desc.dat is missing or is a blank document.")
	}

	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if a.config.DryRun {
		a.logger.Printf("ドライランのため %s には書き込みません\n", a.config.OutputFile)
		fmt.Fprint(a.stdout, output)
	} else {
		if a.fs.FileExists(a.config.OutputFile) {
			a.logger.Printf("既存の %s を上書きします\n", a.config.OutputFile)
		}
		if err := fileutil.SaveToFile(a.fs, a.config.OutputFile, output, a.config.BOM); err != nil {
			return fmt.Errorf("%w: %w", ErrSaveFile, err)
		}
		a.logger.Printf("データを %s に保存しました\n", a.config.OutputFile)
	}

	if a.config.ManifestPath != "" {
		if err := a.writeManifest(ext, sums, docOpts); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.stdout, "OK! Extraction finished!")
	fmt.Fprintf(a.stdout, "Original Dialog script count: %d\n", ext.MessageCount)
	return nil
}

// Extract は読み込んだリソースから単語・メッセージブロック・説明文を取り出します
func (a *App) Extract(ctx context.Context, res models.Resources) (*models.Extraction, error) {
	archive, err := container.Read(res.SSS, res.Messages)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadArchive, err)
	}
	a.logger.Printf("インデックス %d 件、スクリプト %d バイト、メッセージ %d バイト\n",
		archive.MessageSlots(), len(archive.ScriptStream), len(archive.MessagePool))

	wordList, err := words.Decode(res.Words, a.config.WordWidth, a.config.Encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeWords, err)
	}
	a.logger.Printf("単語 %d 件をデコードしました\n", len(wordList))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	result, err := script.Segment(archive.ScriptStream, message.NewResolver(archive, a.config.Encoding), script.Options{
		Compact: a.config.Compact,
		Comment: a.config.Comment,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSegment, err)
	}
	a.logger.Printf("メッセージ %d 件を %d ブロックにまとめました\n", result.MessageCount, len(result.Blocks))

	ext := &models.Extraction{
		Words:        wordList,
		Blocks:       result.Blocks,
		MessageCount: result.MessageCount,
		ChunkCount:   archive.ChunkCount(),
	}
	if a.config.Description {
		ext.Description, ext.HasDesc = description.Transform(res.Description, a.config.Encoding)
	}
	return ext, nil
}

func (a *App) checksums(res models.Resources) document.Checksums {
	sums := document.Checksums{
		SSS:      fileutil.CRC32(res.SSS),
		Messages: fileutil.CRC32(res.Messages),
		Words:    fileutil.CRC32(res.Words),
	}
	if len(res.Description) > 0 {
		sums.Description = fileutil.CRC32(res.Description)
	}
	return sums
}

func (a *App) writeManifest(ext *models.Extraction, sums document.Checksums, opts document.Options) error {
	report := manifest.New(ext, sums, opts, a.config.WordWidth, manifest.Flags{
		Comment:     a.config.Comment,
		Description: a.config.Description,
		Compact:     a.config.Compact,
	})

	if a.config.DryRun {
		a.logger.Printf("ドライランのため %s には書き込みません\n", a.config.ManifestPath)
		return nil
	}
	if err := report.Save(a.fs, a.config.ManifestPath); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveManifest, err)
	}
	a.logger.Printf("レポートを %s に保存しました\n", a.config.ManifestPath)
	return nil
}
