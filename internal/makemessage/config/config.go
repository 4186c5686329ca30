// Package config はmakemessageコマンドの設定管理を行います
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sdlpal/scripts/internal/makemessage/charset"
	"github.com/sdlpal/scripts/internal/makemessage/document"
	"github.com/sdlpal/scripts/internal/makemessage/words"
)

const Version = document.GeneratorVersion

var (
	// ErrUsage は位置引数の数が正しくない場合のエラー
	ErrUsage = errors.New("引数が不足しています")
	// ErrInvalidWidth は単語幅が正でない場合のエラー
	ErrInvalidWidth = errors.New("単語幅は1以上である必要があります")
)

// Config はアプリケーションの設定を保持します
type Config struct {
	GamePath     string
	OutputFile   string
	Encoding     charset.Encoding
	WordWidth    int
	Comment      bool
	Description  bool
	Compact      bool
	ManifestPath string
	BOM          bool
	DebugMode    bool
	DryRun       bool
	ShowVersion  bool
}

// ParseFlags はコマンドライン引数を解析して設定を返します
func ParseFlags() (*Config, error) {
	return Parse(flag.CommandLine, os.Args[1:])
}

// Parse は指定したFlagSetで引数を解析します
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	config := &Config{}

	fs.Usage = func() { usage(fs.Output(), fs.Name()) }

	// 単語幅
	fs.IntVar(&config.WordWidth, "width", words.DefaultWidth, "word width in bytes")
	fs.IntVar(&config.WordWidth, "w", words.DefaultWidth, "word width in bytes (shorthand)")

	// コメント生成
	fs.BoolVar(&config.Comment, "comment", false, "automatically generate comments")
	fs.BoolVar(&config.Comment, "c", false, "automatically generate comments (shorthand)")

	// 説明文セクション
	fs.BoolVar(&config.Description, "description", false, "generate description section from desc.dat for DOS version")
	fs.BoolVar(&config.Description, "d", false, "generate description section from desc.dat (shorthand)")

	fs.BoolVar(&config.Compact, "compact", false, "generate SLF that works with index-compacted resources")
	fs.StringVar(&config.ManifestPath, "manifest", "", "write a YAML extraction report to this path")
	fs.BoolVar(&config.BOM, "bom", false, "write UTF-8 BOM at the head of the output file")

	// デバッグモード
	fs.BoolVar(&config.DebugMode, "debug", false, "enable debug output")

	// ドライランモード
	fs.BoolVar(&config.DryRun, "dry-run", false, "perform a dry run without writing output files")
	fs.BoolVar(&config.DryRun, "n", false, "perform a dry run without writing output files (shorthand)")

	// バージョン表示
	fs.BoolVar(&config.ShowVersion, "version", false, "show version information")
	fs.BoolVar(&config.ShowVersion, "v", false, "show version information (shorthand)")

	// 位置引数の後ろにオプションが続いてもよい
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}
	if config.ShowVersion {
		return config, nil
	}

	if len(positional) != 3 {
		return nil, fmt.Errorf("%w: gamepath outputfile encoding (got %d)", ErrUsage, len(positional))
	}
	config.GamePath = positional[0]
	config.OutputFile = positional[1]

	enc, err := charset.Parse(positional[2])
	if err != nil {
		return nil, err
	}
	config.Encoding = enc

	if config.WordWidth <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, config.WordWidth)
	}

	return config, nil
}

// CommandLine は言語ファイルのヘッダーに記録するコマンドラインを返します
func (c *Config) CommandLine() string {
	ext := ""
	if c.Comment {
		ext += "-c"
	}
	if c.Description {
		ext += " -d"
	}
	return fmt.Sprintf("makemessage.py PATH/TO/THE/GAME/DIRECTORY/ PATH/OF/THE/GENERATED/FILE %s -w %d %s",
		c.Encoding, c.WordWidth, ext)
}

func usage(w io.Writer, name string) {
	fmt.Fprintf(w, "Usage of %s:\n", name)
	fmt.Fprintf(w, "  %s [options] gamepath outputfile {gbk|big5}\n\n", name)
	fmt.Fprintln(w, "  gamepath")
	fmt.Fprintln(w, "    \tgame path where SSS.MKF & M.MSG & WORD.DAT are located")
	fmt.Fprintln(w, "  outputfile")
	fmt.Fprintln(w, "    \tpath of the output message file")
	fmt.Fprintln(w, "  encoding")
	fmt.Fprintln(w, "    \ttext encoding name, should be either gbk or big5")
	fmt.Fprintln(w, "  --width int")
	fmt.Fprintln(w, "    \tword width in bytes (default 10)")
	fmt.Fprintln(w, "  -w int\tword width in bytes (shorthand)")
	fmt.Fprintln(w, "  --comment")
	fmt.Fprintln(w, "    \tautomatically generate comments")
	fmt.Fprintln(w, "  -c\tautomatically generate comments (shorthand)")
	fmt.Fprintln(w, "  --description")
	fmt.Fprintln(w, "    \tgenerate description section from desc.dat for DOS version")
	fmt.Fprintln(w, "  -d\tgenerate description section (shorthand)")
	fmt.Fprintln(w, "  --compact")
	fmt.Fprintln(w, "    \tgenerate SLF that works with index-compacted resources")
	fmt.Fprintln(w, "  --manifest string")
	fmt.Fprintln(w, "    \twrite a YAML extraction report to this path")
	fmt.Fprintln(w, "  --bom")
	fmt.Fprintln(w, "    \twrite UTF-8 BOM at the head of the output file")
	fmt.Fprintln(w, "  --debug")
	fmt.Fprintln(w, "    \tenable debug output")
	fmt.Fprintln(w, "  --dry-run")
	fmt.Fprintln(w, "    \tperform a dry run without writing output files")
	fmt.Fprintln(w, "  -n\tperform a dry run without writing output files (shorthand)")
	fmt.Fprintln(w, "  --version")
	fmt.Fprintln(w, "    \tshow version information")
	fmt.Fprintln(w, "  -v\tshow version information (shorthand)")
}

// HandleVersion はバージョン表示を処理します
func HandleVersion(showVersion bool) {
	if showVersion {
		fmt.Printf("makemessage version %s (SLF %s)\n", Version, document.SLFVersion)
		os.Exit(0)
	}
}

// DebugLogger はデバッグ出力を管理します
type DebugLogger struct {
	enabled bool
	out     io.Writer
}

// NewDebugLogger は out に出力するDebugLoggerを作成します
func NewDebugLogger(enabled bool, out io.Writer) *DebugLogger {
	return &DebugLogger{enabled: enabled, out: out}
}

// Printf はデバッグモードが有効な場合のみメッセージを表示します
func (d *DebugLogger) Printf(format string, a ...any) {
	if d.enabled {
		fmt.Fprintf(d.out, format, a...)
	}
}
