package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sdlpal/scripts/internal/makemessage/charset"
	"github.com/sdlpal/scripts/internal/makemessage/config"
	"github.com/sdlpal/scripts/internal/makemessage/container"
	"github.com/sdlpal/scripts/internal/makemessage/fileutil"
	"github.com/sdlpal/scripts/internal/makemessage/manifest"
	"github.com/sdlpal/scripts/internal/makemessage/message"
	"github.com/sdlpal/scripts/internal/makemessage/mocks"
	"github.com/sdlpal/scripts/internal/makemessage/models"
	"github.com/sdlpal/scripts/internal/makemessage/script"
)

const outputFile = "/out/Chinese.msg"

func baseConfig() *config.Config {
	return &config.Config{
		GamePath:   "/game",
		OutputFile: outputFile,
		Encoding:   charset.GBK,
		WordWidth:  10,
	}
}

type harness struct {
	app    *App
	fs     *mocks.MockFileSystem
	loader *mocks.MockResourceLoader
	logger *mocks.MockLogger
	stdout *bytes.Buffer
}

func newHarness(t *testing.T, cfg *config.Config, res models.Resources) *harness {
	t.Helper()
	h := &harness{
		fs:     mocks.NewMockFileSystem(),
		loader: &mocks.MockResourceLoader{Resources: res},
		logger: &mocks.MockLogger{},
		stdout: &bytes.Buffer{},
	}
	h.app = NewWithOptions(cfg, Options{
		FileSystem: h.fs,
		Loader:     h.loader,
		Logger:     h.logger,
		Stdout:     h.stdout,
	})
	return h
}

func TestApp_Run(t *testing.T) {
	h := newHarness(t, baseConfig(), defaultFixture().build(t))

	require.NoError(t, h.app.Run(context.Background()))

	assert.Equal(t, 1, h.loader.CallCount)
	assert.Equal(t, "/game", h.loader.LastDir)

	out := string(h.fs.Files[outputFile])
	require.NotEmpty(t, out)
	assert.True(t, strings.HasPrefix(out, "# SDLPAL localization file\n"))
	assert.Contains(t, out, "[BEGIN WORDS]\n# Each line is a pattern of 'key=value', where key is an integer and value is a string.\n0=攻击\n1=防御\n")
	assert.Contains(t, out, "606=战斗速度\n")
	assert.True(t, strings.HasSuffix(out,
		"[BEGIN MESSAGE] 0\n李逍遥：\n你好\n[CLEAR MESSAGE]\n再见\n[END MESSAGE] 2\n\n"+
			"[BEGIN MESSAGE] 0\n李逍遥：\n[END MESSAGE] 0\n\n"))
	assert.NotContains(t, out, "# Original")
	assert.NotContains(t, out, "DESCRIPTION")

	stdout := h.stdout.String()
	assert.Contains(t, stdout, "Now Processing. Please wait...\n")
	assert.Contains(t, stdout, "OK! Extraction finished!\nOriginal Dialog script count: 4\n")
	assert.NotContains(t, stdout, "[BEGIN MESSAGE]")
}

func TestApp_Run_Compact(t *testing.T) {
	cfg := baseConfig()
	cfg.Compact = true
	h := newHarness(t, cfg, defaultFixture().build(t))

	require.NoError(t, h.app.Run(context.Background()))

	out := string(h.fs.Files[outputFile])
	assert.True(t, strings.HasSuffix(out,
		"[BEGIN MESSAGE] 0\n李逍遥：\n[END MESSAGE] 0\n\n"+
			"[BEGIN MESSAGE] 1\n你好\n[CLEAR MESSAGE]\n再见\n[END MESSAGE] 2\n\n"+
			"[BEGIN MESSAGE] 0\n李逍遥：\n[END MESSAGE] 0\n\n"))
	assert.Contains(t, h.stdout.String(), "Original Dialog script count: 4\n")
}

func TestApp_Run_Comment(t *testing.T) {
	cfg := baseConfig()
	cfg.Comment = true
	h := newHarness(t, cfg, defaultFixture().build(t))

	require.NoError(t, h.app.Run(context.Background()))

	out := string(h.fs.Files[outputFile])
	assert.Contains(t, out, "# Command line: makemessage.py PATH/TO/THE/GAME/DIRECTORY/ PATH/OF/THE/GENERATED/FILE gbk -w 10 -c\n")
	assert.Contains(t, out, "# Original word: 0=攻击\n0=攻击\n")
	assert.Contains(t, out,
		"# Original message: 0\n# 李逍遥：\n# 你好\n# [CLEAR MESSAGE]\n# 再见\n"+
			"[BEGIN MESSAGE] 0\n李逍遥：\n你好\n[CLEAR MESSAGE]\n再见\n[END MESSAGE] 2\n\n")
}

func TestApp_Run_Description(t *testing.T) {
	t.Run("DESC.DATあり", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Description = true
		res := defaultFixture().build(t)
		h := newHarness(t, cfg, res)

		require.NoError(t, h.app.Run(context.Background()))

		out := string(h.fs.Files[outputFile])
		assert.Contains(t, out, "# DESC.DAT: "+fileutil.CRC32(res.Description)+"\n# All lines")
		assert.True(t, strings.HasSuffix(out, "[BEGIN DESCRIPTION]\n#; 说明\n1=止血草 \n[END DESCRIPTION]\n"))
		assert.NotContains(t, h.stdout.String(), "desc.dat is missing")
	})

	t.Run("DESC.DATなし", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Description = true
		fixture := defaultFixture()
		fixture.desc = ""
		h := newHarness(t, cfg, fixture.build(t))

		require.NoError(t, h.app.Run(context.Background()))

		out := string(h.fs.Files[outputFile])
		assert.True(t, strings.HasSuffix(out, "[END MESSAGE] 0\n\n# No DESCRIPTION section in this document.\n"))
		assert.Contains(t, h.stdout.String(), "desc.dat is missing or is a blank document.\n")
	})
}

func TestApp_Run_Big5(t *testing.T) {
	cfg := baseConfig()
	cfg.Encoding = charset.Big5
	fixture := gameFixture{
		enc:      charset.Big5,
		messages: []string{"仙劍奇俠傳"},
		records:  []script.Record{msg(0)},
		words:    []string{"攻擊"},
	}
	h := newHarness(t, cfg, fixture.build(t))

	require.NoError(t, h.app.Run(context.Background()))

	out := string(h.fs.Files[outputFile])
	assert.Contains(t, out, "0=攻擊\n")
	assert.Contains(t, out, "606=戰鬥速度\n")
	assert.Contains(t, out, "612=返回設定\n")
	assert.True(t, strings.HasSuffix(out, "[BEGIN MESSAGE] 0\n仙劍奇俠傳\n[END MESSAGE] 0\n\n"))
}

func TestApp_Run_BOM(t *testing.T) {
	cfg := baseConfig()
	cfg.BOM = true
	h := newHarness(t, cfg, defaultFixture().build(t))

	require.NoError(t, h.app.Run(context.Background()))
	assert.True(t, bytes.HasPrefix(h.fs.Files[outputFile], []byte("\xEF\xBB\xBF# SDLPAL")))
}

func TestApp_Run_OverwritesExistingOutput(t *testing.T) {
	h := newHarness(t, baseConfig(), defaultFixture().build(t))
	h.fs.Files[outputFile] = []byte("old")

	require.NoError(t, h.app.Run(context.Background()))

	assert.True(t, bytes.HasPrefix(h.fs.Files[outputFile], []byte("# SDLPAL")))
	assert.Contains(t, h.logger.Messages, "既存の "+outputFile+" を上書きします\n")
}

func TestApp_Run_DryRun(t *testing.T) {
	cfg := baseConfig()
	cfg.DryRun = true
	cfg.ManifestPath = "/out/report.yaml"
	h := newHarness(t, cfg, defaultFixture().build(t))

	require.NoError(t, h.app.Run(context.Background()))

	assert.Empty(t, h.fs.Files)
	assert.Contains(t, h.stdout.String(), "[BEGIN MESSAGE] 0\n")
	assert.Contains(t, h.stdout.String(), "OK! Extraction finished!\n")
}

func TestApp_Run_Manifest(t *testing.T) {
	cfg := baseConfig()
	cfg.Compact = true
	cfg.ManifestPath = "/out/report.yaml"
	res := defaultFixture().build(t)
	h := newHarness(t, cfg, res)

	require.NoError(t, h.app.Run(context.Background()))

	var report manifest.Report
	require.NoError(t, yaml.Unmarshal(h.fs.Files["/out/report.yaml"], &report))

	assert.Equal(t, "gbk", report.Encoding)
	assert.True(t, report.Flags.Compact)
	assert.Equal(t, fileutil.CRC32(res.SSS), report.CRC32["SSS.MKF"])
	assert.Equal(t, 5, report.SSSChunks)
	assert.Equal(t, 2, report.WordCount)
	assert.Equal(t, 4, report.MessageCount)
	assert.Equal(t, []manifest.BlockEntry{
		{Start: 0, End: 0, Lines: 1},
		{Start: 1, End: 2, Lines: 3, Clears: 1},
		{Start: 0, End: 0, Lines: 1},
	}, report.Blocks)
}

func TestApp_Run_Errors(t *testing.T) {
	outOfRange := defaultFixture()
	outOfRange.records = []script.Record{msg(0), msg(9)}

	badWords := defaultFixture().build(t)
	badWords.Words = []byte("\xFF\x20\x20\x20\x20\x20\x20\x20\x20\x20")

	tests := []struct {
		name     string
		res      models.Resources
		loadErr  error
		writeErr error
		wantErrs []error
	}{
		{
			name:     "リソースが見つからない",
			loadErr:  fileutil.ErrResourceNotFound,
			wantErrs: []error{ErrLoadResources, fileutil.ErrResourceNotFound},
		},
		{
			name:     "SSS.MKFが短すぎる",
			res:      models.Resources{SSS: []byte{1, 2, 3}},
			wantErrs: []error{ErrReadArchive, container.ErrMalformedArchive},
		},
		{
			name:     "WORD.DATが不正",
			res:      badWords,
			wantErrs: []error{ErrDecodeWords, charset.ErrEncoding},
		},
		{
			name:     "メッセージIDが範囲外",
			res:      outOfRange.build(t),
			wantErrs: []error{ErrSegment, message.ErrIndexOutOfRange},
		},
		{
			name:     "書き込み失敗",
			res:      defaultFixture().build(t),
			writeErr: errors.New("disk full"),
			wantErrs: []error{ErrSaveFile, fileutil.ErrCreateDirectory},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, baseConfig(), tt.res)
			h.loader.Error = tt.loadErr
			h.fs.WriteError = tt.writeErr

			err := h.app.Run(context.Background())
			require.Error(t, err)
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
			assert.NotContains(t, h.stdout.String(), "OK! Extraction finished!")
		})
	}
}

func TestApp_Run_ManifestError(t *testing.T) {
	cfg := baseConfig()
	cfg.ManifestPath = "/out/report.yaml"
	h := newHarness(t, cfg, defaultFixture().build(t))
	h.app.fs = &failAfterFS{MockFileSystem: h.fs, remaining: 1}

	err := h.app.Run(context.Background())
	assert.ErrorIs(t, err, ErrSaveManifest)
	assert.Contains(t, h.fs.Files, outputFile)
}

// failAfterFS は指定回数の書き込み後に失敗するファイルシステム
type failAfterFS struct {
	*mocks.MockFileSystem
	remaining int
}

func (fs *failAfterFS) WriteFile(filename string, data []byte, perm uint32) error {
	if fs.remaining == 0 {
		return errors.New("disk full")
	}
	fs.remaining--
	return fs.MockFileSystem.WriteFile(filename, data, perm)
}

func TestApp_Run_WithOSFileSystem(t *testing.T) {
	dir := t.TempDir()
	res := defaultFixture().build(t)
	for name, data := range map[string][]byte{
		"Sss.mkf":  res.SSS,
		"M.MSG":    res.Messages,
		"word.DAT": res.Words,
		"DESC.DAT": res.Description,
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0644))
	}

	cfg := baseConfig()
	cfg.GamePath = dir
	cfg.OutputFile = filepath.Join(dir, "out", "Chinese.msg")
	cfg.Description = true

	var stdout bytes.Buffer
	app := NewWithOptions(cfg, Options{Stdout: &stdout})
	require.NoError(t, app.Run(context.Background()))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[BEGIN DESCRIPTION]\n")
	assert.Contains(t, stdout.String(), "Original Dialog script count: 4\n")
}

func TestApp_Extract(t *testing.T) {
	cfg := baseConfig()
	cfg.Description = true
	h := newHarness(t, cfg, models.Resources{})

	ext, err := h.app.Extract(context.Background(), defaultFixture().build(t))
	require.NoError(t, err)

	assert.Equal(t, []models.Word{{Index: 0, Text: "攻击"}, {Index: 1, Text: "防御"}}, ext.Words)
	require.Len(t, ext.Blocks, 2)
	assert.Equal(t, 0, ext.Blocks[0].StartID)
	assert.Equal(t, 2, ext.Blocks[0].EndID)
	assert.Equal(t, 1, ext.Blocks[0].ClearCount())
	assert.Equal(t, 4, ext.MessageCount)
	assert.Equal(t, 5, ext.ChunkCount)
	assert.True(t, ext.HasDesc)
	assert.Equal(t, "#; 说明\n1=止血草 ", ext.Description)
	assert.Contains(t, h.logger.Messages, "インデックス 3 件、スクリプト 48 バイト、メッセージ 16 バイト\n")
}
