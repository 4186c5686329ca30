// Package charset はゲームリソースで使われるレガシー文字コード（GBK / Big5）の変換を行います
package charset

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"
)

// Encoding はサポートする文字コードを表します
type Encoding int

const (
	GBK  Encoding = iota // 簡体字版 (CP936)
	Big5                 // 繁体字版
)

// Names は選択可能な文字コード名の一覧です
var Names = []string{"gbk", "big5"}

// String はコマンドラインで使う文字コード名を返します
func (e Encoding) String() string {
	switch e {
	case GBK:
		return "gbk"
	case Big5:
		return "big5"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// Parse は文字コード名から Encoding を返します
func Parse(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gbk":
		return GBK, nil
	case "big5":
		return Big5, nil
	default:
		return 0, fmt.Errorf("%w: %q (%s のいずれかを指定してください)", ErrUnsupported, name, strings.Join(Names, ", "))
	}
}

func (e Encoding) codec() encoding.Encoding {
	if e == Big5 {
		return traditionalchinese.Big5
	}
	return simplifiedchinese.GBK
}

// DecodeLossy はバイト列をUTF-8に変換します。
// 変換できないバイト列は U+FFFD に置き換えられ、エラーにはなりません。
func (e Encoding) DecodeLossy(b []byte) string {
	if e == GBK {
		if i := loneEuroIndex(b); i >= 0 {
			b = replaceLoneEuro(b, i)
		}
	}
	out, _, err := transform.Bytes(e.codec().NewDecoder(), b)
	if err != nil {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}
	return string(out)
}

// DecodeStrict はバイト列をUTF-8に変換します。
// 不正なバイト列が含まれる場合は ErrEncoding を返します。
func (e Encoding) DecodeStrict(b []byte) (string, error) {
	if e == GBK {
		if i := loneEuroIndex(b); i >= 0 {
			return "", fmt.Errorf("%w: %s では 0x80 (offset %d) は使えません (% x)", ErrEncoding, e, i, b)
		}
	}
	out, _, err := transform.Bytes(e.codec().NewDecoder(), b)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	// x/text のデコーダは不正なバイトを U+FFFD に置き換えるため、ここで検出する
	if strings.ContainsRune(string(out), utf8.RuneError) {
		return "", fmt.Errorf("%w: %s として解釈できないバイト列があります (% x)", ErrEncoding, e, b)
	}
	return string(out), nil
}

// loneEuroIndex はGBKとして走査したとき単独で現れる 0x80 の位置を返します。
// x/text はこれを CP936 の "€" として読みますが、GBKでは未定義です。
func loneEuroIndex(b []byte) int {
	for i := 0; i < len(b); {
		switch c := b[i]; {
		case c < 0x80:
			i++
		case c == 0x80:
			return i
		default:
			i += 2
		}
	}
	return -1
}

// replaceLoneEuro は単独の 0x80 を不正な先頭バイトに置き換えたコピーを返します
func replaceLoneEuro(b []byte, from int) []byte {
	out := append([]byte(nil), b...)
	for i := from; i < len(out); {
		switch c := out[i]; {
		case c < 0x80:
			i++
		case c == 0x80:
			out[i] = 0xFF
			i++
		default:
			i += 2
		}
	}
	return out
}

// Encode はUTF-8文字列をこの文字コードのバイト列に変換します
func (e Encoding) Encode(s string) ([]byte, error) {
	out, _, err := transform.Bytes(e.codec().NewEncoder(), []byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return out, nil
}
