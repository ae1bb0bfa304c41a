// Package textenc decodes lexicon and transcription source files that
// arrive in a declared non-UTF-8 encoding before the rest of the
// pipeline (which is UTF-8 throughout) ever sees them.
//
// Adapted from pkg/conversion/encoding.go.
package textenc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ID is an enum-like type for the source encodings a lexicon or
// unilex transcription file may declare.
type ID int

const (
	UTF8 ID = iota
	UTF16LE
	UTF16BE
	UTF16LEBOM
	UTF16BEBOM

	ISO8859_1
	ISO8859_2
	ISO8859_9
	ISO8859_15

	KOI8R
	KOI8U

	Windows1250
	Windows1251
	Windows1252

	MacRoman

	ShiftJIS
	EUCJP

	GBK
	GB18030

	Big5

	EUCKR
)

// Name returns a canonical string name.
func (e ID) Name() string {
	switch e {
	case UTF8:
		return "UTF-8"
	case UTF16LE:
		return "UTF-16LE"
	case UTF16BE:
		return "UTF-16BE"
	case UTF16LEBOM:
		return "UTF-16LE-BOM"
	case UTF16BEBOM:
		return "UTF-16BE-BOM"
	case ISO8859_1:
		return "ISO-8859-1"
	case ISO8859_2:
		return "ISO-8859-2"
	case ISO8859_9:
		return "ISO-8859-9"
	case ISO8859_15:
		return "ISO-8859-15"
	case KOI8R:
		return "KOI8-R"
	case KOI8U:
		return "KOI8-U"
	case Windows1250:
		return "Windows-1250"
	case Windows1251:
		return "Windows-1251"
	case Windows1252:
		return "Windows-1252"
	case MacRoman:
		return "MacRoman"
	case ShiftJIS:
		return "ShiftJIS"
	case EUCJP:
		return "EUC-JP"
	case GBK:
		return "GBK"
	case GB18030:
		return "GB18030"
	case Big5:
		return "Big5"
	case EUCKR:
		return "EUC-KR"
	}
	return "Unknown"
}

var nameToID = map[string]ID{
	"utf-8": UTF8, "utf8": UTF8,
	"utf-16le": UTF16LE, "utf-16be": UTF16BE,
	"utf-16le-bom": UTF16LEBOM, "utf-16be-bom": UTF16BEBOM,

	"iso-8859-1": ISO8859_1, "iso-8859-2": ISO8859_2,
	"iso-8859-9": ISO8859_9, "iso-8859-15": ISO8859_15,

	"koi8-r": KOI8R, "koi8-u": KOI8U,

	"windows-1250": Windows1250, "windows-1251": Windows1251, "windows-1252": Windows1252,

	"macroman": MacRoman,

	"shiftjis": ShiftJIS, "shift-jis": ShiftJIS, "euc-jp": EUCJP,

	"gbk": GBK, "gb18030": GB18030,

	"big5": Big5,

	"euc-kr": EUCKR,
}

// Parse returns the ID for a given name (case-insensitive), defaulting
// callers to UTF8 when name is empty.
func Parse(name string) (ID, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return UTF8, nil
	}
	if enc, ok := nameToID[key]; ok {
		return enc, nil
	}
	return 0, fmt.Errorf("unknown encoding: %s", name)
}

// encodingFor resolves e to a golang.org/x/text encoding.Encoding.
func encodingFor(e ID) (encoding.Encoding, error) {
	switch e {
	case UTF8:
		return unicode.UTF8, nil
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case UTF16LEBOM:
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), nil
	case UTF16BEBOM:
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), nil
	case ISO8859_1:
		return charmap.ISO8859_1, nil
	case ISO8859_2:
		return charmap.ISO8859_2, nil
	case ISO8859_9:
		return charmap.ISO8859_9, nil
	case ISO8859_15:
		return charmap.ISO8859_15, nil
	case KOI8R:
		return charmap.KOI8R, nil
	case KOI8U:
		return charmap.KOI8U, nil
	case Windows1250:
		return charmap.Windows1250, nil
	case Windows1251:
		return charmap.Windows1251, nil
	case Windows1252:
		return charmap.Windows1252, nil
	case MacRoman:
		return charmap.Macintosh, nil
	case ShiftJIS:
		return japanese.ShiftJIS, nil
	case EUCJP:
		return japanese.EUCJP, nil
	case GBK:
		return simplifiedchinese.GBK, nil
	case GB18030:
		return simplifiedchinese.GB18030, nil
	case Big5:
		return traditionalchinese.Big5, nil
	case EUCKR:
		return korean.EUCKR, nil
	}
	return nil, errors.New("unsupported encoding id")
}

// NewDecodingReader wraps r so reads come out as UTF-8, transcoding
// from src on the fly. UTF8 is a passthrough.
func NewDecodingReader(r io.Reader, src ID) (io.Reader, error) {
	if src == UTF8 {
		return r, nil
	}
	enc, err := encodingFor(src)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// ToUTF8 decodes input (in encoding src) to a UTF-8 string.
func ToUTF8(input []byte, src ID) (string, error) {
	r, err := NewDecodingReader(strings.NewReader(string(input)), src)
	if err != nil {
		return "", err
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
