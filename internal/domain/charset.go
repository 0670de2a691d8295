package domain

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Charset is one entry of the decoding fallback chain.
type Charset struct {
	Name   string
	decode func(raw []byte) (string, bool)
}

// FallbackName is reported when no charset of the chain accepted the input.
const FallbackName = "utf-8 (replaced)"

// Charsets is tried in order by DecodeText.
var Charsets = []Charset{
	{Name: "utf-8", decode: decodeUTF8},
	{Name: "windows-1251", decode: singleByte(charmap.Windows1251)},
	{Name: "koi8-r", decode: singleByte(charmap.KOI8R)},
	{Name: "iso-8859-1", decode: singleByte(charmap.ISO8859_1)},
}

// DecodeText returns raw decoded with the first charset that accepts it, and that
// charset's name.
func DecodeText(raw []byte) (string, string) {
	return decodeWith(Charsets, raw)
}

func decodeWith(chain []Charset, raw []byte) (string, string) {
	for _, cs := range chain {
		if text, ok := cs.decode(raw); ok {
			return text, cs.Name
		}
	}
	return strings.ToValidUTF8(string(raw), string(utf8.RuneError)), FallbackName
}

func decodeUTF8(raw []byte) (string, bool) {
	if !utf8.Valid(raw) {
		return "", false
	}
	return string(raw), true
}

// singleByte rejects input containing bytes the charmap leaves undefined, which the
// x/text decoder would otherwise turn into U+FFFD.
func singleByte(cm *charmap.Charmap) func([]byte) (string, bool) {
	return func(raw []byte) (string, bool) {
		out, err := cm.NewDecoder().Bytes(raw)
		if err != nil || bytes.ContainsRune(out, utf8.RuneError) {
			return "", false
		}
		return string(out), true
	}
}
