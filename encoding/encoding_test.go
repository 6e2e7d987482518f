package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorbylang/rubylex/encoding"
)

func TestDetectMagicComment(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		wantRaw string
		wantOK  bool
	}{
		{"coding colon form", " coding: utf-8", "utf-8", true},
		{"encoding equals form", " encoding = ASCII-8BIT", "ASCII-8BIT", true},
		{"no magic comment at all", " just a regular comment", "", false},
		{"dash-unix suffix stripped", " coding: utf-8-unix", "utf-8", true},
		{"dash-dos suffix stripped", " coding: utf-8-dos", "utf-8", true},
		{"utf8-mac preserved whole", " coding: utf8-mac", "utf8-mac", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, ok := encoding.DetectMagicComment(tt.comment)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantRaw, raw)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		raw  string
		want encoding.Name
		ok   bool
	}{
		{"UTF-8", encoding.UTF8, true},
		{"utf8", encoding.UTF8, true},
		{"utf8-mac", encoding.UTF8, true},
		{"ASCII-8BIT", encoding.ASCII8BIT, true},
		{"binary", encoding.ASCII8BIT, true},
		{"KOI8-R", encoding.KOI8R, true},
		{"koi8-r", encoding.KOI8R, true},
		{"Shift_JIS", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := encoding.Resolve(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDecodeUTF8IsIdentity(t *testing.T) {
	raw := []byte("hello \xE2\x9C\x93") // already-valid UTF-8 checkmark
	assert.Equal(t, raw, encoding.Decode(encoding.UTF8, raw))
}

func TestDecodeLatin1ReencodesHighBytes(t *testing.T) {
	raw := []byte{0xE9} // Latin-1 'é'
	got := encoding.Decode(encoding.ASCII8BIT, raw)
	assert.Equal(t, "é", string(got))
}

func TestDecodeLatin1PassesAsciiThrough(t *testing.T) {
	raw := []byte("plain ascii")
	assert.Equal(t, raw, encoding.Decode(encoding.ASCII8BIT, raw))
}

func TestDecodeKOI8RMapsHighBytesToCyrillic(t *testing.T) {
	raw := []byte{0xC1} // KOI8-R 'а' (Cyrillic a)
	got := encoding.Decode(encoding.KOI8R, raw)
	require.Equal(t, "а", string(got))
}

func TestDecodeKOI8RPassesAsciiThrough(t *testing.T) {
	raw := []byte("plain ascii")
	assert.Equal(t, raw, encoding.Decode(encoding.KOI8R, raw))
}
