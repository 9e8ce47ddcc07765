package qrmatrix

import (
	"testing"

	"github.com/makiuchi-d/gozxing/qrcode/decoder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFinishedSymbols(t *testing.T) {
	// Seven bytes fit every version and level.
	const text = "paepcke"
	for version := 1; version <= MaxVersion; version++ {
		for _, level := range []Level{LevelL, LevelM, LevelQ, LevelH} {
			for mask := 0; mask < numMasks; mask++ {
				m := New(version, level)
				m.AddData(text)
				require.NoError(t, m.MakeWithMask(mask))

				res, err := decoder.NewDecoder().DecodeBoolMapWithoutHint(m.Matrix().Bitmap())
				require.NoError(t, err, "version %d level %v mask %d", version, level, mask)
				assert.Equal(t, text, res.GetText())
				assert.Equal(t, level.String(), res.GetECLevel())
				assert.Zero(t, res.GetErrorsCorrected(), "version %d level %v mask %d", version, level, mask)
			}
		}
	}
}

func TestDecodeVersionOne(t *testing.T) {
	m, err := Encode("HELLO", 1, LevelQ)
	require.NoError(t, err)
	res, err := decoder.NewDecoder().DecodeBoolMapWithoutHint(m.Bitmap())
	require.NoError(t, err)
	assert.Equal(t, "HELLO", res.GetText())
	assert.Equal(t, "Q", res.GetECLevel())
}

func TestDecodeRawBytes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []byte
	}{
		{"latin-1", "caf\xe9", []byte{'c', 'a', 'f', 0xe9}},
		{"utf-8", "café", []byte{'c', 'a', 'f', 0xe9}},
		{"binary", "\x00\xff\xfe\x80", []byte{0x00, 0xff, 0xfe, 0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Encode(tt.text, 7, LevelM)
			require.NoError(t, err)
			res, err := decoder.NewDecoder().DecodeBoolMapWithoutHint(m.Bitmap())
			require.NoError(t, err)
			require.Len(t, res.GetByteSegments(), 1)
			assert.Equal(t, tt.want, res.GetByteSegments()[0])
		})
	}
}

func TestDecodeSegments(t *testing.T) {
	m := New(5, LevelH)
	m.AddData("first")
	m.AddData("second")
	require.NoError(t, m.Make())

	res, err := decoder.NewDecoder().DecodeBoolMapWithoutHint(m.Matrix().Bitmap())
	require.NoError(t, err)
	assert.Equal(t, "firstsecond", res.GetText())
	assert.Len(t, res.GetByteSegments(), 2)
}
