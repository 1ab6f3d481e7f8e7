package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 64, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeDataURL(t *testing.T, s string) image.Image {
	t.Helper()
	mediaType, data, err := ParseDataURL(s)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mediaType)
	img, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	return img
}

func TestFitDimensions(t *testing.T) {
	tests := []struct {
		name           string
		inW, inH       int
		wantW, wantH   int
	}{
		{"within bounds untouched", 800, 600, 800, 600},
		{"exact bound untouched", 1920, 1080, 1920, 1080},
		{"wide landscape", 4000, 2000, 1920, 960},
		{"tall portrait", 1500, 3000, 960, 1920},
		{"square oversized", 2400, 2400, 1920, 1920},
		{"tiny never upscaled", 10, 10, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := FitDimensions(tt.inW, tt.inH)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestNormalizeDownscalesOversized(t *testing.T) {
	out, err := Normalize(encodePNG(t, 2500, 1000), "image/png")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "data:image/jpeg;base64,"))

	img := decodeDataURL(t, out)
	b := img.Bounds()
	assert.Equal(t, 1920, b.Dx())
	// Aspect ratio preserved within a pixel of rounding.
	assert.InDelta(t, 768, b.Dy(), 1)
}

func TestNormalizeKeepsSmallImages(t *testing.T) {
	out, err := Normalize(encodePNG(t, 320, 240), "image/png")
	require.NoError(t, err)

	b := decodeDataURL(t, out).Bounds()
	assert.Equal(t, 320, b.Dx())
	assert.Equal(t, 240, b.Dy())
}

func TestNormalizeRejectsNonImage(t *testing.T) {
	_, err := Normalize([]byte("%PDF-1.4"), "application/pdf")
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestParseDataURLPlainBase64(t *testing.T) {
	mediaType, data, err := ParseDataURL("aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mediaType)
	assert.Equal(t, []byte("hello"), data)
}

func TestStripDataURL(t *testing.T) {
	assert.Equal(t, "QUJD", StripDataURL("data:image/png;base64,QUJD"))
	assert.Equal(t, "QUJD", StripDataURL("QUJD"))
}
