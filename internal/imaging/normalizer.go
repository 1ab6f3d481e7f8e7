// Package imaging bounds photo size before any network use. An arbitrary
// input image is downscaled so neither dimension exceeds MaxDimension,
// re-encoded as JPEG, and wrapped in a self-describing data URL that every
// downstream component consumes.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"go.uber.org/zap"

	"verdant/internal/logging"
)

const (
	// MaxDimension is the upper bound for either output dimension.
	// Images already within bounds are never upscaled.
	MaxDimension = 1920

	// jpegQuality is the fixed re-encode quality.
	jpegQuality = 90
)

// ErrNotImage is returned when the declared media type is not image/*.
var ErrNotImage = errors.New("imaging: declared media type is not an image")

// Normalize decodes data, scales it to fit MaxDimension preserving aspect
// ratio, and returns a "data:image/jpeg;base64,..." string. The declared
// media type gates the operation; anything that is not image/* is rejected
// without decoding.
func Normalize(data []byte, declaredMIME string) (string, error) {
	if !strings.HasPrefix(declaredMIME, "image/") {
		return "", ErrNotImage
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("imaging: decode failed: %w", err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	outW, outH := FitDimensions(width, height)

	out := src
	if outW != width || outH != height {
		dst := image.NewRGBA(image.Rect(0, 0, outW, outH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		out = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("imaging: encode failed: %w", err)
	}

	logging.Named(logging.CategoryImaging).Debug("normalized image",
		zap.String("format", format),
		zap.Int("in_width", width), zap.Int("in_height", height),
		zap.Int("out_width", outW), zap.Int("out_height", outH),
		zap.Int("bytes", buf.Len()))

	return EncodeDataURL("image/jpeg", buf.Bytes()), nil
}

// NormalizeFile reads a photo from disk, inferring the media type from the
// file extension.
func NormalizeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("imaging: read %s: %w", path, err)
	}
	mediaType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}
	return Normalize(data, mediaType)
}

// FitDimensions scales (width, height) so the longer side is at most
// MaxDimension, preserving aspect ratio. Smaller images pass through.
func FitDimensions(width, height int) (int, int) {
	if width <= MaxDimension && height <= MaxDimension {
		return width, height
	}
	if width > height {
		return MaxDimension, (height*MaxDimension + width/2) / width
	}
	return (width*MaxDimension + height/2) / height, MaxDimension
}

// EncodeDataURL wraps raw bytes in a data URL carrying the media type.
func EncodeDataURL(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// ParseDataURL splits a data URL into media type and raw bytes. Plain
// base64 without a prefix is accepted and reported as image/jpeg, since
// the normalizer always emits JPEG.
func ParseDataURL(s string) (mediaType string, data []byte, err error) {
	payload := s
	mediaType = "image/jpeg"
	if strings.HasPrefix(s, "data:") {
		semi := strings.Index(s, ";base64,")
		if semi < 0 {
			return "", nil, fmt.Errorf("imaging: malformed data URL")
		}
		mediaType = s[len("data:"):semi]
		payload = s[semi+len(";base64,"):]
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("imaging: base64 decode failed: %w", err)
	}
	return mediaType, data, nil
}

// StripDataURL returns only the base64 payload of an encoded image,
// removing any data-URL prefix. Used by the gateway before transmission.
func StripDataURL(s string) string {
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ";base64,"); i >= 0 {
			return s[i+len(";base64,"):]
		}
	}
	return s
}
