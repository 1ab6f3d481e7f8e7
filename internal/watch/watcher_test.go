package watch

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"verdant/internal/types"
)

type countingIdentifier struct {
	mu    sync.Mutex
	calls []string
}

func (c *countingIdentifier) Identify(_ context.Context, imageDataURL string, lang types.Language) (*types.Identification, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, imageDataURL)
	return &types.Identification{
		ID:          "rec-1",
		Language:    lang,
		ImageRef:    imageDataURL,
		CommonNames: []string{"Golden Pothos"},
	}, nil
}

func (c *countingIdentifier) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

type memoryAppender struct {
	mu      sync.Mutex
	records []*types.Identification
}

func (m *memoryAppender) Append(_ context.Context, rec *types.Identification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, rec)
	return nil
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < 8; i++ {
		img.Set(i, i, color.RGBA{0, 128, 0, 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func TestWatcherIdentifiesDroppedImage(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	identifier := &countingIdentifier{}
	appender := &memoryAppender{}
	identified := make(chan *types.Identification, 1)

	w := New(Config{
		Dir:          dir,
		Language:     types.LanguageEnglish,
		Workers:      2,
		Identifier:   identifier,
		Appender:     appender,
		OnIdentified: func(rec *types.Identification) { identified <- rec },
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher a moment to register before dropping the file.
	time.Sleep(100 * time.Millisecond)
	writePNG(t, filepath.Join(dir, "pothos.png"))

	select {
	case rec := <-identified:
		assert.Equal(t, "Golden Pothos", rec.DisplayName())
	case <-time.After(5 * time.Second):
		t.Fatal("dropped image was never identified")
	}

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, 1, identifier.count())
	assert.Len(t, appender.records, 1)
}

func TestWatcherIgnoresNonImageFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	identifier := &countingIdentifier{}

	w := New(Config{
		Dir:        dir,
		Workers:    1,
		Identifier: identifier,
		Appender:   &memoryAppender{},
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("water on fridays"), 0644))

	// Long enough for the settle window to elapse.
	time.Sleep(settleDuration + 300*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
	assert.Zero(t, identifier.count())
}

func TestIsImagePath(t *testing.T) {
	assert.True(t, isImagePath("a/b/photo.JPG"))
	assert.True(t, isImagePath("leaf.webp"))
	assert.False(t, isImagePath("notes.txt"))
	assert.False(t, isImagePath("archive.tar.gz"))
}
