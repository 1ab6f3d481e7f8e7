package light

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func uniformFrame(c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
	for y := 0; y < 480; y++ {
		for x := 0; x < 640; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestEstimateBands(t *testing.T) {
	tests := []struct {
		name    string
		frame   image.Image
		wantLux int
		want    Band
	}{
		{"pure white is bright", uniformFrame(color.RGBA{255, 255, 255, 255}), 638, BandBright},
		{"pure black is low", uniformFrame(color.RGBA{0, 0, 0, 255}), 0, BandLow},
		{"mid gray is medium", uniformFrame(color.RGBA{40, 40, 40, 255}), 100, BandMedium},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reading := Estimate(tt.frame)
			assert.Equal(t, tt.wantLux, reading.Lux)
			assert.Equal(t, tt.want, reading.Band)
			assert.NotEmpty(t, reading.Recommendation)
		})
	}
}

func TestEstimateRecommendations(t *testing.T) {
	dark := Estimate(uniformFrame(color.RGBA{0, 0, 0, 255}))
	assert.Equal(t, "Too dark for most plants. Good for Snake Plant, ZZ Plant.", dark.Recommendation)

	bright := Estimate(uniformFrame(color.RGBA{255, 255, 255, 255}))
	assert.Equal(t, "Great for Succulents, Ficus, Herbs.", bright.Recommendation)
}

func TestMeterStreamsAndStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	source := FrameSourceFunc(func(context.Context) (image.Image, error) {
		return uniformFrame(color.RGBA{255, 255, 255, 255}), nil
	})
	m := NewMeter(source, 5*time.Millisecond)

	readings, err := m.Start(context.Background())
	require.NoError(t, err)

	reading := <-readings
	assert.Equal(t, 638, reading.Lux)
	assert.Equal(t, BandBright, reading.Band)

	m.Stop()
	// Channel closes once the sampler exits.
	for range readings {
	}
	assert.NoError(t, m.Err())
}

func TestMeterRejectsDoubleStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	source := FrameSourceFunc(func(context.Context) (image.Image, error) {
		return uniformFrame(color.RGBA{0, 0, 0, 255}), nil
	})
	m := NewMeter(source, time.Millisecond)

	_, err := m.Start(context.Background())
	require.NoError(t, err)
	defer m.Stop()

	_, err = m.Start(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyStreaming)
}

func TestMeterStopsOnSourceFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	grabErr := errors.New("camera unplugged")
	source := FrameSourceFunc(func(context.Context) (image.Image, error) {
		return nil, grabErr
	})
	m := NewMeter(source, time.Millisecond)

	readings, err := m.Start(context.Background())
	require.NoError(t, err)

	for range readings {
	}
	assert.ErrorIs(t, m.Err(), grabErr)

	// A failed meter can start a fresh stream.
	m.Stop()
	_, err = m.Start(context.Background())
	require.NoError(t, err)
	m.Stop()
}

func TestMeterStopsOnContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	source := FrameSourceFunc(func(context.Context) (image.Image, error) {
		return uniformFrame(color.RGBA{0, 0, 0, 255}), nil
	})
	m := NewMeter(source, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	readings, err := m.Start(ctx)
	require.NoError(t, err)

	cancel()
	for range readings {
	}
	assert.NoError(t, m.Err())
}

func TestStopWhenIdleIsNoop(t *testing.T) {
	m := NewMeter(FrameSourceFunc(func(context.Context) (image.Image, error) {
		return nil, nil
	}), time.Millisecond)
	m.Stop()
	m.Stop()
}
