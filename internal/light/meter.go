// Package light estimates ambient light from camera frames. The number
// it produces is a relative lux index derived from perceived pixel
// brightness, useful for comparing spots rather than as a calibrated
// measurement.
package light

import (
	"context"
	"errors"
	"image"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"verdant/internal/logging"
)

// Band is the coarse classification of a reading.
type Band string

const (
	BandLow    Band = "Low Light"
	BandMedium Band = "Medium Light"
	BandBright Band = "Bright Light"
)

// Band thresholds on the lux index.
const (
	mediumThreshold = 50
	brightThreshold = 150
)

// Sampling geometry and cadence.
const (
	sampleSize      = 100
	luxScale        = 2.5
	DefaultInterval = 500 * time.Millisecond
)

// Reading is one light measurement.
type Reading struct {
	Lux            int
	Band           Band
	Recommendation string
	At             time.Time
}

// FrameSource supplies camera frames on demand.
type FrameSource interface {
	Frame(ctx context.Context) (image.Image, error)
}

// FrameSourceFunc adapts a function to FrameSource.
type FrameSourceFunc func(ctx context.Context) (image.Image, error)

func (f FrameSourceFunc) Frame(ctx context.Context) (image.Image, error) { return f(ctx) }

// Estimate computes a Reading from a single frame. The frame is sampled
// down to a small raster, averaged with the perceived-brightness
// weights, and scaled onto the lux index.
func Estimate(frame image.Image) Reading {
	sample := image.NewRGBA(image.Rect(0, 0, sampleSize, sampleSize))
	draw.ApproxBiLinear.Scale(sample, sample.Bounds(), frame, frame.Bounds(), draw.Src, nil)

	var total float64
	for y := 0; y < sampleSize; y++ {
		for x := 0; x < sampleSize; x++ {
			r, g, b, _ := sample.At(x, y).RGBA()
			total += 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
		}
	}
	avg := total / (sampleSize * sampleSize)
	lux := int(math.Round(avg * luxScale))

	band, rec := classify(lux)
	return Reading{Lux: lux, Band: band, Recommendation: rec, At: time.Now()}
}

func classify(lux int) (Band, string) {
	switch {
	case lux < mediumThreshold:
		return BandLow, "Too dark for most plants. Good for Snake Plant, ZZ Plant."
	case lux < brightThreshold:
		return BandMedium, "Good for Pothos, Ferns, Peace Lily."
	default:
		return BandBright, "Great for Succulents, Ficus, Herbs."
	}
}

// Meter runs continuous readings off a FrameSource. It is either idle
// or streaming; a failed frame grab ends the stream and parks the
// error for Err.
type Meter struct {
	source   FrameSource
	interval time.Duration
	log      *zap.Logger

	mu        sync.Mutex
	streaming bool
	lastErr   error
	stop      chan struct{}
	done      chan struct{}
}

// ErrAlreadyStreaming is returned by Start while a stream is active.
var ErrAlreadyStreaming = errors.New("light: meter is already streaming")

// NewMeter builds a meter over source. A non-positive interval falls
// back to DefaultInterval.
func NewMeter(source FrameSource, interval time.Duration) *Meter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Meter{
		source:   source,
		interval: interval,
		log:      logging.Named(logging.CategoryLight),
	}
}

// Start begins sampling and returns the reading channel. The channel
// closes when Stop is called, ctx is canceled, or the source fails;
// in the failure case Err reports the cause. Slow receivers never
// block sampling: a stale unread reading is replaced by the newer one.
func (m *Meter) Start(ctx context.Context) (<-chan Reading, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.streaming {
		return nil, ErrAlreadyStreaming
	}
	m.streaming = true
	m.lastErr = nil
	m.stop = make(chan struct{})
	m.done = make(chan struct{})

	out := make(chan Reading, 1)
	go m.run(ctx, out)
	return out, nil
}

func (m *Meter) run(ctx context.Context, out chan Reading) {
	defer close(out)
	defer close(m.done)
	defer func() {
		m.mu.Lock()
		m.streaming = false
		m.mu.Unlock()
	}()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-m.stop:
			return
		case <-ticker.C:
			frame, err := m.source.Frame(ctx)
			if err != nil {
				m.mu.Lock()
				m.lastErr = err
				m.mu.Unlock()
				m.log.Warn("frame grab failed, stopping stream", zap.Error(err))
				return
			}
			reading := Estimate(frame)
			select {
			case out <- reading:
			default:
				// Drop the stale reading and deliver the fresh one.
				select {
				case <-out:
				default:
				}
				out <- reading
			}
		}
	}
}

// Stop ends the stream and waits for the sampler to exit. Safe to call
// when idle.
func (m *Meter) Stop() {
	m.mu.Lock()
	stop, done := m.stop, m.done
	m.stop = nil
	m.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Err returns the error that ended the last stream, if any.
func (m *Meter) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}
