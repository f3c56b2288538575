package pictriage

import (
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const audioSampleRate = 48000

// oto context singleton, created lazily on the first feedback sound.
var (
	otoCtx      *oto.Context
	otoInitOnce sync.Once
	otoInitErr  error
)

// ensureOtoContext initializes the oto audio context on first use.
func ensureOtoContext() (*oto.Context, error) {
	otoInitOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   audioSampleRate,
			ChannelCount: 2,
			Format:       oto.FormatSignedInt16LE,
			BufferSize:   50 * time.Millisecond,
		}
		var readyChan chan struct{}
		otoCtx, readyChan, otoInitErr = oto.NewContext(op)
		if otoInitErr != nil {
			return
		}
		<-readyChan
	})
	return otoCtx, otoInitErr
}

// generateConfirmSound creates a short two-note blip played when an
// image is kept or favorited (48kHz stereo S16LE).
func generateConfirmSound() []byte {
	duration := 0.25
	numSamples := int(float64(audioSampleRate) * duration)

	notes := []struct {
		freq   float64
		start  float64
		volume float64
	}{
		{523.25, 0.0, 0.35}, // C5
		{783.99, 0.08, 0.3}, // G5
	}

	samples := make([]byte, numSamples*4) // 2 bytes * 2 channels

	for i := 0; i < numSamples; i++ {
		t := float64(i) / float64(audioSampleRate)
		sample := 0.0

		for _, note := range notes {
			if t < note.start {
				continue
			}

			noteT := t - note.start
			attackTime := 0.01
			decayTime := 0.15
			var envelope float64

			if noteT < attackTime {
				envelope = noteT / attackTime
			} else {
				envelope = math.Exp(-4 * (noteT - attackTime) / decayTime)
			}

			sample += math.Sin(2*math.Pi*note.freq*noteT) * envelope * note.volume
		}

		if sample > 1.0 {
			sample = 1.0
		} else if sample < -1.0 {
			sample = -1.0
		}

		value := int16(sample * 12000)

		idx := i * 4
		samples[idx] = byte(value)
		samples[idx+1] = byte(value >> 8)
		samples[idx+2] = byte(value)
		samples[idx+3] = byte(value >> 8)
	}

	return samples
}
