package audio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestOscillatorLengthAndRange(t *testing.T) {
	tests := []struct {
		name string
		wave Wave
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			osc := NewOscillator(440, 100, 100*time.Millisecond, tc.wave, sampleRate)
			samples := make([][2]float64, 256)
			n, ok := osc.Stream(samples)
			if !ok || n != 256 {
				t.Fatalf("Stream() = (%d, %v), expected (256, true)", n, ok)
			}
			for i := 0; i < n; i++ {
				if samples[i][0] < -1 || samples[i][0] > 1 {
					t.Fatalf("sample %d = %v, out of range", i, samples[i][0])
				}
			}
		})
	}
}

func TestSynthesizedEffectsEnd(t *testing.T) {
	for _, effect := range []Effect{EffectBlip, EffectExplosion, EffectHit, EffectShoot} {
		got := drain(Synthesize(effect, 0.5, sampleRate))
		if got == 0 {
			t.Errorf("Synthesize(%d) produced no samples", effect)
		}
		if limit := sampleRate.N(time.Second); got > limit {
			t.Errorf("Synthesize(%d) produced %d samples, expected under %d", effect, got, limit)
		}
	}
}

func TestEffectFor(t *testing.T) {
	tests := []struct {
		path     string
		expected Effect
	}{
		{"sounds/explosion.wav", EffectExplosion},
		{"sounds/hit.wav", EffectHit},
		{"sounds/shoot.wav", EffectShoot},
		{"SOUNDS/Laser.WAV", EffectShoot},
		{"sounds/other.wav", EffectBlip},
	}
	for _, tc := range tests {
		if got := EffectFor(tc.path); got != tc.expected {
			t.Errorf("EffectFor(%q) = %d, expected %d", tc.path, got, tc.expected)
		}
	}
}

func TestLoadBufferDecodesWav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blip.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, NewOscillator(440, 0, 100*time.Millisecond, WaveSine, sampleRate), format); err != nil {
		t.Fatalf("wav.Encode() failed: %v", err)
	}
	f.Close()

	buf, err := loadBuffer(path)
	if err != nil {
		t.Fatalf("loadBuffer() failed: %v", err)
	}
	if expected := sampleRate.N(100 * time.Millisecond); buf.Len() != expected {
		t.Errorf("Len() = %d, expected %d", buf.Len(), expected)
	}
}

func TestStreamerFallsBackToSynth(t *testing.T) {
	p := NewBeepPlayer(nil)
	s := p.streamer(filepath.Join(t.TempDir(), "explosion.wav"), 1)
	if drain(s) == 0 {
		t.Error("fallback streamer produced no samples")
	}
}

func TestPlayBeforeInitIsSilent(t *testing.T) {
	p := NewBeepPlayer(nil)
	p.Play("sounds/hit.wav", 1)
	if len(p.cache) != 0 {
		t.Errorf("cache = %d entries, expected none before Init", len(p.cache))
	}
}

func TestRecordingPlayer(t *testing.T) {
	var r RecordingPlayer
	r.Play("sounds/hit.wav", 0.5)
	r.Play("sounds/explosion.wav", 0.5)
	r.Play("sounds/hit.wav", 0.5)

	if got := r.Count("sounds/hit.wav"); got != 2 {
		t.Errorf("Count(hit) = %d, expected 2", got)
	}
	if got := len(r.Plays()); got != 3 {
		t.Errorf("Plays() = %d, expected 3", got)
	}
}
