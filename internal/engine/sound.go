package engine

// SoundPlayer plays a sound by path. Play must not block the frame.
type SoundPlayer interface {
	Play(path string, volume float64)
}

// NopPlayer discards every sound.
type NopPlayer struct{}

// Play does nothing.
func (NopPlayer) Play(string, float64) {}
