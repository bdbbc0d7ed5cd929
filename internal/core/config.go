package core

import "time"

// RuntimeConfig is handed to games on Reset. Games use it to adapt to the
// terminal size and to seed their RNG deterministically.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed, 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickDuration returns the wall-clock length of one simulation tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the status a game reports to the platform after every tick.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
	Idle     bool // Waiting on a start screen, no round in progress
}

// RunStats summarizes a finished game for the run history.
type RunStats struct {
	Kills    int
	Hits     int
	Duration time.Duration
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
