// Package engine is a small host engine for terminal games. It owns the scene
// graph, a physics world with trigger contact callbacks, resource catalogs,
// a camera that projects onto a core.Screen, particles and sound dispatch.
// Games drive it one frame at a time and never touch its internals.
package engine

import (
	"errors"
	"fmt"
)

// Version is the interface version this engine implements.
var Version = [3]int{0, 2, 1}

// ErrVersionMismatch is returned when a game requires an interface version
// this engine does not provide.
var ErrVersionMismatch = errors.New("engine: version mismatch")

// CheckVersion reports whether the engine provides exactly the required
// interface version.
func CheckVersion(required [3]int) error {
	if required != Version {
		return fmt.Errorf("%w: required %s, have %s", ErrVersionMismatch, versionString(required), versionString(Version))
	}
	return nil
}

func versionString(v [3]int) string {
	return fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2])
}
