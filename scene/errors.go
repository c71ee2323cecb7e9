package scene

import "errors"

var (
	// ErrUnknownFormat indicates the scene encoding could not be determined.
	ErrUnknownFormat = errors.New("scene: unknown format (want yaml or toml)")
	// ErrNoSteps indicates a walk without any step.
	ErrNoSteps = errors.New("scene: walk has no steps")
	// ErrWalkNotFound indicates a walk name missing from the scene.
	ErrWalkNotFound = errors.New("scene: walk not found")
)
