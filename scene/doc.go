// Package scene loads sparse voxel scenes from YAML or TOML files into a
// graphmat store and replays scripted walks over them.
//
// A scene lists populated cells and, optionally, named walks:
//
//	cells:
//	  - at: [4, 3, 6]
//	    value: 40
//	walks:
//	  - name: staircase
//	    from: [4, 3, 6]
//	    steps: [down, south, south, south]
//
// The same structure in TOML uses [[cells]] and [[walks]] tables.
//
// Errors:
//
//   - ErrUnknownFormat: file extension or format name is neither YAML nor TOML.
//   - ErrNoSteps: a walk has no steps.
//   - ErrWalkNotFound: a named walk is not part of the scene.
package scene
