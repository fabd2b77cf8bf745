// Package rterr defines the ray tracer's error taxonomy. It exists as
// its own package, below math/lin, geom, camera, and scene, so every
// layer of the core can construct and distinguish these errors without
// introducing an import cycle back up to any of them.
//
// Per the propagation policy: InvalidGeometry is returned to whoever
// constructed the offending geometry, InvalidConfiguration is returned
// to whoever is finalizing a camera/scene, and NumericalDegeneracy /
// ResourceExhaustion are not meant to reach a caller at all — the
// tracer recovers from them locally (see package render) and they are
// defined here mainly so that code path can be named and tested.
package rterr

import (
	"errors"
	"fmt"
)

// Kind identifies which of the four error categories an error belongs to.
type Kind int

const (
	// InvalidGeometry marks a geometry construction failure: a zero
	// vector, a degenerate triangle/polygon, a non-convex polygon, or
	// a non-positive radius. Fatal to the object being built; it does
	// not affect the rest of the scene.
	InvalidGeometry Kind = iota
	// InvalidConfiguration marks a camera/scene finalization failure:
	// a non-perpendicular camera basis, non-positive view-plane
	// dimensions, or an unsupported option combination. Fatal to the
	// render.
	InvalidConfiguration
	// NumericalDegeneracy marks a computation that produced NaN or
	// infinity. Recovered locally: the affected contribution collapses
	// to black.
	NumericalDegeneracy
	// ResourceExhaustion marks recursion that would exceed maxDepth,
	// or an attenuation product that fell below minK. Recovered
	// locally by returning background/black; not a user-visible error.
	ResourceExhaustion
)

func (k Kind) String() string {
	switch k {
	case InvalidGeometry:
		return "InvalidGeometry"
	case InvalidConfiguration:
		return "InvalidConfiguration"
	case NumericalDegeneracy:
		return "NumericalDegeneracy"
	case ResourceExhaustion:
		return "ResourceExhaustion"
	default:
		return "UnknownError"
	}
}

// Error is the concrete error type returned by the core for all four
// kinds. Op names the operation that failed (e.g. "NewVector",
// "NewTriangle", "camera.New") to keep messages actionable.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s: %s", e.Kind, e.Op, e.Msg) }

// New constructs an *Error of the given kind.
func New(kind Kind, op, msg string) *Error { return &Error{Kind: kind, Op: op, Msg: msg} }

// Is reports whether err is an *Error of the given kind, unwrapping
// through fmt.Errorf("%w", ...) chains via errors.As semantics.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
