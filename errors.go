package stickfigure

import "errors"

var (
	// ErrJointNotFound is returned when a joint name outside the fixed
	// skeleton vocabulary is referenced
	ErrJointNotFound = errors.New("joint not found")

	// ErrPoseMismatch is returned when a named pose does not cover the
	// complete joint set
	ErrPoseMismatch = errors.New("pose mismatch")

	// ErrMalformedSnapshot is returned when a saved pose record cannot be
	// reconstructed.  No partial pose is ever produced
	ErrMalformedSnapshot = errors.New("malformed pose snapshot")
)
