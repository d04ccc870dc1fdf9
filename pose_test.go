package stickfigure

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// posesEqual compares two poses within epsilon
func posesEqual(a, b Pose, epsilon float64) bool {
	for j := range a {
		if !scalar.EqualWithinAbs(a[j].X, b[j].X, epsilon) ||
			!scalar.EqualWithinAbs(a[j].Y, b[j].Y, epsilon) {
			return false
		}
	}
	return true
}

// testPoseB returns a pose distinct from the default at every joint
func testPoseB() Pose {
	b := DefaultPose()
	for j := range b {
		b[j].X += 0.5 + float64(j)*0.01
		b[j].Y -= 0.25 - float64(j)*0.02
	}
	return b
}

// TestInterpolateIdentity checks blending a pose with itself is that pose
// for any t, including out-of-range values
func TestInterpolateIdentity(t *testing.T) {
	a := DefaultPose()

	for _, tt := range []float64{-0.5, 0, 0.3, 1, 2} {
		if got := Interpolate(a, a, tt); !posesEqual(got, a, 1e-12) {
			t.Errorf("Interpolate(A, A, %f) != A", tt)
		}
	}
}

// TestInterpolateEndpoints checks t=0 and t=1 reproduce the endpoints
func TestInterpolateEndpoints(t *testing.T) {
	a := DefaultPose()
	b := testPoseB()

	if got := Interpolate(a, b, 0); !posesEqual(got, a, 1e-12) {
		t.Error("Interpolate(A, B, 0) != A")
	}

	if got := Interpolate(a, b, 1); !posesEqual(got, b, 1e-12) {
		t.Error("Interpolate(A, B, 1) != B")
	}
}

// TestInterpolateMidpoint checks t=0.5 is the componentwise midpoint
func TestInterpolateMidpoint(t *testing.T) {
	a := DefaultPose()
	b := testPoseB()

	got := Interpolate(a, b, 0.5)

	for j := range a {
		midX := (a[j].X + b[j].X) / 2
		midY := (a[j].Y + b[j].Y) / 2

		if !scalar.EqualWithinAbs(got[j].X, midX, 1e-12) ||
			!scalar.EqualWithinAbs(got[j].Y, midY, 1e-12) {
			t.Errorf("joint %s midpoint = %v, expected (%f, %f)",
				Joint(j), got[j], midX, midY)
		}
	}
}

// TestInterpolateExtrapolates checks t outside [0, 1] continues the line
// rather than failing
func TestInterpolateExtrapolates(t *testing.T) {
	a := DefaultPose()
	b := testPoseB()

	got := Interpolate(a, b, 2)

	for j := range a {
		wantX := a[j].X + (b[j].X-a[j].X)*2
		wantY := a[j].Y + (b[j].Y-a[j].Y)*2

		if !scalar.EqualWithinAbs(got[j].X, wantX, 1e-12) ||
			!scalar.EqualWithinAbs(got[j].Y, wantY, 1e-12) {
			t.Errorf("joint %s extrapolation = %v, expected (%f, %f)",
				Joint(j), got[j], wantX, wantY)
		}
	}
}

// TestInterpolateInputsUntouched checks interpolation never mutates its
// arguments
func TestInterpolateInputsUntouched(t *testing.T) {
	a := DefaultPose()
	b := testPoseB()
	aCopy := a
	bCopy := b

	Interpolate(a, b, 0.7)

	if a != aCopy || b != bCopy {
		t.Error("Interpolate modified an input pose")
	}
}

// TestNamedRoundTrip checks the name-keyed boundary mapping is lossless
func TestNamedRoundTrip(t *testing.T) {
	want := testPoseB()

	got, err := PoseFromNamed(want.Named())

	if err != nil {
		t.Fatalf("PoseFromNamed failed: %v", err)
	}

	if got != want {
		t.Errorf("round trip mismatch: got %v, expected %v", got, want)
	}
}

// TestPoseFromNamedMissingJoint checks an incomplete key set fails with
// ErrPoseMismatch
func TestPoseFromNamedMissingJoint(t *testing.T) {
	m := DefaultPose().Named()
	delete(m, "spine_mid")

	if _, err := PoseFromNamed(m); !errors.Is(err, ErrPoseMismatch) {
		t.Errorf("expected ErrPoseMismatch, got %v", err)
	}
}

// TestPoseFromNamedUnknownJoint checks unknown keys fail with
// ErrJointNotFound
func TestPoseFromNamedUnknownJoint(t *testing.T) {
	m := DefaultPose().Named()
	m["tail"] = Point{}

	if _, err := PoseFromNamed(m); !errors.Is(err, ErrJointNotFound) {
		t.Errorf("expected ErrJointNotFound, got %v", err)
	}
}

// TestTranslated checks pose translation shifts every joint and leaves the
// receiver untouched
func TestTranslated(t *testing.T) {
	a := DefaultPose()
	aCopy := a

	got := a.Translated(1, -1)

	if a != aCopy {
		t.Error("Translated modified the receiver")
	}

	for j := range a {
		if !scalar.EqualWithinAbs(got[j].X, a[j].X+1, 1e-12) ||
			!scalar.EqualWithinAbs(got[j].Y, a[j].Y-1, 1e-12) {
			t.Errorf("joint %s = %v, expected shifted %v", Joint(j), got[j], a[j])
		}
	}
}
