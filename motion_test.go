package stickfigure

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// TestPhase checks the phase angle mapping over a frame range
func TestPhase(t *testing.T) {
	if got := Phase(0, 80, 2); got != 0 {
		t.Errorf("Phase(0, 80, 2) = %f, expected 0", got)
	}

	if got := Phase(40, 80, 2); !scalar.EqualWithinAbs(got, 2*math.Pi, 1e-12) {
		t.Errorf("Phase(40, 80, 2) = %f, expected 2*pi", got)
	}

	if got := Phase(80, 80, 2); !scalar.EqualWithinAbs(got, 4*math.Pi, 1e-12) {
		t.Errorf("Phase(80, 80, 2) = %f, expected 4*pi", got)
	}

	// a zero frame count must not divide by zero
	if got := Phase(5, 0, 2); got != 0 {
		t.Errorf("Phase(5, 0, 2) = %f, expected 0", got)
	}
}

// TestWaveDeterministic checks the generator is a pure function of frame
// and total
func TestWaveDeterministic(t *testing.T) {
	base := DefaultPose()
	gen := Waver(DefaultWaveParams())

	for frame := 0; frame < 10; frame++ {
		if gen(base, frame, 60) != gen(base, frame, 60) {
			t.Fatalf("wave frame %d is not deterministic", frame)
		}
	}
}

// TestWaveMovesOnlyTheArm checks the waving motion offsets only the chosen
// elbow and wrist
func TestWaveMovesOnlyTheArm(t *testing.T) {
	base := DefaultPose()
	p := DefaultWaveParams()

	got := WavePose(base, p, math.Pi/3)

	for j := range base {
		moved := got[j] != base[j]

		switch Joint(j) {
		case RightElbow, RightWrist:
			if !moved {
				t.Errorf("expected %s to move", Joint(j))
			}
		default:
			if moved {
				t.Errorf("%s moved but is not part of the wave", Joint(j))
			}
		}
	}
}

// TestWaveAmplitudes checks the sinusoidal offsets at known phase angles
func TestWaveAmplitudes(t *testing.T) {
	base := DefaultPose()
	p := DefaultWaveParams()

	// at theta = pi/2 the sine terms peak and the cosine term vanishes
	got := WavePose(base, p, math.Pi/2)

	if want := base[RightElbow].Y + p.ElbowAmpY; !scalar.EqualWithinAbs(got[RightElbow].Y, want, 1e-12) {
		t.Errorf("elbow y = %f, expected %f", got[RightElbow].Y, want)
	}

	if want := base[RightWrist].Y + p.WristAmpY; !scalar.EqualWithinAbs(got[RightWrist].Y, want, 1e-12) {
		t.Errorf("wrist y = %f, expected %f", got[RightWrist].Y, want)
	}

	if !scalar.EqualWithinAbs(got[RightWrist].X, base[RightWrist].X, 1e-12) {
		t.Errorf("wrist x = %f, expected unchanged at theta=pi/2", got[RightWrist].X)
	}

	// at theta = 0 only the cosine term contributes
	got = WavePose(base, p, 0)

	if want := base[RightWrist].X + p.WristAmpX; !scalar.EqualWithinAbs(got[RightWrist].X, want, 1e-12) {
		t.Errorf("wrist x = %f, expected %f", got[RightWrist].X, want)
	}
}

// TestWaveLeftArm checks side selection drives the other arm
func TestWaveLeftArm(t *testing.T) {
	base := DefaultPose()
	p := DefaultWaveParams()
	p.Arm = LeftSide

	got := WavePose(base, p, math.Pi/2)

	if got[LeftWrist] == base[LeftWrist] {
		t.Error("expected the left wrist to move")
	}

	if got[RightWrist] != base[RightWrist] {
		t.Error("right arm moved while waving with the left")
	}
}

// TestWalkAntiphase checks the left and right leg offsets are equal in
// magnitude and opposite in sign at every phase
func TestWalkAntiphase(t *testing.T) {
	base := DefaultPose()
	p := DefaultWalkParams()

	for _, theta := range []float64{0.1, 0.5, 1.3, 2.9, 4.2} {
		got := WalkPose(base, p, theta)

		leftKnee := got[LeftKnee].Y - base[LeftKnee].Y
		rightKnee := got[RightKnee].Y - base[RightKnee].Y

		if !scalar.EqualWithinAbs(leftKnee, -rightKnee, 1e-12) {
			t.Errorf("theta=%f: knee offsets %f and %f are not antiphase",
				theta, leftKnee, rightKnee)
		}

		leftAnkle := got[LeftAnkle].Y - base[LeftAnkle].Y
		rightAnkle := got[RightAnkle].Y - base[RightAnkle].Y

		if !scalar.EqualWithinAbs(leftAnkle, -rightAnkle, 1e-12) {
			t.Errorf("theta=%f: ankle offsets %f and %f are not antiphase",
				theta, leftAnkle, rightAnkle)
		}
	}
}

// TestWalkArmCoupling checks each wrist swings with the opposite leg's phase
func TestWalkArmCoupling(t *testing.T) {
	base := DefaultPose()
	p := DefaultWalkParams()

	theta := 0.7
	got := WalkPose(base, p, theta)

	leftWrist := got[LeftWrist].Y - base[LeftWrist].Y
	rightWrist := got[RightWrist].Y - base[RightWrist].Y

	// left arm follows the right leg (theta + pi), right arm the left leg
	if want := p.ArmAmpY * math.Sin(theta+math.Pi); !scalar.EqualWithinAbs(leftWrist, want, 1e-12) {
		t.Errorf("left wrist offset = %f, expected %f", leftWrist, want)
	}

	if want := p.ArmAmpY * math.Sin(theta); !scalar.EqualWithinAbs(rightWrist, want, 1e-12) {
		t.Errorf("right wrist offset = %f, expected %f", rightWrist, want)
	}
}

// TestAnimateRestoresPose checks the figure returns to its original pose
// after a completed animation
func TestAnimateRestoresPose(t *testing.T) {
	fig := NewFigure()
	before := fig.Pose()

	frames := 0

	err := Animate(fig, 30, Walker(DefaultWalkParams()), func(frame int) error {
		frames++
		return nil
	})

	if err != nil {
		t.Fatalf("Animate failed: %v", err)
	}

	if frames != 30 {
		t.Errorf("emitted %d frames, expected 30", frames)
	}

	if fig.Pose() != before {
		t.Error("pose was not restored after the animation")
	}
}

// TestAnimateRestoresOnError checks restoration happens even when emission
// aborts the animation early
func TestAnimateRestoresOnError(t *testing.T) {
	fig := NewFigure()
	before := fig.Pose()

	boom := errors.New("emit failed")

	err := Animate(fig, 30, Waver(DefaultWaveParams()), func(frame int) error {
		if frame == 3 {
			return boom
		}
		return nil
	})

	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped emit error, got %v", err)
	}

	if fig.Pose() != before {
		t.Error("pose was not restored after the aborted animation")
	}
}

// TestAnimateAppliesGeneratedPose checks the figure carries the generated
// pose while each frame is emitted
func TestAnimateAppliesGeneratedPose(t *testing.T) {
	fig := NewFigure()
	base := fig.Pose()
	gen := Walker(DefaultWalkParams())

	err := Animate(fig, 10, gen, func(frame int) error {
		want := gen(base, frame, 10)
		if fig.Pose() != want {
			t.Errorf("frame %d: figure pose does not match generator output", frame)
		}
		return nil
	})

	if err != nil {
		t.Fatalf("Animate failed: %v", err)
	}
}
