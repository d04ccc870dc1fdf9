package stickfigure

import (
	"fmt"
	"math"
)

// Side selects which arm a motion generator drives
type Side int

const (
	RightSide Side = iota
	LeftSide
)

// Generator computes the pose for one animation frame from the base pose
// captured before the animation started.  Generators are pure: the same
// (frame, total) input always yields the same pose and the base pose is
// never modified
type Generator func(base Pose, frame, total int) Pose

// Phase converts a frame index into the phase angle for the given number of
// motion cycles over the total frame count
func Phase(frame, total, cycles int) float64 {
	if total <= 0 {
		return 0
	}
	return 2 * math.Pi * float64(cycles) * float64(frame) / float64(total)
}

// WaveParams defines the amplitudes of the waving motion.  Offsets are added
// to the base positions of one elbow and wrist
type WaveParams struct {
	// Cycles is the number of complete waves over the animation
	Cycles int
	// Arm selects the waving arm
	Arm Side
	// ElbowAmpY is the vertical sine amplitude applied to the elbow
	ElbowAmpY float64
	// WristAmpX is the horizontal cosine amplitude applied to the wrist
	WristAmpX float64
	// WristAmpY is the vertical sine amplitude applied to the wrist
	WristAmpY float64
}

// DefaultWaveParams returns the reference waving motion: two cycles on the
// right arm
func DefaultWaveParams() WaveParams {
	return WaveParams{
		Cycles:    2,
		Arm:       RightSide,
		ElbowAmpY: 0.2,
		WristAmpX: 0.1,
		WristAmpY: 0.4,
	}
}

// WavePose computes the waving pose at phase angle theta
func WavePose(base Pose, p WaveParams, theta float64) Pose {
	elbow, wrist := RightElbow, RightWrist
	if p.Arm == LeftSide {
		elbow, wrist = LeftElbow, LeftWrist
	}

	out := base
	out[elbow].Y += p.ElbowAmpY * math.Sin(theta)
	out[wrist].X += p.WristAmpX * math.Cos(theta)
	out[wrist].Y += p.WristAmpY * math.Sin(theta)
	return out
}

// Waver returns a Generator producing the waving cycle
func Waver(p WaveParams) Generator {
	return func(base Pose, frame, total int) Pose {
		return WavePose(base, p, Phase(frame, total, p.Cycles))
	}
}

// WalkParams defines the amplitudes of the walking gait
type WalkParams struct {
	// Cycles is the number of complete strides over the animation
	Cycles int
	// KneeAmpY is the vertical sine amplitude applied to each knee
	KneeAmpY float64
	// AnkleAmpY is the vertical sine amplitude applied to each ankle
	AnkleAmpY float64
	// AnkleAmpX is the horizontal sway amplitude applied to each ankle
	AnkleAmpX float64
	// ArmAmpY is the vertical swing amplitude applied to each wrist
	ArmAmpY float64
}

// DefaultWalkParams returns the reference walking gait
func DefaultWalkParams() WalkParams {
	return WalkParams{
		Cycles:    2,
		KneeAmpY:  0.1,
		AnkleAmpY: 0.15,
		AnkleAmpX: 0.05,
		ArmAmpY:   0.1,
	}
}

// WalkPose computes the walking pose at phase angle theta.  The left and
// right legs move in antiphase (offset by pi) and each wrist swings with the
// phase of the opposite leg, matching a natural gait
func WalkPose(base Pose, p WalkParams, theta float64) Pose {
	leftLeg := theta
	rightLeg := theta + math.Pi

	out := base

	out[LeftKnee].Y += p.KneeAmpY * math.Sin(leftLeg)
	out[LeftAnkle].Y += p.AnkleAmpY * math.Sin(leftLeg)
	out[LeftAnkle].X += p.AnkleAmpX * math.Sin(leftLeg)

	out[RightKnee].Y += p.KneeAmpY * math.Sin(rightLeg)
	out[RightAnkle].Y += p.AnkleAmpY * math.Sin(rightLeg)
	out[RightAnkle].X += p.AnkleAmpX * math.Sin(rightLeg)

	// arms counter-swing against their own side's leg
	out[LeftWrist].Y += p.ArmAmpY * math.Sin(rightLeg)
	out[RightWrist].Y += p.ArmAmpY * math.Sin(leftLeg)

	return out
}

// Walker returns a Generator producing the walking cycle
func Walker(p WalkParams) Generator {
	return func(base Pose, frame, total int) Pose {
		return WalkPose(base, p, Phase(frame, total, p.Cycles))
	}
}

// Animate drives the generator over the given frame count against the
// figure.  The figure's pose at call time is captured as the animation base
// and restored before Animate returns on every exit path, including an emit
// failure.  emit is invoked after each frame's pose has been applied so the
// caller can hand the figure to a renderer, it may be nil
func Animate(fig *Figure, frames int, gen Generator, emit func(frame int) error) error {
	base := fig.Pose()
	defer fig.SetPose(base)

	for frame := 0; frame < frames; frame++ {
		fig.SetPose(gen(base, frame, frames))

		if emit != nil {
			if err := emit(frame); err != nil {
				return fmt.Errorf("animation stopped at frame %d: %w", frame, err)
			}
		}
	}

	return nil
}
