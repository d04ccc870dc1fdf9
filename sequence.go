package stickfigure

import (
	"gonum.org/v1/gonum/floats"
)

// Keyframe is one pose in a sequence together with the time in seconds taken
// to blend into the next keyframe
type Keyframe struct {
	Pose     Pose
	Duration float64
}

// Sequence is an ordered list of keyframes played back by linear
// interpolation.  The zero value is an empty sequence ready for use
type Sequence struct {
	frames []Keyframe
}

// Add appends a keyframe to the sequence.  The pose is copied at call time,
// later changes to the source figure do not affect the sequence
func (s *Sequence) Add(p Pose, duration float64) {
	s.frames = append(s.frames, Keyframe{Pose: p, Duration: duration})
}

// Len returns the number of keyframes
func (s *Sequence) Len() int {
	return len(s.frames)
}

// Duration returns the total playback time of the sequence
func (s *Sequence) Duration() float64 {
	total := 0.0
	for _, kf := range s.frames {
		total += kf.Duration
	}
	return total
}

// At evaluates the sequence at the given elapsed time.  The segment holding
// the elapsed time is found by cumulative duration, ties resolve to the
// earlier segment, and the local progress interpolates toward the next
// keyframe.  Elapsed times beyond the total duration hold the final
// keyframe, negative times hold the first.  A zero or negative keyframe
// duration is an instantaneous transition
func (s *Sequence) At(elapsed float64) Pose {
	if len(s.frames) == 0 {
		return Pose{}
	}

	if elapsed < 0 {
		elapsed = 0
	}

	cum := 0.0

	for i, kf := range s.frames {
		if elapsed <= cum+kf.Duration {
			if i+1 >= len(s.frames) {
				// nothing to blend into
				return kf.Pose
			}

			t := 1.0
			if kf.Duration > 0 {
				t = (elapsed - cum) / kf.Duration
			}

			return Interpolate(kf.Pose, s.frames[i+1].Pose, t)
		}
		cum += kf.Duration
	}

	// past the end of the sequence, hold the final pose
	return s.frames[len(s.frames)-1].Pose
}

// Sample renders the sequence to discrete frames at the given frame rate.
// The samples span the full playback duration inclusive of both endpoints
func (s *Sequence) Sample(fps float64) []Pose {
	if len(s.frames) == 0 || fps <= 0 {
		return nil
	}

	total := s.Duration()
	n := int(total*fps) + 1

	if n < 2 {
		return []Pose{s.At(0)}
	}

	times := make([]float64, n)
	floats.Span(times, 0, total)

	poses := make([]Pose, n)
	for i, e := range times {
		poses[i] = s.At(e)
	}

	return poses
}
