package stickfigure

import "fmt"

// Pose is a complete snapshot of every joint position, indexed by Joint.
// Pose is a value type, assigning or passing one copies all positions, so a
// captured Pose is never aliased by later figure mutations
type Pose [NumJoints]Point

// defaultPose is the reference standing pose
var defaultPose = Pose{
	Head:          {0, 1.7},
	Neck:          {0, 1.4},
	SpineMid:      {0, 0.9},
	LeftShoulder:  {-0.3, 1.3},
	RightShoulder: {0.3, 1.3},
	LeftElbow:     {-0.5, 0.9},
	RightElbow:    {0.5, 0.9},
	LeftWrist:     {-0.6, 0.5},
	RightWrist:    {0.6, 0.5},
	LeftHip:       {-0.2, 0.5},
	RightHip:      {0.2, 0.5},
	LeftKnee:      {-0.2, 0.0},
	RightKnee:     {0.2, 0.0},
	LeftAnkle:     {-0.2, -0.5},
	RightAnkle:    {0.2, -0.5},
}

// DefaultPose returns the standing pose figures are constructed with
func DefaultPose() Pose {
	return defaultPose
}

// Interpolate linearly blends two poses at progress t, computing
// a + (b - a) * t componentwise for every joint.  A t outside [0, 1] is not
// an error and extrapolates linearly along the same line.  Inputs are not
// modified
func Interpolate(a, b Pose, t float64) Pose {
	var out Pose
	for j := range a {
		out[j].X = a[j].X + (b[j].X-a[j].X)*t
		out[j].Y = a[j].Y + (b[j].Y-a[j].Y)*t
	}
	return out
}

// Translated returns a copy of the pose with every joint shifted by
// (dx, dy).  Used to place multiple figures in one scene
func (p Pose) Translated(dx, dy float64) Pose {
	for j := range p {
		p[j].X += dx
		p[j].Y += dy
	}
	return p
}

// Named returns the pose as a name-keyed map for use at the serialization
// boundary
func (p Pose) Named() map[string]Point {
	m := make(map[string]Point, NumJoints)
	for j := range p {
		m[Joint(j).String()] = p[j]
	}
	return m
}

// PoseFromNamed builds a Pose from a name-keyed position map.  The map must
// contain exactly the skeleton's joint set: unknown names fail with
// ErrJointNotFound and missing joints fail with ErrPoseMismatch
func PoseFromNamed(m map[string]Point) (Pose, error) {
	var out Pose
	var seen [NumJoints]bool

	for name, pt := range m {
		j, err := ParseJoint(name)
		if err != nil {
			return Pose{}, err
		}
		out[j] = pt
		seen[j] = true
	}

	for j, ok := range seen {
		if !ok {
			return Pose{}, fmt.Errorf("%w: missing joint %q", ErrPoseMismatch, Joint(j))
		}
	}

	return out, nil
}
