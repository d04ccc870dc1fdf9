package stickfigure

import "fmt"

// Point is a 2D position in normalized figure space.  The coordinate origin
// sits at the pelvis with the Y axis increasing upward.
type Point struct {
	X float64
	Y float64
}

// Joint identifies one of the fixed anatomical joints of the skeleton.
type Joint int

const (
	Head Joint = iota
	Neck
	SpineMid
	LeftShoulder
	RightShoulder
	LeftElbow
	RightElbow
	LeftWrist
	RightWrist
	LeftHip
	RightHip
	LeftKnee
	RightKnee
	LeftAnkle
	RightAnkle
)

// NumJoints is the number of joints in the skeleton.  Joints are never added
// or removed, only repositioned.
const NumJoints = 15

// jointNames holds the canonical joint names used at the serialization
// boundary.  The names match snapshot files written by earlier tooling and
// must not change.
var jointNames = [NumJoints]string{
	Head:          "head",
	Neck:          "neck",
	SpineMid:      "spine_mid",
	LeftShoulder:  "left_shoulder",
	RightShoulder: "right_shoulder",
	LeftElbow:     "left_elbow",
	RightElbow:    "right_elbow",
	LeftWrist:     "left_wrist",
	RightWrist:    "right_wrist",
	LeftHip:       "left_hip",
	RightHip:      "right_hip",
	LeftKnee:      "left_knee",
	RightKnee:     "right_knee",
	LeftAnkle:     "left_ankle",
	RightAnkle:    "right_ankle",
}

// String returns the canonical name of the joint
func (j Joint) String() string {
	if j < 0 || int(j) >= NumJoints {
		return fmt.Sprintf("joint(%d)", int(j))
	}
	return jointNames[j]
}

// ParseJoint maps a canonical joint name back to its identifier.  Unknown
// names fail with ErrJointNotFound
func ParseJoint(name string) (Joint, error) {
	for j, n := range jointNames {
		if n == name {
			return Joint(j), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrJointNotFound, name)
}

// JointNames returns the canonical names of all joints in identifier order
func JointNames() []string {
	names := make([]string, NumJoints)
	copy(names, jointNames[:])
	return names
}
