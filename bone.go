package stickfigure

// Bone is a rigid connection rendered as a line between two joints
type Bone struct {
	A Joint
	B Joint
}

// NumBones is the number of connections in the skeleton
const NumBones = 15

// bones defines the fixed skeleton structure.  The set is identical for
// every figure and never mutated after program start.  Every joint appears
// in at least one bone
var bones = [NumBones]Bone{
	// head to torso
	{Head, Neck},
	{Neck, SpineMid},

	// shoulders
	{Neck, LeftShoulder},
	{Neck, RightShoulder},

	// spine to hips
	{SpineMid, LeftHip},
	{SpineMid, RightHip},
	{LeftHip, RightHip},

	// left arm
	{LeftShoulder, LeftElbow},
	{LeftElbow, LeftWrist},

	// right arm
	{RightShoulder, RightElbow},
	{RightElbow, RightWrist},

	// left leg
	{LeftHip, LeftKnee},
	{LeftKnee, LeftAnkle},

	// right leg
	{RightHip, RightKnee},
	{RightKnee, RightAnkle},
}

// Bones returns the skeleton's connection list in drawing order.  The
// returned slice is a copy, callers cannot alter the skeleton structure
func Bones() []Bone {
	b := make([]Bone, NumBones)
	copy(b, bones[:])
	return b
}

// Connected reports whether the unordered joint pair (a, b) is a bone of
// the skeleton
func Connected(a, b Joint) bool {
	for _, bn := range bones {
		if (bn.A == a && bn.B == b) || (bn.A == b && bn.B == a) {
			return true
		}
	}
	return false
}
