package stickfigure

import "fmt"

// Figure is one stick figure instance.  It owns a single mutable pose which
// animators update frame by frame.  A Figure is not safe for concurrent use,
// the intended model is one synchronous frame loop per figure
type Figure struct {
	pose Pose
	// ignoreUnknown restores the legacy warn-and-skip behavior for
	// name-keyed updates
	ignoreUnknown bool
}

// NewFigure returns a figure in the default standing pose with the fixed
// skeleton structure
func NewFigure() *Figure {
	return &Figure{pose: defaultPose}
}

// SetIgnoreUnknown enables the compatibility mode where name-keyed updates
// silently skip unknown joint names instead of failing.  Enum-keyed access
// is unaffected
func (f *Figure) SetIgnoreUnknown(v bool) {
	f.ignoreUnknown = v
}

// Joint returns the current position of joint j
func (f *Figure) Joint(j Joint) Point {
	return f.pose[j]
}

// SetJoint overwrites the position of joint j
func (f *Figure) SetJoint(j Joint, p Point) {
	f.pose[j] = p
}

// JointByName returns the position of the named joint.  Unknown names fail
// with ErrJointNotFound
func (f *Figure) JointByName(name string) (Point, error) {
	j, err := ParseJoint(name)
	if err != nil {
		return Point{}, err
	}
	return f.pose[j], nil
}

// SetJointByName overwrites the position of the named joint.  Unknown names
// fail with ErrJointNotFound unless the ignore-unknown compatibility mode is
// enabled, in which case the update is skipped
func (f *Figure) SetJointByName(name string, p Point) error {
	j, err := ParseJoint(name)
	if err != nil {
		if f.ignoreUnknown {
			return nil
		}
		return fmt.Errorf("set joint: %w", err)
	}
	f.pose[j] = p
	return nil
}

// Pose returns a snapshot of the figure's current pose.  The snapshot is a
// copy and does not track later mutations
func (f *Figure) Pose() Pose {
	return f.pose
}

// SetPose replaces the figure's entire pose
func (f *Figure) SetPose(p Pose) {
	f.pose = p
}

// Translate shifts every joint by (dx, dy), moving the whole figure.  Used
// to lay out multiple independent figures in one scene
func (f *Figure) Translate(dx, dy float64) {
	f.pose = f.pose.Translated(dx, dy)
}
