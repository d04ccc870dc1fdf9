package stickfigure

import (
	"encoding/json"
	"fmt"
	"os"
)

// Snapshot is the on-disk pose record.  The field names are shared with
// snapshots written by earlier tooling and must not change
type Snapshot struct {
	Joints      map[string]SnapshotPoint `json:"joints"`
	Connections [][2]string              `json:"connections"`
}

// SnapshotPoint is one joint position inside a Snapshot
type SnapshotPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MarshalPose encodes a pose together with the skeleton's connection list
// as an indented JSON record
func MarshalPose(p Pose) ([]byte, error) {
	snap := Snapshot{
		Joints:      make(map[string]SnapshotPoint, NumJoints),
		Connections: make([][2]string, 0, NumBones),
	}

	for j := range p {
		snap.Joints[Joint(j).String()] = SnapshotPoint{X: p[j].X, Y: p[j].Y}
	}

	for _, b := range bones {
		snap.Connections = append(snap.Connections,
			[2]string{b.A.String(), b.B.String()})
	}

	data, err := json.MarshalIndent(snap, "", "  ")

	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}

	return data, nil
}

// UnmarshalPose reconstructs a pose from a JSON snapshot record.  Only joint
// positions are restored, the connection list is validated against the fixed
// skeleton but never redefines it.  Any malformed input, bad JSON, missing
// or unknown joints, or connections that are not part of the skeleton, fails
// with an error wrapping ErrMalformedSnapshot and no partial pose
func UnmarshalPose(data []byte) (Pose, error) {
	var snap Snapshot

	if err := json.Unmarshal(data, &snap); err != nil {
		return Pose{}, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}

	named := make(map[string]Point, len(snap.Joints))

	for name, pt := range snap.Joints {
		named[name] = Point{X: pt.X, Y: pt.Y}
	}

	pose, err := PoseFromNamed(named)

	if err != nil {
		return Pose{}, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}

	for _, c := range snap.Connections {
		a, err := ParseJoint(c[0])

		if err != nil {
			return Pose{}, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
		}

		b, err := ParseJoint(c[1])

		if err != nil {
			return Pose{}, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
		}

		if !Connected(a, b) {
			return Pose{}, fmt.Errorf("%w: connection %s-%s is not part of the skeleton",
				ErrMalformedSnapshot, c[0], c[1])
		}
	}

	return pose, nil
}

// SavePose writes a pose snapshot to a file
func SavePose(filename string, p Pose) error {
	data, err := MarshalPose(p)

	if err != nil {
		return err
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	return nil
}

// LoadPose reads a pose snapshot from a file
func LoadPose(filename string) (Pose, error) {
	data, err := os.ReadFile(filename)

	if err != nil {
		return Pose{}, fmt.Errorf("reading snapshot: %w", err)
	}

	return UnmarshalPose(data)
}
