package stickfigure

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
)

// TestSnapshotRoundTrip checks load(save(p)) reproduces every joint
// position within floating point tolerance
func TestSnapshotRoundTrip(t *testing.T) {
	want := DefaultPose()
	want[LeftWrist] = Point{X: -0.123456789, Y: 1.987654321}
	want[RightAnkle] = Point{X: 0.333333333333, Y: -0.777777777777}

	data, err := MarshalPose(want)

	if err != nil {
		t.Fatalf("MarshalPose failed: %v", err)
	}

	got, err := UnmarshalPose(data)

	if err != nil {
		t.Fatalf("UnmarshalPose failed: %v", err)
	}

	if !posesEqual(got, want, 1e-9) {
		t.Errorf("round trip mismatch: got %v, expected %v", got, want)
	}
}

// TestSnapshotFileRoundTrip checks the file helpers
func TestSnapshotFileRoundTrip(t *testing.T) {
	want := DefaultPose().Translated(0.25, -0.5)

	filename := filepath.Join(t.TempDir(), "pose.json")

	if err := SavePose(filename, want); err != nil {
		t.Fatalf("SavePose failed: %v", err)
	}

	got, err := LoadPose(filename)

	if err != nil {
		t.Fatalf("LoadPose failed: %v", err)
	}

	if !posesEqual(got, want, 1e-9) {
		t.Error("file round trip mismatch")
	}
}

// TestSnapshotFieldNames checks the stable on-disk structure: a joints
// mapping and a connections list
func TestSnapshotFieldNames(t *testing.T) {
	data, err := MarshalPose(DefaultPose())

	if err != nil {
		t.Fatalf("MarshalPose failed: %v", err)
	}

	var snap Snapshot

	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("decoding snapshot failed: %v", err)
	}

	if len(snap.Joints) != NumJoints {
		t.Errorf("snapshot has %d joints, expected %d", len(snap.Joints), NumJoints)
	}

	if len(snap.Connections) != NumBones {
		t.Errorf("snapshot has %d connections, expected %d", len(snap.Connections), NumBones)
	}

	if _, ok := snap.Joints["spine_mid"]; !ok {
		t.Error("snapshot is missing the spine_mid joint key")
	}
}

// TestLoadMalformedJSON checks unparseable input fails with
// ErrMalformedSnapshot
func TestLoadMalformedJSON(t *testing.T) {
	if _, err := UnmarshalPose([]byte("{")); !errors.Is(err, ErrMalformedSnapshot) {
		t.Errorf("expected ErrMalformedSnapshot, got %v", err)
	}
}

// TestLoadMissingJoint checks an incomplete joint map is rejected rather
// than partially reconstructed
func TestLoadMissingJoint(t *testing.T) {
	data, err := MarshalPose(DefaultPose())

	if err != nil {
		t.Fatalf("MarshalPose failed: %v", err)
	}

	var snap Snapshot

	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("decoding snapshot failed: %v", err)
	}

	delete(snap.Joints, "head")

	data, err = json.Marshal(snap)

	if err != nil {
		t.Fatalf("re-encoding snapshot failed: %v", err)
	}

	_, err = UnmarshalPose(data)

	if !errors.Is(err, ErrMalformedSnapshot) {
		t.Errorf("expected ErrMalformedSnapshot, got %v", err)
	}

	if !errors.Is(err, ErrPoseMismatch) {
		t.Errorf("expected ErrPoseMismatch in the chain, got %v", err)
	}
}

// TestLoadUnknownJoint checks joint names outside the vocabulary are
// rejected
func TestLoadUnknownJoint(t *testing.T) {
	record := []byte(`{"joints": {"tail": {"x": 0, "y": 0}}, "connections": []}`)

	_, err := UnmarshalPose(record)

	if !errors.Is(err, ErrMalformedSnapshot) {
		t.Errorf("expected ErrMalformedSnapshot, got %v", err)
	}

	if !errors.Is(err, ErrJointNotFound) {
		t.Errorf("expected ErrJointNotFound in the chain, got %v", err)
	}
}

// TestLoadNonNumericCoordinate checks coordinate type errors are rejected
func TestLoadNonNumericCoordinate(t *testing.T) {
	record := []byte(`{"joints": {"head": {"x": "wide", "y": 1.7}}, "connections": []}`)

	if _, err := UnmarshalPose(record); !errors.Is(err, ErrMalformedSnapshot) {
		t.Errorf("expected ErrMalformedSnapshot, got %v", err)
	}
}

// TestLoadBadConnection checks connection pairs outside the skeleton are
// rejected, the connection list can never redefine the model
func TestLoadBadConnection(t *testing.T) {
	data, err := MarshalPose(DefaultPose())

	if err != nil {
		t.Fatalf("MarshalPose failed: %v", err)
	}

	var snap Snapshot

	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("decoding snapshot failed: %v", err)
	}

	snap.Connections[0] = [2]string{"head", "left_wrist"}

	data, err = json.Marshal(snap)

	if err != nil {
		t.Fatalf("re-encoding snapshot failed: %v", err)
	}

	if _, err := UnmarshalPose(data); !errors.Is(err, ErrMalformedSnapshot) {
		t.Errorf("expected ErrMalformedSnapshot, got %v", err)
	}
}
