package stickfigure

// SimulatorParams defines the constants for the physics toy
type SimulatorParams struct {
	// Gravity is added to every joint's vertical velocity each step.
	// Negative values pull downward
	Gravity float64
	// Damping scales the reflected vertical velocity when a joint bounces
	// off its lower bound
	Damping float64
}

// DefaultSimulatorParams returns the reference gravity and bounce damping
func DefaultSimulatorParams() SimulatorParams {
	return SimulatorParams{
		Gravity: -0.02,
		Damping: 0.7,
	}
}

// Bounds limits a joint's vertical travel.  Use math.Inf values to leave a
// side open
type Bounds struct {
	MinY float64
	MaxY float64
}

// DefaultBounds returns the reference constraint set: the ankles act as a
// floor contact and the head is kept within the scene
func DefaultBounds() map[Joint]Bounds {
	return map[Joint]Bounds{
		LeftAnkle:  {MinY: -0.8, MaxY: 0.5},
		RightAnkle: {MinY: -0.8, MaxY: 0.5},
		Head:       {MinY: 0.5, MaxY: 2.5},
	}
}

// Simulator integrates simple per-joint motion over a figure: explicit Euler
// with constant gravity and positional clamping on a subset of joints.
// There is no mass, no inter-joint collision and no sub-stepping, it is a
// toy integrator for drop-and-bounce style animation
type Simulator struct {
	Params SimulatorParams

	fig    *Figure
	vel    [NumJoints]Point
	bounds map[Joint]Bounds
}

// NewSimulator returns a simulator over the figure with zeroed velocities
// and the default constraint set
func NewSimulator(fig *Figure, params SimulatorParams) *Simulator {
	return &Simulator{
		Params: params,
		fig:    fig,
		bounds: DefaultBounds(),
	}
}

// SetBounds declares or replaces the vertical bounds for a joint
func (s *Simulator) SetBounds(j Joint, b Bounds) {
	s.bounds[j] = b
}

// ClearBounds removes the bounds for a joint, letting it move freely
func (s *Simulator) ClearBounds(j Joint) {
	delete(s.bounds, j)
}

// Velocity returns the current velocity of joint j
func (s *Simulator) Velocity(j Joint) Point {
	return s.vel[j]
}

// SetVelocity overrides the velocity of joint j
func (s *Simulator) SetVelocity(j Joint, v Point) {
	s.vel[j] = v
}

// Step advances the simulation by one frame: gravity is applied to every
// velocity, every position integrates its velocity, then constraints clamp
// the bounded joints.  The lower bound is applied first and reflects the
// vertical velocity scaled by the damping factor, the upper bound is a hard
// clamp that leaves velocity untouched
func (s *Simulator) Step() {
	for j := range s.vel {
		s.vel[j].Y += s.Params.Gravity
	}

	pose := s.fig.Pose()

	for j := range pose {
		pose[j].X += s.vel[j].X
		pose[j].Y += s.vel[j].Y
	}

	for j, b := range s.bounds {
		pt := pose[j]

		if pt.Y < b.MinY {
			pt.Y = b.MinY
			s.vel[j].Y = -s.vel[j].Y * s.Params.Damping
		}

		if pt.Y > b.MaxY {
			pt.Y = b.MaxY
		}

		pose[j] = pt
	}

	s.fig.SetPose(pose)
}
