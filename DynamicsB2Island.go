package box2d

import (
	"math"
)

/// This is an internal class. It copies the state of a set of bodies into
/// struct-of-arrays solver buffers, runs the joint lifecycle and writes the
/// result back. Joints reach body state only through island indices.
type B2Island struct {
	M_bodies []int // body indices into the world
	M_joints []*B2Joint

	M_positions  []B2Position
	M_velocities []B2Velocity
}

func MakeB2Island(bodyCapacity int, jointCapacity int) B2Island {
	return B2Island{
		M_bodies:     make([]int, 0, bodyCapacity),
		M_joints:     make([]*B2Joint, 0, jointCapacity),
		M_positions:  make([]B2Position, 0, bodyCapacity),
		M_velocities: make([]B2Velocity, 0, bodyCapacity),
	}
}

func (island *B2Island) Clear() {
	island.M_bodies = island.M_bodies[:0]
	island.M_joints = island.M_joints[:0]
}

func (island *B2Island) AddBody(bodies []B2Body, bodyIndex int) {
	bodies[bodyIndex].M_islandIndex = len(island.M_bodies)
	island.M_bodies = append(island.M_bodies, bodyIndex)
}

func (island *B2Island) AddJoint(joint *B2Joint) {
	island.M_joints = append(island.M_joints, joint)
}

func (island B2Island) GetBodyCount() int {
	return len(island.M_bodies)
}

func (island B2Island) GetJointCount() int {
	return len(island.M_joints)
}

/// Run one step. Returns true when every joint reported its position error
/// within tolerance before the position iterations ran out.
func (island *B2Island) Solve(bodies []B2Body, step B2TimeStep, settings B2Settings, gravity B2Vec2) bool {
	h := step.Dt

	island.M_positions = island.M_positions[:0]
	island.M_velocities = island.M_velocities[:0]

	// Integrate velocities and apply damping. Initialize the body state.
	for _, bodyIndex := range island.M_bodies {
		b := &bodies[bodyIndex]

		c := b.M_sweep.C
		a := b.M_sweep.A
		v := b.M_linearVelocity
		w := b.M_angularVelocity

		// Store positions for continuous collision.
		b.M_sweep.C0 = b.M_sweep.C
		b.M_sweep.A0 = b.M_sweep.A

		if b.M_type == B2BodyType.B2_dynamicBody {
			// Integrate velocities.
			v.OperatorPlusInplace(B2Vec2MulScalar(h*b.M_gravityScale, gravity))

			// Apply damping.
			// ODE: dv/dt + c * v = 0
			// Pade approximation:
			// v2 = v1 * 1 / (1 + c * dt)
			v.OperatorScalarMulInplace(1.0 / (1.0 + h*b.M_linearDamping))
			w *= 1.0 / (1.0 + h*b.M_angularDamping)
		}

		island.M_positions = append(island.M_positions, B2Position{C: c, A: a})
		island.M_velocities = append(island.M_velocities, B2Velocity{V: v, W: w})
	}

	// Solver data
	solverData := B2SolverData{
		Step:       step,
		Positions:  island.M_positions,
		Velocities: island.M_velocities,
		Bodies:     bodies,
		Settings:   settings,
	}

	// Initialize velocity constraints.
	for _, joint := range island.M_joints {
		joint.InitVelocityConstraints(solverData)
	}

	// Solve velocity constraints
	for i := 0; i < step.VelocityIterations; i++ {
		for _, joint := range island.M_joints {
			joint.SolveVelocityConstraints(solverData)
		}
	}

	// Integrate positions
	maxTranslationSquared := settings.MaxTranslation * settings.MaxTranslation
	maxRotationSquared := settings.MaxRotation * settings.MaxRotation

	for i := range island.M_positions {
		c := island.M_positions[i].C
		a := island.M_positions[i].A
		v := island.M_velocities[i].V
		w := island.M_velocities[i].W

		// Check for large velocities
		translation := B2Vec2MulScalar(h, v)
		if B2Vec2Dot(translation, translation) > maxTranslationSquared {
			ratio := settings.MaxTranslation / translation.Length()
			v.OperatorScalarMulInplace(ratio)
		}

		rotation := h * w
		if rotation*rotation > maxRotationSquared {
			ratio := settings.MaxRotation / math.Abs(rotation)
			w *= ratio
		}

		// Integrate
		c.OperatorPlusInplace(B2Vec2MulScalar(h, v))
		a += h * w

		island.M_positions[i].C = c
		island.M_positions[i].A = a
		island.M_velocities[i].V = v
		island.M_velocities[i].W = w
	}

	// Solve position constraints
	positionSolved := false
	for i := 0; i < step.PositionIterations; i++ {
		jointsOkay := true
		for _, joint := range island.M_joints {
			jointOkay := joint.SolvePositionConstraints(solverData)
			jointsOkay = jointsOkay && jointOkay
		}

		if jointsOkay {
			// Exit early if the position errors are small.
			positionSolved = true
			break
		}
	}

	// Copy state buffers back to the bodies
	for i, bodyIndex := range island.M_bodies {
		body := &bodies[bodyIndex]
		body.M_sweep.C = island.M_positions[i].C
		body.M_sweep.A = island.M_positions[i].A
		body.M_linearVelocity = island.M_velocities[i].V
		body.M_angularVelocity = island.M_velocities[i].W
		body.SynchronizeTransform()
	}

	return positionSolved
}
