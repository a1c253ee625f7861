package box2d

/// The world class manages all physics entities and the time step.
/// Bodies are stored by value and addressed by index; a pointer returned by
/// GetBody is only valid until the next CreateBody.
type B2World struct {
	M_bodies []B2Body
	M_joints []*B2Joint

	M_gravity  B2Vec2
	M_settings B2Settings

	// This is used to compute the time step ratio to
	// support a variable time step.
	M_inv_dt0 float64

	M_positionSolved bool

	M_island B2Island
}

/// Construct a world object.
/// @param gravity the world gravity vector.
func MakeB2World(gravity B2Vec2, settings B2Settings) B2World {
	B2Assert(settings.Validate() == nil)

	return B2World{
		M_gravity:  gravity,
		M_settings: settings,
		M_island:   MakeB2Island(0, 0),
	}
}

/// Create a rigid body given a definition. Returns the body index.
func (world *B2World) CreateBody(def *B2BodyDef) int {
	world.M_bodies = append(world.M_bodies, MakeB2Body(def))
	return len(world.M_bodies) - 1
}

func (world *B2World) GetBody(index int) *B2Body {
	return &world.M_bodies[index]
}

func (world *B2World) GetBodies() []B2Body {
	return world.M_bodies
}

func (world B2World) GetBodyCount() int {
	return len(world.M_bodies)
}

/// Create a joint to constrain bodies together.
func (world *B2World) CreateJoint(def B2JointDefInterface) *B2Joint {
	jointDef := def.GetJointDef()
	B2Assert(jointDef.BodyA < len(world.M_bodies) && jointDef.BodyB < len(world.M_bodies))

	j := B2JointCreate(def)
	j.SetIndex(len(world.M_joints))
	world.M_joints = append(world.M_joints, j)

	return j
}

/// Destroy a joint.
func (world *B2World) DestroyJoint(j *B2Joint) {
	index := j.GetIndex()
	B2Assert(index >= 0 && index < len(world.M_joints) && world.M_joints[index] == j)

	last := len(world.M_joints) - 1
	world.M_joints[index] = world.M_joints[last]
	world.M_joints[index].SetIndex(index)
	world.M_joints[last] = nil
	world.M_joints = world.M_joints[:last]

	j.SetIndex(-1)
}

func (world *B2World) GetJointList() []*B2Joint {
	return world.M_joints
}

func (world B2World) GetJointCount() int {
	return len(world.M_joints)
}

func (world *B2World) SetGravity(gravity B2Vec2) {
	world.M_gravity = gravity
}

func (world B2World) GetGravity() B2Vec2 {
	return world.M_gravity
}

func (world B2World) GetSettings() B2Settings {
	return world.M_settings
}

/// Replace the solver settings. Takes effect on the next step.
func (world *B2World) SetSettings(settings B2Settings) {
	B2Assert(settings.Validate() == nil)
	world.M_settings = settings
}

/// Whether the last step ended with every joint within tolerance.
func (world B2World) IsPositionSolved() bool {
	return world.M_positionSolved
}

/// Take a time step. This performs integration and constraint solution.
/// @param dt the amount of time to simulate, this should not vary.
func (world *B2World) Step(dt float64) {
	step := MakeB2TimeStep(dt, world.M_inv_dt0, world.M_settings)

	if step.Dt <= 0.0 {
		return
	}

	island := &world.M_island
	island.Clear()

	for i := range world.M_bodies {
		island.AddBody(world.M_bodies, i)
	}

	for _, j := range world.M_joints {
		island.AddJoint(j)
	}

	world.M_positionSolved = island.Solve(world.M_bodies, step, world.M_settings, world.M_gravity)

	world.M_inv_dt0 = step.Inv_dt
}

/// Shift the world origin. Useful for large worlds.
/// The body shift formula is: position -= newOrigin
func (world *B2World) ShiftOrigin(newOrigin B2Vec2) {
	for i := range world.M_bodies {
		b := &world.M_bodies[i]
		b.M_xf.P.OperatorMinusInplace(newOrigin)
		b.M_sweep.C0.OperatorMinusInplace(newOrigin)
		b.M_sweep.C.OperatorMinusInplace(newOrigin)
	}

	for _, j := range world.M_joints {
		j.ShiftOrigin(newOrigin)
	}
}

/// Dump the world into the log.
func (world B2World) Dump() {
	B2Log("b2Vec2 g(%.15f, %.15f);\n", world.M_gravity.X, world.M_gravity.Y)
	B2Log("m_world->SetGravity(g);\n")

	B2Log("b2Body** bodies = (b2Body**)b2Alloc(%d * sizeof(b2Body*));\n", len(world.M_bodies))
	B2Log("b2Joint** joints = (b2Joint**)b2Alloc(%d * sizeof(b2Joint*));\n", len(world.M_joints))

	for i, b := range world.M_bodies {
		b.Dump(i)
	}

	for _, j := range world.M_joints {
		B2Log("{\n")
		j.Dump()
		B2Log("}\n")
	}

	B2Log("b2Free(joints);\n")
	B2Log("b2Free(bodies);\n")
	B2Log("joints = nullptr;\n")
	B2Log("bodies = nullptr;\n")
}
