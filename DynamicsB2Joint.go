package box2d

/// The closed set of joint kinds. B2Joint dispatches on this tag.
var B2JointType = struct {
	E_unknownJoint uint8
	E_pulleyJoint  uint8
}{
	E_unknownJoint: 1,
	E_pulleyJoint:  2,
}

/// Joint definitions are used to construct joints.
type B2JointDef struct {

	/// The joint type is set automatically for concrete joint types.
	Type uint8

	/// Use this to attach application specific data to your joints.
	UserData interface{}

	/// Index of the first attached body in the world.
	BodyA int

	/// Index of the second attached body in the world.
	BodyB int

	/// Set this flag to true if the attached bodies should collide.
	CollideConnected bool
}

type B2JointDefInterface interface {
	GetType() uint8
	GetJointDef() *B2JointDef
}

func (def B2JointDef) GetType() uint8 {
	return def.Type
}

func (def *B2JointDef) GetJointDef() *B2JointDef {
	return def
}

func MakeB2JointDef() B2JointDef {
	return B2JointDef{
		Type:  B2JointType.E_unknownJoint,
		BodyA: -1,
		BodyB: -1,
	}
}

/// A joint constrains two bodies together. The common header lives here;
/// the kind-specific solver state lives in the variant selected by M_type.
type B2Joint struct {
	M_type             uint8
	M_bodyA            int
	M_bodyB            int
	M_index            int
	M_collideConnected bool
	M_userData         interface{}

	M_pulley B2PulleyJoint
}

func makeB2Joint(def *B2JointDef) B2Joint {
	B2Assert(def.BodyA >= 0 && def.BodyB >= 0)
	B2Assert(def.BodyA != def.BodyB)

	return B2Joint{
		M_type:             def.Type,
		M_bodyA:            def.BodyA,
		M_bodyB:            def.BodyB,
		M_collideConnected: def.CollideConnected,
		M_userData:         def.UserData,
	}
}

/// Create a joint from a typed definition. def has to be backed by a pointer.
func B2JointCreate(def B2JointDefInterface) *B2Joint {
	switch def.GetType() {
	case B2JointType.E_pulleyJoint:
		if typeddef, ok := def.(*B2PulleyJointDef); ok {
			return MakeB2PulleyJoint(typeddef)
		}
	}

	B2Assert(false)
	return nil
}

func (j B2Joint) GetType() uint8 {
	return j.M_type
}

func (j B2Joint) GetBodyA() int {
	return j.M_bodyA
}

func (j B2Joint) GetBodyB() int {
	return j.M_bodyB
}

func (j B2Joint) GetIndex() int {
	return j.M_index
}

func (j *B2Joint) SetIndex(index int) {
	j.M_index = index
}

func (j B2Joint) GetUserData() interface{} {
	return j.M_userData
}

func (j *B2Joint) SetUserData(data interface{}) {
	j.M_userData = data
}

func (j B2Joint) IsCollideConnected() bool {
	return j.M_collideConnected
}

/// The pulley variant. Panics when the joint is of another kind.
func (j *B2Joint) GetPulley() *B2PulleyJoint {
	B2Assert(j.M_type == B2JointType.E_pulleyJoint)
	return &j.M_pulley
}

func (j *B2Joint) InitVelocityConstraints(data B2SolverData) {
	switch j.M_type {
	case B2JointType.E_pulleyJoint:
		j.M_pulley.InitVelocityConstraints(data, &data.Bodies[j.M_bodyA], &data.Bodies[j.M_bodyB])
	default:
		B2Assert(false)
	}
}

func (j *B2Joint) SolveVelocityConstraints(data B2SolverData) {
	switch j.M_type {
	case B2JointType.E_pulleyJoint:
		j.M_pulley.SolveVelocityConstraints(data)
	default:
		B2Assert(false)
	}
}

/// This returns true if the position errors are within tolerance.
func (j *B2Joint) SolvePositionConstraints(data B2SolverData) bool {
	switch j.M_type {
	case B2JointType.E_pulleyJoint:
		return j.M_pulley.SolvePositionConstraints(data)
	default:
		B2Assert(false)
	}

	return false
}

/// Get the anchor point on bodyA in world coordinates.
func (j B2Joint) GetAnchorA(bodies []B2Body) B2Vec2 {
	switch j.M_type {
	case B2JointType.E_pulleyJoint:
		return j.M_pulley.GetAnchorA(bodies[j.M_bodyA])
	}

	B2Assert(false)
	return B2Vec2_zero
}

/// Get the anchor point on bodyB in world coordinates.
func (j B2Joint) GetAnchorB(bodies []B2Body) B2Vec2 {
	switch j.M_type {
	case B2JointType.E_pulleyJoint:
		return j.M_pulley.GetAnchorB(bodies[j.M_bodyB])
	}

	B2Assert(false)
	return B2Vec2_zero
}

/// Get the reaction force on bodyB at the joint anchor in Newtons.
func (j B2Joint) GetReactionForce(inv_dt float64) B2Vec2 {
	switch j.M_type {
	case B2JointType.E_pulleyJoint:
		return j.M_pulley.GetReactionForce(inv_dt)
	}

	B2Assert(false)
	return B2Vec2_zero
}

/// Get the reaction torque on bodyB in N*m.
func (j B2Joint) GetReactionTorque(inv_dt float64) float64 {
	switch j.M_type {
	case B2JointType.E_pulleyJoint:
		return j.M_pulley.GetReactionTorque(inv_dt)
	}

	B2Assert(false)
	return 0.0
}

/// Shift the origin for any points stored in world coordinates.
func (j *B2Joint) ShiftOrigin(newOrigin B2Vec2) {
	switch j.M_type {
	case B2JointType.E_pulleyJoint:
		j.M_pulley.ShiftOrigin(newOrigin)
	}
}

/// Dump this joint to the log.
func (j B2Joint) Dump() {
	switch j.M_type {
	case B2JointType.E_pulleyJoint:
		B2Log("  b2PulleyJointDef jd;\n")
		B2Log("  jd.bodyA = bodies[%d];\n", j.M_bodyA)
		B2Log("  jd.bodyB = bodies[%d];\n", j.M_bodyB)
		B2Log("  jd.collideConnected = bool(%v);\n", j.M_collideConnected)
		j.M_pulley.Dump()
	default:
		B2Log("// Dump is not supported for this joint type.\n")
		return
	}

	B2Log("  joints[%d] = m_world->CreateJoint(&jd);\n", j.M_index)
}
