package box2d

import (
	"math"
)

/// Pulley joint definition. This requires two ground anchors,
/// two dynamic body anchor points, and a pulley ratio.
type B2PulleyJointDef struct {
	B2JointDef

	/// The first ground anchor in world coordinates. This point never moves.
	GroundAnchorA B2Vec2

	/// The second ground anchor in world coordinates. This point never moves.
	GroundAnchorB B2Vec2

	/// The local anchor point relative to bodyA's origin.
	LocalAnchorA B2Vec2

	/// The local anchor point relative to bodyB's origin.
	LocalAnchorB B2Vec2

	/// The a reference length for the segment attached to bodyA.
	LengthA float64

	/// The a reference length for the segment attached to bodyB.
	LengthB float64

	/// The pulley ratio, used to simulate a block-and-tackle.
	Ratio float64
}

func MakeB2PulleyJointDef() B2PulleyJointDef {
	res := B2PulleyJointDef{
		B2JointDef: MakeB2JointDef(),
	}

	res.Type = B2JointType.E_pulleyJoint
	res.GroundAnchorA.Set(-1.0, 1.0)
	res.GroundAnchorB.Set(1.0, 1.0)
	res.LocalAnchorA.Set(-1.0, 0.0)
	res.LocalAnchorB.Set(1.0, 0.0)
	res.LengthA = 0.0
	res.LengthB = 0.0
	res.Ratio = 1.0
	res.CollideConnected = true

	return res
}

/// Initialize the bodies, anchors, lengths, max lengths, and ratio using the world anchors.
func (def *B2PulleyJointDef) Initialize(bodies []B2Body, bA int, bB int, groundA B2Vec2, groundB B2Vec2, anchorA B2Vec2, anchorB B2Vec2, r float64) {
	def.BodyA = bA
	def.BodyB = bB
	def.GroundAnchorA = groundA
	def.GroundAnchorB = groundB
	def.LocalAnchorA = bodies[bA].GetLocalPoint(anchorA)
	def.LocalAnchorB = bodies[bB].GetLocalPoint(anchorB)
	def.LengthA = B2Vec2Distance(anchorA, groundA)
	def.LengthB = B2Vec2Distance(anchorB, groundB)
	def.Ratio = r
	B2Assert(def.Ratio > B2_epsilon)
}

/// The pulley joint is connected to two bodies and two fixed ground points.
/// The pulley supports a ratio such that:
/// length1 + ratio * length2 <= constant
/// Yes, the force transmitted is scaled by the ratio.
/// Warning: the pulley joint can get a bit squirrelly by itself. They often
/// work better when combined with prismatic joints. You should also cover the
/// the anchor points with static shapes to prevent one side from going to
/// zero length.
type B2PulleyJoint struct {
	M_groundAnchorA B2Vec2
	M_groundAnchorB B2Vec2
	M_lengthA       float64
	M_lengthB       float64

	// Solver shared
	M_localAnchorA B2Vec2
	M_localAnchorB B2Vec2
	M_constant     float64
	M_ratio        float64
	M_impulse      float64

	// Solver temp
	M_indexA       int
	M_indexB       int
	M_uA           B2Vec2
	M_uB           B2Vec2
	M_rA           B2Vec2
	M_rB           B2Vec2
	M_localCenterA B2Vec2
	M_localCenterB B2Vec2
	M_invMassA     float64
	M_invMassB     float64
	M_invIA        float64
	M_invIB        float64
	M_mass         float64
}

// Pulley:
// length1 = norm(p1 - s1)
// length2 = norm(p2 - s2)
// C0 = (length1 + ratio * length2)_initial
// C = C0 - (length1 + ratio * length2)
// u1 = (p1 - s1) / norm(p1 - s1)
// u2 = (p2 - s2) / norm(p2 - s2)
// Cdot = -dot(u1, v1 + cross(w1, r1)) - ratio * dot(u2, v2 + cross(w2, r2))
// J = -[u1 cross(r1, u1) ratio * u2  ratio * cross(r2, u2)]
// K = J * invM * JT
//   = invMass1 + invI1 * cross(r1, u1)^2 + ratio^2 * (invMass2 + invI2 * cross(r2, u2)^2)

func MakeB2PulleyJoint(def *B2PulleyJointDef) *B2Joint {
	B2Assert(def.Ratio != 0.0)

	res := makeB2Joint(&def.B2JointDef)
	res.M_type = B2JointType.E_pulleyJoint

	pulley := &res.M_pulley
	pulley.M_groundAnchorA = def.GroundAnchorA
	pulley.M_groundAnchorB = def.GroundAnchorB
	pulley.M_localAnchorA = def.LocalAnchorA
	pulley.M_localAnchorB = def.LocalAnchorB

	pulley.M_lengthA = def.LengthA
	pulley.M_lengthB = def.LengthB

	pulley.M_ratio = def.Ratio
	pulley.M_constant = def.LengthA + pulley.M_ratio*def.LengthB
	pulley.M_impulse = 0.0

	return &res
}

/// Unit cable direction from the ground anchor towards the body anchor, or zero
/// when the cable is too short to define one.
func b2PulleyAxis(c B2Vec2, r B2Vec2, ground B2Vec2, linearSlop float64) (B2Vec2, float64) {
	u := B2Vec2Sub(B2Vec2Add(c, r), ground)
	length := u.Length()

	if length > 10.0*linearSlop {
		u.OperatorScalarMulInplace(1.0 / length)
	} else {
		u.SetZero()
	}

	return u, length
}

func (joint *B2PulleyJoint) effectiveMass(rA, uA, rB, uB B2Vec2) float64 {
	ruA := B2Vec2Cross(rA, uA)
	ruB := B2Vec2Cross(rB, uB)

	mA := joint.M_invMassA + joint.M_invIA*ruA*ruA
	mB := joint.M_invMassB + joint.M_invIB*ruB*ruB

	mass := mA + joint.M_ratio*joint.M_ratio*mB

	if mass > 0.0 {
		mass = 1.0 / mass
	}

	return mass
}

func (joint *B2PulleyJoint) InitVelocityConstraints(data B2SolverData, bodyA *B2Body, bodyB *B2Body) {
	joint.M_indexA = bodyA.M_islandIndex
	joint.M_indexB = bodyB.M_islandIndex
	joint.M_localCenterA = bodyA.M_sweep.LocalCenter
	joint.M_localCenterB = bodyB.M_sweep.LocalCenter
	joint.M_invMassA = bodyA.M_invMass
	joint.M_invMassB = bodyB.M_invMass
	joint.M_invIA = bodyA.M_invI
	joint.M_invIB = bodyB.M_invI

	cA := data.Positions[joint.M_indexA].C
	aA := data.Positions[joint.M_indexA].A
	vA := data.Velocities[joint.M_indexA].V
	wA := data.Velocities[joint.M_indexA].W

	cB := data.Positions[joint.M_indexB].C
	aB := data.Positions[joint.M_indexB].A
	vB := data.Velocities[joint.M_indexB].V
	wB := data.Velocities[joint.M_indexB].W

	qA := MakeB2RotFromAngle(aA)
	qB := MakeB2RotFromAngle(aB)

	joint.M_rA = B2RotVec2Mul(qA, B2Vec2Sub(joint.M_localAnchorA, joint.M_localCenterA))
	joint.M_rB = B2RotVec2Mul(qB, B2Vec2Sub(joint.M_localAnchorB, joint.M_localCenterB))

	// Get the pulley axes.
	joint.M_uA, _ = b2PulleyAxis(cA, joint.M_rA, joint.M_groundAnchorA, data.Settings.LinearSlop)
	joint.M_uB, _ = b2PulleyAxis(cB, joint.M_rB, joint.M_groundAnchorB, data.Settings.LinearSlop)

	joint.M_mass = joint.effectiveMass(joint.M_rA, joint.M_uA, joint.M_rB, joint.M_uB)

	if data.Step.WarmStarting {
		// Scale impulses to support variable time steps.
		joint.M_impulse *= data.Step.DtRatio

		// Warm starting.
		PA := B2Vec2MulScalar(-joint.M_impulse, joint.M_uA)
		PB := B2Vec2MulScalar(-joint.M_ratio*joint.M_impulse, joint.M_uB)

		vA.OperatorPlusInplace(B2Vec2MulScalar(joint.M_invMassA, PA))
		wA += joint.M_invIA * B2Vec2Cross(joint.M_rA, PA)
		vB.OperatorPlusInplace(B2Vec2MulScalar(joint.M_invMassB, PB))
		wB += joint.M_invIB * B2Vec2Cross(joint.M_rB, PB)
	} else {
		joint.M_impulse = 0.0
	}

	data.Velocities[joint.M_indexA].V = vA
	data.Velocities[joint.M_indexA].W = wA
	data.Velocities[joint.M_indexB].V = vB
	data.Velocities[joint.M_indexB].W = wB
}

func (joint *B2PulleyJoint) SolveVelocityConstraints(data B2SolverData) {
	vA := data.Velocities[joint.M_indexA].V
	wA := data.Velocities[joint.M_indexA].W
	vB := data.Velocities[joint.M_indexB].V
	wB := data.Velocities[joint.M_indexB].W

	vpA := B2Vec2Add(vA, B2Vec2CrossScalarVector(wA, joint.M_rA))
	vpB := B2Vec2Add(vB, B2Vec2CrossScalarVector(wB, joint.M_rB))

	Cdot := -B2Vec2Dot(joint.M_uA, vpA) - joint.M_ratio*B2Vec2Dot(joint.M_uB, vpB)
	impulse := -joint.M_mass * Cdot
	joint.M_impulse += impulse

	PA := B2Vec2MulScalar(-impulse, joint.M_uA)
	PB := B2Vec2MulScalar(-joint.M_ratio*impulse, joint.M_uB)
	vA.OperatorPlusInplace(B2Vec2MulScalar(joint.M_invMassA, PA))
	wA += joint.M_invIA * B2Vec2Cross(joint.M_rA, PA)
	vB.OperatorPlusInplace(B2Vec2MulScalar(joint.M_invMassB, PB))
	wB += joint.M_invIB * B2Vec2Cross(joint.M_rB, PB)

	data.Velocities[joint.M_indexA].V = vA
	data.Velocities[joint.M_indexA].W = wA
	data.Velocities[joint.M_indexB].V = vB
	data.Velocities[joint.M_indexB].W = wB
}

func (joint *B2PulleyJoint) SolvePositionConstraints(data B2SolverData) bool {
	cA := data.Positions[joint.M_indexA].C
	aA := data.Positions[joint.M_indexA].A
	cB := data.Positions[joint.M_indexB].C
	aB := data.Positions[joint.M_indexB].A

	qA := MakeB2RotFromAngle(aA)
	qB := MakeB2RotFromAngle(aB)

	rA := B2RotVec2Mul(qA, B2Vec2Sub(joint.M_localAnchorA, joint.M_localCenterA))
	rB := B2RotVec2Mul(qB, B2Vec2Sub(joint.M_localAnchorB, joint.M_localCenterB))

	// Get the pulley axes.
	uA, lengthA := b2PulleyAxis(cA, rA, joint.M_groundAnchorA, data.Settings.LinearSlop)
	uB, lengthB := b2PulleyAxis(cB, rB, joint.M_groundAnchorB, data.Settings.LinearSlop)

	mass := joint.effectiveMass(rA, uA, rB, uB)

	C := joint.M_constant - lengthA - joint.M_ratio*lengthB
	linearError := math.Abs(C)

	impulse := -mass * C

	PA := B2Vec2MulScalar(-impulse, uA)
	PB := B2Vec2MulScalar(-joint.M_ratio*impulse, uB)

	cA.OperatorPlusInplace(B2Vec2MulScalar(joint.M_invMassA, PA))
	aA += joint.M_invIA * B2Vec2Cross(rA, PA)
	cB.OperatorPlusInplace(B2Vec2MulScalar(joint.M_invMassB, PB))
	aB += joint.M_invIB * B2Vec2Cross(rB, PB)

	data.Positions[joint.M_indexA].C = cA
	data.Positions[joint.M_indexA].A = aA
	data.Positions[joint.M_indexB].C = cB
	data.Positions[joint.M_indexB].A = aB

	return linearError < data.Settings.LinearSlop
}

func (joint B2PulleyJoint) GetAnchorA(bodyA B2Body) B2Vec2 {
	return bodyA.GetWorldPoint(joint.M_localAnchorA)
}

func (joint B2PulleyJoint) GetAnchorB(bodyB B2Body) B2Vec2 {
	return bodyB.GetWorldPoint(joint.M_localAnchorB)
}

func (joint B2PulleyJoint) GetReactionForce(inv_dt float64) B2Vec2 {
	P := B2Vec2MulScalar(joint.M_impulse, joint.M_uB)
	return B2Vec2MulScalar(inv_dt, P)
}

func (joint B2PulleyJoint) GetReactionTorque(inv_dt float64) float64 {
	return 0.0
}

func (joint B2PulleyJoint) GetGroundAnchorA() B2Vec2 {
	return joint.M_groundAnchorA
}

func (joint B2PulleyJoint) GetGroundAnchorB() B2Vec2 {
	return joint.M_groundAnchorB
}

func (joint B2PulleyJoint) GetLengthA() float64 {
	return joint.M_lengthA
}

func (joint B2PulleyJoint) GetLengthB() float64 {
	return joint.M_lengthB
}

func (joint B2PulleyJoint) GetRatio() float64 {
	return joint.M_ratio
}

/// The accumulated impulse kept for warm starting.
func (joint B2PulleyJoint) GetImpulse() float64 {
	return joint.M_impulse
}

func (joint B2PulleyJoint) GetCurrentLengthA(bodyA B2Body) float64 {
	return B2Vec2Distance(bodyA.GetWorldPoint(joint.M_localAnchorA), joint.M_groundAnchorA)
}

func (joint B2PulleyJoint) GetCurrentLengthB(bodyB B2Body) float64 {
	return B2Vec2Distance(bodyB.GetWorldPoint(joint.M_localAnchorB), joint.M_groundAnchorB)
}

func (joint B2PulleyJoint) Dump() {
	B2Log("  jd.groundAnchorA.Set(%.15f, %.15f);\n", joint.M_groundAnchorA.X, joint.M_groundAnchorA.Y)
	B2Log("  jd.groundAnchorB.Set(%.15f, %.15f);\n", joint.M_groundAnchorB.X, joint.M_groundAnchorB.Y)
	B2Log("  jd.localAnchorA.Set(%.15f, %.15f);\n", joint.M_localAnchorA.X, joint.M_localAnchorA.Y)
	B2Log("  jd.localAnchorB.Set(%.15f, %.15f);\n", joint.M_localAnchorB.X, joint.M_localAnchorB.Y)
	B2Log("  jd.lengthA = %.15f;\n", joint.M_lengthA)
	B2Log("  jd.lengthB = %.15f;\n", joint.M_lengthB)
	B2Log("  jd.ratio = %.15f;\n", joint.M_ratio)
}

func (joint *B2PulleyJoint) ShiftOrigin(newOrigin B2Vec2) {
	joint.M_groundAnchorA.OperatorMinusInplace(newOrigin)
	joint.M_groundAnchorB.OperatorMinusInplace(newOrigin)
}
