package box2d_test

import (
	"testing"

	"github.com/Tobi29/scapes-engine-sub012"
	"github.com/davecgh/go-spew/spew"
)

type pulleyScene struct {
	bodies []box2d.B2Body
	joint  *box2d.B2Joint
	data   box2d.B2SolverData
}

// Two unit-mass bodies hanging below ground anchors at (-2, 5) and (2, 5),
// with the cable attached at each body origin.
func makePulleyScene(posA, posB box2d.B2Vec2, lengthA, lengthB float64, settings box2d.B2Settings) pulleyScene {
	bodies := make([]box2d.B2Body, 0, 2)
	for i, p := range []box2d.B2Vec2{posA, posB} {
		bd := box2d.MakeB2BodyDef()
		bd.Type = box2d.B2BodyType.B2_dynamicBody
		bd.Position = p

		body := box2d.MakeB2Body(&bd)
		body.M_islandIndex = i
		bodies = append(bodies, body)
	}

	def := box2d.MakeB2PulleyJointDef()
	def.BodyA = 0
	def.BodyB = 1
	def.GroundAnchorA = box2d.MakeB2Vec2(-2, 5)
	def.GroundAnchorB = box2d.MakeB2Vec2(2, 5)
	def.LocalAnchorA = box2d.MakeB2Vec2(0, 0)
	def.LocalAnchorB = box2d.MakeB2Vec2(0, 0)
	def.LengthA = lengthA
	def.LengthB = lengthB
	def.Ratio = 1

	step := box2d.MakeB2TimeStep(1.0/64.0, 64.0, settings)

	return pulleyScene{
		bodies: bodies,
		joint:  box2d.B2JointCreate(&def),
		data: box2d.B2SolverData{
			Step: step,
			Positions: []box2d.B2Position{
				{C: posA},
				{C: posB},
			},
			Velocities: make([]box2d.B2Velocity, 2),
			Bodies:     bodies,
			Settings:   settings,
		},
	}
}

func makeRestingPulleyScene(settings box2d.B2Settings) pulleyScene {
	return makePulleyScene(box2d.MakeB2Vec2(-2, 0), box2d.MakeB2Vec2(2, 0), 5, 5, settings)
}

func TestPulleyInitializeFromWorldAnchors(t *testing.T) {
	scene := makeRestingPulleyScene(box2d.MakeB2Settings())

	def := box2d.MakeB2PulleyJointDef()
	def.Initialize(
		scene.bodies, 0, 1,
		box2d.MakeB2Vec2(-2, 5), box2d.MakeB2Vec2(2, 10),
		box2d.MakeB2Vec2(-2, 1), box2d.MakeB2Vec2(2, 1),
		2,
	)

	if def.LengthA != 4 || def.LengthB != 9 {
		t.Errorf("lengths = %v, %v, want 4, 9", def.LengthA, def.LengthB)
	}

	if def.LocalAnchorA != box2d.MakeB2Vec2(0, 1) || def.LocalAnchorB != box2d.MakeB2Vec2(0, 1) {
		t.Errorf("local anchors = %v, %v", def.LocalAnchorA, def.LocalAnchorB)
	}

	joint := box2d.MakeB2PulleyJoint(&def)
	if got := joint.GetPulley().M_constant; got != 22 {
		t.Errorf("constant = %v, want 22", got)
	}
}

func TestPulleyAtRestAppliesNoImpulse(t *testing.T) {
	scene := makeRestingPulleyScene(box2d.MakeB2Settings())

	scene.joint.InitVelocityConstraints(scene.data)
	for i := 0; i < 8; i++ {
		scene.joint.SolveVelocityConstraints(scene.data)
	}

	if impulse := scene.joint.GetPulley().GetImpulse(); impulse != 0 {
		t.Errorf("impulse = %v, want 0", impulse)
	}

	for i, v := range scene.data.Velocities {
		if v.V != box2d.B2Vec2_zero || v.W != 0 {
			t.Errorf("velocity %d = %s", i, spew.Sdump(v))
		}
	}
}

func TestPulleyWarmStartIsCancelledBySolve(t *testing.T) {
	scene := makeRestingPulleyScene(box2d.MakeB2Settings())
	pulley := scene.joint.GetPulley()
	pulley.M_impulse = 2

	scene.joint.InitVelocityConstraints(scene.data)

	// The cached impulse pulls both bodies up along their cables.
	for i, v := range scene.data.Velocities {
		if !approxVec2(v.V, box2d.MakeB2Vec2(0, 2)) {
			t.Errorf("warm started velocity %d = %v, want (0, 2)", i, v.V)
		}
	}

	scene.joint.SolveVelocityConstraints(scene.data)

	if !approxEqual(pulley.GetImpulse(), 0) {
		t.Errorf("impulse after solve = %v, want 0", pulley.GetImpulse())
	}

	for i, v := range scene.data.Velocities {
		if !approxVec2(v.V, box2d.B2Vec2_zero) {
			t.Errorf("velocity %d after solve = %v, want zero", i, v.V)
		}
	}
}

func TestPulleyWarmStartScalesByDtRatio(t *testing.T) {
	scene := makeRestingPulleyScene(box2d.MakeB2Settings())
	scene.data.Step.DtRatio = 0.5

	pulley := scene.joint.GetPulley()
	pulley.M_impulse = 2

	scene.joint.InitVelocityConstraints(scene.data)

	if pulley.GetImpulse() != 1 {
		t.Errorf("scaled impulse = %v, want 1", pulley.GetImpulse())
	}

	if v := scene.data.Velocities[0].V; !approxVec2(v, box2d.MakeB2Vec2(0, 1)) {
		t.Errorf("velocity = %v, want (0, 1)", v)
	}
}

func TestPulleyWithoutWarmStartingResetsImpulse(t *testing.T) {
	settings := box2d.MakeB2Settings()
	settings.WarmStarting = false

	scene := makeRestingPulleyScene(settings)
	pulley := scene.joint.GetPulley()
	pulley.M_impulse = 2

	scene.joint.InitVelocityConstraints(scene.data)

	if pulley.GetImpulse() != 0 {
		t.Errorf("impulse = %v, want 0", pulley.GetImpulse())
	}

	if v := scene.data.Velocities[0].V; v != box2d.B2Vec2_zero {
		t.Errorf("velocity = %v, want zero", v)
	}
}

func TestPulleyPositionCorrectionConverges(t *testing.T) {
	settings := box2d.MakeB2Settings()
	settings.WarmStarting = false

	// Body A hangs half a meter too low.
	scene := makePulleyScene(box2d.MakeB2Vec2(-2, -0.5), box2d.MakeB2Vec2(2, 0), 5, 5, settings)
	scene.joint.InitVelocityConstraints(scene.data)

	if scene.joint.SolvePositionConstraints(scene.data) {
		t.Fatalf("first pass reported solved with a 0.5 error")
	}

	if c := scene.data.Positions[0].C; !approxVec2(c, box2d.MakeB2Vec2(-2, -0.25)) {
		t.Errorf("body A after first pass = %v, want (-2, -0.25)", c)
	}

	if c := scene.data.Positions[1].C; !approxVec2(c, box2d.MakeB2Vec2(2, 0.25)) {
		t.Errorf("body B after first pass = %v, want (2, 0.25)", c)
	}

	if !scene.joint.SolvePositionConstraints(scene.data) {
		t.Errorf("second pass did not report solved")
	}
}

func TestPulleyShortCableUsesZeroAxis(t *testing.T) {
	settings := box2d.MakeB2Settings()

	// Body A sits on its ground anchor.
	scene := makePulleyScene(box2d.MakeB2Vec2(-2, 5), box2d.MakeB2Vec2(2, 0), 0, 5, settings)
	pulley := scene.joint.GetPulley()
	pulley.M_impulse = 2

	scene.joint.InitVelocityConstraints(scene.data)
	scene.joint.SolveVelocityConstraints(scene.data)
	scene.joint.SolvePositionConstraints(scene.data)

	if pulley.M_uA != box2d.B2Vec2_zero {
		t.Errorf("axis A = %v, want zero", pulley.M_uA)
	}

	for i := range scene.data.Velocities {
		if !scene.data.Velocities[i].V.IsValid() || !scene.data.Positions[i].C.IsValid() {
			t.Errorf("body %d state is not finite: %s", i, spew.Sdump(scene.data.Velocities[i], scene.data.Positions[i]))
		}
	}

	if v := scene.data.Velocities[0].V; v != box2d.B2Vec2_zero {
		t.Errorf("body A velocity = %v, want zero", v)
	}
}

func TestPulleyUsesSettingsLinearSlop(t *testing.T) {
	settings := box2d.MakeB2Settings()
	settings.LinearSlop = 1

	// With a one meter slop both five meter cables fall under the guard.
	scene := makeRestingPulleyScene(settings)
	scene.joint.GetPulley().M_impulse = 2

	scene.joint.InitVelocityConstraints(scene.data)

	for i, v := range scene.data.Velocities {
		if v.V != box2d.B2Vec2_zero {
			t.Errorf("velocity %d = %v, want zero", i, v.V)
		}
	}
}

func TestPulleyAnchorsAndReaction(t *testing.T) {
	scene := makeRestingPulleyScene(box2d.MakeB2Settings())
	scene.joint.InitVelocityConstraints(scene.data)

	pulley := scene.joint.GetPulley()
	pulley.M_impulse = 0.5

	if got := scene.joint.GetAnchorA(scene.bodies); got != box2d.MakeB2Vec2(-2, 0) {
		t.Errorf("GetAnchorA() = %v", got)
	}

	if got := scene.joint.GetAnchorB(scene.bodies); got != box2d.MakeB2Vec2(2, 0) {
		t.Errorf("GetAnchorB() = %v", got)
	}

	if got := scene.joint.GetReactionForce(64); !approxVec2(got, box2d.MakeB2Vec2(0, -32)) {
		t.Errorf("GetReactionForce() = %v, want (0, -32)", got)
	}

	if got := scene.joint.GetReactionTorque(64); got != 0 {
		t.Errorf("GetReactionTorque() = %v, want 0", got)
	}

	if got := pulley.GetCurrentLengthA(scene.bodies[0]); got != 5 {
		t.Errorf("GetCurrentLengthA() = %v, want 5", got)
	}
}

func TestPulleyZeroRatioPanics(t *testing.T) {
	def := box2d.MakeB2PulleyJointDef()
	def.BodyA = 0
	def.BodyB = 1
	def.Ratio = 0

	assertPanics(t, "MakeB2PulleyJoint", func() {
		box2d.MakeB2PulleyJoint(&def)
	})
}

func TestJointCreateRejectsBadDefinitions(t *testing.T) {
	unknown := box2d.MakeB2JointDef()
	unknown.BodyA = 0
	unknown.BodyB = 1

	assertPanics(t, "unknown joint type", func() {
		box2d.B2JointCreate(&unknown)
	})

	same := box2d.MakeB2PulleyJointDef()
	same.BodyA = 1
	same.BodyB = 1

	assertPanics(t, "same body twice", func() {
		box2d.B2JointCreate(&same)
	})
}
