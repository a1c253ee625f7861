package box2d_test

import (
	"math"
	"testing"

	"github.com/Tobi29/scapes-engine-sub012"
)

func makeDynamicBody(world *box2d.B2World, x, y float64) int {
	bd := box2d.MakeB2BodyDef()
	bd.Type = box2d.B2BodyType.B2_dynamicBody
	bd.Position.Set(x, y)
	return world.CreateBody(&bd)
}

func makeWorldPulley(world *box2d.B2World, a, b int, ratio float64) *box2d.B2Joint {
	bodyA := world.GetBody(a)
	bodyB := world.GetBody(b)

	def := box2d.MakeB2PulleyJointDef()
	def.Initialize(
		world.GetBodies(), a, b,
		box2d.B2Vec2Add(bodyA.GetPosition(), box2d.MakeB2Vec2(0, 5)),
		box2d.B2Vec2Add(bodyB.GetPosition(), box2d.MakeB2Vec2(0, 5)),
		bodyA.GetPosition(), bodyB.GetPosition(),
		ratio,
	)

	return world.CreateJoint(&def)
}

func TestWorldBalancedPulleyHolds(t *testing.T) {
	world := box2d.MakeB2World(box2d.MakeB2Vec2(0, -10), box2d.MakeB2Settings())
	a := makeDynamicBody(&world, -2, 0)
	b := makeDynamicBody(&world, 2, 0)
	joint := makeWorldPulley(&world, a, b, 1)

	timeStep := 1.0 / 64.0
	for i := 0; i < 64; i++ {
		world.Step(timeStep)
	}

	if p := world.GetBody(a).GetPosition(); !approxVec2(p, box2d.MakeB2Vec2(-2, 0)) {
		t.Errorf("body A moved to %v", p)
	}

	// The cable carries the weight of one body.
	force := joint.GetReactionForce(1.0 / timeStep)
	if !approxVec2(force, box2d.MakeB2Vec2(0, -10)) {
		t.Errorf("reaction force = %v, want (0, -10)", force)
	}
}

func TestWorldHeavierSideFalls(t *testing.T) {
	world := box2d.MakeB2World(box2d.MakeB2Vec2(0, -10), box2d.MakeB2Settings())
	a := makeDynamicBody(&world, -2, 0)
	b := makeDynamicBody(&world, 2, 0)
	world.GetBody(a).SetMassData(&box2d.B2MassData{Mass: 2})
	joint := makeWorldPulley(&world, a, b, 1)
	pulley := joint.GetPulley()

	for i := 0; i < 60; i++ {
		world.Step(1.0 / 60.0)

		lengthA := pulley.GetCurrentLengthA(*world.GetBody(a))
		lengthB := pulley.GetCurrentLengthB(*world.GetBody(b))
		if drift := math.Abs(lengthA + lengthB - 10); drift > world.GetSettings().LinearSlop {
			t.Fatalf("step %d: cable length drifted by %v", i, drift)
		}
	}

	if y := world.GetBody(a).GetPosition().Y; y >= 0 {
		t.Errorf("heavier body did not fall: y = %v", y)
	}

	if y := world.GetBody(b).GetPosition().Y; y <= 0 {
		t.Errorf("lighter body did not rise: y = %v", y)
	}

	vA := world.GetBody(a).GetLinearVelocity()
	vB := world.GetBody(b).GetLinearVelocity()
	if !approxEqual(vA.Y, -vB.Y) {
		t.Errorf("velocities are not opposite: %v, %v", vA, vB)
	}
}

func TestWorldStepWithZeroDtIsNoop(t *testing.T) {
	world := box2d.MakeB2World(box2d.MakeB2Vec2(0, -10), box2d.MakeB2Settings())
	a := makeDynamicBody(&world, 1, 1)

	world.Step(0)

	if p := world.GetBody(a).GetPosition(); p != box2d.MakeB2Vec2(1, 1) {
		t.Errorf("body moved to %v", p)
	}

	if v := world.GetBody(a).GetLinearVelocity(); v != box2d.B2Vec2_zero {
		t.Errorf("body velocity %v", v)
	}
}

func TestWorldStepClampsTranslation(t *testing.T) {
	world := box2d.MakeB2World(box2d.MakeB2Vec2(0, 0), box2d.MakeB2Settings())
	a := makeDynamicBody(&world, 0, 0)
	world.GetBody(a).SetLinearVelocity(box2d.MakeB2Vec2(1000, 0))

	world.Step(1.0 / 60.0)

	if x := world.GetBody(a).GetPosition().X; !approxEqual(x, box2d.B2_maxTranslation) {
		t.Errorf("x = %v, want %v", x, box2d.B2_maxTranslation)
	}
}

func TestWorldDestroyJoint(t *testing.T) {
	world := box2d.MakeB2World(box2d.MakeB2Vec2(0, -10), box2d.MakeB2Settings())
	a := makeDynamicBody(&world, -2, 0)
	b := makeDynamicBody(&world, 0, 0)
	c := makeDynamicBody(&world, 2, 0)

	first := makeWorldPulley(&world, a, b, 1)
	second := makeWorldPulley(&world, b, c, 1)

	world.DestroyJoint(first)

	if world.GetJointCount() != 1 || world.GetJointList()[0] != second {
		t.Fatalf("unexpected joint list after destroy: %v", world.GetJointList())
	}

	if second.GetIndex() != 0 || first.GetIndex() != -1 {
		t.Errorf("indices = %d, %d, want 0, -1", second.GetIndex(), first.GetIndex())
	}

	assertPanics(t, "destroying twice", func() {
		world.DestroyJoint(first)
	})
}

func TestWorldShiftOrigin(t *testing.T) {
	world := box2d.MakeB2World(box2d.MakeB2Vec2(0, -10), box2d.MakeB2Settings())
	a := makeDynamicBody(&world, -2, 0)
	b := makeDynamicBody(&world, 2, 0)
	joint := makeWorldPulley(&world, a, b, 1)

	world.ShiftOrigin(box2d.MakeB2Vec2(1, 1))

	if p := world.GetBody(a).GetPosition(); p != box2d.MakeB2Vec2(-3, -1) {
		t.Errorf("body A position = %v, want (-3, -1)", p)
	}

	if g := joint.GetPulley().GetGroundAnchorB(); g != box2d.MakeB2Vec2(1, 4) {
		t.Errorf("ground anchor B = %v, want (1, 4)", g)
	}

	if got := joint.GetAnchorA(world.GetBodies()); got != box2d.MakeB2Vec2(-3, -1) {
		t.Errorf("anchor A = %v, want (-3, -1)", got)
	}
}

func TestWorldRejectsInvalidSettings(t *testing.T) {
	world := box2d.MakeB2World(box2d.MakeB2Vec2(0, -10), box2d.MakeB2Settings())

	settings := box2d.MakeB2Settings()
	settings.VelocityIterations = 0

	assertPanics(t, "SetSettings", func() {
		world.SetSettings(settings)
	})
}
