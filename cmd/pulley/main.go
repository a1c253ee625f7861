package main

import (
	"flag"
	"log"
	"os"

	box2d "github.com/Tobi29/scapes-engine-sub012"
)

func loadSettings(path string) (box2d.B2Settings, error) {
	if path == "" {
		return box2d.MakeB2Settings(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return box2d.B2Settings{}, err
	}
	defer f.Close()

	return box2d.LoadB2Settings(f)
}

func main() {
	settingsPath := flag.String("settings", "", "YAML file with solver settings")
	steps := flag.Int("steps", 120, "number of steps to simulate")
	hz := flag.Float64("hz", 60.0, "step frequency")
	ratio := flag.Float64("ratio", 1.5, "pulley ratio")
	dump := flag.Bool("dump", false, "dump the world after the last step")
	flag.Parse()

	logger := log.New(os.Stderr, "pulley: ", 0)
	box2d.B2SetLogger(log.New(os.Stdout, "", 0))

	settings, err := loadSettings(*settingsPath)
	if err != nil {
		logger.Fatalf("load settings: %v", err)
	}

	if *hz <= 0.0 || *ratio <= 0.0 {
		logger.Fatalf("hz and ratio must be positive")
	}

	world := box2d.MakeB2World(box2d.MakeB2Vec2(0.0, -10.0), settings)

	// The classic pulley testbed scene: two boxes hanging from two ground anchors.
	const y = 16.0
	const L = 12.0
	const a = 1.0
	const b = 2.0

	bd := box2d.MakeB2BodyDef()
	bd.Type = box2d.B2BodyType.B2_dynamicBody

	mass := box2d.B2MassData{Mass: 4.0 * a * b * 5.0}
	mass.I = mass.Mass * (a*a + b*b) / 3.0

	bd.Position.Set(-10.0, y)
	bodyA := world.CreateBody(&bd)
	world.GetBody(bodyA).SetMassData(&mass)

	bd.Position.Set(10.0, y)
	bodyB := world.CreateBody(&bd)
	world.GetBody(bodyB).SetMassData(&mass)

	pulleyDef := box2d.MakeB2PulleyJointDef()
	pulleyDef.Initialize(
		world.GetBodies(), bodyA, bodyB,
		box2d.MakeB2Vec2(-10.0, y+b+L), box2d.MakeB2Vec2(10.0, y+b+L),
		box2d.MakeB2Vec2(-10.0, y+b), box2d.MakeB2Vec2(10.0, y+b),
		*ratio,
	)
	joint := world.CreateJoint(&pulleyDef)
	pulley := joint.GetPulley()

	dt := 1.0 / *hz
	for i := 0; i < *steps; i++ {
		world.Step(dt)

		lengthA := pulley.GetCurrentLengthA(*world.GetBody(bodyA))
		lengthB := pulley.GetCurrentLengthB(*world.GetBody(bodyB))
		logger.Printf("step %d: L1 = %.4f, L2 = %.4f, L1 + %.2f * L2 = %.4f, solved = %v",
			i, lengthA, lengthB, pulley.GetRatio(), lengthA+pulley.GetRatio()*lengthB, world.IsPositionSolved())
	}

	if *dump {
		world.Dump()
	}
}
