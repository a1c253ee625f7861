package box2d

/// This is an internal structure.
type B2TimeStep struct {
	Dt                 float64 // time step
	Inv_dt             float64 // inverse time step (0 if dt == 0).
	DtRatio            float64 // dt * inv_dt0
	VelocityIterations int
	PositionIterations int
	WarmStarting       bool
}

func MakeB2TimeStep(dt float64, inv_dt0 float64, settings B2Settings) B2TimeStep {
	step := B2TimeStep{
		Dt:                 dt,
		VelocityIterations: settings.VelocityIterations,
		PositionIterations: settings.PositionIterations,
		WarmStarting:       settings.WarmStarting,
	}

	if dt > 0.0 {
		step.Inv_dt = 1.0 / dt
	}

	step.DtRatio = inv_dt0 * dt

	return step
}

/// This is an internal structure.
type B2Position struct {
	C B2Vec2
	A float64
}

/// This is an internal structure.
type B2Velocity struct {
	V B2Vec2
	W float64
}

/// Solver Data. Positions and Velocities are indexed by island index,
/// Bodies by body index.
type B2SolverData struct {
	Step       B2TimeStep
	Positions  []B2Position
	Velocities []B2Velocity
	Bodies     []B2Body
	Settings   B2Settings
}
