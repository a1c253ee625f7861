package box2d

import (
	"log"
	"math"
	"os"
)

func B2Assert(a bool) {
	if !a {
		panic("B2Assert")
	}
}

const B2_maxFloat = math.MaxFloat64

/// Machine epsilon for float64 (DBL_EPSILON).
const B2_epsilon = 2.220446049250313e-16
const B2_pi = math.Pi

/// @file
/// Global tuning constants based on meters-kilograms-seconds (MKS) units.
///

// Collision

/// The maximum number of contact points between two convex shapes. Do
/// not change this value.
const B2_maxManifoldPoints = 2

/// A small length used as a collision and constraint tolerance. Usually it is
/// chosen to be numerically significant, but visually insignificant.
const B2_linearSlop = 0.005

// Dynamics

/// The maximum linear velocity of a body. This limit is very large and is used
/// to prevent numerical problems. You shouldn't need to adjust this.
const B2_maxTranslation = 2.0

/// The maximum angular velocity of a body. This limit is very large and is used
/// to prevent numerical problems. You shouldn't need to adjust this.
const B2_maxRotation = (0.5 * B2_pi)

const B2_defaultVelocityIterations = 8
const B2_defaultPositionIterations = 3

var b2Logger = log.New(os.Stdout, "", 0)

/// Replace the logger used by B2Log and the Dump functions.
func B2SetLogger(logger *log.Logger) {
	B2Assert(logger != nil)
	b2Logger = logger
}

/// Logging function.
func B2Log(format string, args ...interface{}) {
	b2Logger.Printf(format, args...)
}
