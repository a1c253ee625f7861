package box2d

import (
	"math"
)

const B2_nullFeature uint8 = math.MaxUint8

var B2ContactFeature_Type = struct {
	E_vertex uint8
	E_face   uint8
}{
	E_vertex: 0,
	E_face:   1,
}

/// The features that intersect to form the contact point
/// This must be 4 bytes or less.
type B2ContactFeature struct {
	IndexA uint8 ///< Feature index on shapeA
	IndexB uint8 ///< Feature index on shapeB
	TypeA  uint8 ///< The feature type on shapeA
	TypeB  uint8 ///< The feature type on shapeB
}

type B2ContactID B2ContactFeature

/// Contact ids to facilitate warm starting.
func (v B2ContactID) Key() uint32 {
	var key uint32 = 0
	key |= uint32(v.IndexA)
	key |= uint32(v.IndexB) << 8
	key |= uint32(v.TypeA) << 16
	key |= uint32(v.TypeB) << 24
	return key
}

func (v *B2ContactID) SetKey(key uint32) {
	v.IndexA = uint8(key & 0xFF)
	v.IndexB = uint8(key >> 8 & 0xFF)
	v.TypeA = uint8(key >> 16 & 0xFF)
	v.TypeB = uint8(key >> 24 & 0xFF)
}

/// A manifold point is a contact point belonging to a contact
/// manifold. The local point usage depends on the manifold type:
/// -e_circles: the local center of circleB
/// -e_faceA: the local center of circleB or the clip point of polygonB
/// -e_faceB: the clip point of polygonA
type B2ManifoldPoint struct {
	LocalPoint     B2Vec2      ///< usage depends on manifold type
	NormalImpulse  float64     ///< the non-penetration impulse
	TangentImpulse float64     ///< the friction impulse
	Id             B2ContactID ///< uniquely identifies a contact point between two shapes
}

var B2Manifold_Type = struct {
	E_circles uint8
	E_faceA   uint8
	E_faceB   uint8
}{
	E_circles: 0,
	E_faceA:   1,
	E_faceB:   2,
}

/// A manifold for two touching convex shapes, as produced by the narrow phase.
/// The local point usage depends on the manifold type:
/// -e_circles: the local center of circleA
/// -e_faceA: the center of faceA
/// -e_faceB: the center of faceB
/// Similarly the local normal usage:
/// -e_circles: not used
/// -e_faceA: the normal on polygonA
/// -e_faceB: the normal on polygonB
type B2Manifold struct {
	Points      [B2_maxManifoldPoints]B2ManifoldPoint ///< the points of contact
	LocalNormal B2Vec2                                ///< not use for Type::e_points
	LocalPoint  B2Vec2                                ///< usage depends on manifold type
	Type        uint8                                 // B2Manifold_Type
	PointCount  int                                   ///< the number of manifold points
}

/// This is used to compute the current state of a contact manifold.
type B2WorldManifold struct {
	Normal      B2Vec2                        ///< world vector pointing from A to B
	Points      [B2_maxManifoldPoints]B2Vec2  ///< world contact point (point of intersection)
	Separations [B2_maxManifoldPoints]float64 ///< a negative value indicates overlap, in meters
}

var B2PointState = struct {
	B2_nullState    uint8 ///< point does not exist
	B2_addState     uint8 ///< point was added in the update
	B2_persistState uint8 ///< point persisted across the update
	B2_removeState  uint8 ///< point was removed in the update
}{
	B2_nullState:    0,
	B2_addState:     1,
	B2_persistState: 2,
	B2_removeState:  3,
}

/// Ray-cast input data. The ray extends from p1 to p1 + maxFraction * (p2 - p1).
type B2RayCastInput struct {
	P1, P2      B2Vec2
	MaxFraction float64
}

/// Ray-cast output data. The ray hits at p1 + fraction * (p2 - p1), where p1 and p2
/// come from b2RayCastInput.
type B2RayCastOutput struct {
	Normal   B2Vec2
	Fraction float64
}

/// An axis aligned bounding box.
type B2AABB struct {
	LowerBound B2Vec2 ///< the lower vertex
	UpperBound B2Vec2 ///< the upper vertex
}

func MakeB2AABB(lower, upper B2Vec2) B2AABB {
	return B2AABB{
		LowerBound: lower,
		UpperBound: upper,
	}
}

/// Get the center of the AABB.
func (bb B2AABB) GetCenter() B2Vec2 {
	return B2Vec2MulScalar(0.5, B2Vec2Add(bb.LowerBound, bb.UpperBound))
}

/// Get the extents of the AABB (half-widths).
func (bb B2AABB) GetExtents() B2Vec2 {
	return B2Vec2MulScalar(0.5, B2Vec2Sub(bb.UpperBound, bb.LowerBound))
}

/// Get the perimeter length
func (bb B2AABB) GetPerimeter() float64 {
	wx := bb.UpperBound.X - bb.LowerBound.X
	wy := bb.UpperBound.Y - bb.LowerBound.Y
	return 2.0 * (wx + wy)
}

/// The four corners, counter-clockwise starting at the lower bound.
func (bb B2AABB) GetVertices() [4]B2Vec2 {
	return [4]B2Vec2{
		bb.LowerBound,
		MakeB2Vec2(bb.UpperBound.X, bb.LowerBound.Y),
		bb.UpperBound,
		MakeB2Vec2(bb.LowerBound.X, bb.UpperBound.Y),
	}
}

/// Combine two AABBs.
func B2AABBCombine(a, b B2AABB) B2AABB {
	return B2AABB{
		LowerBound: B2Vec2Min(a.LowerBound, b.LowerBound),
		UpperBound: B2Vec2Max(a.UpperBound, b.UpperBound),
	}
}

/// Combine an AABB into this one.
func (bb *B2AABB) CombineInPlace(aabb B2AABB) {
	bb.LowerBound = B2Vec2Min(bb.LowerBound, aabb.LowerBound)
	bb.UpperBound = B2Vec2Max(bb.UpperBound, aabb.UpperBound)
}

/// Combine two AABBs into this one.
func (bb *B2AABB) CombineTwoInPlace(aabb1, aabb2 B2AABB) {
	bb.LowerBound = B2Vec2Min(aabb1.LowerBound, aabb2.LowerBound)
	bb.UpperBound = B2Vec2Max(aabb1.UpperBound, aabb2.UpperBound)
}

/// Does this aabb contain the provided AABB.
func (bb B2AABB) Contains(aabb B2AABB) bool {
	return bb.LowerBound.X <= aabb.LowerBound.X &&
		bb.LowerBound.Y <= aabb.LowerBound.Y &&
		aabb.UpperBound.X <= bb.UpperBound.X &&
		aabb.UpperBound.Y <= bb.UpperBound.Y
}

func (bb B2AABB) IsValid() bool {
	d := B2Vec2Sub(bb.UpperBound, bb.LowerBound)
	valid := d.X >= 0.0 && d.Y >= 0.0
	valid = valid && bb.LowerBound.IsValid() && bb.UpperBound.IsValid()
	return valid
}

func B2TestOverlapBoundingBoxes(a, b B2AABB) bool {
	d1 := B2Vec2Sub(b.LowerBound, a.UpperBound)
	d2 := B2Vec2Sub(a.LowerBound, b.UpperBound)

	if d1.X > 0.0 || d1.Y > 0.0 {
		return false
	}

	if d2.X > 0.0 || d2.Y > 0.0 {
		return false
	}

	return true
}

// From Real-time Collision Detection, p179.
func (bb B2AABB) RayCast(output *B2RayCastOutput, input B2RayCastInput) bool {
	tmin := -B2_maxFloat
	tmax := B2_maxFloat

	p := input.P1
	d := B2Vec2Sub(input.P2, input.P1)
	absD := B2Vec2Abs(d)

	var normal B2Vec2

	for i := 0; i < 2; i++ {
		pi := p.OperatorIndexGet(i)
		lower := bb.LowerBound.OperatorIndexGet(i)
		upper := bb.UpperBound.OperatorIndexGet(i)

		if absD.OperatorIndexGet(i) < B2_epsilon {
			// Parallel.
			if pi < lower || upper < pi {
				return false
			}
			continue
		}

		inv_d := 1.0 / d.OperatorIndexGet(i)
		t1 := (lower - pi) * inv_d
		t2 := (upper - pi) * inv_d

		// Sign of the normal vector.
		s := -1.0

		if t1 > t2 {
			t1, t2 = t2, t1
			s = 1.0
		}

		// Push the min up
		if t1 > tmin {
			normal.SetZero()
			normal.OperatorIndexSet(i, s)
			tmin = t1
		}

		// Pull the max down
		tmax = math.Min(tmax, t2)

		if tmin > tmax {
			return false
		}
	}

	// Does the ray start inside the box?
	// Does the ray intersect beyond the max fraction?
	if tmin < 0.0 || input.MaxFraction < tmin {
		return false
	}

	// Intersection.
	output.Fraction = tmin
	output.Normal = normal
	return true
}

///////////////////////////////////////////////////////////////////////////////
// World manifold
///////////////////////////////////////////////////////////////////////////////

/// Evaluate the manifold with supplied transforms. This assumes
/// modest motion from the original state. This does not change the
/// point count, impulses, etc. The radii must come from the shapes
/// that generated the manifold.
func (wm *B2WorldManifold) Initialize(manifold *B2Manifold, xfA B2Transform, radiusA float64, xfB B2Transform, radiusB float64) {
	if manifold.PointCount == 0 {
		return
	}

	switch manifold.Type {
	case B2Manifold_Type.E_circles:
		wm.Normal.Set(1.0, 0.0)
		pointA := B2TransformVec2Mul(xfA, manifold.LocalPoint)
		pointB := B2TransformVec2Mul(xfB, manifold.Points[0].LocalPoint)
		if B2Vec2DistanceSquared(pointA, pointB) > B2_epsilon*B2_epsilon {
			wm.Normal = B2Vec2Sub(pointB, pointA)
			wm.Normal.Normalize()
		}

		cA := B2Vec2Add(pointA, B2Vec2MulScalar(radiusA, wm.Normal))
		cB := B2Vec2Sub(pointB, B2Vec2MulScalar(radiusB, wm.Normal))

		wm.Points[0] = B2Vec2MulScalar(0.5, B2Vec2Add(cA, cB))
		wm.Separations[0] = B2Vec2Dot(B2Vec2Sub(cB, cA), wm.Normal)

	case B2Manifold_Type.E_faceA:
		wm.Normal = B2RotVec2Mul(xfA.Q, manifold.LocalNormal)
		planePoint := B2TransformVec2Mul(xfA, manifold.LocalPoint)

		for i := 0; i < manifold.PointCount; i++ {
			clipPoint := B2TransformVec2Mul(xfB, manifold.Points[i].LocalPoint)
			depth := radiusA - B2Vec2Dot(B2Vec2Sub(clipPoint, planePoint), wm.Normal)
			cA := B2Vec2Add(clipPoint, B2Vec2MulScalar(depth, wm.Normal))
			cB := B2Vec2Sub(clipPoint, B2Vec2MulScalar(radiusB, wm.Normal))
			wm.Points[i] = B2Vec2MulScalar(0.5, B2Vec2Add(cA, cB))
			wm.Separations[i] = B2Vec2Dot(B2Vec2Sub(cB, cA), wm.Normal)
		}

	case B2Manifold_Type.E_faceB:
		wm.Normal = B2RotVec2Mul(xfB.Q, manifold.LocalNormal)
		planePoint := B2TransformVec2Mul(xfB, manifold.LocalPoint)

		for i := 0; i < manifold.PointCount; i++ {
			clipPoint := B2TransformVec2Mul(xfA, manifold.Points[i].LocalPoint)
			depth := radiusB - B2Vec2Dot(B2Vec2Sub(clipPoint, planePoint), wm.Normal)
			cB := B2Vec2Add(clipPoint, B2Vec2MulScalar(depth, wm.Normal))
			cA := B2Vec2Sub(clipPoint, B2Vec2MulScalar(radiusA, wm.Normal))
			wm.Points[i] = B2Vec2MulScalar(0.5, B2Vec2Add(cA, cB))
			wm.Separations[i] = B2Vec2Dot(B2Vec2Sub(cA, cB), wm.Normal)
		}

		// Ensure normal points from A to B.
		wm.Normal = wm.Normal.OperatorNegate()
	}
}

/// Compute the point states given two manifolds. The states pertain to the transition from manifold1
/// to manifold2. So state1 is either persist or remove while state2 is either add or persist.
func B2GetPointStates(state1 *[B2_maxManifoldPoints]uint8, state2 *[B2_maxManifoldPoints]uint8, manifold1 *B2Manifold, manifold2 *B2Manifold) {
	for i := 0; i < B2_maxManifoldPoints; i++ {
		state1[i] = B2PointState.B2_nullState
		state2[i] = B2PointState.B2_nullState
	}

	// Detect persists and removes.
	for i := 0; i < manifold1.PointCount; i++ {
		key := manifold1.Points[i].Id.Key()

		state1[i] = B2PointState.B2_removeState

		for j := 0; j < manifold2.PointCount; j++ {
			if manifold2.Points[j].Id.Key() == key {
				state1[i] = B2PointState.B2_persistState
				break
			}
		}
	}

	// Detect persists and adds.
	for i := 0; i < manifold2.PointCount; i++ {
		key := manifold2.Points[i].Id.Key()

		state2[i] = B2PointState.B2_addState

		for j := 0; j < manifold1.PointCount; j++ {
			if manifold1.Points[j].Id.Key() == key {
				state2[i] = B2PointState.B2_persistState
				break
			}
		}
	}
}
