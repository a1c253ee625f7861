package box2d

import "github.com/go-gl/mathgl/mgl64"

// Conversions to the mathgl types used by renderers.

func MakeB2Vec2FromMgl(v mgl64.Vec2) B2Vec2 {
	return MakeB2Vec2(v[0], v[1])
}

func (v B2Vec2) ToMgl() mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

/// Homogeneous 3x3 matrix of this transform, column-major.
func (t B2Transform) ToMat3() mgl64.Mat3 {
	return mgl64.Mat3{
		t.Q.C, t.Q.S, 0,
		-t.Q.S, t.Q.C, 0,
		t.P.X, t.P.Y, 1,
	}
}

/// Corners of the box in GetVertices order, ready for a line-loop draw call.
func (bb B2AABB) ToMglVertices() [4]mgl64.Vec2 {
	var out [4]mgl64.Vec2
	for i, v := range bb.GetVertices() {
		out[i] = v.ToMgl()
	}
	return out
}
