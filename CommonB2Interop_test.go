package box2d_test

import (
	"testing"

	"github.com/Tobi29/scapes-engine-sub012"
	"github.com/go-gl/mathgl/mgl64"
)

func TestTransformMatchesMat3(t *testing.T) {
	xf := box2d.MakeB2Transform()
	xf.Set(box2d.MakeB2Vec2(1, 2), 0.3)

	points := []box2d.B2Vec2{
		box2d.MakeB2Vec2(0, 0),
		box2d.MakeB2Vec2(0.5, -1),
		box2d.MakeB2Vec2(-4, 2.5),
	}

	m := xf.ToMat3()
	for _, p := range points {
		want := box2d.B2TransformVec2Mul(xf, p)
		got := m.Mul3x1(mgl64.Vec3{p.X, p.Y, 1})
		if !approxEqual(got.X(), want.X) || !approxEqual(got.Y(), want.Y) || got.Z() != 1 {
			t.Errorf("Mat3 * %v = %v, want %v", p, got, want)
		}
	}
}

func TestVec2MglConversion(t *testing.T) {
	v := box2d.MakeB2Vec2(3, -4)
	if back := box2d.MakeB2Vec2FromMgl(v.ToMgl()); back != v {
		t.Errorf("round trip = %v, want %v", back, v)
	}

	bb := box2d.MakeB2AABB(box2d.MakeB2Vec2(0, 0), box2d.MakeB2Vec2(2, 1))
	corners := bb.ToMglVertices()
	if corners[2] != (mgl64.Vec2{2, 1}) {
		t.Errorf("third corner = %v, want [2 1]", corners[2])
	}
}
