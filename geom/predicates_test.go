package geom_test

import (
	"testing"

	"github.com/go-hull/hull3d/geom"
)

func TestSignedVolume_Sign(t *testing.T) {
	// Unit tetrahedron, apex above the base plane z=0.
	a := geom.NewPoint(0, 0, 0)
	b := geom.NewPoint(1, 0, 0)
	c := geom.NewPoint(0, 1, 0)
	above := geom.NewPoint(0, 0, 1)
	below := geom.NewPoint(0, 0, -1)

	if v := geom.SignedVolume(a, b, c, above); v <= 0 {
		t.Errorf("SignedVolume(a,b,c,above) = %v, want > 0", v)
	}
	if v := geom.SignedVolume(a, b, c, below); v >= 0 {
		t.Errorf("SignedVolume(a,b,c,below) = %v, want < 0", v)
	}
}

func TestSignedVolume_Coplanar(t *testing.T) {
	a := geom.NewPoint(0, 0, 0)
	b := geom.NewPoint(1, 0, 0)
	c := geom.NewPoint(0, 1, 0)
	onPlane := geom.NewPoint(2, 2, 0)

	if v := geom.SignedVolume(a, b, c, onPlane); v != 0 {
		t.Errorf("SignedVolume of coplanar points = %v, want 0", v)
	}
}

func TestCollinear2D(t *testing.T) {
	a := geom.NewPoint(0, 0, 5)
	b := geom.NewPoint(1, 0, -3)
	c := geom.NewPoint(2, 0, 9)
	if got := geom.Collinear2D(a, b, c); got != 0 {
		t.Errorf("Collinear2D on a straight line = %v, want 0", got)
	}

	d := geom.NewPoint(0, 1, 0)
	if got := geom.Collinear2D(a, b, d); got == 0 {
		t.Errorf("Collinear2D on a bent line = 0, want nonzero")
	}
}

func TestFaceNormal(t *testing.T) {
	v0 := geom.NewPoint(0, 0, 0)
	v1 := geom.NewPoint(1, 0, 0)
	v2 := geom.NewPoint(0, 1, 0)

	n := geom.FaceNormal(v0, v1, v2)
	if got := n.Len(); got < 0.999 || got > 1.001 {
		t.Errorf("FaceNormal length = %v, want ~1", got)
	}
	if n.Z() <= 0 {
		t.Errorf("FaceNormal.Z() = %v, want > 0", n.Z())
	}
}
