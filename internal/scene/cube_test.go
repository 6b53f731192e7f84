package scene

import "testing"

func TestCubeFaces_WoundOutward(t *testing.T) {
	for f, face := range CubeFaces {
		a, b, c := CubeVertices[face[0]], CubeVertices[face[1]], CubeVertices[face[2]]
		normal := b.Sub(a).Cross(c.Sub(a))
		var center = CubeVertices[face[0]]
		for _, i := range face[1:] {
			center = center.Add(CubeVertices[i])
		}
		if normal.Dot(center) <= 0 {
			t.Fatalf("face %d is wound inward", f)
		}
	}
}

func TestCubeEdges(t *testing.T) {
	pairs := map[[2]int]bool{}
	for i, e := range CubeEdges {
		if e.A == e.B {
			t.Fatalf("edge %d is degenerate", i)
		}
		if pairs[[2]int{e.A, e.B}] {
			t.Fatalf("edge %d duplicated", i)
		}
		pairs[[2]int{e.A, e.B}] = true

		if e.Faces[0] == e.Faces[1] {
			t.Fatalf("edge %d borders a single face", i)
		}
		for _, f := range e.Faces {
			if !faceHas(f, e.A) || !faceHas(f, e.B) {
				t.Fatalf("edge %d not on face %d", i, f)
			}
		}
		d := CubeVertices[e.A].Sub(CubeVertices[e.B]).Len()
		if !near(d, 1, 1e-12) {
			t.Fatalf("edge %d has length %g", i, d)
		}
	}
	if len(pairs) != 12 {
		t.Fatalf("got %d edges", len(pairs))
	}
}

func faceHas(f, v int) bool {
	for _, i := range CubeFaces[f] {
		if i == v {
			return true
		}
	}
	return false
}
