package scene

import "github.com/go-gl/mathgl/mgl64"

// CubeVertices are the corners of a unit box centered on the origin.
var CubeVertices = [8]mgl64.Vec3{
	{-0.5, -0.5, -0.5}, // 0
	{0.5, -0.5, -0.5},  // 1
	{0.5, 0.5, -0.5},   // 2
	{-0.5, 0.5, -0.5},  // 3
	{-0.5, -0.5, 0.5},  // 4
	{0.5, -0.5, 0.5},   // 5
	{0.5, 0.5, 0.5},    // 6
	{-0.5, 0.5, 0.5},   // 7
}

// CubeFaces index CubeVertices counter-clockwise when seen from outside.
var CubeFaces = [6][4]int{
	{4, 5, 6, 7}, // +z
	{1, 0, 3, 2}, // -z
	{5, 1, 2, 6}, // +x
	{0, 4, 7, 3}, // -x
	{7, 6, 2, 3}, // +y
	{0, 1, 5, 4}, // -y
}

// Edge is one segment of the wireframe with the two faces it borders.
type Edge struct {
	A, B  int
	Faces [2]int
}

// CubeEdges is the edge geometry of the unit box, derived from CubeFaces.
var CubeEdges = buildEdges()

func buildEdges() [12]Edge {
	var edges [12]Edge
	n := 0
	seen := map[[2]int]int{}
	for f, face := range CubeFaces {
		for i := range face {
			a, b := face[i], face[(i+1)%4]
			key := [2]int{min(a, b), max(a, b)}
			if idx, ok := seen[key]; ok {
				edges[idx].Faces[1] = f
				continue
			}
			seen[key] = n
			edges[n] = Edge{A: key[0], B: key[1], Faces: [2]int{f, f}}
			n++
		}
	}
	return edges
}
