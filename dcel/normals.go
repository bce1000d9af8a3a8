package dcel

import "github.com/go-hull/hull3d/geom"

// ComputeNormals fills in Face.Normal and Vertex.Normal for every in-hull
// face and vertex. It is a separate finishing step rather than part of the
// incremental insertion: hull.BuildConvexHull calls it once on the finished
// hull, and off.Load calls it once after reading a mesh.
//
// Grounded on engine.cpp's create_from_file loop from the original C++
// implementation: face normals come first (cross product of two edge
// vectors, normalized), then each vertex's normal is the average of its
// incident in-hull faces' normals, found by circulating twin->next around
// the vertex until back at the starting half-edge.
func (d *DCEL) ComputeNormals() {
	for f := range d.faces {
		if !d.faces[f].InConvexHull {
			continue
		}
		v0, v1, v2 := d.FaceVertices(f)
		d.faces[f].Normal = geom.FaceNormal(d.vertices[v0].Coords, d.vertices[v1].Coords, d.vertices[v2].Coords)
	}

	for v := range d.vertices {
		if !d.vertices[v].InConvexHull {
			continue
		}
		start := d.vertices[v].Incident
		if start == NoIndex {
			continue
		}

		var sum geom.Vector
		count := 0
		circulator := start
		for {
			he := d.halfEdges[circulator]
			if he.InConvexHull && d.faces[he.Face].InConvexHull {
				n := d.faces[he.Face].Normal
				sum[0] += n[0]
				sum[1] += n[1]
				sum[2] += n[2]
				count++
			}
			circulator = d.halfEdges[he.Twin].Next
			if circulator == start {
				break
			}
		}
		if count == 0 {
			continue
		}
		avg := geom.Vector{sum[0] / float64(count), sum[1] / float64(count), sum[2] / float64(count)}
		d.vertices[v].Normal = geom.Normalize(avg)
	}
}
