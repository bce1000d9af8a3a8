package hull

// BFSResult holds the outcome of a breadth-first walk over a SurfaceGraph:
// visit order, per-vertex depth (edge count from start, not path length),
// and a parent link for reconstructing the shortest edge-count path back
// to start.
type BFSResult struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// walker encapsulates the mutable state of one BFS run, in the same shape
// the bfs package uses for its queue/visited/result triad, scaled down to
// this package's single use.
type walker struct {
	graph   *SurfaceGraph
	queue   []int
	visited map[int]bool
	res     *BFSResult
}

// BFS walks g breadth-first from start, visiting neighbors in the order
// Neighbors happens to return them (hull surfaces have no canonical edge
// ordering to prefer). It returns ErrVertexNotOnHull if start is not a
// node of g.
func BFS(g *SurfaceGraph, start int) (*BFSResult, error) {
	if !g.HasVertex(start) {
		return nil, ErrVertexNotOnHull
	}

	w := &walker{
		graph:   g,
		queue:   make([]int, 0, len(g.adjacency)),
		visited: make(map[int]bool, len(g.adjacency)),
		res: &BFSResult{
			Order:  make([]int, 0, len(g.adjacency)),
			Depth:  make(map[int]int, len(g.adjacency)),
			Parent: make(map[int]int),
		},
	}

	w.enqueue(start, 0, -1)
	w.loop()

	return w.res, nil
}

func (w *walker) enqueue(v, depth, parent int) {
	w.visited[v] = true
	w.res.Depth[v] = depth
	if parent >= 0 {
		w.res.Parent[v] = parent
	}
	w.queue = append(w.queue, v)
}

func (w *walker) loop() {
	for len(w.queue) > 0 {
		v := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, v)

		for nbr := range w.graph.Neighbors(v) {
			if !w.visited[nbr] {
				w.enqueue(nbr, w.res.Depth[v]+1, v)
			}
		}
	}
}
