// pkg/gridmap/pathfinding.go
package gridmap

// FindPath runs a breadth-first search from start to goal over passable
// 4-adjacent tiles. It returns the first shortest path found, start and goal
// included, or nil when goal is unreachable.
func FindPath(g *Grid, start, goal Point) []Point {
	if !g.IsPassable(start) || !g.IsPassable(goal) {
		return nil
	}

	cameFrom := make(map[Point]Point)
	visited := make(map[Point]bool)
	visited[start] = true
	queue := []Point{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == goal {
			return reconstructPath(cameFrom, start, goal)
		}

		for _, neighbor := range g.Neighbors(current) {
			if visited[neighbor] || !g.IsPassable(neighbor) {
				continue
			}
			visited[neighbor] = true
			cameFrom[neighbor] = current
			queue = append(queue, neighbor)
		}
	}
	return nil // no path
}

func reconstructPath(cameFrom map[Point]Point, start, goal Point) []Point {
	path := []Point{goal}
	for current := goal; current != start; {
		current = cameFrom[current]
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// IsConnected reports whether every consecutive pair in path is 4-adjacent
// and every tile on it is passable.
func IsConnected(g *Grid, path []Point) bool {
	if len(path) == 0 {
		return false
	}
	for i, p := range path {
		if !g.IsPassable(p) {
			return false
		}
		if i > 0 && path[i-1].Manhattan(p) != 1 {
			return false
		}
	}
	return true
}
