package systems

import (
	"math"

	astar "github.com/beefsack/go-astar"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/doomerang-rogue/systems/factory"
	"github.com/automoto/doomerang-rogue/tags"
)

// NavGrid represents the walkable cells of the arena
type NavGrid struct {
	Width, Height int
	CellSize      float64
	Nodes         [][]*NavNode // 2D grid of nodes, row major
}

// NavNode represents a single cell in the navigation grid
// Implements astar.Pather interface
type NavNode struct {
	X, Y     int
	Walkable bool     // False when a hazard covers the cell
	Grid     *NavGrid // Reference to parent grid for neighbor lookup
}

// PathNeighbors returns adjacent walkable nodes (implements astar.Pather)
func (n *NavNode) PathNeighbors() []astar.Pather {
	var neighbors []astar.Pather

	// 8-directional movement (cardinal + diagonal)
	dirs := []struct{ dx, dy int }{
		{-1, 0}, {1, 0}, {0, -1}, {0, 1}, // Cardinal
		{-1, -1}, {1, -1}, {-1, 1}, {1, 1}, // Diagonal
	}

	for _, d := range dirs {
		nx, ny := n.X+d.dx, n.Y+d.dy
		if nx < 0 || nx >= n.Grid.Width || ny < 0 || ny >= n.Grid.Height {
			continue
		}
		// No corner cutting past a hazard
		if d.dx != 0 && d.dy != 0 && (!n.Grid.Nodes[n.Y][nx].Walkable || !n.Grid.Nodes[ny][n.X].Walkable) {
			continue
		}
		if neighbor := n.Grid.Nodes[ny][nx]; neighbor.Walkable {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

// PathNeighborCost returns the movement cost between adjacent nodes (implements astar.Pather)
func (n *NavNode) PathNeighborCost(to astar.Pather) float64 {
	return n.PathEstimatedCost(to)
}

// PathEstimatedCost returns heuristic distance to target (implements astar.Pather)
func (n *NavNode) PathEstimatedCost(to astar.Pather) float64 {
	toNode := to.(*NavNode)
	dx := float64(toNode.X - n.X)
	dy := float64(toNode.Y - n.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// CreateNavGrid builds a navigation grid over the collision space. Cells
// overlapping a hazard are not walkable.
func CreateNavGrid(space *resolv.Space, levelWidth, levelHeight int, cellSize float64) *NavGrid {
	gridW := int(float64(levelWidth) / cellSize)
	gridH := int(float64(levelHeight) / cellSize)

	grid := &NavGrid{
		Width:    gridW,
		Height:   gridH,
		CellSize: cellSize,
		Nodes:    make([][]*NavNode, gridH),
	}

	for y := 0; y < gridH; y++ {
		grid.Nodes[y] = make([]*NavNode, gridW)
		for x := 0; x < gridW; x++ {
			grid.Nodes[y][x] = &NavNode{X: x, Y: y, Walkable: true, Grid: grid}
		}
	}

	for y := 0; y < gridH; y++ {
		for x := 0; x < gridW; x++ {
			worldX := float64(x) * cellSize
			worldY := float64(y) * cellSize

			// Create a test object at this cell
			testObj := resolv.NewObject(worldX+2, worldY+2, cellSize-4, cellSize-4)
			space.Add(testObj)
			if check := testObj.Check(0, 0, tags.ResolvHazard); check != nil && overlapsAny(testObj, check.ObjectsByTags(tags.ResolvHazard)) {
				grid.Nodes[y][x].Walkable = false
			}
			space.Remove(testObj)
		}
	}

	return grid
}

func overlapsAny(a *resolv.Object, others []*resolv.Object) bool {
	for _, b := range others {
		if a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y {
			return true
		}
	}
	return false
}

// FindPath returns waypoints in arena coordinates from start to goal, start
// excluded. It returns nil when no path exists.
func (g *NavGrid) FindPath(start, goal dmath.Vec2) []dmath.Vec2 {
	if g.Width == 0 || g.Height == 0 {
		return nil
	}
	startNode := g.nodeAt(start)
	goalNode := g.nodeAt(goal)

	// Handle start or goal inside a hazard
	if !startNode.Walkable {
		startNode = g.findNearestWalkable(startNode.X, startNode.Y)
	}
	if !goalNode.Walkable {
		goalNode = g.findNearestWalkable(goalNode.X, goalNode.Y)
	}
	if startNode == nil || goalNode == nil {
		return nil
	}

	path, _, found := astar.Path(startNode, goalNode)
	if !found {
		return nil
	}

	nodes := make([]*NavNode, len(path))
	for i, p := range path {
		nodes[i] = p.(*NavNode)
	}
	// Normalize to start-first order
	if len(nodes) > 1 && nodes[0] == goalNode {
		for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
			nodes[i], nodes[j] = nodes[j], nodes[i]
		}
	}

	waypoints := make([]dmath.Vec2, 0, len(nodes))
	for _, n := range nodes {
		if n == startNode {
			continue
		}
		waypoints = append(waypoints, g.GridToWorld(n.X, n.Y))
	}
	return waypoints
}

// Walkable reports whether the cell containing pos is free of hazards.
func (g *NavGrid) Walkable(pos dmath.Vec2) bool {
	if g.Width == 0 || g.Height == 0 {
		return true
	}
	return g.nodeAt(pos).Walkable
}

func (g *NavGrid) nodeAt(pos dmath.Vec2) *NavNode {
	x, y := factory.SpaceRect(pos, dmath.Vec2{})
	gx := clampInt(int(x/g.CellSize), 0, g.Width-1)
	gy := clampInt(int(y/g.CellSize), 0, g.Height-1)
	return g.Nodes[gy][gx]
}

// findNearestWalkable finds the nearest walkable node to the given cell
func (g *NavGrid) findNearestWalkable(x, y int) *NavNode {
	// Search in expanding squares
	for radius := 1; radius < 10; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				nx, ny := x+dx, y+dy
				if nx >= 0 && nx < g.Width && ny >= 0 && ny < g.Height && g.Nodes[ny][nx].Walkable {
					return g.Nodes[ny][nx]
				}
			}
		}
	}
	return nil
}

// GridToWorld converts grid coordinates to the arena position of the cell
// center.
func (g *NavGrid) GridToWorld(gridX, gridY int) dmath.Vec2 {
	return factory.ArenaPos(
		float64(gridX)*g.CellSize+g.CellSize/2,
		float64(gridY)*g.CellSize+g.CellSize/2,
	)
}

func clampInt(v, minVal, maxVal int) int {
	return max(minVal, min(maxVal, v))
}
