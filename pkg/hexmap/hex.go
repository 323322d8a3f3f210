// pkg/hexmap/hex.go
package hexmap

import (
	"go-wave-defense/pkg/utils"
)

// Hex is a hex cell in axial coordinates (Q, R).
type Hex struct {
	Q, R int
}

// NeighborDirections defines the 6 possible directions from a hex, starting from East and going counter-clockwise.
var NeighborDirections = []Hex{
	{Q: 1, R: 0}, {Q: 0, R: -1}, {Q: -1, R: 0},
	{Q: -1, R: 1}, {Q: 0, R: 1}, {Q: 1, R: -1},
}

// ToPixel converts a hex to world coordinates (pointy top orientation).
func (h Hex) ToPixel(hexSize float64) (x, y float64) {
	x = hexSize * (Sqrt3*float64(h.Q) + Sqrt3/2*float64(h.R))
	y = hexSize * (3.0 / 2.0 * float64(h.R))
	return
}

// Neighbors returns the neighbors of the hex that exist on the map.
func (h Hex) Neighbors(hm *HexMap) []Hex {
	allNeighbors := h.AllPossibleNeighbors()
	validNeighbors := make([]Hex, 0, 6)
	for _, n := range allNeighbors {
		if _, exists := hm.Tiles[n]; exists {
			validNeighbors = append(validNeighbors, n)
		}
	}
	return validNeighbors
}

// AllPossibleNeighbors returns all six adjacent hexes regardless of the map.
func (h Hex) AllPossibleNeighbors() []Hex {
	return []Hex{
		{h.Q + 1, h.R},
		{h.Q + 1, h.R - 1},
		{h.Q, h.R - 1},
		{h.Q - 1, h.R},
		{h.Q - 1, h.R + 1},
		{h.Q, h.R + 1},
	}
}

// Add returns the sum of two hexes.
func (h Hex) Add(other Hex) Hex {
	return Hex{Q: h.Q + other.Q, R: h.R + other.R}
}

// Subtract returns the difference of two hexes.
func (h Hex) Subtract(other Hex) Hex {
	return Hex{Q: h.Q - other.Q, R: h.R - other.R}
}

// Distance computes the hex grid distance between two hexes.
func (h Hex) Distance(to Hex) int {
	dq := h.Q - to.Q
	dr := h.R - to.R
	return (utils.Abs(dq) + utils.Abs(dr) + utils.Abs(dq+dr)) / 2
}

// Lerp linearly interpolates between two hexes and rounds to the nearest cell.
func (a Hex) Lerp(b Hex, t float64) Hex {
	q := float64(a.Q)*(1-t) + float64(b.Q)*t
	r := float64(a.R)*(1-t) + float64(b.R)*t
	return axialRound(q, r)
}

// LineTo returns the hexes on the straight line between two hexes, inclusive.
// Used for flying enemies that ignore the ground path.
func (start Hex) LineTo(end Hex) []Hex {
	n := start.Distance(end)
	if n == 0 {
		return []Hex{start}
	}
	results := make([]Hex, 0, n+1)
	for i := 0; i <= n; i++ {
		t := 1.0 / float64(n) * float64(i)
		results = append(results, start.Lerp(end, t))
	}
	return results
}
