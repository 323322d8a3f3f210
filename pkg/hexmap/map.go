// pkg/hexmap/map.go
package hexmap

import "math"

// Tile describes a single cell of the board.
type Tile struct {
	Passable      bool
	CanPlaceTower bool
}

// HexMap is the game board: a round field of hexes with one entry and one
// exit. It is the navigation collaborator of the simulation — spawn poses,
// destinations and range checks are all answered in hex space.
type HexMap struct {
	Tiles  map[Hex]Tile
	Radius int
	Entry  Hex
	Exit   Hex
}

// NewHexMap builds a round map of the given radius. The entry and exit sit
// just outside the main field on opposite sides and cannot hold towers.
func NewHexMap(radius int) *HexMap {
	tiles := make(map[Hex]Tile)
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			tiles[Hex{q, r}] = Tile{Passable: true, CanPlaceTower: true}
		}
	}

	entry := Hex{Q: -(radius + 1), R: radius - radius/2 + 1}
	exit := Hex{Q: radius + 1, R: -(radius - radius/2 + 1)}
	tiles[entry] = Tile{Passable: true, CanPlaceTower: false}
	tiles[exit] = Tile{Passable: true, CanPlaceTower: false}

	return &HexMap{
		Tiles:  tiles,
		Radius: radius,
		Entry:  entry,
		Exit:   exit,
	}
}

// IsPassable reports whether a hex exists and can be walked through.
func (hm *HexMap) IsPassable(h Hex) bool {
	tile, exists := hm.Tiles[h]
	return exists && tile.Passable
}

// SetBlocked marks a hex as impassable (a placed tower occupies it).
// Unknown hexes are ignored.
func (hm *HexMap) SetBlocked(h Hex, blocked bool) {
	tile, exists := hm.Tiles[h]
	if !exists {
		return
	}
	tile.Passable = !blocked
	hm.Tiles[h] = tile
}

// SpawnPose returns the entry position in world coordinates together with
// the facing angle (radians) toward the exit.
func (hm *HexMap) SpawnPose(hexSize float64) (x, y, rotation float64) {
	x, y = hm.Entry.ToPixel(hexSize)
	ex, ey := hm.Exit.ToPixel(hexSize)
	rotation = math.Atan2(ey-y, ex-x)
	return
}
