// internal/component/movement.go
package component

import "go-wave-defense/pkg/hexmap"

// Position in world coordinates.
type Position struct {
	X, Y float64
}

// Path is the sequence of hexes an enemy walks, entry to exit.
type Path struct {
	Hexes        []hexmap.Hex
	CurrentIndex int
}
