package world

import (
	"fmt"
	"sort"

	"codeberg.org/anaseto/gruid/rl"
)

// Terrain is a terrain id as stored in the level grid
type Terrain = rl.Cell

// Terrain names every level generator needs to resolve
const (
	TerrainVoid  = "void"
	TerrainWall  = "wall"
	TerrainFloor = "floor"
)

// Palette maps terrain names to ids
type Palette map[string]Terrain

// DefaultPalette returns the built-in terrain ids
func DefaultPalette() Palette {
	return Palette{
		TerrainVoid:  0,
		TerrainWall:  1,
		TerrainFloor: 2,
	}
}

// Terrain resolves a terrain name
func (p Palette) Terrain(name string) (Terrain, error) {
	t, ok := p[name]
	if !ok {
		return 0, fmt.Errorf("unknown terrain %q", name)
	}
	return t, nil
}

// Name finds the name of a terrain id, or "" if the id is not in the palette
func (p Palette) Name(t Terrain) string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if p[name] == t {
			return name
		}
	}
	return ""
}
