// Package devtools provides developer tools for inspecting generated levels.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/leonelquinteros/gotext"

	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/world"
	"github.com/kosciak/ecs-rogal-sub000/pkg/game/entities"
	"github.com/kosciak/ecs-rogal-sub000/pkg/game/generator"
)

const mapDumpFilename = "map.txt"

var terrainSymbols = map[string]rune{
	world.TerrainVoid:  ' ',
	world.TerrainWall:  '#',
	world.TerrainFloor: '.',
}

// terrainSymbol returns the symbol of the terrain at p, without entities
func terrainSymbol(level *generator.Level, palette world.Palette, p world.Position) rune {
	if symbol, ok := terrainSymbols[palette.Name(level.Grid.At(p))]; ok {
		return symbol
	}
	return '?'
}

// entitySymbol returns the symbol of the most visible entity at p, or false if there is none
func entitySymbol(store *entities.Store, p world.Position) (rune, entities.Kind, bool) {
	if store == nil {
		return 0, 0, false
	}
	var found *entities.Entity
	for _, e := range store.At(p) {
		// The player is drawn over anything else.
		if found == nil || e.Kind == entities.KindPlayer {
			found = e
		}
	}
	if found == nil {
		return 0, 0, false
	}
	switch found.Kind {
	case entities.KindPlayer:
		return '@', found.Kind, true
	case entities.KindDoor:
		if found.Closed {
			return '+', found.Kind, true
		}
		return '\'', found.Kind, true
	default:
		if found.Name == "" {
			return 'm', found.Kind, true
		}
		return []rune(found.Name)[0], found.Kind, true
	}
}

// cellSymbol returns the symbol drawn for a cell
func cellSymbol(level *generator.Level, palette world.Palette, store *entities.Store, p world.Position) rune {
	if symbol, _, ok := entitySymbol(store, p); ok {
		return symbol
	}
	return terrainSymbol(level, palette, p)
}

// MapLines renders the level as one string per row. store may be nil.
func MapLines(level *generator.Level, palette world.Palette, store *entities.Store) []string {
	size := level.Size()
	lines := make([]string, 0, size.Height)
	var b strings.Builder
	for y := 0; y < size.Height; y++ {
		b.Reset()
		for x := 0; x < size.Width; x++ {
			b.WriteRune(cellSymbol(level, palette, store, world.Pos(x, y)))
		}
		lines = append(lines, b.String())
	}
	return lines
}

// Legend returns the translated symbol legend
func Legend() string {
	return strings.Join([]string{
		"# = " + gotext.Get("wall"),
		". = " + gotext.Get("floor"),
		"+ = " + gotext.Get("closed door"),
		"' = " + gotext.Get("open door"),
		"@ = " + gotext.Get("player"),
		"a-z = " + gotext.Get("monster"),
	}, "  ")
}

// WriteDump writes a full debug dump: metadata, legend, map, rooms, corridors and entities.
// The format is sections of key: value lines.
func WriteDump(w io.Writer, level *generator.Level, palette world.Palette, store *entities.Store) {
	size := level.Size()

	fmt.Fprintln(w, "=== LEVEL DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "level_id: %d\n", level.ID)
	fmt.Fprintf(w, "depth: %d\n", level.Depth)
	fmt.Fprintf(w, "width: %d\n", size.Width)
	fmt.Fprintf(w, "height: %d\n", size.Height)
	fmt.Fprintln(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)")
	fmt.Fprintf(w, "rooms: %d\n", len(level.Rooms))
	fmt.Fprintf(w, "corridors: %d\n", len(level.Corridors))
	fmt.Fprintf(w, "floor_cells: %d\n", level.Grid.Count(palette[world.TerrainFloor]))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, Legend())
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	for _, line := range MapLines(level, palette, store) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Rooms ---")
	for _, room := range level.Rooms {
		r := room.Rect()
		fmt.Fprintf(w, "room %d: x=%d y=%d w=%d h=%d connections=%v\n",
			room.Index, r.X, r.Y, r.Width, r.Height, room.Connections())
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Corridors ---")
	for i, corridor := range level.Corridors {
		fmt.Fprintf(w, "corridor %d: %s at %v length=%d doors_allowed=%v\n",
			i, corridor.Orientation, corridor.Position, corridor.Length, corridor.AllowedDoors())
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Entities ---")
	if store == nil || store.Len() == 0 {
		fmt.Fprintln(w, "(none)")
		return
	}
	for _, e := range store.All() {
		fmt.Fprintf(w, "%d: %s %q at %v\n", e.ID, e.Kind, e.Name, e.Position)
	}
}

// DumpLevelToFile writes WriteDump output to map.txt in dir and returns the absolute path
func DumpLevelToFile(dir string, level *generator.Level, palette world.Palette, store *entities.Store) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	WriteDump(f, level, palette, store)
	return absPath, nil
}
