package devtools

import (
	"regexp"
	"strings"

	"github.com/gookit/color"

	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/world"
	"github.com/kosciak/ecs-rogal-sub000/pkg/game/entities"
	"github.com/kosciak/ecs-rogal-sub000/pkg/game/generator"
)

// Preview colors
var (
	ColorWall    = color.Style{color.FgGray}
	ColorFloor   = color.Style{color.FgDarkGray}
	ColorDoor    = color.Style{color.FgYellow}
	ColorPlayer  = color.Style{color.FgGreen, color.OpBold}
	ColorMonster = color.Style{color.FgRed, color.OpBold}
	ColorUnknown = color.Style{color.FgMagenta}
)

// Preview renders the level with terminal colors, one line per row
func Preview(level *generator.Level, palette world.Palette, store *entities.Store) string {
	size := level.Size()
	var b strings.Builder
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			p := world.Pos(x, y)
			symbol, style := previewCell(level, palette, store, p)
			b.WriteString(style.Sprint(string(symbol)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func previewCell(level *generator.Level, palette world.Palette, store *entities.Store, p world.Position) (rune, color.Style) {
	if symbol, kind, ok := entitySymbol(store, p); ok {
		switch kind {
		case entities.KindPlayer:
			return symbol, ColorPlayer
		case entities.KindDoor:
			return symbol, ColorDoor
		default:
			return symbol, ColorMonster
		}
	}
	switch palette.Name(level.Grid.At(p)) {
	case world.TerrainWall:
		return '#', ColorWall
	case world.TerrainFloor:
		return '.', ColorFloor
	case world.TerrainVoid:
		return ' ', ColorFloor
	default:
		return '?', ColorUnknown
	}
}

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes ANSI color escape sequences from s
func stripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}
