package devtools

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/world"
	"github.com/kosciak/ecs-rogal-sub000/pkg/game/entities"
	"github.com/kosciak/ecs-rogal-sub000/pkg/game/generator"
)

// LevelYAML represents a level in YAML format
type LevelYAML struct {
	ID        int64          `yaml:"id"`
	Depth     int            `yaml:"depth"`
	Width     int            `yaml:"width"`
	Height    int            `yaml:"height"`
	Rooms     []RoomYAML     `yaml:"rooms"`
	Corridors []CorridorYAML `yaml:"corridors"`
	Entities  []EntityYAML   `yaml:"entities,omitempty"`
	Map       []string       `yaml:"map"`
}

// RoomYAML represents a room in YAML format
type RoomYAML struct {
	Index       int   `yaml:"index"`
	X           int   `yaml:"x"`
	Y           int   `yaml:"y"`
	Width       int   `yaml:"width"`
	Height      int   `yaml:"height"`
	Connections []int `yaml:"connections,flow"`
}

// CorridorYAML represents a corridor segment in YAML format
type CorridorYAML struct {
	Orientation  string           `yaml:"orientation"`
	X            int              `yaml:"x"`
	Y            int              `yaml:"y"`
	Length       int              `yaml:"length"`
	AllowedDoors []world.Position `yaml:"allowed_doors,omitempty,flow"`
}

// EntityYAML represents a spawned entity in YAML format
type EntityYAML struct {
	ID   int    `yaml:"id"`
	Kind string `yaml:"kind"`
	Name string `yaml:"name,omitempty"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

// NewLevelYAML converts a level and its entities. store may be nil.
func NewLevelYAML(level *generator.Level, palette world.Palette, store *entities.Store) *LevelYAML {
	size := level.Size()
	doc := &LevelYAML{
		ID:     level.ID,
		Depth:  level.Depth,
		Width:  size.Width,
		Height: size.Height,
		Map:    MapLines(level, palette, nil),
	}

	for _, room := range level.Rooms {
		r := room.Rect()
		doc.Rooms = append(doc.Rooms, RoomYAML{
			Index:       room.Index,
			X:           r.X,
			Y:           r.Y,
			Width:       r.Width,
			Height:      r.Height,
			Connections: room.Connections(),
		})
	}

	for _, corridor := range level.Corridors {
		doc.Corridors = append(doc.Corridors, CorridorYAML{
			Orientation:  corridor.Orientation.String(),
			X:            corridor.Position.X,
			Y:            corridor.Position.Y,
			Length:       corridor.Length,
			AllowedDoors: corridor.AllowedDoors(),
		})
	}

	if store != nil {
		for _, e := range store.All() {
			doc.Entities = append(doc.Entities, EntityYAML{
				ID:   e.ID,
				Kind: e.Kind.String(),
				Name: e.Name,
				X:    e.Position.X,
				Y:    e.Position.Y,
			})
		}
	}
	return doc
}

// WriteLevelYAML writes doc with a short header comment
func WriteLevelYAML(w io.Writer, doc *LevelYAML) error {
	fmt.Fprintf(w, "# Level %d at depth %d\n", doc.ID, doc.Depth)
	fmt.Fprintf(w, "# Rooms: %d, corridor segments: %d\n\n", len(doc.Rooms), len(doc.Corridors))

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}

// WriteLevelYAMLFile writes doc to path
func WriteLevelYAMLFile(path string, doc *LevelYAML) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	return WriteLevelYAML(f, doc)
}

// ReadLevelYAML decodes a level written by WriteLevelYAML
func ReadLevelYAML(r io.Reader) (*LevelYAML, error) {
	var doc LevelYAML
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode YAML: %w", err)
	}
	return &doc, nil
}
