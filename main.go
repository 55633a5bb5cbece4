package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/leonelquinteros/gotext"

	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/logger"
	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/terminal"
	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/world"
	"github.com/kosciak/ecs-rogal-sub000/pkg/game/config"
	"github.com/kosciak/ecs-rogal-sub000/pkg/game/devtools"
	"github.com/kosciak/ecs-rogal-sub000/pkg/game/entities"
	"github.com/kosciak/ecs-rogal-sub000/pkg/game/generator"
	"github.com/kosciak/ecs-rogal-sub000/pkg/game/setup"
)

// Rows kept free below the map for the level summary
const summaryRows = 3

type options struct {
	configPath  string
	preset      string
	seed        int64
	levelID     int64
	width       int
	height      int
	depth       int
	levels      int
	yamlDir     string
	dumpDir     string
	colored     bool
	fit         bool
	lang        string
	listPresets bool
}

func parseFlags() (options, map[string]bool) {
	var opts options
	flag.StringVar(&opts.configPath, "config", "dungeon.yaml", "path to the YAML config file")
	flag.StringVar(&opts.preset, "preset", "", "generator preset (see -presets)")
	flag.Int64Var(&opts.seed, "seed", 0, "generator seed (default: config seed, or time based when that is 0)")
	flag.Int64Var(&opts.levelID, "id", 0, "regenerate the single level with this id")
	flag.IntVar(&opts.width, "width", 0, "level width in cells")
	flag.IntVar(&opts.height, "height", 0, "level height in cells")
	flag.IntVar(&opts.depth, "depth", 0, "depth of the first level")
	flag.IntVar(&opts.levels, "levels", 1, "number of consecutive levels to generate")
	flag.StringVar(&opts.yamlDir, "yaml", "", "directory to export each level as YAML into")
	flag.StringVar(&opts.dumpDir, "dump", "", "directory to write a debug dump (map.txt) of the last level into")
	flag.BoolVar(&opts.colored, "color", false, "print a colored preview")
	flag.BoolVar(&opts.fit, "fit", false, "shrink the level to fit the terminal")
	flag.StringVar(&opts.lang, "lang", "", "language of legend and messages (reads locales/<lang>)")
	flag.BoolVar(&opts.listPresets, "presets", false, "list presets and exit")
	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return opts, set
}

func main() {
	opts, set := parseFlags()

	if opts.lang != "" {
		gotext.Configure("locales", opts.lang, "default")
	}

	if opts.listPresets {
		for _, name := range config.Presets() {
			fmt.Printf("%-8s %s\n", name, config.DescribePreset(name))
		}
		return
	}

	cfg, err := config.Load(opts.configPath, opts.preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	if err := logger.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(2)
	}

	applyFlags(&cfg.Generator, opts, set)

	if err := run(cfg.Generator, opts); err != nil {
		logger.Error("generation failed", "error", err)
		if errors.Is(err, generator.ErrConnectivityRepairExhausted) {
			fmt.Fprintln(os.Stderr, gotext.Get("Could not connect every room; try another seed."))
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// applyFlags lets explicitly set flags override the config file
func applyFlags(g *config.GeneratorConfig, opts options, set map[string]bool) {
	switch {
	case set["seed"]:
		g.Seed = opts.seed
	case g.Seed == 0:
		g.Seed = time.Now().UnixNano()
	}
	if set["width"] {
		g.Width = opts.width
	}
	if set["height"] {
		g.Height = opts.height
	}
	if set["depth"] {
		g.Depth = opts.depth
	}
	if opts.fit {
		g.Width, g.Height = terminal.FitLevel(g.Width, g.Height, summaryRows)
	}
}

func run(g config.GeneratorConfig, opts options) error {
	store := entities.NewStore()
	spawner, err := setup.NewSpawner(store, g.Spawn)
	if err != nil {
		return err
	}
	levels, err := generator.New(g.Seed, g.LevelConfig(), g.Terrain, spawner)
	if err != nil {
		return err
	}

	floor, err := g.Terrain.Terrain(world.TerrainFloor)
	if err != nil {
		return err
	}

	player := entities.NewPlayer(gotext.Get("player"))
	count := max(opts.levels, 1)
	if opts.levelID != 0 {
		count = 1
	}

	var level *generator.Level
	for i := 0; i < count; i++ {
		depth := g.Depth + i
		if opts.levelID != 0 {
			level, err = levels.GenerateWithID(opts.levelID, depth, player)
		} else {
			level, err = levels.Generate(depth, player)
		}
		if err != nil {
			return err
		}
		if err := setup.VerifyLevel(level, floor, store); err != nil {
			return fmt.Errorf("level %d failed verification: %w", level.ID, err)
		}

		if opts.colored {
			fmt.Print(devtools.Preview(level, g.Terrain, store))
		} else {
			for _, line := range devtools.MapLines(level, g.Terrain, store) {
				fmt.Println(line)
			}
		}
		fmt.Printf("%s: seed=%d id=%d depth=%d rooms=%d doors=%d monsters=%d (%s)\n\n",
			gotext.Get("level"), g.Seed, level.ID, level.Depth, len(level.Rooms),
			len(store.OfKind(entities.KindDoor)), len(store.OfKind(entities.KindMonster)), levels.Name())

		if opts.yamlDir != "" {
			path := filepath.Join(opts.yamlDir, fmt.Sprintf("level-%d.yaml", level.ID))
			if err := devtools.WriteLevelYAMLFile(path, devtools.NewLevelYAML(level, g.Terrain, store)); err != nil {
				return err
			}
			logger.Info("level exported", "path", path)
		}
	}

	if opts.dumpDir != "" && level != nil {
		path, err := devtools.DumpLevelToFile(opts.dumpDir, level, g.Terrain, store)
		if err != nil {
			return err
		}
		fmt.Println(gotext.Get("dump written to"), path)
	}
	return nil
}
