package main

import (
	"testing"

	"github.com/kosciak/ecs-rogal-sub000/pkg/game/config"
)

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		seed     int64
		opts     options
		set      map[string]bool
		wantSeed int64
		wantW    int
	}{
		{"config seed kept", 17, options{seed: 5}, map[string]bool{}, 17, config.DefaultWidth},
		{"seed flag wins", 17, options{seed: 5}, map[string]bool{"seed": true}, 5, config.DefaultWidth},
		{"width flag", 17, options{width: 60}, map[string]bool{"width": true}, 17, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := config.DefaultConfig().Generator
			g.Seed = tt.seed
			applyFlags(&g, tt.opts, tt.set)
			if g.Seed != tt.wantSeed {
				t.Errorf("Seed = %d, want %d", g.Seed, tt.wantSeed)
			}
			if g.Width != tt.wantW {
				t.Errorf("Width = %d, want %d", g.Width, tt.wantW)
			}
		})
	}
}

func TestApplyFlagsTimeSeed(t *testing.T) {
	g := config.DefaultConfig().Generator
	g.Seed = 0
	applyFlags(&g, options{}, map[string]bool{})
	if g.Seed == 0 {
		t.Error("zero seed was not replaced")
	}
}
