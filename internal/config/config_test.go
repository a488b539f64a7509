package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gravitas-games/hexboard/internal/gamemap"
)

const sampleYAML = `
board:
  width: 8
  height: 6
  seed: 3
tile_sets:
  - name: vale
    kind: cluster
    radius: 1
    count: 2
    policy: adjacent
  - name: crag
    kind: custom
    rotation: 1
    placements:
      - {name: a, x: 0, y: 0, border: true}
      - {name: b, x: 1, y: 0}
  - kind: single
    policy: island
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Board.Width != 8 || cfg.Board.Height != 6 || *cfg.Board.Seed != 3 {
		t.Fatalf("unexpected board %dx%d seed %d", cfg.Board.Width, cfg.Board.Height, *cfg.Board.Seed)
	}
	if len(cfg.TileSets) != 3 {
		t.Fatalf("expected 3 tile sets, got %d", len(cfg.TileSets))
	}
	if cfg.TileSets[1].Count != 1 || cfg.TileSets[2].Name != "set3" {
		t.Fatalf("defaults not applied: %+v", cfg.TileSets)
	}

	layout, err := cfg.Layout()
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if layout.Width != 8 || len(layout.Sets) != 3 {
		t.Fatalf("unexpected layout %+v", layout)
	}
	vale, crag, single := layout.Sets[0], layout.Sets[1], layout.Sets[2]
	if vale.Kind != gamemap.KindCluster || vale.Radius != 1 || vale.Policy != gamemap.PolicyForceAdjacent {
		t.Fatalf("unexpected vale set %+v", vale)
	}
	if crag.Kind != gamemap.KindCustom || len(crag.Placements) != 2 || crag.Rotation != 1 {
		t.Fatalf("unexpected crag set %+v", crag)
	}
	if !crag.Placements[0].Border || crag.Placements[1].Border || crag.Placements[1].OffsetX != 1 {
		t.Fatalf("unexpected crag placements %+v", crag.Placements)
	}
	if single.Kind != gamemap.KindSingle || single.Policy != gamemap.PolicyForceIsland {
		t.Fatalf("unexpected single set %+v", single)
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("tile_sets: []\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Board.Width != 12 || cfg.Board.Height != 10 || *cfg.Board.Seed != 1 {
		t.Fatalf("unexpected defaults %dx%d seed %d", cfg.Board.Width, cfg.Board.Height, *cfg.Board.Seed)
	}
}

func TestSeedZeroIsKept(t *testing.T) {
	cfg, err := Parse([]byte("board: {seed: 0}\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if *cfg.Board.Seed != 0 {
		t.Fatalf("explicit seed 0 replaced by %d", *cfg.Board.Seed)
	}

	t.Setenv("HEXBOARD_SEED", "0")
	cfg, err = Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if *cfg.Board.Seed != 0 {
		t.Fatalf("HEXBOARD_SEED=0 replaced by %d", *cfg.Board.Seed)
	}
}

func TestKindIgnoresCase(t *testing.T) {
	cfg, err := Parse([]byte("tile_sets: [{kind: ' Cluster ', radius: 1, policy: Adjacent}]\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	layout, err := cfg.Layout()
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if layout.Sets[0].Kind != gamemap.KindCluster || layout.Sets[0].Policy != gamemap.PolicyForceAdjacent {
		t.Fatalf("unexpected set %+v", layout.Sets[0])
	}
	if _, err := Parse([]byte("tile_sets: [{kind: CUSTOM}]\n")); err == nil {
		t.Fatalf("custom without placements must still be rejected")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HEXBOARD_WIDTH", "20")
	t.Setenv("HEXBOARD_SEED", "77")
	cfg, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Board.Width != 20 || *cfg.Board.Seed != 77 {
		t.Fatalf("environment not applied: width %d seed %d", cfg.Board.Width, *cfg.Board.Seed)
	}
	if cfg.Board.Height != 6 {
		t.Fatalf("unset variables must keep file values, got height %d", cfg.Board.Height)
	}
}

func TestEnvOverrideMalformed(t *testing.T) {
	t.Setenv("HEXBOARD_HEIGHT", "tall")
	if _, err := Parse([]byte(sampleYAML)); err == nil {
		t.Fatalf("expected error for malformed environment value")
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]string{
		"negative size":   "board: {width: -1, height: 4}\n",
		"unknown kind":    "tile_sets: [{kind: blob}]\n",
		"unknown policy":  "tile_sets: [{policy: coastal}]\n",
		"bad rotation":    "tile_sets: [{rotation: 6}]\n",
		"negative radius": "tile_sets: [{kind: cluster, radius: -2}]\n",
		"empty custom":    "tile_sets: [{kind: custom}]\n",
		"negative count":  "tile_sets: [{count: -1}]\n",
	}
	for name, doc := range cases {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "board.yaml")
	if err := os.WriteFile(p, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Board.Width != 8 {
		t.Fatalf("unexpected width %d", cfg.Board.Width)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := Parse([]byte("board: [")); err == nil {
		t.Fatalf("expected YAML syntax error")
	}
}
