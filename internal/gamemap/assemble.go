package gamemap

import (
	"fmt"
	"log"
)

// SetSpec describes one family of identical tile sets to place.
type SetSpec struct {
	Name       string
	Kind       Kind
	Radius     int         // KindCluster only
	Placements []Placement // KindCustom only
	Count      int
	Policy     Policy
	Rotation   int
}

// Layout is a complete board recipe.
type Layout struct {
	Width  int
	Height int
	Sets   []SetSpec
}

// FamilyResult counts placements for one SetSpec.
type FamilyResult struct {
	Name   string
	Placed int
	Failed int
}

// AssemblyReport summarises an Assemble run.
type AssemblyReport struct {
	Families    []FamilyResult
	Land        int
	Water       int
	WaterBodies int
	Lakes       int
	MaxDistance int
}

// NewTileSet builds one tile set from s, rotated to s.Rotation.
func (s SetSpec) NewTileSet(name string) (*TileSet, error) {
	var t *TileSet
	switch s.Kind {
	case KindSingle:
		t = NewSingle(name)
	case KindCluster:
		t = NewCluster(name, s.Radius)
	case KindCustom:
		if len(s.Placements) == 0 {
			return nil, fmt.Errorf("gamemap: custom tile set %q has no placements", s.Name)
		}
		t = NewCustom(name, s.Placements)
	default:
		return nil, fmt.Errorf("gamemap: unknown tile set kind %v", s.Kind)
	}
	for i := 0; i < ((s.Rotation%6)+6)%6; i++ {
		if err := t.Rotate(1); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Assemble builds the board shape, places every family in order, and
// computes the distance field and water bodies. A family member that
// cannot be placed is counted as failed; it is not an error.
func Assemble(layout Layout, opts ...Option) (*Grid, AssemblyReport, error) {
	log.Printf("Assembling %dx%d board with %d tile set families", layout.Width, layout.Height, len(layout.Sets))

	g := New(opts...)
	g.InitShape(layout.Width, layout.Height)

	var report AssemblyReport
	for _, spec := range layout.Sets {
		res := FamilyResult{Name: spec.Name}
		pool := NewCandidatePool(g.ValidCoordinates())
		for i := 0; i < spec.Count; i++ {
			name := spec.Name
			if spec.Count > 1 {
				name = fmt.Sprintf("%s%d", spec.Name, i+1)
			}
			t, err := spec.NewTileSet(name)
			if err != nil {
				return nil, report, err
			}
			if g.AddTileSet(t, pool, spec.Policy) {
				res.Placed++
				continue
			}
			res.Failed++
			log.Printf("No acceptable centre for %s (policy %s, %d candidates left)", name, spec.Policy, pool.Len())
		}
		log.Printf("Placed %d/%d of %s", res.Placed, spec.Count, spec.Name)
		report.Families = append(report.Families, res)
	}

	g.ComputeDistanceField()
	g.ComputeWaterBodies()

	lakes, err := g.Lakes()
	if err != nil {
		return nil, report, err
	}
	maxDist, err := g.MaxDistanceFromLand()
	if err != nil {
		return nil, report, err
	}
	report.Land = len(g.content)
	report.Water = len(g.valid) - len(g.content)
	report.WaterBodies = len(g.water)
	report.Lakes = len(lakes)
	report.MaxDistance = maxDist

	log.Printf("Board assembled: %d land, %d water in %d bodies (%d lakes)",
		report.Land, report.Water, report.WaterBodies, report.Lakes)
	return g, report, nil
}
