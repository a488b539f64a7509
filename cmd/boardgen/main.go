package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gravitas-games/hexboard/internal/config"
	"github.com/gravitas-games/hexboard/internal/gamemap"
	"github.com/gravitas-games/hexboard/pkg/hexcore/hex"
)

func main() {
	log.Println("Starting board generator...")

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/board.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("Configuration loaded from %s", configPath)

	layout, err := cfg.Layout()
	if err != nil {
		log.Fatalf("Invalid layout: %v", err)
	}

	grid, report, err := gamemap.Assemble(layout, gamemap.WithSeed(*cfg.Board.Seed))
	if err != nil {
		log.Fatalf("Failed to assemble board: %v", err)
	}

	for _, f := range report.Families {
		log.Printf("Family %s: placed=%d failed=%d", f.Name, f.Placed, f.Failed)
	}
	log.Printf("Farthest water hex is %d steps from land", report.MaxDistance)

	fmt.Print(renderDistances(grid))
}

// renderDistances draws one text row per board row: '#' for land, the
// distance digit for water ('+' past 9), and a blank off the board.
func renderDistances(g *gamemap.Grid) string {
	coords := g.ValidCoordinates()
	if len(coords) == 0 {
		return ""
	}
	minX, maxX := coords[0].X, coords[0].X
	minY, maxY := coords[0].Y, coords[0].Y
	for _, c := range coords {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}

	var b strings.Builder
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			c := hex.Coord{X: x, Y: y}
			switch {
			case !g.IsValid(c):
				b.WriteByte(' ')
			case g.IsOccupied(c):
				b.WriteByte('#')
			default:
				d, err := g.DistanceFromLand(c)
				switch {
				case err != nil:
					b.WriteByte('?')
				case d > 9:
					b.WriteByte('+')
				default:
					b.WriteByte(byte('0' + d))
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
