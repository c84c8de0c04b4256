package tfrag3

import (
	"sort"

	log "github.com/sirupsen/logrus"
)

func drawsBytes(draws []Draw) int {
	total := 0
	for _, draw := range draws {
		total += 8 + len(draw.Vertices)*12
	}
	return total
}

// PrintMemoryUsage logs how the serialized size splits across asset
// categories, largest first.
func PrintMemoryUsage(l *Level, serializedSize int) {
	categories := []struct {
		Name  string
		Bytes int
	}{
		{"textures", 0},
		{"tfrag", 0},
		{"tie", 0},
		{"shrub", 0},
		{"collide", 0},
		{"merc", 0},
	}

	for _, tex := range l.Textures {
		categories[0].Bytes += len(tex.Data)
	}
	for _, tree := range l.TfragTrees {
		categories[1].Bytes += drawsBytes(tree.Draws)
	}
	for _, tree := range l.TieTrees {
		categories[2].Bytes += drawsBytes(tree.Draws)
	}
	for _, tree := range l.ShrubTrees {
		categories[3].Bytes += drawsBytes(tree.Draws)
	}
	for _, frags := range l.CollideFragments {
		categories[4].Bytes += len(frags.Vertices)*12 + len(frags.Pats)*4
	}
	for _, model := range l.MercModels {
		categories[5].Bytes += drawsBytes(model.Draws)
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Bytes > categories[j].Bytes
	})

	for _, cat := range categories {
		if cat.Bytes == 0 {
			continue
		}
		log.Infof("  %-10s %9d bytes (%5.1f%%)", cat.Name, cat.Bytes,
			100.0*float64(cat.Bytes)/float64(serializedSize))
	}
}
