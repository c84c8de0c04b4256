// Package common holds draw assembly shared by every geometry extractor.
package common

import (
	"sort"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/mogaika/jak_level_extractor/config"
	"github.com/mogaika/jak_level_extractor/leveltools"
	"github.com/mogaika/jak_level_extractor/texture"
	"github.com/mogaika/jak_level_extractor/tfrag3"
)

func isExpectedMissing(expected []config.TextureRef, id uint32) bool {
	for _, ref := range expected {
		if ref.Combo() == id {
			return true
		}
	}
	return false
}

// BuildDraws remaps every fragment's texture id, verifies the texture
// exists in the pool (unless listed as expected missing) and groups the
// vertices into per-texture draws, ordered by texture id.
func BuildDraws(name string,
	frags []leveltools.GeomFragment,
	remaps []leveltools.TextureRemap,
	pool *texture.Pool,
	expectedMissing []config.TextureRef) ([]tfrag3.Draw, error) {

	vertsByTexture := make(map[uint32][][3]float32)
	for _, frag := range frags {
		texID := leveltools.RemapTextureID(remaps, frag.TextureID)
		if _, ex := pool.Textures[texID]; !ex {
			if isExpectedMissing(expectedMissing, texID) {
				log.Debugf("%s: skipping draw with known missing texture 0x%x", name, texID)
				continue
			}
			return nil, errors.Errorf("%s references texture 0x%x missing from the pool", name, texID)
		}
		for _, vert := range frag.Vertices {
			vertsByTexture[texID] = append(vertsByTexture[texID], [3]float32{vert[0], vert[1], vert[2]})
		}
	}

	texIDs := make([]uint32, 0, len(vertsByTexture))
	for texID := range vertsByTexture {
		texIDs = append(texIDs, texID)
	}
	sort.Slice(texIDs, func(i, j int) bool { return texIDs[i] < texIDs[j] })

	draws := make([]tfrag3.Draw, 0, len(texIDs))
	for _, texID := range texIDs {
		draws = append(draws, tfrag3.Draw{
			TextureID: texID,
			Vertices:  vertsByTexture[texID],
		})
	}
	return draws, nil
}
