package extract

import (
	"bytes"

	"github.com/mogaika/jak_level_extractor/texture"
	"github.com/mogaika/jak_level_extractor/tfrag3"
)

// AddAllTexturesFromLevel copies every pool texture registered for the
// level into the output record. The output's texture list must still be
// empty; a level name absent from the pool index adds nothing.
func AddAllTexturesFromLevel(lev *tfrag3.Level, levelName string, pool *texture.Pool) error {
	if len(lev.Textures) != 0 {
		return invariantf("Texture list of %q is already populated", levelName)
	}

	ids, ex := pool.TextureIDsPerLevel[levelName]
	if !ex {
		return nil
	}
	for _, id := range ids {
		tex, ex := pool.Textures[id]
		if !ex {
			return invariantf("Level %q references texture 0x%x missing from the pool", levelName, id)
		}
		tpageName := pool.TPageNames[tex.Page]
		lev.Textures = append(lev.Textures, tfrag3.Texture{
			ComboID:        id,
			W:              tex.W,
			H:              tex.H,
			DebugTpageName: tpageName,
			DebugName:      tpageName + tex.Name,
			Data:           tex.RGBABytes,
			LoadToPool:     true,
		})
	}
	return nil
}

// ConfirmTexturesIdentical verifies that any two pool textures sharing a
// logical name (page name + texture name) hold byte-identical pixels.
// Two different images collapsed to one name means the pool is corrupt.
func ConfirmTexturesIdentical(pool *texture.Pool) error {
	seen := make(map[string][]byte)
	for _, id := range pool.SortedIDs() {
		tex := pool.Textures[id]
		name := pool.TPageNames[tex.Page] + tex.Name
		if prev, ex := seen[name]; ex {
			if !bytes.Equal(prev, tex.RGBABytes) {
				return invariantf("BAD duplicate: %s %d vs %d", name, len(tex.RGBABytes), len(prev))
			}
		} else {
			seen[name] = tex.RGBABytes
		}
	}
	return nil
}
