package extract

import (
	"strings"

	"github.com/mogaika/jak_level_extractor/extractors/merc"
	"github.com/mogaika/jak_level_extractor/leveltools"
	"github.com/mogaika/jak_level_extractor/objfiles"
	"github.com/mogaika/jak_level_extractor/texture"
	"github.com/mogaika/jak_level_extractor/tfrag3"
)

// ExtractArtGroupsFromLevel routes every "-ag" object of a DGO to the
// merc extractor. The remap table comes from the level's partition root
// and is empty for the textures-only common level.
func ExtractArtGroupsFromLevel(db *objfiles.ObjectFileDB,
	pool *texture.Pool,
	remaps []leveltools.TextureRemap,
	dgoName string,
	levelData *tfrag3.Level) error {

	for _, rec := range db.ObjFilesByDgo[dgoName] {
		if strings.HasSuffix(rec.Name, ART_GROUP_SUFFIX) {
			agFile := db.LookupRecord(rec)
			if err := merc.Extract(agFile, rec.Name, pool, remaps, levelData, db.Version); err != nil {
				return err
			}
		}
	}
	return nil
}
