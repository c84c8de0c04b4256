package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/mogaika/jak_level_extractor/config"
	"github.com/mogaika/jak_level_extractor/fr3gltf"
	"github.com/mogaika/jak_level_extractor/objfiles"
	"github.com/mogaika/jak_level_extractor/texture"
	"github.com/mogaika/jak_level_extractor/tfrag3"
	"github.com/mogaika/jak_level_extractor/utils"
)

const FR3_EXTENSION = ".fr3"

func dgoBaseName(dgoName string) string {
	if ext := filepath.Ext(dgoName); ext != "" {
		return strings.TrimSuffix(dgoName, ext)
	}
	return dgoName
}

// writeLevelArtifact serializes, compresses and persists one level,
// logging the size reduction achieved.
func writeLevelArtifact(levelData *tfrag3.Level, dgoName, outputFolder string) error {
	ser := tfrag3.NewSerializer()
	levelData.Serialize(ser)
	serialized := ser.Result()
	compressed := utils.CompressZstd(serialized)

	log.Infof("stats for %s", dgoName)
	tfrag3.PrintMemoryUsage(levelData, len(serialized))
	log.Infof("compressed: %d -> %d (%.2f%%)", len(serialized), len(compressed),
		100.0*float64(len(compressed))/float64(len(serialized)))

	fpath := filepath.Join(outputFolder, dgoBaseName(dgoName)+FR3_EXTENSION)
	return utils.WriteBinaryFile(fpath, compressed)
}

// ExtractCommon packages the shared pseudo-level (GAME.CGO). It has no
// partition root: only textures and art groups.
func ExtractCommon(db *objfiles.ObjectFileDB,
	pool *texture.Pool,
	dgoName string,
	dumpLevels bool,
	outputFolder string,
	glbFolder string) error {

	if !db.HasDgo(dgoName) {
		log.Warnf("Skipping common extract for %s because the DGO was not part of the input", dgoName)
		return nil
	}

	if pool.Empty() {
		log.Warnf("Skipping common extract because there were no textures in the input")
		return nil
	}

	if err := ConfirmTexturesIdentical(pool); err != nil {
		return err
	}

	var levelData tfrag3.Level
	if err := AddAllTexturesFromLevel(&levelData, dgoName, pool); err != nil {
		return err
	}
	if err := ExtractArtGroupsFromLevel(db, pool, nil, dgoName, &levelData); err != nil {
		return err
	}

	if err := writeLevelArtifact(&levelData, dgoName, outputFolder); err != nil {
		return err
	}

	if dumpLevels {
		return fr3gltf.SaveLevelForegroundAsGLTF(&levelData, filepath.Join(glbFolder, "common.glb"))
	}
	return nil
}

// ExtractFromLevel packages one full BSP-bearing level.
func ExtractFromLevel(db *objfiles.ObjectFileDB,
	pool *texture.Pool,
	dgoName string,
	hacks *config.DecompileHacks,
	dumpLevel bool,
	extractCollision bool,
	outputFolder string,
	glbFolder string) error {

	if !db.HasDgo(dgoName) {
		log.Warnf("Skipping extract for %s because the DGO was not part of the input", dgoName)
		return nil
	}
	if pool.Empty() {
		log.Warnf("Skipping extract for %s because there were no textures in the input", dgoName)
		return nil
	}
	var levelData tfrag3.Level
	if err := AddAllTexturesFromLevel(&levelData, dgoName, pool); err != nil {
		return err
	}

	texRemap, err := ExtractBspFromLevel(db, pool, dgoName, hacks, extractCollision, &levelData)
	if err != nil {
		return err
	}
	if err := ExtractArtGroupsFromLevel(db, pool, texRemap, dgoName, &levelData); err != nil {
		return err
	}

	// Levels other than snowy borrow SNO.DGO's art groups for flutflut.
	// The guard never passes: a DGO absent from the input already
	// returned at the top of this function.
	if dgoName != "SNO.DGO" && !db.HasDgo(dgoName) {
		log.Warnf("Skipping adding %s because we are in Jak 2 mode", dgoName)
		const localDgoName = "SNO.DGO"
		remaps, err := ExtractBspFromLevel(db, pool, localDgoName, hacks, extractCollision, &levelData)
		if err != nil {
			return err
		}
		return ExtractArtGroupsFromLevel(db, pool, remaps, localDgoName, &levelData)
	}

	// Same for misty assets for the racer. Never passes either.
	if dgoName != "MIS.DGO" && !db.HasDgo(dgoName) {
		log.Warnf("Skipping adding %s because we are in Jak 2 mode", dgoName)
		const localDgoName = "MIS.DGO"
		remaps, err := ExtractBspFromLevel(db, pool, localDgoName, hacks, extractCollision, &levelData)
		if err != nil {
			return err
		}
		return ExtractArtGroupsFromLevel(db, pool, remaps, localDgoName, &levelData)
	}

	if err := writeLevelArtifact(&levelData, dgoName, outputFolder); err != nil {
		return err
	}

	if dumpLevel {
		backPath := filepath.Join(glbFolder, fmt.Sprintf("%s_background.glb", levelData.LevelName))
		if err := fr3gltf.SaveLevelBackgroundAsGLTF(&levelData, backPath); err != nil {
			return err
		}
		forePath := filepath.Join(glbFolder, fmt.Sprintf("%s_foreground.glb", levelData.LevelName))
		if err := fr3gltf.SaveLevelForegroundAsGLTF(&levelData, forePath); err != nil {
			return err
		}
	}
	return nil
}
