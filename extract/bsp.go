package extract

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/mogaika/jak_level_extractor/config"
	"github.com/mogaika/jak_level_extractor/extractors/collide"
	"github.com/mogaika/jak_level_extractor/extractors/shrub"
	"github.com/mogaika/jak_level_extractor/extractors/tfrag"
	"github.com/mogaika/jak_level_extractor/extractors/tie"
	"github.com/mogaika/jak_level_extractor/leveltools"
	"github.com/mogaika/jak_level_extractor/objfiles"
	"github.com/mogaika/jak_level_extractor/texture"
	"github.com/mogaika/jak_level_extractor/tfrag3"
)

// BSP_RECORD_SUFFIX marks the object holding a level's partition root.
const BSP_RECORD_SUFFIX = "-vis"

// ART_GROUP_SUFFIX marks art group objects.
const ART_GROUP_SUFFIX = "-ag"

// GetBspFile finds the partition root record of a DGO. A missing root is
// not an error (the caller skips the level); two roots in one DGO is.
// Some special levels store the root as the last record under the DGO's
// own lower-cased base name instead of the dedicated suffix.
func GetBspFile(records []objfiles.ObjectFileRecord, dgoName string) (*objfiles.ObjectFileRecord, error) {
	var result *objfiles.ObjectFileRecord
	for iRec := range records {
		if strings.HasSuffix(records[iRec].Name, BSP_RECORD_SUFFIX) {
			if result != nil {
				return nil, invariantf("DGO %q has more than one partition root (%q and %q)",
					dgoName, result.Name, records[iRec].Name)
			}
			result = &records[iRec]
		}
	}

	if result == nil {
		if strings.HasSuffix(dgoName, ".DGO") || strings.HasSuffix(dgoName, ".CGO") {
			expectedName := strings.ToLower(dgoName[:len(dgoName)-len(".DGO")])
			if len(records) != 0 && expectedName == records[len(records)-1].Name {
				return &records[len(records)-1], nil
			}
		}
	}
	return result, nil
}

// IsValidBsp checks that an object is structurally a partition root:
// one segment whose first word is a type pointer naming bsp-header.
func IsValidBsp(file *objfiles.LinkedObjectFile) bool {
	if len(file.Segments) != 1 {
		log.Errorf("Got %d segments, but expected 1", len(file.Segments))
		return false
	}
	if len(file.Segments[0]) == 0 {
		log.Errorf("Expected a non-empty segment")
		return false
	}

	firstWord := file.Segments[0][0]
	if firstWord.Kind != objfiles.TypePointer {
		log.Errorf("Expected the first word to be a type pointer, but it was %v", firstWord.Kind)
		return false
	}

	if firstWord.SymbolName() != leveltools.BSP_HEADER_TYPE {
		log.Errorf("Expected to get a %s, but got %q instead", leveltools.BSP_HEADER_TYPE, firstWord.SymbolName())
		return false
	}

	return true
}

// ExtractBspFromLevel locates, validates and dispatches a level's
// partition root, filling levelData in place. Returns the root's texture
// remap table for reuse by art group extraction.
func ExtractBspFromLevel(db *objfiles.ObjectFileDB,
	pool *texture.Pool,
	dgoName string,
	hacks *config.DecompileHacks,
	extractCollision bool,
	levelData *tfrag3.Level) ([]leveltools.TextureRemap, error) {

	bspRec, err := GetBspFile(db.ObjFilesByDgo[dgoName], dgoName)
	if err != nil {
		return nil, err
	}
	if bspRec == nil {
		log.Warnf("Skipping extract for %s because the BSP file was not found", dgoName)
		return nil, nil
	}
	levelName := strings.TrimSuffix(bspRec.Name, BSP_RECORD_SUFFIX)

	log.Infof("Processing level %s (%s)", dgoName, levelName)
	bspFile := db.LookupRecord(*bspRec)
	if !IsValidBsp(bspFile) {
		return nil, invariantf("Object %q of %q is not a valid partition root", bspRec.Name, dgoName)
	}

	var bspHeader leveltools.BspHeader
	if err := bspHeader.ReadFromFile(bspFile, db.Version); err != nil {
		return nil, invariantf("Unable to decode partition root of %q: %v", dgoName, err)
	}
	if log.IsLevelEnabled(log.DebugLevel) {
		log.Debugf("bsp header of %s:\n%s", dgoName, bspHeader.Dump())
	}

	var allTies []*leveltools.DrawableTreeInstanceTie
	for _, drawTree := range bspHeader.DrawableTreeArray {
		if tieTree, ok := drawTree.(*leveltools.DrawableTreeInstanceTie); ok {
			allTies = append(allTies, tieTree)
		}
	}

	expectedMissing := hacks.MissingTexturesFor(levelName)

	gotCollide := false
	treeIndex := 0
	for _, drawTree := range bspHeader.DrawableTreeArray {
		switch tree := drawTree.(type) {
		case *leveltools.DrawableTreeTfrag:
			atestDisable := false
			if db.Version == config.GameJak2 {
				if len(bspHeader.TextureFlags) > 0 && bspHeader.TextureFlags[0]&1 != 0 {
					atestDisable = true
				}
			}
			err = tfrag.Extract(tree, fmt.Sprintf("%s-%d", dgoName, treeIndex),
				bspHeader.TextureRemapTable, pool, expectedMissing, levelData, atestDisable)
			treeIndex++
		case *leveltools.DrawableTreeInstanceTie:
			err = tie.Extract(tree, fmt.Sprintf("%s-%d-tie", dgoName, treeIndex),
				bspHeader.TextureRemapTable, pool, levelData, db.Version)
			treeIndex++
		case *leveltools.DrawableTreeInstanceShrub:
			err = shrub.Extract(tree, fmt.Sprintf("%s-%d-shrub", dgoName, treeIndex),
				bspHeader.TextureRemapTable, pool, expectedMissing, levelData, db.Version)
			treeIndex++
		case *leveltools.DrawableTreeCollideFragment:
			if !extractCollision {
				log.Infof("  unsupported tree %s", drawTree.MyType())
				break
			}
			if gotCollide {
				return nil, invariantf("Level %q has more than one collide fragment tree", levelName)
			}
			gotCollide = true
			err = collide.Extract(tree, allTies, fmt.Sprintf("%s-%d-collide", dgoName, treeIndex), levelData)
			treeIndex++
		case *leveltools.DrawableTreeUnknown:
			log.Infof("  unsupported tree %s", tree.TypeName)
		}
		if err != nil {
			return nil, err
		}
	}
	levelData.LevelName = levelName

	return bspHeader.TextureRemapTable, nil
}
