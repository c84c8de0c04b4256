// Package shrub extracts instanced foliage trees.
package shrub

import (
	"github.com/pkg/errors"

	"github.com/mogaika/jak_level_extractor/config"
	"github.com/mogaika/jak_level_extractor/extractors/common"
	"github.com/mogaika/jak_level_extractor/leveltools"
	"github.com/mogaika/jak_level_extractor/texture"
	"github.com/mogaika/jak_level_extractor/tfrag3"
)

func Extract(tree *leveltools.DrawableTreeInstanceShrub,
	name string,
	remaps []leveltools.TextureRemap,
	pool *texture.Pool,
	expectedMissing []config.TextureRef,
	out *tfrag3.Level,
	version config.GameVersion) error {

	draws, err := common.BuildDraws(name, tree.Fragments, remaps, pool, expectedMissing)
	if err != nil {
		return errors.Wrapf(err, "Unable to extract shrub tree %q", name)
	}

	out.ShrubTrees = append(out.ShrubTrees, tfrag3.ShrubTree{
		Name:  name,
		Draws: draws,
	})
	return nil
}
