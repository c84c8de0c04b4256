// Package tie extracts instanced static mesh trees.
package tie

import (
	"github.com/pkg/errors"

	"github.com/mogaika/jak_level_extractor/config"
	"github.com/mogaika/jak_level_extractor/extractors/common"
	"github.com/mogaika/jak_level_extractor/leveltools"
	"github.com/mogaika/jak_level_extractor/texture"
	"github.com/mogaika/jak_level_extractor/tfrag3"
)

func Extract(tree *leveltools.DrawableTreeInstanceTie,
	name string,
	remaps []leveltools.TextureRemap,
	pool *texture.Pool,
	out *tfrag3.Level,
	version config.GameVersion) error {

	draws, err := common.BuildDraws(name, tree.Fragments, remaps, pool, nil)
	if err != nil {
		return errors.Wrapf(err, "Unable to extract tie tree %q", name)
	}

	out.TieTrees = append(out.TieTrees, tfrag3.TieTree{
		Name:  name,
		Draws: draws,
	})
	return nil
}
