// Package tfrag extracts terrain fragment trees.
package tfrag

import (
	"github.com/pkg/errors"

	"github.com/mogaika/jak_level_extractor/config"
	"github.com/mogaika/jak_level_extractor/extractors/common"
	"github.com/mogaika/jak_level_extractor/leveltools"
	"github.com/mogaika/jak_level_extractor/texture"
	"github.com/mogaika/jak_level_extractor/tfrag3"
)

func Extract(tree *leveltools.DrawableTreeTfrag,
	name string,
	remaps []leveltools.TextureRemap,
	pool *texture.Pool,
	expectedMissing []config.TextureRef,
	out *tfrag3.Level,
	atestDisable bool) error {

	draws, err := common.BuildDraws(name, tree.Fragments, remaps, pool, expectedMissing)
	if err != nil {
		return errors.Wrapf(err, "Unable to extract tfrag tree %q", name)
	}

	out.TfragTrees = append(out.TfragTrees, tfrag3.TfragTree{
		Name:         name,
		Kind:         uint8(tree.Kind),
		AtestDisable: atestDisable,
		Draws:        draws,
	})
	return nil
}
