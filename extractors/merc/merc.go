// Package merc extracts articulated models from art group objects.
package merc

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/mogaika/jak_level_extractor/config"
	"github.com/mogaika/jak_level_extractor/extractors/common"
	"github.com/mogaika/jak_level_extractor/leveltools"
	"github.com/mogaika/jak_level_extractor/objfiles"
	"github.com/mogaika/jak_level_extractor/texture"
	"github.com/mogaika/jak_level_extractor/tfrag3"
)

func Extract(agFile *objfiles.LinkedObjectFile,
	agName string,
	pool *texture.Pool,
	remaps []leveltools.TextureRemap,
	out *tfrag3.Level,
	version config.GameVersion) error {

	var ag leveltools.ArtGroup
	if err := ag.ReadFromFile(agFile); err != nil {
		return errors.Wrapf(err, "Unable to decode art group %q", agName)
	}

	for _, model := range ag.Models {
		draws, err := common.BuildDraws(
			fmt.Sprintf("%s:%s", agName, model.Name), model.Fragments, remaps, pool, nil)
		if err != nil {
			return errors.Wrapf(err, "Unable to extract model %q of art group %q", model.Name, agName)
		}
		out.MercModels = append(out.MercModels, tfrag3.MercModel{
			Name:  model.Name,
			Draws: draws,
		})
	}
	return nil
}
