package leveltools

import (
	"github.com/pkg/errors"

	"github.com/mogaika/jak_level_extractor/objfiles"
)

const ART_GROUP_TYPE = "art-group"

// ArtModel is one articulated model inside an art group.
type ArtModel struct {
	Name      string
	Fragments []GeomFragment
}

// ArtGroup is the decoded form of an "-ag" object: a list of articulated
// models unrelated to the partition tree.
type ArtGroup struct {
	Models []ArtModel
}

// ReadFromFile decodes an art group object. Layout of the first segment:
// an art-group type word, a model count, then per model a symbol word
// naming it followed by its fragments.
func (ag *ArtGroup) ReadFromFile(file *objfiles.LinkedObjectFile) error {
	if len(file.Segments) == 0 {
		return errors.New("Art group object has no segments")
	}
	r := &wordReader{words: file.Segments[0]}

	typeName, err := r.typePtr()
	if err != nil {
		return err
	}
	if typeName != ART_GROUP_TYPE {
		return errors.Errorf("Expected an %s, got %q", ART_GROUP_TYPE, typeName)
	}

	modelCount, err := r.u32()
	if err != nil {
		return err
	}
	ag.Models = make([]ArtModel, 0, modelCount)
	for iModel := 0; iModel < int(modelCount); iModel++ {
		nameWord, err := r.next()
		if err != nil {
			return err
		}
		if nameWord.Kind != objfiles.SymbolPointer {
			return errors.Errorf("Expected a symbol naming model %d, got %v", iModel, nameWord.Kind)
		}
		frags, err := readFragments(r)
		if err != nil {
			return errors.Wrapf(err, "Unable to decode model %q", nameWord.SymbolName())
		}
		ag.Models = append(ag.Models, ArtModel{
			Name:      nameWord.SymbolName(),
			Fragments: frags,
		})
	}
	return nil
}
