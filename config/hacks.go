package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// TextureRef identifies a texture by its page and index inside the page.
// Combined id form is (tpage << 16) | index.
type TextureRef struct {
	TPage uint32 `yaml:"tpage"`
	Index uint32 `yaml:"index"`
}

func (r TextureRef) Combo() uint32 {
	return r.TPage<<16 | r.Index
}

// DecompileHacks carries per-level overrides for known-bad assets.
type DecompileHacks struct {
	MissingTexturesByLevel map[string][]TextureRef `yaml:"missing_textures_by_level"`
}

func (h *DecompileHacks) MissingTexturesFor(levelName string) []TextureRef {
	if h == nil {
		return nil
	}
	return h.MissingTexturesByLevel[levelName]
}

func LoadDecompileHacks(fpath string) (*DecompileHacks, error) {
	data, err := os.ReadFile(fpath)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to read hacks file %q", fpath)
	}

	var hacks DecompileHacks
	if err := yaml.Unmarshal(data, &hacks); err != nil {
		return nil, errors.Wrapf(err, "Unable to parse hacks file %q", fpath)
	}
	return &hacks, nil
}
