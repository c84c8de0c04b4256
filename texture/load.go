package texture

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const POOL_INDEX_NAME = "texture_pool.yaml"

type poolIndexTexture struct {
	ID    uint32 `yaml:"id"`
	Page  uint32 `yaml:"page"`
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
}

type poolIndex struct {
	Pages    map[uint32]string   `yaml:"pages"`
	Textures []poolIndexTexture  `yaml:"textures"`
	Levels   map[string][]uint32 `yaml:"levels"`
}

func decodeRGBA(pngBytes []byte) (uint32, uint32, []byte, error) {
	img, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return 0, 0, nil, err
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return uint32(bounds.Dx()), uint32(bounds.Dy()), rgba.Pix, nil
}

// LoadPool reads the texture unpacker's output: an index yaml next to one
// png per texture.
func LoadPool(dir string) (*Pool, error) {
	indexData, err := os.ReadFile(filepath.Join(dir, POOL_INDEX_NAME))
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to read texture pool index in %q", dir)
	}

	var index poolIndex
	if err := yaml.Unmarshal(indexData, &index); err != nil {
		return nil, errors.Wrap(err, "Unable to parse texture pool index")
	}

	pool := NewPool()
	for id, name := range index.Pages {
		pool.TPageNames[id] = name
	}
	for level, ids := range index.Levels {
		pool.TextureIDsPerLevel[level] = ids
	}

	for _, entry := range index.Textures {
		pngBytes, err := os.ReadFile(filepath.Join(dir, entry.Image))
		if err != nil {
			return nil, errors.Wrapf(err, "Unable to read texture image %q", entry.Image)
		}
		w, h, pix, err := decodeRGBA(pngBytes)
		if err != nil {
			return nil, errors.Wrapf(err, "Unable to decode texture image %q", entry.Image)
		}
		if _, ex := pool.TPageNames[entry.Page]; !ex {
			return nil, errors.Errorf("Texture %q references unknown page %d", entry.Name, entry.Page)
		}
		pool.Textures[entry.ID] = &Texture{
			Page:      entry.Page,
			Name:      entry.Name,
			W:         w,
			H:         h,
			RGBABytes: pix,
		}
	}
	return pool, nil
}
