// Package texture holds the shared texture pool built by the texture
// unpacker. One pool instance is shared read-only across every level
// processed in a run.
package texture

import (
	"sort"
)

type Texture struct {
	Page      uint32
	Name      string
	W, H      uint32
	RGBABytes []byte
}

type Pool struct {
	// Textures maps the combined texture id ((tpage << 16) | index) to
	// its decoded metadata and pixels.
	Textures map[uint32]*Texture

	// TextureIDsPerLevel lists which textures each level references.
	TextureIDsPerLevel map[string][]uint32

	// TPageNames maps a texture page id to its human readable name.
	TPageNames map[uint32]string
}

func NewPool() *Pool {
	return &Pool{
		Textures:           make(map[uint32]*Texture),
		TextureIDsPerLevel: make(map[string][]uint32),
		TPageNames:         make(map[uint32]string),
	}
}

func (p *Pool) Empty() bool {
	return len(p.Textures) == 0
}

// SortedIDs returns every texture id in ascending order.
func (p *Pool) SortedIDs() []uint32 {
	ids := make([]uint32, 0, len(p.Textures))
	for id := range p.Textures {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
