// Package tfrag3 defines the packaged level record written out as the
// ".fr3" artifact consumed by the renderer loader.
package tfrag3

// Texture is one pool texture copied into a level.
type Texture struct {
	ComboID        uint32
	W, H           uint32
	DebugName      string
	DebugTpageName string
	Data           []byte
	LoadToPool     bool
}

// Draw groups one remapped texture with the vertices rendered with it.
type Draw struct {
	TextureID uint32
	Vertices  [][3]float32
}

type TfragTree struct {
	Name         string
	Kind         uint8
	AtestDisable bool
	Draws        []Draw
}

type TieTree struct {
	Name  string
	Draws []Draw
}

type ShrubTree struct {
	Name  string
	Draws []Draw
}

type CollideFragments struct {
	Name     string
	Vertices [][3]float32
	Pats     []uint32
}

type MercModel struct {
	Name  string
	Draws []Draw
}

// Level is the assembled output for one level, built incrementally by
// the extractors and serialized once.
type Level struct {
	LevelName string
	Textures  []Texture

	TfragTrees       []TfragTree
	TieTrees         []TieTree
	ShrubTrees       []ShrubTree
	CollideFragments []CollideFragments
	MercModels       []MercModel
}
