package leveltools

import "github.com/go-gl/mathgl/mgl32"

// TfragKind names one of the terrain fragment tree flavors.
type TfragKind int

const (
	TfragNormal TfragKind = iota
	TfragTrans
	TfragTransAlt
	TfragDirt
	TfragWater
	TfragIce
	TfragLowres
	TfragLowresTrans
)

// tfragTreeKinds maps every recognized terrain tree type name to its kind.
var tfragTreeKinds = map[string]TfragKind{
	"drawable-tree-tfrag":              TfragNormal,
	"drawable-tree-trans-tfrag":        TfragTrans,
	"drawable-tree-tfrag-trans":        TfragTransAlt,
	"drawable-tree-dirt-tfrag":         TfragDirt,
	"drawable-tree-tfrag-water":        TfragWater,
	"drawable-tree-ice-tfrag":          TfragIce,
	"drawable-tree-lowres-tfrag":       TfragLowres,
	"drawable-tree-lowres-trans-tfrag": TfragLowresTrans,
}

// DrawableTree is one branch of the bsp header's forest. The variant set
// is closed: dispatch with a type switch over the concrete types below.
type DrawableTree interface {
	MyType() string
	isDrawableTree()
}

// GeomFragment is a draw unit inside a tree: one texture id (pre-remap)
// and its vertices.
type GeomFragment struct {
	TextureID uint32
	Vertices  []mgl32.Vec3
}

// CollideFace is one collision triangle plus its surface material word.
type CollideFace struct {
	Verts       [3]mgl32.Vec3
	PatMaterial uint32
}

type DrawableTreeTfrag struct {
	typeName  string
	Kind      TfragKind
	Fragments []GeomFragment
}

type DrawableTreeInstanceTie struct {
	Fragments []GeomFragment
}

type DrawableTreeInstanceShrub struct {
	Fragments []GeomFragment
}

type DrawableTreeCollideFragment struct {
	Faces []CollideFace
}

// DrawableTreeUnknown stands in for any tree type outside the recognized
// vocabulary. Carried so traversal order and indices stay intact.
type DrawableTreeUnknown struct {
	TypeName string
}

func (t *DrawableTreeTfrag) MyType() string           { return t.typeName }
func (t *DrawableTreeInstanceTie) MyType() string     { return "drawable-tree-instance-tie" }
func (t *DrawableTreeInstanceShrub) MyType() string   { return "drawable-tree-instance-shrub" }
func (t *DrawableTreeCollideFragment) MyType() string { return "drawable-tree-collide-fragment" }
func (t *DrawableTreeUnknown) MyType() string         { return t.TypeName }

func (t *DrawableTreeTfrag) isDrawableTree()           {}
func (t *DrawableTreeInstanceTie) isDrawableTree()     {}
func (t *DrawableTreeInstanceShrub) isDrawableTree()   {}
func (t *DrawableTreeCollideFragment) isDrawableTree() {}
func (t *DrawableTreeUnknown) isDrawableTree()         {}
