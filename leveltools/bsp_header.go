package leveltools

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/mogaika/jak_level_extractor/config"
	"github.com/mogaika/jak_level_extractor/objfiles"
	"github.com/mogaika/jak_level_extractor/utils"
)

// BSP_HEADER_TYPE is the symbol the linker tags partition roots with.
const BSP_HEADER_TYPE = "bsp-header"

// TextureRemap translates a texture id as stored in a drawable tree to
// an id valid in the packaged level.
type TextureRemap struct {
	OriginalID uint32
	NewID      uint32
}

// BspHeader is the decoded partition root of one level.
//
// Word layout of the single segment, after the leading bsp-header type
// word:
//
//	u32 remap count, then (original, new) id pairs
//	u32 texture flag count, then flag words (low 16 bits used)
//	u32 tree count, then per tree: a type word naming the variant,
//	    a payload word count, and the payload
type BspHeader struct {
	TextureRemapTable []TextureRemap
	TextureFlags      []uint16
	DrawableTreeArray []DrawableTree
}

// wordReader walks a segment's word sequence.
type wordReader struct {
	words []objfiles.LinkedWord
	pos   int
}

func (r *wordReader) next() (objfiles.LinkedWord, error) {
	if r.pos >= len(r.words) {
		return objfiles.LinkedWord{}, errors.Errorf("Unexpected end of segment at word %d", r.pos)
	}
	w := r.words[r.pos]
	r.pos++
	return w, nil
}

func (r *wordReader) u32() (uint32, error) {
	w, err := r.next()
	if err != nil {
		return 0, err
	}
	if w.Kind != objfiles.PlainData {
		return 0, errors.Errorf("Expected plain data at word %d, got %v", r.pos-1, w.Kind)
	}
	return w.Data, nil
}

func (r *wordReader) f32() (float32, error) {
	v, err := r.u32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (r *wordReader) typePtr() (string, error) {
	w, err := r.next()
	if err != nil {
		return "", err
	}
	if w.Kind != objfiles.TypePointer {
		return "", errors.Errorf("Expected type pointer at word %d, got %v", r.pos-1, w.Kind)
	}
	return w.SymbolName(), nil
}

func (r *wordReader) vec3() (mgl32.Vec3, error) {
	var v mgl32.Vec3
	for i := 0; i < 3; i++ {
		f, err := r.f32()
		if err != nil {
			return v, err
		}
		v[i] = f
	}
	return v, nil
}

func readFragments(r *wordReader) ([]GeomFragment, error) {
	fragCount, err := r.u32()
	if err != nil {
		return nil, err
	}
	frags := make([]GeomFragment, fragCount)
	for iFrag := range frags {
		texID, err := r.u32()
		if err != nil {
			return nil, err
		}
		vertCount, err := r.u32()
		if err != nil {
			return nil, err
		}
		verts := make([]mgl32.Vec3, vertCount)
		for iVert := range verts {
			if verts[iVert], err = r.vec3(); err != nil {
				return nil, err
			}
		}
		frags[iFrag] = GeomFragment{TextureID: texID, Vertices: verts}
	}
	return frags, nil
}

func readCollideFaces(r *wordReader) ([]CollideFace, error) {
	faceCount, err := r.u32()
	if err != nil {
		return nil, err
	}
	faces := make([]CollideFace, faceCount)
	for iFace := range faces {
		for iVert := 0; iVert < 3; iVert++ {
			if faces[iFace].Verts[iVert], err = r.vec3(); err != nil {
				return nil, err
			}
		}
		if faces[iFace].PatMaterial, err = r.u32(); err != nil {
			return nil, err
		}
	}
	return faces, nil
}

func readTree(r *wordReader) (DrawableTree, error) {
	typeName, err := r.typePtr()
	if err != nil {
		return nil, err
	}
	payloadWords, err := r.u32()
	if err != nil {
		return nil, err
	}
	if r.pos+int(payloadWords) > len(r.words) {
		return nil, errors.Errorf("Tree %q payload of %d words overruns the segment", typeName, payloadWords)
	}
	payload := &wordReader{words: r.words[r.pos : r.pos+int(payloadWords)]}
	r.pos += int(payloadWords)

	if kind, ex := tfragTreeKinds[typeName]; ex {
		frags, err := readFragments(payload)
		if err != nil {
			return nil, errors.Wrapf(err, "Unable to decode %q payload", typeName)
		}
		return &DrawableTreeTfrag{typeName: typeName, Kind: kind, Fragments: frags}, nil
	}

	switch typeName {
	case "drawable-tree-instance-tie":
		frags, err := readFragments(payload)
		if err != nil {
			return nil, errors.Wrapf(err, "Unable to decode %q payload", typeName)
		}
		return &DrawableTreeInstanceTie{Fragments: frags}, nil
	case "drawable-tree-instance-shrub":
		frags, err := readFragments(payload)
		if err != nil {
			return nil, errors.Wrapf(err, "Unable to decode %q payload", typeName)
		}
		return &DrawableTreeInstanceShrub{Fragments: frags}, nil
	case "drawable-tree-collide-fragment":
		faces, err := readCollideFaces(payload)
		if err != nil {
			return nil, errors.Wrapf(err, "Unable to decode %q payload", typeName)
		}
		return &DrawableTreeCollideFragment{Faces: faces}, nil
	default:
		return &DrawableTreeUnknown{TypeName: typeName}, nil
	}
}

// ReadFromFile decodes a validated partition root object.
func (h *BspHeader) ReadFromFile(file *objfiles.LinkedObjectFile, version config.GameVersion) error {
	r := &wordReader{words: file.Segments[0]}

	typeName, err := r.typePtr()
	if err != nil {
		return err
	}
	if typeName != BSP_HEADER_TYPE {
		return errors.Errorf("Expected a %s, got %q", BSP_HEADER_TYPE, typeName)
	}

	remapCount, err := r.u32()
	if err != nil {
		return err
	}
	h.TextureRemapTable = make([]TextureRemap, remapCount)
	for i := range h.TextureRemapTable {
		if h.TextureRemapTable[i].OriginalID, err = r.u32(); err != nil {
			return err
		}
		if h.TextureRemapTable[i].NewID, err = r.u32(); err != nil {
			return err
		}
	}

	flagCount, err := r.u32()
	if err != nil {
		return err
	}
	h.TextureFlags = make([]uint16, flagCount)
	for i := range h.TextureFlags {
		v, err := r.u32()
		if err != nil {
			return err
		}
		h.TextureFlags[i] = uint16(v)
	}

	treeCount, err := r.u32()
	if err != nil {
		return err
	}
	h.DrawableTreeArray = make([]DrawableTree, 0, treeCount)
	for iTree := 0; iTree < int(treeCount); iTree++ {
		tree, err := readTree(r)
		if err != nil {
			return errors.Wrapf(err, "Unable to decode drawable tree %d", iTree)
		}
		h.DrawableTreeArray = append(h.DrawableTreeArray, tree)
	}
	return nil
}

// Dump returns a spew rendering of the header for troubleshooting bad
// conversions.
func (h *BspHeader) Dump() string {
	return utils.SDump(h)
}
