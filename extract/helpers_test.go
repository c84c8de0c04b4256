package extract

import (
	"bytes"
	"math"

	"github.com/mogaika/jak_level_extractor/config"
	"github.com/mogaika/jak_level_extractor/objfiles"
	"github.com/mogaika/jak_level_extractor/texture"
)

func wData(v uint32) objfiles.LinkedWord {
	return objfiles.LinkedWord{Kind: objfiles.PlainData, Data: v}
}

func wFloat(f float32) objfiles.LinkedWord {
	return wData(math.Float32bits(f))
}

func wType(name string) objfiles.LinkedWord {
	return objfiles.LinkedWord{Kind: objfiles.TypePointer, Symbol: name}
}

func wSym(name string) objfiles.LinkedWord {
	return objfiles.LinkedWord{Kind: objfiles.SymbolPointer, Symbol: name}
}

type testFrag struct {
	texID uint32
	verts [][3]float32
}

func fragmentsPayload(frags ...testFrag) []objfiles.LinkedWord {
	words := []objfiles.LinkedWord{wData(uint32(len(frags)))}
	for _, frag := range frags {
		words = append(words, wData(frag.texID), wData(uint32(len(frag.verts))))
		for _, vert := range frag.verts {
			words = append(words, wFloat(vert[0]), wFloat(vert[1]), wFloat(vert[2]))
		}
	}
	return words
}

func collidePayload(faces int) []objfiles.LinkedWord {
	words := []objfiles.LinkedWord{wData(uint32(faces))}
	for iFace := 0; iFace < faces; iFace++ {
		for i := 0; i < 9; i++ {
			words = append(words, wFloat(float32(iFace+i)))
		}
		words = append(words, wData(7))
	}
	return words
}

func treeWords(typeName string, payload []objfiles.LinkedWord) []objfiles.LinkedWord {
	words := []objfiles.LinkedWord{wType(typeName), wData(uint32(len(payload)))}
	return append(words, payload...)
}

// buildBspObject assembles a structurally valid partition root object
// holding the given trees.
func buildBspObject(remaps [][2]uint32, flags []uint16, trees ...[]objfiles.LinkedWord) *objfiles.LinkedObjectFile {
	words := []objfiles.LinkedWord{wType("bsp-header"), wData(uint32(len(remaps)))}
	for _, remap := range remaps {
		words = append(words, wData(remap[0]), wData(remap[1]))
	}
	words = append(words, wData(uint32(len(flags))))
	for _, flag := range flags {
		words = append(words, wData(uint32(flag)))
	}
	words = append(words, wData(uint32(len(trees))))
	for _, tree := range trees {
		words = append(words, tree...)
	}
	return &objfiles.LinkedObjectFile{Segments: [][]objfiles.LinkedWord{words}}
}

func singleTrianglePayload(texID uint32) []objfiles.LinkedWord {
	return fragmentsPayload(testFrag{
		texID: texID,
		verts: [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
	})
}

// makeTestPool builds a pool with two textures on one page, both
// registered for level "test".
func makeTestPool() *texture.Pool {
	pool := texture.NewPool()
	pool.TPageNames[1] = "testpage-"
	pool.Textures[1<<16|1] = &texture.Texture{
		Page: 1, Name: "rock", W: 4, H: 4,
		RGBABytes: bytes.Repeat([]byte{10, 20, 30, 255}, 16),
	}
	pool.Textures[1<<16|2] = &texture.Texture{
		Page: 1, Name: "dirt", W: 4, H: 4,
		RGBABytes: bytes.Repeat([]byte{90, 80, 70, 255}, 16),
	}
	pool.TextureIDsPerLevel["test"] = []uint32{1<<16 | 1, 1<<16 | 2}
	return pool
}

func makeTestDB(trees ...[]objfiles.LinkedWord) *objfiles.ObjectFileDB {
	db := objfiles.NewObjectFileDB(config.GameJak1)
	db.AddRecord("TEST.DGO", "test-vis", buildBspObject(nil, nil, trees...))
	return db
}
