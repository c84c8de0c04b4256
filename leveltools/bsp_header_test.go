package leveltools

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogaika/jak_level_extractor/config"
	"github.com/mogaika/jak_level_extractor/objfiles"
)

func data(v uint32) objfiles.LinkedWord {
	return objfiles.LinkedWord{Kind: objfiles.PlainData, Data: v}
}

func float(f float32) objfiles.LinkedWord {
	return data(math.Float32bits(f))
}

func typePtr(name string) objfiles.LinkedWord {
	return objfiles.LinkedWord{Kind: objfiles.TypePointer, Symbol: name}
}

func singleSegment(words ...objfiles.LinkedWord) *objfiles.LinkedObjectFile {
	return &objfiles.LinkedObjectFile{Segments: [][]objfiles.LinkedWord{words}}
}

func TestBspHeaderRead(t *testing.T) {
	file := singleSegment(
		typePtr("bsp-header"),
		data(1), data(7), data(0x10002), // remap 7 -> 0x10002
		data(2), data(1), data(0), // texture flags
		data(2), // trees
		typePtr("drawable-tree-tfrag-water"),
		data(12), // payload words
		data(1),  // fragments
		data(7), data(3),
		float(0), float(0), float(0),
		float(1), float(0), float(0),
		float(0), float(1), float(0),
		typePtr("drawable-tree-water-anim"),
		data(0),
	)

	var header BspHeader
	require.NoError(t, header.ReadFromFile(file, config.GameJak1))

	require.Len(t, header.TextureRemapTable, 1)
	assert.Equal(t, TextureRemap{OriginalID: 7, NewID: 0x10002}, header.TextureRemapTable[0])
	assert.Equal(t, []uint16{1, 0}, header.TextureFlags)

	require.Len(t, header.DrawableTreeArray, 2)
	tfragTree, ok := header.DrawableTreeArray[0].(*DrawableTreeTfrag)
	require.True(t, ok)
	assert.Equal(t, TfragWater, tfragTree.Kind)
	assert.Equal(t, "drawable-tree-tfrag-water", tfragTree.MyType())
	require.Len(t, tfragTree.Fragments, 1)
	assert.Equal(t, uint32(7), tfragTree.Fragments[0].TextureID)
	assert.Len(t, tfragTree.Fragments[0].Vertices, 3)
	assert.Equal(t, float32(1), tfragTree.Fragments[0].Vertices[1][0])

	unknownTree, ok := header.DrawableTreeArray[1].(*DrawableTreeUnknown)
	require.True(t, ok)
	assert.Equal(t, "drawable-tree-water-anim", unknownTree.TypeName)
}

func TestBspHeaderRejectsWrongType(t *testing.T) {
	var header BspHeader
	err := header.ReadFromFile(singleSegment(typePtr("art-group"), data(0)), config.GameJak1)
	require.Error(t, err)
}

func TestBspHeaderRejectsTruncatedTree(t *testing.T) {
	file := singleSegment(
		typePtr("bsp-header"),
		data(0),
		data(0),
		data(1),
		typePtr("drawable-tree-tfrag"),
		data(100), // payload overruns the segment
	)
	var header BspHeader
	err := header.ReadFromFile(file, config.GameJak1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overruns")
}

func TestArtGroupRead(t *testing.T) {
	file := singleSegment(
		typePtr("art-group"),
		data(1),
		objfiles.LinkedWord{Kind: objfiles.SymbolPointer, Symbol: "sage-lod0"},
		data(1), // fragments
		data(42), data(3),
		float(0), float(0), float(0),
		float(1), float(1), float(1),
		float(2), float(2), float(2),
	)

	var ag ArtGroup
	require.NoError(t, ag.ReadFromFile(file))
	require.Len(t, ag.Models, 1)
	assert.Equal(t, "sage-lod0", ag.Models[0].Name)
	require.Len(t, ag.Models[0].Fragments, 1)
	assert.Equal(t, uint32(42), ag.Models[0].Fragments[0].TextureID)
}

func TestRemapTextureID(t *testing.T) {
	remaps := []TextureRemap{{OriginalID: 1, NewID: 10}, {OriginalID: 2, NewID: 20}}
	remapTests := []struct {
		in  uint32
		out uint32
	}{
		{1, 10},
		{2, 20},
		{3, 3},
	}
	for _, test := range remapTests {
		if result := RemapTextureID(remaps, test.in); result != test.out {
			t.Errorf("RemapTextureID(%d)=%d; expected %d", test.in, result, test.out)
		}
	}
}
