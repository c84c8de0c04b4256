package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogaika/jak_level_extractor/config"
	"github.com/mogaika/jak_level_extractor/objfiles"
	"github.com/mogaika/jak_level_extractor/tfrag3"
)

func recs(names ...string) []objfiles.ObjectFileRecord {
	records := make([]objfiles.ObjectFileRecord, len(names))
	for i, name := range names {
		records[i] = objfiles.ObjectFileRecord{Name: name, Dgo: "TEST.DGO", Idx: i}
	}
	return records
}

func TestGetBspFile(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		rec, err := GetBspFile(recs("tpage-1", "water-ag"), "TEST.DGO")
		require.NoError(t, err)
		assert.Nil(t, rec)
	})

	t.Run("single root regardless of position", func(t *testing.T) {
		for _, names := range [][]string{
			{"test-vis", "tpage-1", "water-ag"},
			{"tpage-1", "test-vis", "water-ag"},
			{"tpage-1", "water-ag", "test-vis"},
		} {
			rec, err := GetBspFile(recs(names...), "TEST.DGO")
			require.NoError(t, err)
			require.NotNil(t, rec)
			assert.Equal(t, "test-vis", rec.Name)
		}
	})

	t.Run("two roots is fatal", func(t *testing.T) {
		_, err := GetBspFile(recs("a-vis", "b-vis"), "TEST.DGO")
		require.Error(t, err)
		assert.True(t, IsInvariantViolation(err))
	})

	t.Run("last record fallback", func(t *testing.T) {
		rec, err := GetBspFile(recs("tpage-1", "vi1"), "VI1.DGO")
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, "vi1", rec.Name)
	})

	t.Run("fallback needs matching last record", func(t *testing.T) {
		rec, err := GetBspFile(recs("vi1", "tpage-1"), "VI1.DGO")
		require.NoError(t, err)
		assert.Nil(t, rec)
	})

	t.Run("fallback needs container extension", func(t *testing.T) {
		rec, err := GetBspFile(recs("tpage-1", "vi1"), "VI1.BIN")
		require.NoError(t, err)
		assert.Nil(t, rec)
	})
}

func TestIsValidBsp(t *testing.T) {
	valid := buildBspObject(nil, nil)

	t.Run("valid", func(t *testing.T) {
		assert.True(t, IsValidBsp(valid))
	})

	t.Run("wrong segment count", func(t *testing.T) {
		file := &objfiles.LinkedObjectFile{
			Segments: [][]objfiles.LinkedWord{valid.Segments[0], {wData(0)}},
		}
		assert.False(t, IsValidBsp(file))
	})

	t.Run("first word not a type pointer", func(t *testing.T) {
		file := &objfiles.LinkedObjectFile{
			Segments: [][]objfiles.LinkedWord{{wData(1), wData(2)}},
		}
		assert.False(t, IsValidBsp(file))
	})

	t.Run("wrong symbol name", func(t *testing.T) {
		file := &objfiles.LinkedObjectFile{
			Segments: [][]objfiles.LinkedWord{{wType("drawable-tree-tfrag")}},
		}
		assert.False(t, IsValidBsp(file))
	})
}

func TestExtractBspCollideInvariant(t *testing.T) {
	pool := makeTestPool()
	hacks := &config.DecompileHacks{}

	t.Run("zero collide trees", func(t *testing.T) {
		db := makeTestDB(treeWords("drawable-tree-tfrag", singleTrianglePayload(1<<16|1)))
		var levelData tfrag3.Level
		_, err := ExtractBspFromLevel(db, pool, "TEST.DGO", hacks, true, &levelData)
		require.NoError(t, err)
		assert.Empty(t, levelData.CollideFragments)
	})

	t.Run("one collide tree", func(t *testing.T) {
		db := makeTestDB(treeWords("drawable-tree-collide-fragment", collidePayload(2)))
		var levelData tfrag3.Level
		_, err := ExtractBspFromLevel(db, pool, "TEST.DGO", hacks, true, &levelData)
		require.NoError(t, err)
		require.Len(t, levelData.CollideFragments, 1)
		assert.Len(t, levelData.CollideFragments[0].Pats, 2)
	})

	t.Run("second collide tree is fatal", func(t *testing.T) {
		db := makeTestDB(
			treeWords("drawable-tree-collide-fragment", collidePayload(1)),
			treeWords("drawable-tree-collide-fragment", collidePayload(1)))
		var levelData tfrag3.Level
		_, err := ExtractBspFromLevel(db, pool, "TEST.DGO", hacks, true, &levelData)
		require.Error(t, err)
		assert.True(t, IsInvariantViolation(err))
	})
}

func TestExtractBspUnsupportedTree(t *testing.T) {
	db := makeTestDB(
		treeWords("drawable-tree-actor", nil),
		treeWords("drawable-tree-tfrag", singleTrianglePayload(1<<16|1)))
	var levelData tfrag3.Level
	_, err := ExtractBspFromLevel(db, makeTestPool(), "TEST.DGO", &config.DecompileHacks{}, false, &levelData)
	require.NoError(t, err)
	require.Len(t, levelData.TfragTrees, 1)
	// the unsupported tree does not consume an identifier index
	assert.Equal(t, "TEST.DGO-0", levelData.TfragTrees[0].Name)
	assert.Equal(t, "test", levelData.LevelName)
}

func TestExtractBspNameAndRemap(t *testing.T) {
	pool := makeTestPool()
	db := objfiles.NewObjectFileDB(config.GameJak1)
	// the tree references texture 7, remapped to a real pool id
	db.AddRecord("TEST.DGO", "test-vis", buildBspObject(
		[][2]uint32{{7, 1<<16 | 2}}, nil,
		treeWords("drawable-tree-tfrag", singleTrianglePayload(7))))

	var levelData tfrag3.Level
	remaps, err := ExtractBspFromLevel(db, pool, "TEST.DGO", &config.DecompileHacks{}, false, &levelData)
	require.NoError(t, err)
	require.Len(t, remaps, 1)
	require.Len(t, levelData.TfragTrees, 1)
	require.Len(t, levelData.TfragTrees[0].Draws, 1)
	assert.Equal(t, uint32(1<<16|2), levelData.TfragTrees[0].Draws[0].TextureID)
}
