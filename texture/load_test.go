package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePng(t *testing.T, fpath string, w, h int, c color.RGBA) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(fpath, buf.Bytes(), 0666))
}

func TestLoadPool(t *testing.T) {
	dir := t.TempDir()
	writePng(t, filepath.Join(dir, "rock.png"), 2, 2, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	index := `
pages:
  1: "testpage-"
textures:
  - id: 65537
    page: 1
    name: "rock"
    image: "rock.png"
levels:
  test: [65537]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, POOL_INDEX_NAME), []byte(index), 0666))

	pool, err := LoadPool(dir)
	require.NoError(t, err)

	require.Contains(t, pool.Textures, uint32(65537))
	tex := pool.Textures[65537]
	assert.Equal(t, uint32(1), tex.Page)
	assert.Equal(t, uint32(2), tex.W)
	assert.Equal(t, uint32(2), tex.H)
	require.Len(t, tex.RGBABytes, 16)
	assert.Equal(t, []byte{10, 20, 30, 255}, tex.RGBABytes[:4])

	assert.Equal(t, "testpage-", pool.TPageNames[1])
	assert.Equal(t, []uint32{65537}, pool.TextureIDsPerLevel["test"])
	assert.False(t, pool.Empty())
}

func TestLoadPoolUnknownPage(t *testing.T) {
	dir := t.TempDir()
	writePng(t, filepath.Join(dir, "rock.png"), 1, 1, color.RGBA{A: 255})

	index := `
pages: {}
textures:
  - id: 1
    page: 9
    name: "rock"
    image: "rock.png"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, POOL_INDEX_NAME), []byte(index), 0666))

	_, err := LoadPool(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown page")
}

func TestSortedIDs(t *testing.T) {
	pool := NewPool()
	pool.Textures[30] = &Texture{}
	pool.Textures[10] = &Texture{}
	pool.Textures[20] = &Texture{}
	assert.Equal(t, []uint32{10, 20, 30}, pool.SortedIDs())
}
