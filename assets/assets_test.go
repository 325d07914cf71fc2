package assets_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"log"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/plus3/tavernbrawl/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	fsys := fstest.MapFS{
		"goblin.png": {Data: pngBytes(t, 20, 27)},
	}
	loader := assets.NewLoader(fsys, nil)

	img, err := loader.Decode("goblin.png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 20, 27), img.Bounds())
}

func TestDecodeMissingFile(t *testing.T) {
	loader := assets.NewLoader(fstest.MapFS{}, nil)

	_, err := loader.Decode("nothing.png")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestDecodeCorruptFile(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.png": {Data: []byte("not a png")},
	}
	loader := assets.NewLoader(fsys, nil)

	_, err := loader.Decode("broken.png")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken.png")
}

func TestCardArtMissingReturnsNilAndWarnsOnce(t *testing.T) {
	var logs bytes.Buffer
	loader := assets.NewLoader(fstest.MapFS{}, log.New(&logs, "", 0))

	assert.Nil(t, loader.CardArt("Health Potion"))
	assert.Nil(t, loader.CardArt("Health Potion"))

	assert.Equal(t, 1, strings.Count(logs.String(), "warning"), "failed loads are cached")
	assert.Contains(t, logs.String(), "Health Potion")
	assert.Contains(t, logs.String(), "cards/health_potion.png")
}

func TestCardArtCorruptFileReturnsNil(t *testing.T) {
	var logs bytes.Buffer
	fsys := fstest.MapFS{
		"cards/rock.png": {Data: []byte("not a png")},
	}
	loader := assets.NewLoader(fsys, log.New(&logs, "", 0))

	assert.Nil(t, loader.CardArt("Rock"))
	assert.Contains(t, logs.String(), "warning: image for Rock not found")
}
