// Package assets loads and scales sprites from an asset directory.
package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tavernbrawl/card"
)

// CardDir is the directory holding card artwork inside the asset FS.
const CardDir = "cards"

// CardSize is the size card artwork is scaled to.
var CardSize = image.Pt(150, 200)

var placeholderColor = color.RGBA{R: 120, G: 40, B: 140, A: 255}

// Loader decodes images from an fs.FS and caches the scaled results.
// Failed loads are cached too, so each missing file is reported once.
type Loader struct {
	fsys   fs.FS
	logger *log.Logger
	cache  map[string]*ebiten.Image
}

// NewLoader creates a loader over fsys.
func NewLoader(fsys fs.FS, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Loader{
		fsys:   fsys,
		logger: logger,
		cache:  make(map[string]*ebiten.Image),
	}
}

// Decode reads and decodes the image at name.
func (l *Loader) Decode(name string) (image.Image, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", name, err)
	}
	return img, nil
}

// Sprite returns the image at name scaled to w×h. When the image cannot be
// loaded a warning is logged and a solid placeholder is returned instead.
func (l *Loader) Sprite(name string, w, h int) *ebiten.Image {
	key := fmt.Sprintf("%s@%dx%d", name, w, h)
	if img, ok := l.cache[key]; ok {
		return img
	}

	src, err := l.Decode(name)
	var img *ebiten.Image
	if err != nil {
		l.logger.Printf("warning: sprite %s not found, using placeholder: %v", name, err)
		img = ebiten.NewImage(w, h)
		img.Fill(placeholderColor)
	} else {
		img = scale(ebiten.NewImageFromImage(src), w, h)
	}

	l.cache[key] = img
	return img
}

// CardArt returns the artwork for a card name, or nil with a logged
// warning when no artwork exists.
func (l *Loader) CardArt(name string) *ebiten.Image {
	file := path.Join(CardDir, card.ArtworkFile(name))
	key := "card:" + file
	if img, ok := l.cache[key]; ok {
		return img
	}

	var img *ebiten.Image
	src, err := l.Decode(file)
	if err != nil {
		l.logger.Printf("warning: image for %s not found at %s", name, file)
	} else {
		img = scale(ebiten.NewImageFromImage(src), CardSize.X, CardSize.Y)
	}

	l.cache[key] = img
	return img
}

func scale(src *ebiten.Image, w, h int) *ebiten.Image {
	bounds := src.Bounds()
	if bounds.Dx() == w && bounds.Dy() == h {
		return src
	}

	dst := ebiten.NewImage(w, h)
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(w)/float64(bounds.Dx()), float64(h)/float64(bounds.Dy()))
	opts.Filter = ebiten.FilterLinear
	dst.DrawImage(src, opts)
	return dst
}
