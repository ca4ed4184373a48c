package tileimg

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/nrdyn/wfctile/variant"
)

// Compositor rasterizes a completed solve into a single PNG.
type Compositor struct{}

// Save draws each cell's observed variant image into a
// w*tileSize × h*tileSize canvas and encodes it as PNG at path,
// mirroring original_source's ImageBuffer::copy_from loop. Returns
// ErrIncompleteSolution if any cell in observed is still unobserved (<0).
func (Compositor) Save(path string, w, h, tileSize int, observed []int32, variants []variant.Variant) error {
	for _, t := range observed {
		if t < 0 {
			return ErrIncompleteSolution
		}
	}

	canvas := image.NewRGBA(image.Rect(0, 0, w*tileSize, h*tileSize))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := observed[x+y*w]
			dstRect := image.Rect(x*tileSize, y*tileSize, (x+1)*tileSize, (y+1)*tileSize)
			draw.Draw(canvas, dstRect, variants[t].Image, image.Point{}, draw.Src)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tileimg: creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, canvas); err != nil {
		return fmt.Errorf("tileimg: encoding %s: %w", path, err)
	}
	return nil
}
