package tileimg

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/nrdyn/wfctile/variant"
)

// Loader is variant.Loader by another name, exported here so callers
// assembling a solver don't need to import variant just to name the
// type they're supplying.
type Loader = variant.Loader

// FSLoader loads tile images from a directory on disk, decoding any
// format the standard image package recognizes (PNG, JPEG).
type FSLoader struct{}

// Load opens folder/name and decodes it.
func (FSLoader) Load(folder, name string) (image.Image, error) {
	f, err := os.Open(filepath.Join(folder, name))
	if err != nil {
		return nil, fmt.Errorf("tileimg: opening %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("tileimg: decoding %s: %w", name, err)
	}
	return img, nil
}
