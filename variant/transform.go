package variant

import "image"

// rotate90 rotates src 90° counter-clockwise, so that its former right
// edge becomes the top edge and its former top edge the left edge (matching the reference implementation's TileObject::rotate_90,
// which is image-rs's rotate270 — rotate270 in a y-down coordinate system
// reads the same as a visual 90° turn). Only square images are supported;
// Expand only ever calls this on tiles that already passed the square check.
func rotate90(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// (x, y) in src maps to (y, w-1-x) in dst.
			dst.Set(y, w-1-x, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

// fliph mirrors src across its vertical axis (left-right flip), matching
// the reference implementation's TileObject::fliph.
func fliph(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(w-1-x, y, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}
