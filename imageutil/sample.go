package imageutil

import "image"

// SampleNearest point-samples src into a width x height RGBAImage without
// blending. Destination pixel (dx, dy) takes the source pixel at
//
//	sx = floor(dx * srcWidth / width)
//	sy = floor(dy * srcHeight / height)
//
// relative to src.Bounds().Min. The indices are computed in integer
// arithmetic so the result is bit-identical across platforms; this is the
// rule OpenCV uses for INTER_NEAREST. Alpha is discarded.
//
// width and height must be positive and src must have a non-empty bounds
// rectangle; callers validate this.
func SampleNearest(src image.Image, width, height int) *RGBAImage {
	b := src.Bounds()
	dst := NewRGBAImage(width, height)
	cols := SampleIndices(b.Dx(), width)

	for dy := 0; dy < height; dy++ {
		sy := b.Min.Y + dy*b.Dy()/height
		for dx, sx := range cols {
			dst.SetRGB(dx, dy, RGBFromColor(src.At(b.Min.X+sx, sy)))
		}
	}
	return dst
}

// SampleIndices returns, for each of n destination positions, the source
// index in [0, size) that SampleNearest reads.
func SampleIndices(size, n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i * size / n
	}
	return idx
}
