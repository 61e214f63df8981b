package img2ascii

// Ramp is the glyph alphabet, ordered from the most ink (darkest) to the
// least ink (lightest). It never changes at runtime.
const Ramp = "@#S%?*+;:,."

// RampIndex maps a luminance sample to its ramp position:
//
//	idx = floor(p * (len(Ramp)-1) / 255)
//
// The buckets are equal width, 0 maps to the first glyph and 255 to the
// last, and the mapping is non-decreasing in p.
func RampIndex(p uint8) int {
	return int(p) * (len(Ramp) - 1) / 255
}

// GlyphFor returns the ramp glyph for a luminance sample.
func GlyphFor(p uint8) byte {
	return Ramp[RampIndex(p)]
}
