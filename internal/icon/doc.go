// Package icon generates the standard favicon set from an uploaded
// image: 16x16 and 32x32 favicons plus a 180x180 apple-touch icon.
//
// Each output is the largest centered square crop of the source, scaled
// to the target size and composited onto an opaque white background so
// transparent sources render predictably in browser chrome. The three
// sizes are rendered concurrently from the same decoded bitmap.
package icon
