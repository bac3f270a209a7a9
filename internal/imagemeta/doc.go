// Package imagemeta inspects uploaded images for EXIF metadata that
// editors usually do not intend to publish: GPS coordinates, device
// serial numbers, author names, and similar identifying tags.
//
// The package works on raw image bytes. EXIF extraction is handled by
// github.com/dsoprea/go-exif; images without an EXIF segment (most
// PNGs, stripped JPEGs) produce no findings.
//
// Design decision: tag classification is split from extraction so that
// the privacy rules can be tested on synthetic tag lists without
// binary EXIF fixtures.
package imagemeta
