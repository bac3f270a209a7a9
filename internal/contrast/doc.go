// Package contrast computes WCAG relative luminance and contrast ratios
// for color pairs and classifies them against the AA and AAA thresholds.
//
// Colors are parsed from 6-digit hex strings. Malformed input is
// deliberately permissive and falls back to black rather than failing:
// the checks drive a live preview where a half-typed color should still
// render something sensible.
package contrast
