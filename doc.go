// Package annotate synthesizes screen-annotation geometry.
//
// The package turns raw pointer trails into stylized, tapering arrow
// outlines and provides the supporting 2D primitives (points, vectors,
// curves, closed paths, colors and brushes). It produces retained
// geometry only: closed figures made of line and quadratic Bezier
// segments plus solid or linear-gradient brushes. Rasterization is the
// caller's concern.
//
// The companion package render caches built geometry per annotation
// item and drives incremental redraw from dirty regions.
package annotate
