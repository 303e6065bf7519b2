// Package vectorize converts binary masks back into polygon geometry.
//
// This is the inverse of rasterization: connected foreground regions become
// polygon shells, and enclosed background regions become holes in their
// surrounding shell.
//
// # Algorithm Overview
//
// MaskToPolygons follows a fixed pipeline:
//
//  1. Component Labeling: Group foreground pixels into 8-connected
//     components and background pixels into 4-connected components.
//     The mixed connectivity keeps a diagonal chain of foreground pixels
//     from splitting, while preventing background from "leaking" through
//     that same diagonal.
//  2. Hierarchy: A background component that never touches the image border
//     is a hole; its parent is the foreground component directly above its
//     topmost pixel. The result is a two-level shell/hole hierarchy.
//  3. Boundary Tracing: Each component's boundary is walked with
//     Moore-neighbor tracing, producing a closed ring of pixel coordinates.
//  4. Simplification: Rings are reduced with Ramer-Douglas-Peucker using a
//     pixel-distance epsilon, trading fidelity for output size.
//  5. Filtering: Rings whose shoelace area falls below minArea are dropped,
//     removing single-pixel artifacts of a noisy classifier.
//  6. Assembly and Repair: Shells and holes become polygons. Simplification
//     can produce self-intersections or holes poking out of their shell, so
//     invalid polygons fall back to their shell only, and an invalid
//     collection is repaired by unioning its members.
//
// The result is always a MultiPolygon, empty when the mask has no
// foreground, so callers never branch on geometry type.
//
// # Coordinate System
//
// Ring coordinates are the integer pixel positions of boundary pixels.
// Re-rasterizing the result therefore reproduces the mask only
// approximately: the boundary ring passes through pixel centers, so a
// one-pixel fringe can be lost on each side. This matches the behavior of
// contour-based vectorizers generally and is accounted for by scoring the
// round trip with a Jaccard metric rather than exact equality.
package vectorize
