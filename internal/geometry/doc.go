// Package geometry provides the coordinate transforms and similarity metrics
// used to move polygons between geographic and pixel space.
//
// Training polygons are published in a normalized geographic frame where X
// spans [0, Xmax] and Y spans [Ymin, 0] with Ymin negative. ForImage derives
// the per-axis scale factors that map that frame onto an image of a given
// pixel size, including the w*w/(w+1) shrink that compensates for the
// half-pixel offset of the published grids.
package geometry
