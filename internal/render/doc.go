// Package render turns matrix columns into color-mapped raster frames.
//
// A column is first reshaped into an nx-by-ny grid ([Reshape]) following
// either row-major or column-major element order, then drawn onto a
// [Canvas] sized from a figure size in inches and a resolution in dots per
// inch. Grid row 0 is drawn at the top, matching image conventions.
//
// A Canvas holds a pixel buffer borrowed from a package pool and must be
// released with [Canvas.Close] once the caller is done with it.
package render
