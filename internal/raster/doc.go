// Package raster implements the dense sample store backing a sampled image.
//
// A Raster is a width x height grid of float64 intensities with a fixed
// channel count. Each channel is kept as its own gonum matrix plane, so a
// 3-channel raster holds three height x width matrices. Decoders fill the
// store with 8-bit-scale intensities (0-255), but the store itself accepts
// any float64 value; clamping only happens when a raster is materialized
// back into a standard image via ToImage.
//
// # Coordinate System
//
// All coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward. Read and Write perform no
// bounds checking; callers validate coordinates before the per-pixel loop.
//
// # Ownership
//
// Clone produces a deep copy with no shared storage. Detach transfers the
// backing planes to a new Raster and leaves the receiver empty, which is
// how a raster produced by one computation is handed to a new owner
// without copying pixel data.
package raster
