// Package sampling implements the sampled-image core: a value-type
// wrapper over a dense float64 raster with 1 (grayscale) or 3 (RGB)
// channels, viewed as a continuous scalar field through interpolation.
//
// # Sampling Model
//
// Three access paths exist, from safest to fastest:
//   - SampleBilinear: continuous (x, y) coordinates, full channel and
//     coordinate validation, bilinear blend of the four surrounding grid
//     samples.
//   - SampleRow: continuous x on a discrete row, linear blend of the two
//     surrounding samples. No bounds checking.
//   - At / Set: exact integer coordinates, straight delegation to the
//     raster. No bounds checking.
//
// The unchecked paths exist for per-scanline hot loops whose bounds were
// validated up front; misuse is undefined behavior, not a checked error.
//
// # Ownership
//
// Every SampledImage exclusively owns its raster. Clone and ToGrayscale
// return independent instances; Take and Adopt consume a raster by move,
// leaving the source empty.
//
// # Thread Safety
//
// The core is single-threaded and provides no synchronization. Since no
// operation mutates shared state between instances, concurrent read-only
// access to one instance is safe; concurrent writers, or reads during a
// write, must be synchronized by the caller.
//
// # Error Handling
//
// Validation failures wrap one of the package sentinel errors
// (ErrInvalidFormat, ErrInvalidDimension, ErrInvalidChannel,
// ErrInvalidCoordinate) and can be matched with errors.Is. Errors abort
// the call; no partial results are returned.
package sampling
