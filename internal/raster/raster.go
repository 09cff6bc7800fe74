package raster

import (
	"image"
	"image/color"

	"gonum.org/v1/gonum/mat"
)

// Raster is a dense width x height x channels grid of float64 samples.
//
// The zero value is an empty raster with no backing storage; use New,
// NewFilled, FromImage or Decode to obtain a usable one.
type Raster struct {
	width    int
	height   int
	channels int
	planes   []*mat.Dense // one height x width matrix per channel
}

// New allocates a raster of the given shape with every sample zeroed.
// Width and height must be positive; non-positive dimensions panic.
func New(width, height, channels int) *Raster {
	planes := make([]*mat.Dense, channels)
	for c := range planes {
		planes[c] = mat.NewDense(height, width, nil)
	}
	return &Raster{
		width:    width,
		height:   height,
		channels: channels,
		planes:   planes,
	}
}

// NewFilled allocates a raster of the given shape with every sample set
// to value.
func NewFilled(width, height, channels int, value float64) *Raster {
	r := New(width, height, channels)
	for _, plane := range r.planes {
		data := plane.RawMatrix().Data
		for i := range data {
			data[i] = value
		}
	}
	return r
}

// Width returns the number of columns.
func (r *Raster) Width() int { return r.width }

// Height returns the number of rows.
func (r *Raster) Height() int { return r.height }

// Channels returns the number of channels.
func (r *Raster) Channels() int { return r.channels }

// Read returns the sample at (x, y) on channel c. No bounds checking is
// performed.
func (r *Raster) Read(x, y, c int) float64 {
	return r.planes[c].At(y, x)
}

// Write stores value at (x, y) on channel c. No bounds checking is
// performed.
func (r *Raster) Write(x, y, c int, value float64) {
	r.planes[c].Set(y, x, value)
}

// Clone returns a deep copy sharing no storage with the receiver.
func (r *Raster) Clone() *Raster {
	planes := make([]*mat.Dense, r.channels)
	for c, plane := range r.planes {
		planes[c] = mat.DenseCopyOf(plane)
	}
	return &Raster{
		width:    r.width,
		height:   r.height,
		channels: r.channels,
		planes:   planes,
	}
}

// Detach moves the backing planes into a new Raster and leaves the
// receiver empty. The returned raster is the sole owner of the pixel
// data; the receiver reports Empty() afterwards.
func (r *Raster) Detach() *Raster {
	moved := &Raster{
		width:    r.width,
		height:   r.height,
		channels: r.channels,
		planes:   r.planes,
	}
	r.width = 0
	r.height = 0
	r.channels = 0
	r.planes = nil
	return moved
}

// Empty reports whether the raster has been moved from (or never
// allocated) and holds no backing storage.
func (r *Raster) Empty() bool {
	return r.planes == nil
}

// ToImage materializes the raster as a standard image: *image.Gray for a
// single channel, *image.NRGBA (fully opaque) otherwise. Samples are
// clamped to [0, 255] and rounded down.
func (r *Raster) ToImage() image.Image {
	rect := image.Rect(0, 0, r.width, r.height)

	if r.channels == 1 {
		img := image.NewGray(rect)
		for y := 0; y < r.height; y++ {
			for x := 0; x < r.width; x++ {
				img.SetGray(x, y, color.Gray{Y: clamp8(r.Read(x, y, 0))})
			}
		}
		return img
	}

	img := image.NewNRGBA(rect)
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: clamp8(r.Read(x, y, 0)),
				G: clamp8(r.Read(x, y, 1)),
				B: clamp8(r.Read(x, y, 2)),
				A: 255,
			})
		}
	}
	return img
}

// clamp8 constrains a sample to the 8-bit range [0, 255].
func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
