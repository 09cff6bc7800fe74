package sampling

import (
	"fmt"
	"image"
	"math"

	"github.com/pixelfield/rastersample/internal/raster"
)

// defaultLabel is the diagnostic label of images not loaded from a file.
const defaultLabel = "new_img.png"

// Luminance weights for RGB to grayscale reduction. They sum to 1.0 so
// the reduction preserves linear energy.
const (
	weightRed   = 0.30
	weightGreen = 0.59
	weightBlue  = 0.11
)

// SampledImage is a 2D grid of float64 samples with 1 or 3 channels,
// exclusively owning its backing raster.
//
// Channel semantics: with 3 channels, channel 0 is red, 1 green, 2 blue;
// with 1 channel, channel 0 is luminance.
type SampledImage struct {
	raster   *raster.Raster
	width    int
	height   int
	channels int
	label    string
}

// Load constructs a sampled image from an image file. Width, height and
// channel count are derived from the decoded raster; the path becomes
// the diagnostic label. Fails with the decoder's error on unreadable
// input, or with ErrInvalidFormat if the decoded channel count is not
// 1 or 3.
func Load(path string) (*SampledImage, error) {
	r, err := raster.Decode(path)
	if err != nil {
		return nil, err
	}
	img := adopt(r, path)
	if err := img.checkFormat(); err != nil {
		return nil, err
	}
	return img, nil
}

// New constructs a blank (zeroed) sampled image of the given shape.
// Width and height must be positive; non-positive dimensions panic.
// Fails with ErrInvalidFormat unless channels is 1 or 3.
func New(width, height, channels int) (*SampledImage, error) {
	img := adopt(raster.New(width, height, channels), defaultLabel)
	if err := img.checkFormat(); err != nil {
		return nil, err
	}
	return img, nil
}

// NewFilled constructs a sampled image of the given shape with every
// sample set to value. Fails with ErrInvalidFormat unless channels is
// 1 or 3.
func NewFilled(width, height, channels int, value float64) (*SampledImage, error) {
	img := adopt(raster.NewFilled(width, height, channels, value), defaultLabel)
	if err := img.checkFormat(); err != nil {
		return nil, err
	}
	return img, nil
}

// Take constructs a sampled image by moving an externally built raster
// into it. The source raster is left empty. The incoming shape is
// trusted without re-validation: rasters handed to Take come from
// internal computations that already hold the channel invariant.
func Take(r *raster.Raster) *SampledImage {
	return adopt(r.Detach(), defaultLabel)
}

// adopt wraps an already-owned raster without detaching it again.
func adopt(r *raster.Raster, label string) *SampledImage {
	return &SampledImage{
		raster:   r,
		width:    r.Width(),
		height:   r.Height(),
		channels: r.Channels(),
		label:    label,
	}
}

func (img *SampledImage) checkFormat() error {
	if img.channels != 1 && img.channels != 3 {
		return fmt.Errorf("%w: %d channels; only RGB and grayscale supported",
			ErrInvalidFormat, img.channels)
	}
	return nil
}

// Size returns the length of dimension dim: 0 width, 1 height,
// 2 channels. Any other value fails with ErrInvalidDimension.
func (img *SampledImage) Size(dim int) (int, error) {
	switch dim {
	case 0:
		return img.width, nil
	case 1:
		return img.height, nil
	case 2:
		return img.channels, nil
	default:
		return 0, fmt.Errorf("%w: %d is not a dimension {0,1,2}",
			ErrInvalidDimension, dim)
	}
}

// At returns the sample at exact integer coordinates (x, y) on channel
// c. No interpolation and no bounds checking; this is the fast path the
// interpolated accessors build on.
func (img *SampledImage) At(x, y, c int) float64 {
	return img.raster.Read(x, y, c)
}

// Set stores value at (x, y) on channel c. No bounds checking.
func (img *SampledImage) Set(x, y, c int, value float64) {
	img.raster.Write(x, y, c, value)
}

// SampleBilinear returns the intensity of channel c at the continuous
// coordinate (x, y), obtained by bilinear interpolation of the four
// surrounding grid samples.
//
// Fails with ErrInvalidChannel if c is outside [0, channels-1] and with
// ErrInvalidCoordinate if (x, y) is outside [0, width-1] x [0, height-1].
// At exact integer coordinates floor and ceil coincide and the blend
// reduces to the discrete value.
func (img *SampledImage) SampleBilinear(x, y float64, c int) (float64, error) {
	if c < 0 || c >= img.channels {
		return 0, fmt.Errorf("%w: %d of [0, %d]",
			ErrInvalidChannel, c, img.channels-1)
	}
	if math.IsNaN(x) || math.IsNaN(y) ||
		x < 0 || y < 0 || x > float64(img.width-1) || y > float64(img.height-1) {
		return 0, fmt.Errorf("%w: (%g, %g) of (0, 0) -- (%d, %d)",
			ErrInvalidCoordinate, x, y, img.width-1, img.height-1)
	}

	xLow := int(math.Floor(x))
	xHigh := int(math.Ceil(x))
	yLow := int(math.Floor(y))
	yHigh := int(math.Ceil(y))
	fx := x - float64(xLow)
	fy := y - float64(yLow)

	z00 := img.raster.Read(xLow, yLow, c)
	z01 := img.raster.Read(xLow, yHigh, c)
	z10 := img.raster.Read(xHigh, yLow, c)
	z11 := img.raster.Read(xHigh, yHigh, c)

	z := z00*(1-fx)*(1-fy) +
		z10*fx*(1-fy) +
		z01*(1-fx)*fy +
		z11*fx*fy
	return z, nil
}

// SampleRow returns the intensity of channel c at continuous coordinate
// x on the discrete row, obtained by linear interpolation of the two
// surrounding samples.
//
// NOTE: bounds are not checked. This is the per-scanline fast path;
// callers are expected to have validated x, row and c beforehand, and
// out-of-range input is undefined behavior rather than a checked error.
func (img *SampledImage) SampleRow(x float64, row, c int) float64 {
	xLow := int(math.Floor(x))
	xHigh := int(math.Ceil(x))
	fx := x - float64(xLow)

	z0 := img.raster.Read(xLow, row, c)
	z1 := img.raster.Read(xHigh, row, c)

	return z0*(1-fx) + z1*fx
}

// ToGrayscale returns a new single-channel image reduced with the
// luminance formula 0.30*R + 0.59*G + 0.11*B. If the image is already
// grayscale the result is an independent deep copy. The receiver is
// never modified.
func (img *SampledImage) ToGrayscale() *SampledImage {
	if img.channels == 1 {
		return img.Clone()
	}

	gray := Take(raster.New(img.width, img.height, 1))
	for x := 0; x < img.width; x++ {
		for y := 0; y < img.height; y++ {
			red := img.raster.Read(x, y, 0)
			green := img.raster.Read(x, y, 1)
			blue := img.raster.Read(x, y, 2)
			gray.Set(x, y, 0, red*weightRed+green*weightGreen+blue*weightBlue)
		}
	}
	return gray
}

// Clone returns a deep copy sharing no storage with the receiver.
func (img *SampledImage) Clone() *SampledImage {
	return &SampledImage{
		raster:   img.raster.Clone(),
		width:    img.width,
		height:   img.height,
		channels: img.channels,
		label:    img.label,
	}
}

// Adopt replaces the instance's raster and dimensions by moving r in,
// releasing the previously owned raster and resetting the diagnostic
// label to the synthetic default. The source raster is left empty.
func (img *SampledImage) Adopt(r *raster.Raster) {
	moved := r.Detach()
	img.raster = moved
	img.width = moved.Width()
	img.height = moved.Height()
	img.channels = moved.Channels()
	img.label = defaultLabel
}

// Path returns the diagnostic label: the origin file path, or the
// synthetic default for in-memory instances.
func (img *SampledImage) Path() string {
	return img.label
}

// Image materializes the current samples as a standard image, clamped to
// the 8-bit range. Interop glue for encoders and histogram tooling.
func (img *SampledImage) Image() image.Image {
	return img.raster.ToImage()
}

// String renders the image for logs and debugging.
func (img *SampledImage) String() string {
	return fmt.Sprintf("Image: %s, size: (%d,%d,%d)",
		img.label, img.width, img.height, img.channels)
}
