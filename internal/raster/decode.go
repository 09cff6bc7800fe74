package raster

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
)

// Decode loads a raster from an image file.
//
// Supported formats are PNG, JPEG, GIF, BMP and TIFF. JPEG sources with
// an EXIF orientation tag are rotated upright before conversion.
// Grayscale sources produce a 1-channel raster; everything else is read
// as 3-channel RGB. Returns an error if the file cannot be opened or
// decoded.
func Decode(path string) (*Raster, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode raster source %s: %w", path, err)
	}

	return FromImage(img), nil
}

// FromImage converts a decoded image into a raster at 8-bit intensity
// scale. *image.Gray and *image.Gray16 inputs yield a single luminance
// channel; any other color model yields three channels (red, green,
// blue). Alpha is discarded.
func FromImage(img image.Image) *Raster {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		r := New(width, height, 1)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				r.Write(x, y, 0, float64(src.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y))
			}
		}
		return r
	case *image.Gray16:
		r := New(width, height, 1)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				v := src.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y
				r.Write(x, y, 0, float64(v>>8))
			}
		}
		return r
	default:
		r := New(width, height, 3)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				pr, pg, pb, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				// Convert from 16-bit to 8-bit
				r.Write(x, y, 0, float64(pr>>8))
				r.Write(x, y, 1, float64(pg>>8))
				r.Write(x, y, 2, float64(pb>>8))
			}
		}
		return r
	}
}
