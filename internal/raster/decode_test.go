package raster

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG encodes img into a temp PNG file and returns its path.
func writeTestPNG(t *testing.T, img image.Image) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test-raster.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestDecode_RGB(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	img.SetNRGBA(2, 1, color.NRGBA{R: 0, G: 0, B: 255, A: 255})
	path := writeTestPNG(t, img)

	r, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if r.Width() != 3 || r.Height() != 2 || r.Channels() != 3 {
		t.Fatalf("shape: got (%d,%d,%d), want (3,2,3)",
			r.Width(), r.Height(), r.Channels())
	}
	if v := r.Read(0, 0, 0); v != 255 {
		t.Errorf("Read(0,0,0): got %v, want 255", v)
	}
	if v := r.Read(2, 1, 2); v != 255 {
		t.Errorf("Read(2,1,2): got %v, want 255", v)
	}
}

func TestDecode_GrayPNG(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(0, 0, color.Gray{Y: 42})
	path := writeTestPNG(t, img)

	r, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if r.Channels() != 1 {
		t.Fatalf("Channels: got %d, want 1", r.Channels())
	}
	if v := r.Read(0, 0, 0); v != 42 {
		t.Errorf("Read(0,0,0): got %v, want 42", v)
	}
}

func TestDecode_JPEG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "test-raster.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 95}); err != nil {
		f.Close()
		t.Fatalf("failed to encode image: %v", err)
	}
	f.Close()

	r, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if r.Width() != 4 || r.Height() != 4 || r.Channels() != 3 {
		t.Fatalf("shape: got (%d,%d,%d), want (4,4,3)",
			r.Width(), r.Height(), r.Channels())
	}
	// JPEG is lossy; allow a small tolerance around the encoded color.
	want := []float64{200, 100, 50}
	for c := 0; c < 3; c++ {
		got := r.Read(2, 2, c)
		if math.Abs(got-want[c]) > 5 {
			t.Errorf("Read(2,2,%d): got %v, want %v +/- 5", c, got, want[c])
		}
	}
}

func TestDecode_NonExistent(t *testing.T) {
	_, err := Decode("/nonexistent/path/to/image.png")
	if err == nil {
		t.Error("Decode should fail for non-existent file")
	}
}

func TestDecode_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := Decode(path)
	if err == nil {
		t.Error("Decode should fail for corrupt image data")
	}
}
