package codec

import (
	"image"
	"image/color"
	"testing"
)

func TestResize_PreservesAspect(t *testing.T) {
	src := createColorImage(100, 50, color.NRGBA{255, 0, 0, 255})

	out := Resize(src, 50, 50, FilterLanczos)
	b := out.Bounds()
	if b.Dx() != 50 || b.Dy() != 25 {
		t.Errorf("got %dx%d, want 50x25", b.Dx(), b.Dy())
	}
}

func TestResize_ScalesUp(t *testing.T) {
	src := createColorImage(10, 10, color.NRGBA{255, 0, 0, 255})

	out := Resize(src, 40, 80, FilterNearest)
	b := out.Bounds()
	if b.Dx() != 40 || b.Dy() != 40 {
		t.Errorf("got %dx%d, want 40x40", b.Dx(), b.Dy())
	}
}

func TestResizeExact(t *testing.T) {
	src := createColorImage(100, 50, color.NRGBA{255, 0, 0, 255})

	out := ResizeExact(src, 50, 50, FilterCatmullRom)
	b := out.Bounds()
	if b.Dx() != 50 || b.Dy() != 50 {
		t.Errorf("got %dx%d, want 50x50", b.Dx(), b.Dy())
	}
}

func TestResizeToFill(t *testing.T) {
	src := createColorImage(100, 50, color.NRGBA{255, 0, 0, 255})

	out := ResizeToFill(src, 30, 30, FilterLinear)
	b := out.Bounds()
	if b.Dx() != 30 || b.Dy() != 30 {
		t.Errorf("got %dx%d, want 30x30", b.Dx(), b.Dy())
	}
}

func TestCrop(t *testing.T) {
	src := createColorImage(100, 100, color.NRGBA{255, 0, 0, 255})

	out := Crop(src, 10, 20, 30, 40)
	b := out.Bounds()
	if b.Dx() != 30 || b.Dy() != 40 {
		t.Errorf("got %dx%d, want 30x40", b.Dx(), b.Dy())
	}
}

func TestCrop_ClipsToBounds(t *testing.T) {
	src := createColorImage(20, 20, color.NRGBA{255, 0, 0, 255})

	out := Crop(src, 10, 10, 100, 100)
	b := out.Bounds()
	if b.Dx() != 10 || b.Dy() != 10 {
		t.Errorf("got %dx%d, want 10x10", b.Dx(), b.Dy())
	}
}

func TestRotations(t *testing.T) {
	// Asymmetric image with a single marked pixel at the top-left.
	src := image.NewNRGBA(image.Rect(0, 0, 30, 10))
	src.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 255})

	r90 := Rotate90(src)
	if b := r90.Bounds(); b.Dx() != 10 || b.Dy() != 30 {
		t.Errorf("rotate90: got %dx%d, want 10x30", b.Dx(), b.Dy())
	}
	// Clockwise 90: top-left moves to top-right.
	if r, _, _, _ := r90.At(9, 0).RGBA(); r == 0 {
		t.Error("rotate90: marked pixel should land at top-right")
	}

	r180 := Rotate180(src)
	if b := r180.Bounds(); b.Dx() != 30 || b.Dy() != 10 {
		t.Errorf("rotate180: got %dx%d, want 30x10", b.Dx(), b.Dy())
	}
	if r, _, _, _ := r180.At(29, 9).RGBA(); r == 0 {
		t.Error("rotate180: marked pixel should land at bottom-right")
	}

	r270 := Rotate270(src)
	if b := r270.Bounds(); b.Dx() != 10 || b.Dy() != 30 {
		t.Errorf("rotate270: got %dx%d, want 10x30", b.Dx(), b.Dy())
	}
	if r, _, _, _ := r270.At(0, 29).RGBA(); r == 0 {
		t.Error("rotate270: marked pixel should land at bottom-left")
	}
}

func TestFlips(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	src.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 255})

	fh := FlipHorizontal(src)
	if r, _, _, _ := fh.At(9, 0).RGBA(); r == 0 {
		t.Error("flip horizontal: marked pixel should move to the right edge")
	}

	fv := FlipVertical(src)
	if r, _, _, _ := fv.At(0, 9).RGBA(); r == 0 {
		t.Error("flip vertical: marked pixel should move to the bottom edge")
	}
}

func TestGrayscale_ModelChanges(t *testing.T) {
	src := createColorImage(10, 10, color.NRGBA{255, 0, 0, 255})

	out := Grayscale(src)
	if _, ok := out.(*image.Gray); !ok {
		t.Fatalf("expected *image.Gray, got %T", out)
	}
	if m := Describe(out); m.Color != ColorGray {
		t.Errorf("color model: got %v, want gray", m.Color)
	}
}

func TestInvert(t *testing.T) {
	src := createColorImage(4, 4, color.NRGBA{255, 0, 0, 255})

	out := Invert(src)
	r, g, b, _ := out.At(0, 0).RGBA()
	if r>>8 != 0 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("inverted pixel: got (%d,%d,%d), want (0,255,255)", r>>8, g>>8, b>>8)
	}

	// Source stays untouched.
	sr, _, _, _ := src.At(0, 0).RGBA()
	if sr>>8 != 255 {
		t.Error("source image was modified")
	}
}

func TestBlurAndSharpen_KeepDimensions(t *testing.T) {
	src := createColorImage(20, 10, color.NRGBA{100, 150, 200, 255})

	for _, sigma := range []float64{-1, 0, 1.5} {
		if b := Blur(src, sigma).Bounds(); b.Dx() != 20 || b.Dy() != 10 {
			t.Errorf("blur sigma=%v: got %dx%d", sigma, b.Dx(), b.Dy())
		}
		if b := Sharpen(src, sigma).Bounds(); b.Dx() != 20 || b.Dy() != 10 {
			t.Errorf("sharpen sigma=%v: got %dx%d", sigma, b.Dx(), b.Dy())
		}
	}
}

func TestBrightness(t *testing.T) {
	src := createColorImage(4, 4, color.NRGBA{100, 100, 100, 255})

	out := Brightness(src, 51)
	r, _, _, _ := out.At(0, 0).RGBA()
	got := int(r >> 8)
	if got < 145 || got > 157 {
		t.Errorf("brightness +51: got channel %d, want ~151", got)
	}

	dark := Brightness(src, -51)
	r, _, _, _ = dark.At(0, 0).RGBA()
	got = int(r >> 8)
	if got < 43 || got > 55 {
		t.Errorf("brightness -51: got channel %d, want ~49", got)
	}
}

func TestContrast_Extremes(t *testing.T) {
	src := createColorImage(4, 4, color.NRGBA{200, 200, 200, 255})

	out := Contrast(src, -100)
	r, _, _, _ := out.At(0, 0).RGBA()
	if got := int(r >> 8); got < 126 || got > 129 {
		t.Errorf("contrast -100: got %d, want ~127 (flat gray)", got)
	}
}

func TestEdgeDetectAndSepia_KeepDimensions(t *testing.T) {
	src := createColorImage(16, 12, color.NRGBA{10, 200, 30, 255})

	if b := EdgeDetect(src, 0).Bounds(); b.Dx() != 16 || b.Dy() != 12 {
		t.Errorf("edge detect: got %dx%d", b.Dx(), b.Dy())
	}
	if b := Sepia(src).Bounds(); b.Dx() != 16 || b.Dy() != 12 {
		t.Errorf("sepia: got %dx%d", b.Dx(), b.Dy())
	}
}

func TestDominantColors(t *testing.T) {
	// 3/4 red, 1/4 blue.
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if x < 15 {
				img.SetNRGBA(x, y, color.NRGBA{255, 0, 0, 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{0, 0, 255, 255})
			}
		}
	}

	colors := DominantColors(img, 2)
	if len(colors) != 2 {
		t.Fatalf("got %d colors, want 2", len(colors))
	}
	if colors[0] != "#ff0000" {
		t.Errorf("first color: got %s, want #ff0000", colors[0])
	}
	if colors[1] != "#0000ff" {
		t.Errorf("second color: got %s, want #0000ff", colors[1])
	}
}

func TestDominantColors_Empty(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	if got := DominantColors(img, 0); got != nil {
		t.Errorf("count=0: got %v, want nil", got)
	}
}
