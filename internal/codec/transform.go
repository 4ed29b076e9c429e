package codec

import (
	"image"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// Each transform is a pure function: it reads its input and returns a new
// image, never modifying the source pixels. Invert is no exception here;
// the in-place semantics of the boundary's invert operation come from the
// handle table swapping the stored value, not from pixel mutation.

// Resize scales the image to the largest size that fits within the given
// bounds while preserving aspect ratio. Unlike a pure shrink-to-fit, a
// smaller image is scaled up.
func Resize(img image.Image, width, height int, filter Filter) image.Image {
	b := img.Bounds()
	scale := math.Min(
		float64(width)/float64(b.Dx()),
		float64(height)/float64(b.Dy()),
	)
	w := int(math.Max(1, math.Round(float64(b.Dx())*scale)))
	h := int(math.Max(1, math.Round(float64(b.Dy())*scale)))
	return imaging.Resize(img, w, h, filter.resample())
}

// ResizeExact scales to exactly width x height, ignoring aspect ratio.
func ResizeExact(img image.Image, width, height int, filter Filter) image.Image {
	return imaging.Resize(img, width, height, filter.resample())
}

// ResizeToFill scales and center-crops so the result covers exactly
// width x height.
func ResizeToFill(img image.Image, width, height int, filter Filter) image.Image {
	return imaging.Fill(img, width, height, imaging.Center, filter.resample())
}

// Crop extracts the rectangle anchored at (x, y) with the given size,
// clipped to the image bounds.
func Crop(img image.Image, x, y, width, height int) image.Image {
	return imaging.Crop(img, image.Rect(x, y, x+width, y+height))
}

// Rotate90 rotates 90 degrees clockwise.
// imaging's rotations are counter-clockwise, hence the swap.
func Rotate90(img image.Image) image.Image {
	return imaging.Rotate270(img)
}

// Rotate180 rotates 180 degrees.
func Rotate180(img image.Image) image.Image {
	return imaging.Rotate180(img)
}

// Rotate270 rotates 270 degrees clockwise.
func Rotate270(img image.Image) image.Image {
	return imaging.Rotate90(img)
}

// FlipHorizontal mirrors the image across its vertical axis.
func FlipHorizontal(img image.Image) image.Image {
	return imaging.FlipH(img)
}

// FlipVertical mirrors the image across its horizontal axis.
func FlipVertical(img image.Image) image.Image {
	return imaging.FlipV(img)
}

// Blur applies a gaussian blur. Non-positive sigma returns a plain copy.
func Blur(img image.Image, sigma float64) image.Image {
	if sigma <= 0 {
		return imaging.Clone(img)
	}
	return imaging.Blur(img, sigma)
}

// Sharpen applies an unsharp mask. Non-positive sigma returns a plain copy.
func Sharpen(img image.Image, sigma float64) image.Image {
	if sigma <= 0 {
		return imaging.Clone(img)
	}
	return imaging.Sharpen(img, sigma)
}

// Brightness shifts every channel by delta in the -255..255 range.
// imaging works in percentages, so the delta is rescaled.
func Brightness(img image.Image, delta int) image.Image {
	return imaging.AdjustBrightness(img, float64(delta)/255*100)
}

// Contrast adjusts contrast by a percentage in the -100..100 range.
func Contrast(img image.Image, percentage float64) image.Image {
	return imaging.AdjustContrast(img, percentage)
}

// Grayscale converts to a single-channel luminance image. The result is a
// true *image.Gray so the color model reported by Describe changes, not
// just the pixel values.
func Grayscale(img image.Image) image.Image {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	return gray
}

// Invert produces the color-negative of the image.
func Invert(img image.Image) image.Image {
	return imaging.Invert(img)
}

// EdgeDetect highlights edges using a convolution kernel of the given
// radius. Radius below 1 is clamped to 1.
func EdgeDetect(img image.Image, radius float64) image.Image {
	if radius < 1 {
		radius = 1
	}
	return effect.EdgeDetection(img, radius)
}

// Sepia applies a sepia tone.
func Sepia(img image.Image) image.Image {
	return effect.Sepia(img)
}
