package imgbridge

import (
	"image"

	"github.com/imgbridge/imgbridge/internal/codec"
)

// Every transform borrows its input handle, which stays valid and owned
// by the caller, and returns a fresh handle for the result (0 on any
// failure). Invert is the one exception: it mutates in place and returns
// a status code.

// derive is the shared shape of a handle-in/handle-out operation.
func derive(h Handle, fn func(image.Image) image.Image) Handle {
	img, ok := images.Get(h)
	if !ok {
		return 0
	}
	return images.Put(fn(img))
}

// Resize scales the image to the largest size fitting within
// width x height, preserving aspect ratio.
func Resize(h Handle, width, height uint32, filter Filter) Handle {
	if width == 0 || height == 0 || !filter.valid() {
		return 0
	}
	return derive(h, func(img image.Image) image.Image {
		return codec.Resize(img, int(width), int(height), filter.internal())
	})
}

// ResizeExact scales to exactly width x height, ignoring aspect ratio.
func ResizeExact(h Handle, width, height uint32, filter Filter) Handle {
	if width == 0 || height == 0 || !filter.valid() {
		return 0
	}
	return derive(h, func(img image.Image) image.Image {
		return codec.ResizeExact(img, int(width), int(height), filter.internal())
	})
}

// ResizeToFit scales and center-crops so the result covers exactly
// width x height.
func ResizeToFit(h Handle, width, height uint32, filter Filter) Handle {
	if width == 0 || height == 0 || !filter.valid() {
		return 0
	}
	return derive(h, func(img image.Image) image.Image {
		return codec.ResizeToFill(img, int(width), int(height), filter.internal())
	})
}

// Crop extracts the rectangle anchored at (x, y), clipped to the image
// bounds.
func Crop(h Handle, x, y, width, height uint32) Handle {
	if width == 0 || height == 0 {
		return 0
	}
	return derive(h, func(img image.Image) image.Image {
		return codec.Crop(img, int(x), int(y), int(width), int(height))
	})
}

// Rotate90 rotates 90 degrees clockwise.
func Rotate90(h Handle) Handle {
	return derive(h, codec.Rotate90)
}

// Rotate180 rotates 180 degrees.
func Rotate180(h Handle) Handle {
	return derive(h, codec.Rotate180)
}

// Rotate270 rotates 270 degrees clockwise.
func Rotate270(h Handle) Handle {
	return derive(h, codec.Rotate270)
}

// FlipHorizontal mirrors the image across its vertical axis.
func FlipHorizontal(h Handle) Handle {
	return derive(h, codec.FlipHorizontal)
}

// FlipVertical mirrors the image across its horizontal axis.
func FlipVertical(h Handle) Handle {
	return derive(h, codec.FlipVertical)
}

// Blur applies a gaussian blur with the given sigma.
func Blur(h Handle, sigma float32) Handle {
	return derive(h, func(img image.Image) image.Image {
		return codec.Blur(img, float64(sigma))
	})
}

// Sharpen applies an unsharp mask with the given sigma.
func Sharpen(h Handle, sigma float32) Handle {
	return derive(h, func(img image.Image) image.Image {
		return codec.Sharpen(img, float64(sigma))
	})
}

// Brightness shifts every channel by delta (-255..255).
func Brightness(h Handle, delta int32) Handle {
	return derive(h, func(img image.Image) image.Image {
		return codec.Brightness(img, int(delta))
	})
}

// Contrast adjusts contrast by a percentage (-100..100).
func Contrast(h Handle, percentage float32) Handle {
	return derive(h, func(img image.Image) image.Image {
		return codec.Contrast(img, float64(percentage))
	})
}

// Grayscale converts to a single-channel luminance image; the result's
// metadata reports the gray color model.
func Grayscale(h Handle) Handle {
	return derive(h, codec.Grayscale)
}

// EdgeDetect highlights edges using a kernel of the given radius.
func EdgeDetect(h Handle, radius float32) Handle {
	return derive(h, func(img image.Image) image.Image {
		return codec.EdgeDetect(img, float64(radius))
	})
}

// Sepia applies a sepia tone.
func Sepia(h Handle) Handle {
	return derive(h, codec.Sepia)
}

// Invert replaces the image's contents with its color-negative, in place.
// The handle stays valid and refers to the inverted image afterward.
// Exclusive access to the handle during the call is the caller's
// obligation.
func Invert(h Handle) Code {
	if h == 0 {
		return InvalidPointer
	}
	img, ok := images.Get(h)
	if !ok {
		return InvalidPointer
	}
	if !images.Replace(h, codec.Invert(img)) {
		return InvalidPointer
	}
	return Success
}
