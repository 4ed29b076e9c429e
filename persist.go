package imgbridge

import (
	"go.uber.org/zap"

	"github.com/imgbridge/imgbridge/internal/codec"
)

// Save encodes the image to a file, choosing the format from the path
// extension.
func Save(h Handle, path string) Code {
	if h == 0 {
		return InvalidPointer
	}
	if !validPath(path) {
		return InvalidPath
	}
	img, ok := images.Get(h)
	if !ok {
		return InvalidPointer
	}

	if err := codec.Save(img, path); err != nil {
		Logger().Debug("save failed", zap.String("path", path), zap.Error(err))
		return codeFor(err)
	}
	return Success
}

// Encode serializes the image to the given format in memory and transfers
// ownership of the result to the caller: on Success the returned token
// and length identify a buffer the caller must eventually release with
// FreeBuffer(token, length). On failure the token is 0, the length is 0,
// and nothing needs releasing.
func Encode(h Handle, format Format) (token Handle, length uint64, code Code) {
	if h == 0 {
		return 0, 0, InvalidPointer
	}
	if !format.valid() {
		return 0, 0, UnsupportedFormat
	}
	img, ok := images.Get(h)
	if !ok {
		return 0, 0, InvalidPointer
	}

	data, err := codec.Encode(img, format.internal())
	if err != nil {
		Logger().Debug("encode failed",
			zap.Stringer("format", format), zap.Error(err))
		return 0, 0, codeFor(err)
	}
	return buffers.Put(data), uint64(len(data)), Success
}
