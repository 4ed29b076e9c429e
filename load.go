package imgbridge

import (
	"go.uber.org/zap"

	"github.com/imgbridge/imgbridge/internal/codec"
)

// Load decodes an image from a file path, detecting the format from the
// file contents, and returns a new handle. Returns 0 on any failure,
// including an empty or non-UTF8 path.
func Load(path string) Handle {
	if !validPath(path) {
		return 0
	}
	img, err := codec.Open(path)
	if err != nil {
		Logger().Debug("load failed", zap.String("path", path), zap.Error(err))
		return 0
	}
	return images.Put(img)
}

// LoadFromMemory decodes an image from encoded bytes, detecting the
// format from the data. Returns 0 on failure or empty input.
func LoadFromMemory(data []byte) Handle {
	if len(data) == 0 {
		return 0
	}
	img, err := codec.Decode(data)
	if err != nil {
		Logger().Debug("load from memory failed", zap.Error(err))
		return 0
	}
	return images.Put(img)
}

// LoadFromMemoryWithFormat decodes encoded bytes using the given format's
// decoder, bypassing detection. Returns 0 on failure, empty input, or an
// undefined format tag.
func LoadFromMemoryWithFormat(data []byte, format Format) Handle {
	if len(data) == 0 || !format.valid() {
		return 0
	}
	img, err := codec.DecodeWithFormat(data, format.internal())
	if err != nil {
		Logger().Debug("load with format failed",
			zap.Stringer("format", format), zap.Error(err))
		return 0
	}
	return images.Put(img)
}

// GuessFormat detects the container format from the leading bytes of
// encoded image data. Formats the codec layer knows but the boundary tag
// set does not expose report UnsupportedFormat.
func GuessFormat(data []byte) (Format, Code) {
	if len(data) == 0 {
		return 0, InvalidPointer
	}
	f, err := codec.Sniff(data)
	if err != nil {
		return 0, codeFor(err)
	}
	tag, ok := formatTag(f)
	if !ok {
		return 0, UnsupportedFormat
	}
	return tag, Success
}
