//go:build !cgo

package codec

import "image"

// WebP decoding stays available through x/image/webp; encoding needs the
// libwebp binding and reports unsupported in non-cgo builds.
func encodeWebP(image.Image) ([]byte, error) {
	return nil, wrap(KindUnsupported, "encode webp", errNoCodec)
}
