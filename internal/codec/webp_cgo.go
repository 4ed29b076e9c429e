//go:build cgo

package codec

import (
	"bytes"
	"image"

	"github.com/chai2010/webp"
)

// defaultWebPQuality is used for lossy WebP output. The boundary carries
// no per-call quality parameter, matching the encode surface it exposes.
const defaultWebPQuality = 90

func encodeWebP(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: defaultWebPQuality}); err != nil {
		return nil, wrap(KindEncode, "encode webp", err)
	}
	return buf.Bytes(), nil
}
