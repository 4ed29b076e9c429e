package codec

import (
	"image"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// mergeDistance is the Lab-space distance below which two quantized
// buckets are treated as the same color.
const mergeDistance = 0.12

// maxSamples caps the number of pixels examined per image so analysis
// stays cheap for large inputs.
const maxSamples = 65536

// DominantColors returns up to count hex strings ("#rrggbb") for the most
// frequent colors in the image, most frequent first. Pixels are quantized
// to 4 bits per channel before counting; buckets that are perceptually
// close (Lab distance) are merged into the larger one.
func DominantColors(img image.Image, count int) []string {
	if count <= 0 {
		return nil
	}

	b := img.Bounds()
	total := b.Dx() * b.Dy()
	if total == 0 {
		return nil
	}

	step := 1
	for total/(step*step) > maxSamples {
		step++
	}

	counts := make(map[uint16]int)
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r, g, bl, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			// 4 bits per channel
			key := uint16(r>>12)<<8 | uint16(g>>12)<<4 | uint16(bl>>12)
			counts[key]++
		}
	}

	type bucket struct {
		color colorful.Color
		n     int
	}
	buckets := make([]bucket, 0, len(counts))
	for key, n := range counts {
		buckets = append(buckets, bucket{
			color: colorful.Color{
				R: float64(key>>8&0xf) / 15,
				G: float64(key>>4&0xf) / 15,
				B: float64(key&0xf) / 15,
			},
			n: n,
		})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].n > buckets[j].n })

	// Fold perceptually-close buckets into the more frequent one.
	merged := buckets[:0]
	for _, b := range buckets {
		absorbed := false
		for i := range merged {
			if merged[i].color.DistanceLab(b.color) < mergeDistance {
				merged[i].n += b.n
				absorbed = true
				break
			}
		}
		if !absorbed {
			merged = append(merged, b)
		}
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].n > merged[j].n })

	if count > len(merged) {
		count = len(merged)
	}
	out := make([]string, 0, count)
	for _, b := range merged[:count] {
		out = append(out, b.color.Hex())
	}
	return out
}
