package texture

import (
	"image"
	"math"
)

// Size is a width/height pair in pixels.
type Size struct {
	W int
	H int
}

// BestFit computes the scaled size and centering offset for content
// placed in a container. With fit true the content scales to fit
// entirely inside the container (letterboxed, never cropped); with fit
// false it scales to fill the container (cropped at the edges). The
// returned offset is the symmetric negative paste offset for any axis
// where the scaled content still exceeds the container, and zero
// otherwise.
func BestFit(content, container Size, fit bool) (Size, image.Point) {
	rx := float64(container.W) / float64(content.W)
	ry := float64(container.H) / float64(content.H)

	var ratio float64
	if fit {
		ratio = math.Min(rx, ry)
	} else {
		ratio = math.Max(rx, ry)
	}

	scaled := Size{
		W: int(math.Round(float64(content.W) * ratio)),
		H: int(math.Round(float64(content.H) * ratio)),
	}

	var offset image.Point
	if scaled.W > container.W {
		offset.X = -int(math.Round(float64(scaled.W-container.W) / 2))
	}
	if scaled.H > container.H {
		offset.Y = -int(math.Round(float64(scaled.H-container.H) / 2))
	}
	return scaled, offset
}

// HPad returns the left padding that centers content of the scaled
// width inside a container of the given width, zero when the content
// is at least as wide as the container.
func HPad(scaledW, containerW int) int {
	if scaledW >= containerW {
		return 0
	}
	return (containerW - scaledW) / 2
}

// FitWithin returns content scaled down to fit inside the bounds,
// never upscaled. This is the decode-time resolution cap: sources
// smaller than the bounds keep their intrinsic size.
func FitWithin(content, bounds Size) Size {
	if content.W <= bounds.W && content.H <= bounds.H {
		return content
	}
	scaled, _ := BestFit(content, bounds, true)
	if scaled.W < 1 {
		scaled.W = 1
	}
	if scaled.H < 1 {
		scaled.H = 1
	}
	return scaled
}
