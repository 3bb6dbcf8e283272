package imageio

import "github.com/gogpu/rast"

// gaussianWeights is a fixed 5-tap Gaussian kernel (sigma ~1.0). The taps
// sum to 1, so uniform regions pass through unchanged.
var gaussianWeights = [5]float32{0.0545, 0.2442, 0.4026, 0.2442, 0.0545}

// GaussianBlur returns a blurred copy of the pixmap using a separable
// 5-tap Gaussian kernel: a horizontal pass followed by a vertical pass.
// Samples outside the image are clamped to the nearest edge pixel, so the
// output has the same dimensions as the input. The input is not modified.
func GaussianBlur(pm *rast.Pixmap) *rast.Pixmap {
	if pm == nil {
		return nil
	}

	width := pm.Width()
	height := pm.Height()

	temp := rast.NewPixmap(width, height)
	dst := rast.NewPixmap(width, height)

	// Pass 1: horizontal (pm -> temp).
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, b, a float32
			for k, w := range gaussianWeights {
				c := clampedPixel(pm, x+k-2, y)
				r += c.R * w
				g += c.G * w
				b += c.B * w
				a += c.A * w
			}
			temp.SetPixel(x, y, rast.RGBA{R: r, G: g, B: b, A: a})
		}
	}

	// Pass 2: vertical (temp -> dst).
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, b, a float32
			for k, w := range gaussianWeights {
				c := clampedPixel(temp, x, y+k-2)
				r += c.R * w
				g += c.G * w
				b += c.B * w
				a += c.A * w
			}
			dst.SetPixel(x, y, rast.RGBA{R: r, G: g, B: b, A: a})
		}
	}

	return dst
}

// clampedPixel reads a pixel with coordinates clamped to the image bounds.
func clampedPixel(pm *rast.Pixmap, x, y int) rast.RGBA {
	if x < 0 {
		x = 0
	} else if x >= pm.Width() {
		x = pm.Width() - 1
	}
	if y < 0 {
		y = 0
	} else if y >= pm.Height() {
		y = pm.Height() - 1
	}
	return pm.GetPixel(x, y)
}
