package renderer

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ToByte converts a linear channel value to an integer in [0, 255].
// NaN channels map to 0.
func ToByte(channel float64) int {
	if math.IsNaN(channel) {
		return 0
	}
	return int(math.Max(0, math.Min(255, 255.99*channel)))
}

// ToRGB converts a color to an integer triplet, applying gamma when gamma > 1
func ToRGB(color core.Vec3, gamma float64) (int, int, int) {
	if gamma > 1 {
		color = color.GammaCorrect(gamma)
	}
	return ToByte(color.X), ToByte(color.Y), ToByte(color.Z)
}

// WritePPM writes the image as an ASCII PPM (P3) to w
func WritePPM(w io.Writer, img *Image, gamma float64) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return fmt.Errorf("while writing PPM header: %w", err)
	}

	for _, pixel := range img.Pixels {
		r, g, b := ToRGB(pixel, gamma)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
			return fmt.Errorf("while writing PPM pixels: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while flushing PPM output: %w", err)
	}
	return nil
}
