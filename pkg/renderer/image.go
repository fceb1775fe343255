package renderer

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Image holds averaged linear colors, rows top to bottom, columns left to right
type Image struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewImage creates a black image of the given size
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color at column x of row y (row 0 is the top)
func (img *Image) At(x, y int) core.Vec3 {
	return img.Pixels[y*img.Width+x]
}

// Set stores the color at column x of row y
func (img *Image) Set(x, y int, color core.Vec3) {
	img.Pixels[y*img.Width+x] = color
}

// Row returns the slice of pixels for row y
func (img *Image) Row(y int) []core.Vec3 {
	return img.Pixels[y*img.Width : (y+1)*img.Width]
}
