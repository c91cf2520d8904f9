// pkg/render/assets.go
package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Pattern cell values
const (
	pixelClear = iota
	pixelBackground
	pixelBall
	pixelTarget
)

// iconPattern is a ball resting above a target bar
var iconPattern = [][]int{
	{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
	{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
	{1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2, 1, 1, 1, 1},
	{1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2, 1, 1, 1, 1},
	{1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2, 1, 1, 1, 1},
	{1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 1, 1},
	{1, 1, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 1, 1},
	{1, 1, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 1, 1},
	{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
	{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
}

// IconSize is the edge length of the generated window icon
const IconSize = 16

// NewIcon builds the window icon in the palette colours
func NewIcon(p Palette) *image.RGBA {
	img := createBaseImage(IconSize, IconSize)
	drawPatternOnImage(img, iconPattern, map[int]color.RGBA{
		pixelBackground: p.Background,
		pixelBall:       p.Ball,
		pixelTarget:     p.Target,
	})
	return img
}

// createBaseImage creates a transparent RGBA image with the specified dimensions.
func createBaseImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)
	return img
}

// drawPatternOnImage paints each pattern cell with its colour; cells outside
// the image or without a colour stay transparent.
func drawPatternOnImage(img *image.RGBA, pattern [][]int, colors map[int]color.RGBA) {
	bounds := img.Bounds()
	for y, row := range pattern {
		if y >= bounds.Dy() {
			break
		}
		for x, pixel := range row {
			if x >= bounds.Dx() {
				break
			}
			if c, ok := colors[pixel]; ok {
				img.SetRGBA(x, y, c)
			}
		}
	}
}
