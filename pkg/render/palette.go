// pkg/render/palette.go
package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/opd-ai/go-okay/pkg/config"
)

// Palette holds the draw colours shared by every front-end
type Palette struct {
	Background color.RGBA
	Ball       color.RGBA
	Target     color.RGBA
}

// NewPalette parses the configured #rrggbb colours
func NewPalette(colors config.ColorConfig) (Palette, error) {
	var (
		p   Palette
		err error
	)
	if p.Background, err = parseHex("background", colors.Background); err != nil {
		return Palette{}, err
	}
	if p.Ball, err = parseHex("ball", colors.Ball); err != nil {
		return Palette{}, err
	}
	if p.Target, err = parseHex("target", colors.Target); err != nil {
		return Palette{}, err
	}
	return p, nil
}

// DefaultPalette returns the palette of the default configuration
func DefaultPalette() Palette {
	p, err := NewPalette(config.DefaultConfig().Colors)
	if err != nil {
		panic("default colours do not parse: " + err.Error())
	}
	return p
}

func parseHex(name, hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid %s colour %q: %w", name, hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
