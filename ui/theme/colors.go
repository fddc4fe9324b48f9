package theme

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the set of colors one theme mode draws with.
type Palette struct {
	Background     color.NRGBA
	Surface        color.NRGBA
	SurfaceVariant color.NRGBA
	InputBg        color.NRGBA
	Divider        color.NRGBA
	Overlay        color.NRGBA

	TextPrimary   color.NRGBA
	TextSecondary color.NRGBA
	TextDisabled  color.NRGBA
	TextHint      color.NRGBA

	Hover        color.NRGBA
	Pressed      color.NRGBA
	DisabledBg   color.NRGBA
	Scrollbar    color.NRGBA
	DropZone     color.NRGBA
	DropZoneEdge color.NRGBA
}

// Accent colors shared by both modes
var (
	ColorPrimary        = color.NRGBA{R: 92, G: 58, B: 88, A: 255}   // #5C3A58 (brand plum)
	ColorPrimaryVariant = color.NRGBA{R: 71, G: 45, B: 68, A: 255}   // #472D44 (darker plum)
	ColorSecondary      = color.NRGBA{R: 125, G: 90, B: 121, A: 255} // #7D5A79 (lighter plum)

	ColorSuccess    = color.NRGBA{R: 76, G: 175, B: 80, A: 255}   // #4CAF50 - Completed
	ColorWarning    = color.NRGBA{R: 255, G: 193, B: 7, A: 255}   // #FFC107 - Warning
	ColorError      = color.NRGBA{R: 244, G: 67, B: 54, A: 255}   // #F44336 - Failed
	ColorProcessing = color.NRGBA{R: 33, G: 150, B: 243, A: 255}  // #2196F3 - Processing
	ColorPending    = color.NRGBA{R: 117, G: 117, B: 117, A: 255} // #757575 - Pending
)

// DarkPalette is the dark mode palette
var DarkPalette = Palette{
	Background:     color.NRGBA{R: 18, G: 18, B: 18, A: 255}, // #121212
	Surface:        color.NRGBA{R: 30, G: 30, B: 30, A: 255}, // #1E1E1E
	SurfaceVariant: color.NRGBA{R: 40, G: 40, B: 40, A: 255}, // #282828
	InputBg:        color.NRGBA{R: 35, G: 35, B: 35, A: 255}, // #232323
	Divider:        color.NRGBA{R: 48, G: 48, B: 48, A: 255}, // #303030
	Overlay:        color.NRGBA{R: 50, G: 50, B: 50, A: 255}, // #323232

	TextPrimary:   color.NRGBA{R: 255, G: 255, B: 255, A: 255}, // #FFFFFF
	TextSecondary: color.NRGBA{R: 158, G: 158, B: 158, A: 255}, // #9E9E9E
	TextDisabled:  color.NRGBA{R: 97, G: 97, B: 97, A: 255},    // #616161
	TextHint:      color.NRGBA{R: 117, G: 117, B: 117, A: 255}, // #757575

	Hover:        color.NRGBA{R: 255, G: 255, B: 255, A: 20},
	Pressed:      color.NRGBA{R: 255, G: 255, B: 255, A: 30},
	DisabledBg:   color.NRGBA{R: 38, G: 38, B: 38, A: 255}, // #262626
	Scrollbar:    color.NRGBA{R: 80, G: 80, B: 80, A: 255}, // #505050
	DropZone:     color.NRGBA{R: 26, G: 26, B: 26, A: 255}, // #1A1A1A
	DropZoneEdge: color.NRGBA{R: 70, G: 70, B: 70, A: 255}, // #464646
}

// LightPalette is the light mode palette
var LightPalette = Palette{
	Background:     color.NRGBA{R: 250, G: 250, B: 250, A: 255}, // #FAFAFA
	Surface:        color.NRGBA{R: 255, G: 255, B: 255, A: 255}, // #FFFFFF
	SurfaceVariant: color.NRGBA{R: 240, G: 240, B: 240, A: 255}, // #F0F0F0
	InputBg:        color.NRGBA{R: 255, G: 255, B: 255, A: 255}, // #FFFFFF
	Divider:        color.NRGBA{R: 224, G: 224, B: 224, A: 255}, // #E0E0E0
	Overlay:        color.NRGBA{R: 245, G: 245, B: 245, A: 255}, // #F5F5F5

	TextPrimary:   color.NRGBA{R: 33, G: 33, B: 33, A: 255},    // #212121
	TextSecondary: color.NRGBA{R: 97, G: 97, B: 97, A: 255},    // #616161
	TextDisabled:  color.NRGBA{R: 189, G: 189, B: 189, A: 255}, // #BDBDBD
	TextHint:      color.NRGBA{R: 158, G: 158, B: 158, A: 255}, // #9E9E9E

	Hover:        color.NRGBA{R: 0, G: 0, B: 0, A: 15},
	Pressed:      color.NRGBA{R: 0, G: 0, B: 0, A: 25},
	DisabledBg:   color.NRGBA{R: 230, G: 230, B: 230, A: 255}, // #E6E6E6
	Scrollbar:    color.NRGBA{R: 189, G: 189, B: 189, A: 255}, // #BDBDBD
	DropZone:     color.NRGBA{R: 245, G: 242, B: 245, A: 255}, // #F5F2F5
	DropZoneEdge: color.NRGBA{R: 200, G: 190, B: 199, A: 255}, // #C8BEC7
}

// Blend mixes two colors in RGB space (0.0 = first color, 1.0 = second color).
// Fully transparent colors take the hue of the other one.
func Blend(c1, c2 color.Color, weight float64) color.Color {
	from, okFrom := colorful.MakeColor(c1)
	to, okTo := colorful.MakeColor(c2)
	_, _, _, a1 := c1.RGBA()
	_, _, _, a2 := c2.RGBA()
	alpha := uint8(float64(a1>>8)*(1-weight) + float64(a2>>8)*weight + 0.5)

	switch {
	case !okFrom && !okTo:
		return color.NRGBA{}
	case !okFrom:
		from = to
	case !okTo:
		to = from
	}

	r, g, b := from.BlendRgb(to, weight).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}

// WithAlpha returns a color with modified alpha value
func WithAlpha(c color.Color, alpha uint8) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: alpha,
	}
}
