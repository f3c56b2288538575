// Package style centralizes theme colors, DPI-scaled layout metrics,
// font faces, and small widget constructors shared by the screens.
package style

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Theme colors.
var (
	Background    = color.NRGBA{0x1a, 0x1a, 0x2e, 0xff} // dark blue-gray
	Surface       = color.NRGBA{0x25, 0x25, 0x3a, 0xff}
	Primary       = color.NRGBA{0x4a, 0x4a, 0x8a, 0xff} // muted purple
	PrimaryHover  = color.NRGBA{0x5a, 0x5a, 0x9a, 0xff}
	Text          = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	TextSecondary = color.NRGBA{0xaa, 0xaa, 0xaa, 0xff}
	Accent        = color.NRGBA{0xff, 0xd7, 0x00, 0xff} // gold for favorites
	Danger        = color.NRGBA{0x8a, 0x2a, 0x2a, 0xff} // discard red
	DangerHover   = color.NRGBA{0x9a, 0x3a, 0x3a, 0xff}
	Border        = color.NRGBA{0x3a, 0x3a, 0x5a, 0xff}
)

// currentFontSize is the UI font size in points.
var currentFontSize float64 = 14

// dpiScale is the device pixel ratio (1.0 on non-retina displays).
var dpiScale float64 = 1.0

// Px converts a logical pixel value to physical pixels using the
// current DPI scale.
func Px(logical int) int {
	return int(float64(logical) * dpiScale)
}

// SetDPIScale sets the DPI scale factor and recalculates the spatial
// layout vars.
func SetDPIScale(scale float64) {
	if scale < 1.0 {
		scale = 1.0
	}
	dpiScale = scale

	DefaultPadding = Px(baseDefaultPadding)
	SmallSpacing = Px(baseSmallSpacing)
	TinySpacing = Px(baseTinySpacing)
	ButtonPaddingSmall = Px(baseButtonPaddingSmall)
	ButtonPaddingMedium = Px(baseButtonPaddingMedium)
	ActionBarHeight = Px(baseActionBarHeight)
	ImagePadding = Px(baseImagePadding)
	QueueRowHeight = Px(baseQueueRowHeight)
}

// sharedFontSource is the TrueType source shared by all faces.
var sharedFontSource *text.GoTextFaceSource

// fontFace is the cached UI font face.
var fontFace text.Face

func loadFontSource() *text.GoTextFaceSource {
	if sharedFontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Printf("Failed to load font source: %v", err)
			return nil
		}
		sharedFontSource = source
	}
	return sharedFontSource
}

// FontFace returns the font face to use for UI text.
func FontFace() *text.Face {
	if fontFace == nil {
		source := loadFontSource()
		if source == nil {
			return &fontFace
		}
		fontFace = &text.GoTextFace{
			Source: source,
			Size:   currentFontSize * dpiScale,
		}
	}
	return &fontFace
}

// ButtonTextColor returns the color set used for button labels.
func ButtonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle: Text,
	}
}

// ButtonImage returns the standard button background images.
func ButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(Surface),
		Hover:   image.NewNineSliceColor(PrimaryHover),
		Pressed: image.NewNineSliceColor(Primary),
	}
}

// PrimaryButtonImage returns the prominent button background used for
// accept-class actions.
func PrimaryButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(Primary),
		Hover:   image.NewNineSliceColor(PrimaryHover),
		Pressed: image.NewNineSliceColor(Surface),
	}
}

// DangerButtonImage returns the background used for discard actions.
func DangerButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(Danger),
		Hover:   image.NewNineSliceColor(DangerHover),
		Pressed: image.NewNineSliceColor(Surface),
	}
}
