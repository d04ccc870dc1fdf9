package render

import (
	"gocv.io/x/gocv"
	"image/color"
)

// Font defines the parameters for rendering text on an image using GoCV
type Font struct {
	Face      gocv.HersheyFont
	Scale     float64
	Color     color.RGBA
	Thickness int
	LineType  gocv.LineType
	// Padding to place around text
	LeftPad   int
	TopPad    int
	BottomPad int
}

// DefaultFont returns default font settings for labels
func DefaultFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.4,
		Color:     Black,
		Thickness: 1,
		LineType:  gocv.LineAA,
		LeftPad:   4,
		TopPad:    4,
		BottomPad: 6,
	}
}

// TitleFont returns the larger font used for frame headings
func TitleFont() Font {
	return Font{
		Face:      gocv.FontHersheyDuplex,
		Scale:     0.8,
		Color:     Black,
		Thickness: 1,
		LineType:  gocv.LineAA,
		LeftPad:   10,
		TopPad:    30,
		BottomPad: 6,
	}
}
