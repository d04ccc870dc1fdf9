package render

import (
	"image"
	"image/color"
	"math"

	"gocv.io/x/gocv"

	stickfigure "github.com/poseworks/go-stickfigure"
)

// Canvas maps normalized figure coordinates onto image pixels.  The Y axis
// is flipped so that figure space points upward while image rows grow
// downward
type Canvas struct {
	// Width and Height are the image dimensions in pixels
	Width  int
	Height int
	// XMin, XMax, YMin, YMax define the visible figure-space viewport
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

// DefaultCanvas covers the reference single-figure viewport of
// x in [-1, 1] and y in [-1, 2]
func DefaultCanvas() Canvas {
	return Canvas{
		Width:  640,
		Height: 960,
		XMin:   -1, XMax: 1,
		YMin: -1, YMax: 2,
	}
}

// SceneCanvas covers a wider viewport of x in [-2, 2] suitable for placing
// several figures side by side
func SceneCanvas() Canvas {
	return Canvas{
		Width:  1280,
		Height: 960,
		XMin:   -2, XMax: 2,
		YMin: -1, YMax: 2,
	}
}

// Pt projects a figure-space point to pixel coordinates
func (c Canvas) Pt(p stickfigure.Point) image.Point {
	x := (p.X - c.XMin) / (c.XMax - c.XMin) * float64(c.Width)
	y := (c.YMax - p.Y) / (c.YMax - c.YMin) * float64(c.Height)
	return image.Pt(int(math.Round(x)), int(math.Round(y)))
}

// Scale converts a figure-space length into pixels along the X axis
func (c Canvas) Scale(l float64) float64 {
	return l / (c.XMax - c.XMin) * float64(c.Width)
}

// NewMat allocates a white background image covering the canvas.  The caller
// owns the Mat and must Close it
func (c Canvas) NewMat() gocv.Mat {
	img := gocv.NewMatWithSize(c.Height, c.Width, gocv.MatTypeCV8UC3)
	img.SetTo(gocv.NewScalar(255, 255, 255, 0))
	return img
}

// Clear repaints the image with the given background color
func Clear(img *gocv.Mat, bg color.RGBA) {
	img.SetTo(gocv.NewScalar(float64(bg.B), float64(bg.G), float64(bg.R), 0))
}

// GridStyle defines the parameters for painting the background grid
type GridStyle struct {
	// Step is the grid line spacing in figure units
	Step      float64
	LineColor color.RGBA
	// AxisColor is used for the x=0 and y=0 axis lines
	AxisColor color.RGBA
}

// DefaultGridStyle returns the light grid with darker axis lines used by
// the demos
func DefaultGridStyle() GridStyle {
	return GridStyle{
		Step:      0.5,
		LineColor: color.RGBA{R: 230, G: 230, B: 230, A: 255},
		AxisColor: Grey,
	}
}

// Grid paints grid lines over the canvas viewport plus the coordinate axes
func Grid(img *gocv.Mat, c Canvas, style GridStyle) {
	if style.Step <= 0 {
		return
	}

	// vertical grid lines
	for x := math.Ceil(c.XMin/style.Step) * style.Step; x <= c.XMax; x += style.Step {
		p1 := c.Pt(stickfigure.Point{X: x, Y: c.YMin})
		p2 := c.Pt(stickfigure.Point{X: x, Y: c.YMax})
		gocv.Line(img, p1, p2, style.LineColor, 1)
	}

	// horizontal grid lines
	for y := math.Ceil(c.YMin/style.Step) * style.Step; y <= c.YMax; y += style.Step {
		p1 := c.Pt(stickfigure.Point{X: c.XMin, Y: y})
		p2 := c.Pt(stickfigure.Point{X: c.XMax, Y: y})
		gocv.Line(img, p1, p2, style.LineColor, 1)
	}

	// axis lines through the origin
	gocv.Line(img,
		c.Pt(stickfigure.Point{X: 0, Y: c.YMin}),
		c.Pt(stickfigure.Point{X: 0, Y: c.YMax}),
		style.AxisColor, 1)
	gocv.Line(img,
		c.Pt(stickfigure.Point{X: c.XMin, Y: 0}),
		c.Pt(stickfigure.Point{X: c.XMax, Y: 0}),
		style.AxisColor, 1)
}
