/*
Coordinate system demo: renders the standing pose with every joint labelled
by name and position.  With -font a TTF file is used for crisper labels,
otherwise the built-in Hershey font is used.
*/
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"os"

	"gocv.io/x/gocv"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	stickfigure "github.com/poseworks/go-stickfigure"
	"github.com/poseworks/go-stickfigure/render"
)

const (
	// Size of the TTF label font
	TTFFontSize = 16
)

func main() {
	log.SetFlags(0)

	imgFile := flag.String("o", "annotated.png", "Image file to write to")
	fontFile := flag.String("font", "", "Optional TTF font file for joint labels")

	flag.Parse()

	fig := stickfigure.NewFigure()
	canvas := render.DefaultCanvas()

	img := canvas.NewMat()
	defer img.Close()

	render.Grid(&img, canvas, render.DefaultGridStyle())
	render.Skeleton(&img, fig.Pose(), canvas, render.DefaultSkeletonStyle())
	render.Title(&img, "Coordinate System Reference", render.TitleFont())

	if *fontFile == "" {
		render.JointLabels(&img, fig.Pose(), canvas, render.DefaultFont())
	} else {
		face, err := loadFace(*fontFile)

		if err != nil {
			log.Fatal("Error loading font: ", err)
		}

		if err := drawTTFLabels(&img, fig.Pose(), canvas, face); err != nil {
			log.Fatal("Error drawing labels: ", err)
		}
	}

	if ok := gocv.IMWrite(*imgFile, img); !ok {
		log.Fatal("Failed to write image to ", *imgFile)
	}

	log.Printf("saved annotated pose to %s", *imgFile)
}

// loadFace loads the TTF font and sets up a new font face
func loadFace(fontPath string) (font.Face, error) {

	fontBytes, err := os.ReadFile(fontPath)

	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	f, err := opentype.Parse(fontBytes)

	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    TTFFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to create type face: %w", err)
	}

	return face, nil
}

// drawTTFLabels writes joint labels onto an RGBA overlay with the TTF face
// and blends the overlay onto the image
func drawTTFLabels(img *gocv.Mat, pose stickfigure.Pose, canvas render.Canvas,
	face font.Face) error {

	rgba := image.NewRGBA(image.Rect(0, 0, img.Cols(), img.Rows()))
	draw.Draw(rgba, rgba.Bounds(), image.NewUniform(color.RGBA{0, 0, 0, 0}),
		image.Point{}, draw.Src)

	for j := 0; j < stickfigure.NumJoints; j++ {
		pt := pose[j]
		text := fmt.Sprintf("%s (%.2f, %.2f)", stickfigure.Joint(j), pt.X, pt.Y)

		pos := canvas.Pt(pt)

		dr := &font.Drawer{
			Dst:  rgba,
			Src:  image.NewUniform(color.RGBA{20, 20, 20, 255}),
			Face: face,
			Dot: fixed.Point26_6{
				X: fixed.Int26_6((pos.X + 8) * 64),
				Y: fixed.Int26_6((pos.Y - 6) * 64),
			},
		}
		dr.DrawString(text)
	}

	// Convert image.RGBA to gocv.Mat and blend over the source image
	overlay, err := gocv.NewMatFromBytes(rgba.Bounds().Dy(), rgba.Bounds().Dx(),
		gocv.MatTypeCV8UC4, rgba.Pix)

	if overlay.Empty() || err != nil {
		return fmt.Errorf("error creating Mat from RGBA")
	}

	defer overlay.Close()

	gocv.CvtColor(overlay, &overlay, gocv.ColorRGBAToBGR)
	gocv.AddWeighted(*img, 1.0, overlay, 1.0, 0, img)

	return nil
}
