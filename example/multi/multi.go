/*
Multi-figure scene demo: renders three independent stick figures side by
side, each with its own pose, into a single image.  Figures share no joint
state, one Figure instance per character.
*/
package main

import (
	"flag"
	"log"

	"gocv.io/x/gocv"

	stickfigure "github.com/poseworks/go-stickfigure"
	"github.com/poseworks/go-stickfigure/render"
)

func main() {
	log.SetFlags(0)

	imgFile := flag.String("o", "multi.png", "Image file to write the scene to")

	flag.Parse()

	offsets := []float64{-0.8, 0, 0.8}
	figures := make([]*stickfigure.Figure, len(offsets))

	for i, dx := range offsets {
		fig := stickfigure.NewFigure()
		fig.Translate(dx, 0)
		figures[i] = fig
	}

	// middle figure raises its arms overhead
	mid := figures[1]
	mid.SetJoint(stickfigure.LeftWrist, stickfigure.Point{X: -0.3, Y: 1.6})
	mid.SetJoint(stickfigure.RightWrist, stickfigure.Point{X: 0.3, Y: 1.6})
	mid.SetJoint(stickfigure.LeftElbow, stickfigure.Point{X: -0.3, Y: 1.3})
	mid.SetJoint(stickfigure.RightElbow, stickfigure.Point{X: 0.3, Y: 1.3})

	// right figure holds a T-pose
	right := figures[2]
	right.SetJoint(stickfigure.LeftWrist, stickfigure.Point{X: 0.1, Y: 1.3})
	right.SetJoint(stickfigure.LeftElbow, stickfigure.Point{X: 0.3, Y: 1.3})
	right.SetJoint(stickfigure.RightWrist, stickfigure.Point{X: 1.5, Y: 1.3})
	right.SetJoint(stickfigure.RightElbow, stickfigure.Point{X: 1.3, Y: 1.3})

	canvas := render.SceneCanvas()

	img := canvas.NewMat()
	defer img.Close()

	render.Grid(&img, canvas, render.DefaultGridStyle())

	for _, fig := range figures {
		render.Skeleton(&img, fig.Pose(), canvas, render.DefaultSkeletonStyle())
	}

	render.Title(&img, "Multiple Stick Figures", render.TitleFont())

	if ok := gocv.IMWrite(*imgFile, img); !ok {
		log.Fatal("Failed to write image to ", *imgFile)
	}

	log.Printf("saved scene to %s", *imgFile)
}
