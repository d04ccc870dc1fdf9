/*
Physics toy demo: lifts the figure one unit above its stance and drops it
under gravity, with the ankles bouncing off a floor constraint.
*/
package main

import (
	"flag"
	"fmt"
	"log"

	"gocv.io/x/gocv"

	stickfigure "github.com/poseworks/go-stickfigure"
	"github.com/poseworks/go-stickfigure/render"
)

func main() {
	log.SetFlags(0)

	vidFile := flag.String("v", "physics.mp4", "Video file to write the simulation to")
	frames := flag.Int("frames", 120, "Number of simulation steps")
	fps := flag.Float64("fps", 20, "Playback frame rate")
	lift := flag.Float64("lift", 1.0, "Height the figure is lifted before the drop")

	flag.Parse()

	fig := stickfigure.NewFigure()
	fig.Translate(0, *lift)

	sim := stickfigure.NewSimulator(fig, stickfigure.DefaultSimulatorParams())

	canvas := render.Canvas{
		Width:  640,
		Height: 1120,
		XMin:   -1, XMax: 1,
		YMin: -1, YMax: 2.5,
	}

	writer, err := gocv.VideoWriterFile(*vidFile, "mp4v", *fps,
		canvas.Width, canvas.Height, true)

	if err != nil {
		log.Fatal("Error opening video writer: ", err)
	}

	defer writer.Close()

	img := canvas.NewMat()
	defer img.Close()

	for frame := 0; frame < *frames; frame++ {
		sim.Step()

		render.Clear(&img, render.White)
		render.Grid(&img, canvas, render.DefaultGridStyle())
		render.Skeleton(&img, fig.Pose(), canvas, render.DefaultSkeletonStyle())
		render.Title(&img, fmt.Sprintf("Physics Simulation - Frame %d/%d", frame+1, *frames),
			render.TitleFont())

		if err := writer.Write(img); err != nil {
			log.Fatal("Error writing frame: ", err)
		}
	}

	log.Printf("saved simulation to %s", *vidFile)
}
