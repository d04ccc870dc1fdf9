/*
Snapshot demo: adjusts a pose through the name-keyed joint API, saves it as
a JSON snapshot, loads it back and renders the loaded pose to an image.
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

	poseFile := flag.String("p", "custom_pose.json", "Snapshot file to write and read back")
	imgFile := flag.String("o", "loaded_pose.png", "Image file to render the loaded pose to")

	flag.Parse()

	fig := stickfigure.NewFigure()

	// raise both wrists through the serialization-boundary name API
	updates := map[string]stickfigure.Point{
		"left_wrist":  {X: -0.5, Y: 1.5},
		"right_wrist": {X: 0.5, Y: 1.5},
	}

	for name, pt := range updates {
		if err := fig.SetJointByName(name, pt); err != nil {
			log.Fatal("Error updating joint: ", err)
		}
	}

	if err := stickfigure.SavePose(*poseFile, fig.Pose()); err != nil {
		log.Fatal("Error saving pose: ", err)
	}

	log.Printf("saved pose to %s", *poseFile)

	loaded, err := stickfigure.LoadPose(*poseFile)

	if err != nil {
		log.Fatal("Error loading pose: ", err)
	}

	log.Printf("loaded pose from %s", *poseFile)

	canvas := render.DefaultCanvas()

	img := canvas.NewMat()
	defer img.Close()

	render.Grid(&img, canvas, render.DefaultGridStyle())
	render.Skeleton(&img, loaded, canvas, render.DefaultSkeletonStyle())
	render.Title(&img, "Loaded Custom Pose", render.TitleFont())

	if ok := gocv.IMWrite(*imgFile, img); !ok {
		log.Fatal("Failed to write image to ", *imgFile)
	}

	log.Printf("saved visualization to %s", *imgFile)
}
