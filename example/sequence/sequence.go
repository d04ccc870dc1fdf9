/*
Keyframe sequence demo: blends a standing pose into arms raised, a squat and
back to standing, and writes the playback as a video file.
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

	vidFile := flag.String("v", "sequence.mp4", "Video file to write the playback to")
	fps := flag.Float64("fps", 20, "Playback frame rate")

	flag.Parse()

	standing := stickfigure.DefaultPose()

	// arms raised overhead
	raised := standing
	raised[stickfigure.LeftWrist] = stickfigure.Point{X: -0.4, Y: 1.6}
	raised[stickfigure.LeftElbow] = stickfigure.Point{X: -0.4, Y: 1.3}
	raised[stickfigure.RightWrist] = stickfigure.Point{X: 0.4, Y: 1.6}
	raised[stickfigure.RightElbow] = stickfigure.Point{X: 0.4, Y: 1.3}

	// squat, hips and spine dropped with knees pushed out
	squat := standing
	squat[stickfigure.LeftHip] = stickfigure.Point{X: -0.2, Y: 0.3}
	squat[stickfigure.RightHip] = stickfigure.Point{X: 0.2, Y: 0.3}
	squat[stickfigure.SpineMid] = stickfigure.Point{X: 0, Y: 0.6}
	squat[stickfigure.LeftKnee] = stickfigure.Point{X: -0.3, Y: -0.1}
	squat[stickfigure.RightKnee] = stickfigure.Point{X: 0.3, Y: -0.1}

	var seq stickfigure.Sequence
	seq.Add(standing, 1.0)
	seq.Add(raised, 1.5)
	seq.Add(squat, 1.5)
	seq.Add(standing, 1.0)

	log.Printf("playing %d keyframes over %.1fs", seq.Len(), seq.Duration())

	canvas := render.DefaultCanvas()

	writer, err := gocv.VideoWriterFile(*vidFile, "mp4v", *fps,
		canvas.Width, canvas.Height, true)

	if err != nil {
		log.Fatal("Error opening video writer: ", err)
	}

	defer writer.Close()

	img := canvas.NewMat()
	defer img.Close()

	poses := seq.Sample(*fps)

	for i, pose := range poses {
		render.Clear(&img, render.White)
		render.Grid(&img, canvas, render.DefaultGridStyle())
		render.Skeleton(&img, pose, canvas, render.DefaultSkeletonStyle())
		render.Title(&img, fmt.Sprintf("Pose Sequence - Frame %d/%d", i+1, len(poses)),
			render.TitleFont())

		if err := writer.Write(img); err != nil {
			log.Fatal("Error writing frame: ", err)
		}
	}

	log.Printf("saved playback to %s", *vidFile)
}
