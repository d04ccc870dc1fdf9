/*
Demo of the stick figure model and renderer.  Mode 1 renders the static
standing pose to an image file, mode 2 animates the waving cycle and mode 3
animates the walking cycle.  An empty mode defaults to the static pose,
matching the reference behavior.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"gocv.io/x/gocv"

	stickfigure "github.com/poseworks/go-stickfigure"
	"github.com/poseworks/go-stickfigure/render"
)

// errQuit signals that the user closed the animation window
var errQuit = errors.New("quit requested")

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	mode := flag.String("mode", "", "1=static pose, 2=wave animation, 3=walk animation (empty defaults to static)")
	imgFile := flag.String("o", "output.png", "Image file to write the static pose to")
	vidFile := flag.String("v", "animation.mp4", "Video file to write animations to")
	frames := flag.Int("frames", 80, "Number of frames in an animation")
	fps := flag.Float64("fps", 20, "Animation frame rate")
	show := flag.Bool("show", false, "Display the animation in a window instead of writing a video")
	outline := flag.Bool("outline", false, "Fill a body silhouette behind the skeleton")

	flag.Parse()

	fig := stickfigure.NewFigure()
	canvas := render.DefaultCanvas()

	log.Printf("joints: %d, connections: %d", stickfigure.NumJoints, stickfigure.NumBones)

	var err error

	switch *mode {
	case "2":
		gen := stickfigure.Waver(stickfigure.DefaultWaveParams())
		err = runAnimation(fig, canvas, gen, "Waving", *vidFile, *frames, *fps, *show, *outline)

	case "3":
		gen := stickfigure.Walker(stickfigure.DefaultWalkParams())
		err = runAnimation(fig, canvas, gen, "Walking", *vidFile, *frames, *fps, *show, *outline)

	default:
		err = writeStatic(fig, canvas, *imgFile, *outline)
	}

	if errors.Is(err, errQuit) {
		log.Println("stopped")
		return
	}

	if err != nil {
		log.Fatal("Error: ", err)
	}

	log.Println("done")
}

// drawFrame paints one complete frame of the figure onto img
func drawFrame(img *gocv.Mat, fig *stickfigure.Figure, canvas render.Canvas,
	title string, outline bool) error {

	render.Clear(img, render.White)
	render.Grid(img, canvas, render.DefaultGridStyle())

	if outline {
		if err := render.Silhouette(img, fig.Pose(), canvas,
			render.DefaultSilhouetteStyle()); err != nil {
			return err
		}
	}

	render.Skeleton(img, fig.Pose(), canvas, render.DefaultSkeletonStyle())
	render.Title(img, title, render.TitleFont())

	return nil
}

// writeStatic renders the figure's current pose to an image file
func writeStatic(fig *stickfigure.Figure, canvas render.Canvas,
	filename string, outline bool) error {

	img := canvas.NewMat()
	defer img.Close()

	if err := drawFrame(&img, fig, canvas, "Stick Figure Skeleton", outline); err != nil {
		return err
	}

	if ok := gocv.IMWrite(filename, img); !ok {
		return fmt.Errorf("failed to write image to %s", filename)
	}

	log.Printf("saved static pose to %s", filename)
	return nil
}

// runAnimation drives the generator over the figure, emitting each frame to
// either a video file or a display window
func runAnimation(fig *stickfigure.Figure, canvas render.Canvas,
	gen stickfigure.Generator, title, vidFile string, frames int,
	fps float64, show, outline bool) error {

	img := canvas.NewMat()
	defer img.Close()

	var window *gocv.Window
	var writer *gocv.VideoWriter
	var err error

	if show {
		window = gocv.NewWindow(title)
		defer window.Close()
	} else {
		writer, err = gocv.VideoWriterFile(vidFile, "mp4v", fps,
			canvas.Width, canvas.Height, true)

		if err != nil {
			return fmt.Errorf("error opening video writer: %w", err)
		}

		defer writer.Close()
	}

	delay := int(1000 / fps)

	err = stickfigure.Animate(fig, frames, gen, func(frame int) error {
		frameTitle := fmt.Sprintf("%s - Frame %d/%d", title, frame+1, frames)

		if err := drawFrame(&img, fig, canvas, frameTitle, outline); err != nil {
			return err
		}

		if show {
			window.IMShow(img)

			// quit on ESC or q
			if key := window.WaitKey(delay); key == 27 || key == 'q' {
				return errQuit
			}

			return nil
		}

		return writer.Write(img)
	})

	if err == nil && !show {
		log.Printf("saved animation to %s", vidFile)
	}

	return err
}
