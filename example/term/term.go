/*
Terminal animation viewer: plays the wave or walk cycle as character art
using tcell.  Press q or ESC to quit.
*/
package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	stickfigure "github.com/poseworks/go-stickfigure"
)

func main() {
	log.SetFlags(0)

	mode := flag.String("mode", "walk", "Animation to play: wave or walk")
	fps := flag.Int("fps", 20, "Frame rate")
	frames := flag.Int("frames", 80, "Frames per animation cycle")

	flag.Parse()

	var gen stickfigure.Generator

	switch *mode {
	case "wave":
		gen = stickfigure.Waver(stickfigure.DefaultWaveParams())
	case "walk":
		gen = stickfigure.Walker(stickfigure.DefaultWalkParams())
	default:
		log.Fatal("unknown mode: ", *mode)
	}

	screen, err := tcell.NewScreen()

	if err != nil {
		log.Fatal("Error creating screen: ", err)
	}

	if err := screen.Init(); err != nil {
		log.Fatal("Error initializing screen: ", err)
	}

	defer screen.Fini()

	// input events are polled off the frame loop
	quit := make(chan struct{})

	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
					close(quit)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	fig := stickfigure.NewFigure()
	base := fig.Pose()

	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()

	frame := 0

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			pose := gen(base, frame%*frames, *frames)
			draw(screen, pose)
			frame++
		}
	}
}

// draw renders one pose onto the screen
func draw(s tcell.Screen, pose stickfigure.Pose) {
	s.Clear()

	w, h := s.Size()

	boneStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	jointStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)

	for _, b := range stickfigure.Bones() {
		x1, y1 := project(pose[b.A], w, h)
		x2, y2 := project(pose[b.B], w, h)
		plotLine(s, x1, y1, x2, y2, boneStyle)
	}

	for j := 0; j < stickfigure.NumJoints; j++ {
		x, y := project(pose[j], w, h)

		ch := 'o'
		if stickfigure.Joint(j) == stickfigure.Head {
			ch = '@'
		}

		s.SetContent(x, y, ch, nil, jointStyle)
	}

	s.Show()
}

// project maps the figure viewport (y from -1 to 2) onto the cell grid.
// Terminal cells are roughly twice as tall as wide, so the X axis is
// stretched to keep the figure's proportions
func project(p stickfigure.Point, w, h int) (int, int) {
	sy := float64(h-1) / 3.0
	sx := sy * 2

	x := float64(w)/2 + p.X*sx
	y := (2 - p.Y) * sy

	return int(x), int(y)
}

// plotLine draws a bone with Bresenham's algorithm
func plotLine(s tcell.Screen, x1, y1, x2, y2 int, style tcell.Style) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}

	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx + dy

	for {
		s.SetContent(x1, y1, '.', nil, style)

		if x1 == x2 && y1 == y2 {
			return
		}

		e2 := 2 * err

		if e2 >= dy {
			err += dy
			x1 += sx
		}

		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
