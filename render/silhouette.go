package render

import (
	"fmt"
	"image"
	"image/color"

	clipper "github.com/ctessum/go.clipper"
	"gocv.io/x/gocv"

	stickfigure "github.com/poseworks/go-stickfigure"
)

// SilhouetteStyle defines the parameters for the filled body outline
type SilhouetteStyle struct {
	// LimbRadius is the limb half-thickness in figure units
	LimbRadius float64
	// HeadRadius is the head circle radius in figure units
	HeadRadius float64
	Fill       color.RGBA
}

// DefaultSilhouetteStyle returns a soft grey body behind the skeleton
func DefaultSilhouetteStyle() SilhouetteStyle {
	return SilhouetteStyle{
		LimbRadius: 0.06,
		HeadRadius: 0.15,
		Fill:       color.RGBA{R: 235, G: 235, B: 245, A: 255},
	}
}

// Silhouette fills a rounded body outline underneath the skeleton.  Every
// bone segment is offset into a capsule polygon with round joins and the
// overlapping capsules are merged into one outline, which is then filled.
// Draw it before Skeleton so the bones stay visible
func Silhouette(img *gocv.Mat, pose stickfigure.Pose, c Canvas, style SilhouetteStyle) error {

	radius := c.Scale(style.LimbRadius)

	if radius < 1 {
		return fmt.Errorf("limb radius %f is below one pixel", style.LimbRadius)
	}

	// offset each bone segment as an open path with rounded ends.  the
	// offsetter merges the per-bone capsules into union polygons
	co := clipper.NewClipperOffset()

	for _, b := range stickfigure.Bones() {
		p1 := c.Pt(pose[b.A])
		p2 := c.Pt(pose[b.B])

		path := clipper.Path{
			&clipper.IntPoint{X: clipper.CInt(p1.X), Y: clipper.CInt(p1.Y)},
			&clipper.IntPoint{X: clipper.CInt(p2.X), Y: clipper.CInt(p2.Y)},
		}

		co.AddPath(path, clipper.JtRound, clipper.EtOpenRound)
	}

	solution := co.Execute(radius)

	if len(solution) == 0 {
		return fmt.Errorf("silhouette offset produced no polygons")
	}

	// convert the merged polygons to point vectors and fill
	ptsVec := gocv.NewPointsVector()
	defer ptsVec.Close()

	for _, poly := range solution {
		points := make([]image.Point, 0, len(poly))

		for _, ip := range poly {
			points = append(points, image.Pt(int(ip.X), int(ip.Y)))
		}

		pv := gocv.NewPointVectorFromPoints(points)
		ptsVec.Append(pv)
		pv.Close()
	}

	gocv.FillPoly(img, ptsVec, style.Fill)

	// the head is a point, not a bone segment, so it gets its own circle
	headPx := int(c.Scale(style.HeadRadius))
	gocv.Circle(img, c.Pt(pose[stickfigure.Head]), headPx, style.Fill, -1)

	return nil
}
