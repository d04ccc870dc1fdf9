package render

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	stickfigure "github.com/poseworks/go-stickfigure"
)

// SkeletonStyle defines the parameters for drawing a stick figure
type SkeletonStyle struct {
	BoneThickness int
	JointRadius   int
	// Mono forces a single color for all bones and joints instead of the
	// per-limb palette
	Mono       bool
	BoneColor  color.RGBA
	JointColor color.RGBA
}

// DefaultSkeletonStyle returns the per-limb colored style
func DefaultSkeletonStyle() SkeletonStyle {
	return SkeletonStyle{
		BoneThickness: 4,
		JointRadius:   6,
	}
}

// MonoSkeletonStyle returns a single-color style matching the reference
// look, blue bones with red joints
func MonoSkeletonStyle() SkeletonStyle {
	return SkeletonStyle{
		BoneThickness: 4,
		JointRadius:   6,
		Mono:          true,
		BoneColor:     Blue,
		JointColor:    Red,
	}
}

// Skeleton renders the pose onto the image: a line segment per bone, then a
// filled circle per joint on top
func Skeleton(img *gocv.Mat, pose stickfigure.Pose, c Canvas, style SkeletonStyle) {

	// draw bone lines
	for i, b := range stickfigure.Bones() {
		clr := boneColors[i%len(boneColors)]
		if style.Mono {
			clr = style.BoneColor
		}

		gocv.Line(img, c.Pt(pose[b.A]), c.Pt(pose[b.B]), clr, style.BoneThickness)
	}

	// draw circles at the joints
	for j := 0; j < stickfigure.NumJoints; j++ {
		clr := jointColors[j%len(jointColors)]
		if style.Mono {
			clr = style.JointColor
		}

		gocv.Circle(img, c.Pt(pose[j]), style.JointRadius, clr, -1)
	}
}

// Title writes a heading line across the top of the image
func Title(img *gocv.Mat, text string, font Font) {
	gocv.PutTextWithParams(img, text, image.Pt(font.LeftPad, font.TopPad),
		font.Face, font.Scale, font.Color, font.Thickness,
		font.LineType, false)
}

// JointLabels writes each joint's name and coordinates beside its position
func JointLabels(img *gocv.Mat, pose stickfigure.Pose, c Canvas, font Font) {
	for j := 0; j < stickfigure.NumJoints; j++ {
		pt := pose[j]
		text := fmt.Sprintf("%s (%.2f, %.2f)", stickfigure.Joint(j), pt.X, pt.Y)

		pos := c.Pt(pt)
		pos.X += font.LeftPad
		pos.Y -= font.BottomPad

		gocv.PutTextWithParams(img, text, pos,
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}
}
