package render

import "image/color"

var (
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	Blue   = color.RGBA{R: 30, G: 60, B: 255, A: 255}
	Red    = color.RGBA{R: 220, G: 30, B: 30, A: 255}
	Orange = color.RGBA{R: 255, G: 128, B: 0, A: 255}

	// posePalette are the colors used for the skeleton limbs and joints
	posePalette = []color.RGBA{
		{R: 255, G: 128, B: 0, A: 255},
		{R: 255, G: 153, B: 51, A: 255},
		{R: 230, G: 230, B: 0, A: 255},
		{R: 255, G: 102, B: 255, A: 255},
		{R: 102, G: 178, B: 255, A: 255},
		{R: 51, G: 153, B: 255, A: 255},
		{R: 255, G: 51, B: 51, A: 255},
		{R: 51, G: 255, B: 51, A: 255},
		{R: 0, G: 0, B: 255, A: 255},
	}

	// boneColors correspond to the skeleton's bones in drawing order:
	// head and torso first, then hips, arms and legs.  require 15 colors
	boneColors = []color.RGBA{
		posePalette[8], posePalette[8], // head-neck, neck-spine
		posePalette[4], posePalette[4], // shoulders
		posePalette[8], posePalette[8], posePalette[8], // spine-hips, hip-hip
		posePalette[5], posePalette[5], // left arm
		posePalette[3], posePalette[3], // right arm
		posePalette[0], posePalette[0], // left leg
		posePalette[1], posePalette[1], // right leg
	}

	// jointColors correspond to the joints in identifier order.
	// require 15 colors
	jointColors = []color.RGBA{
		posePalette[6], posePalette[6], posePalette[6], // head, neck, spine
		posePalette[5], posePalette[3], // shoulders
		posePalette[5], posePalette[3], // elbows
		posePalette[5], posePalette[3], // wrists
		posePalette[0], posePalette[1], // hips
		posePalette[0], posePalette[1], // knees
		posePalette[0], posePalette[1], // ankles
	}
)
