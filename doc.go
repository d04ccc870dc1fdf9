/*
go-stickfigure models and animates a simple 2D humanoid stick figure from a
fixed set of named joint coordinates.  It provides the skeleton data model
(15 joints, 15 bone connections), linear pose interpolation and keyframe
sequences, procedural wave and walk cycles driven by sinusoidal offsets, a
toy gravity-and-bounce integrator, and JSON pose snapshots.

The core never draws.  The render subpackage rasterizes poses onto GoCV
images, and the example subdirectory contains runnable demos for static
poses, animation, physics and multi-figure scenes.
*/
package stickfigure
