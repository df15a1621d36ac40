// Package canvas provides a software 2D rasterizer for Go.
//
// # Overview
//
// canvas is a CPU-side pixel buffer plus the scan-conversion algorithms to
// paint into it: Bresenham lines, midpoint circles, and two-boundary
// scanline polygon fills, all with per-pixel alpha blending. There is no
// GPU, no windowing, and no anti-aliasing beyond linear alpha blending.
//
// # Quick Start
//
//	import "github.com/gogpu/canvas"
//
//	c := canvas.New(256, 256)
//
//	// Draw shapes
//	c.DrawCircleSolid(128, 128, 80, canvas.RGBA{R: 255, A: 255})
//	c.DrawLine(0, 0, 255, 255, canvas.White)
//
//	// Hand off or save
//	words := c.Packed32() // 0x00RRGGBB per pixel, row-major
//	c.SavePNG("out.png")
//
// # Drawing model
//
// Every drawing call funnels through a single blended-write primitive,
// Canvas.DrawPixel, which clips silently at the canvas edges. Shapes that
// run partially off-canvas simply lose their off-canvas pixels; no drawing
// operation fails or panics. Blending truncates per channel, so repeated
// translucent passes are bit-reproducible across platforms.
//
// The Drawable interface lets callers define their own shape kinds and
// render them through Canvas.Draw next to the built-in Line, Circle and
// Polygon shapes.
//
// # Concurrency
//
// A Canvas is not safe for concurrent mutation; callers sharing one across
// goroutines must serialize access themselves.
package canvas
