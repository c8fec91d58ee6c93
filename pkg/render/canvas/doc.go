// Package canvas provides the drawing surface and drawing-context abstraction
// used by the banner renderer.
//
// # Overview
//
// Renderers never talk to a rasterizer directly. They receive a [Drawer], an
// explicit drawing-context handle with a small canvas-2D vocabulary: fill and
// stroke paints, line width, joins and caps, paths, arcs, rectangles and
// right/left/center aligned text. Graphics state changes are scoped with
// [Drawer.Save] and [Drawer.Restore], usually through [Scoped]:
//
//	canvas.Scoped(d, func() {
//	    d.SetStroke(canvas.White.WithAlpha(0x1a))
//	    d.SetLineWidth(15)
//	    // ...
//	})
//
// # Implementations
//
//   - [GG] rasterizes onto a caller-owned [*image.RGBA] using fogleman/gg.
//   - [Recorder] records every operation together with the graphics state in
//     effect. Tests use it to assert on colors and ordering; the JSON sink
//     uses it to emit a draw trace.
//   - [Tee] forwards every call to several drawers at once.
//
// # Colors
//
// [Color] keeps RGB and alpha as separate channels. Translucent variants are
// built explicitly with [Color.WithAlpha] or [Color.MulAlpha] rather than by
// appending hex digits to a color string, so any accepted input format
// (#rgb, #rrggbb, #rrggbbaa, CSS names) composes correctly.
//
// # Surface
//
// Banners are drawn on a fixed [Width] x [Height] raster ([NewSurface]).
package canvas
