// Package banner renders profile banners onto a [canvas.Drawer].
//
// # Overview
//
// A render is a fixed sequence of stages over one drawing surface:
//
//  1. clear the surface
//  2. compute effective inputs ([Effective])
//  3. resolve the style ([styles.Resolve])
//  4. paint the background
//  5. paint the decoration, if the style has one
//  6. paint the text layer ([PaintText])
//
// An unknown style stops the render after the clear. Otherwise stages 4 to 6
// always run in order. A decoration that panics is recovered: its drawing
// state is restored, the text layer is still painted and [Renderer.Render]
// reports a RENDER_FAILED error.
//
// # Usage
//
//	r := banner.New(banner.WithSeed(42))
//	img, err := r.RenderImage(ctx, banner.Config{
//	    Name:  "Ada Lovelace",
//	    Style: styles.Terminal,
//	})
//
// # Inputs
//
// Text fields are trimmed and replaced by [Defaults] when empty. Colors are
// CSS values; an unparseable color falls back to the field's default and is
// logged as a warning. Callers that want strict validation should check
// colors with [canvas.ParseColor] first.
package banner
