// Package render groups the banner drawing packages.
//
// # Overview
//
//   - [canvas]: the Drawer interface, colors, paints, the gg rasterizer and
//     the recording drawer used for traces and tests
//   - [banner]: the render orchestrator and the text layer
//   - [banner/styles]: the style registry with one background and
//     decoration per style
//   - [banner/sink]: PNG, JPEG and JSON trace encoders
//
// Rendering never reads pixels back. Every layer is a sequence of Drawer
// calls, so the same banner can be rasterized and recorded at once with
// [canvas.Tee].
package render
