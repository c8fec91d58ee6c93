// Package sink serializes rendered banners.
//
// # Overview
//
// A "sink" turns the result of a render into bytes:
//
//   - PNG: lossless raster, the default export ([RenderPNG])
//   - JPEG: lossy raster for size-constrained uploads ([RenderJPEG])
//   - JSON: the recorded draw trace, for debugging and golden tests
//     ([RenderJSON])
//
// Raster sinks take the finished [image.Image] and can scale it with
// Lanczos resampling before encoding:
//
//	png, err := sink.RenderPNG(img, sink.WithScale(2))
//
// # Filenames
//
// Exports follow a fixed naming convention; [DefaultFilename] is
// "LinkBanner-AI.png" and [Filename] derives the name for other formats.
package sink
