// Package pkg provides the core libraries for LinkBanner profile banners.
//
// # Overview
//
// LinkBanner draws 1584x396 profile banners: a background, a decoration and
// a right-aligned text block, in one of ten named styles. The pkg directory
// is organized into these areas:
//
//  1. [render] - Drawing (canvas primitives, banner styles, output sinks)
//  2. [fonts] - Font resolution (system fonts with embedded Go fallbacks)
//  3. [pipeline] - Orchestration (options → render → encode, with caching)
//  4. [cache] - Artifact cache (file and no-op backends)
//  5. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	CLI flags / TOML config
//	         ↓
//	    [pipeline] package (validate options, check cache)
//	         ↓
//	    [render/banner] package (background → decoration → text)
//	         ↓
//	    [render/canvas] package (gg rasterizer, op recorder)
//	         ↓
//	    [render/banner/sink] package (PNG/JPEG/JSON)
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Name:  "Ada Lovelace",
//	    Style: "retro",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("LinkBanner-AI.png", result.Artifacts["png"], 0o644)
package pkg
