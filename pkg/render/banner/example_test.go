package banner_test

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/linkbanner/pkg/fonts"
	"github.com/matzehuels/linkbanner/pkg/render/banner"
	"github.com/matzehuels/linkbanner/pkg/render/banner/styles"
	"github.com/matzehuels/linkbanner/pkg/render/canvas"
)

func ExampleEffective() {
	cfg := banner.Effective(banner.Config{Name: "  Ada Lovelace ", Title: "   "})
	fmt.Println(cfg.Name)
	fmt.Println(cfg.Title)
	fmt.Println(cfg.AccentColor)
	// Output:
	// Ada Lovelace
	// Técnico Programador
	// #6366f1
}

func ExampleRenderer_Render() {
	r := banner.New(
		banner.WithFonts(fonts.NewRegistry(false)),
		banner.WithLogger(log.New(io.Discard)),
	)
	rec := canvas.NewRecorder(canvas.Width, canvas.Height)

	err := r.Render(context.Background(), rec, banner.Config{
		Name:      "Ada Lovelace",
		Title:     "Analyst",
		StackTags: "go • wasm",
		Style:     styles.Minimal,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, op := range rec.Find("fillText") {
		c, _ := op.FillColor()
		fmt.Printf("%s %s %q\n", op.Font, c, op.Text)
	}
	// Output:
	// bold 80px Inter, sans-serif #1e293b "Ada Lovelace"
	// 400 40px Inter, sans-serif #1e293b "Analyst"
	// 600 24px Inter, sans-serif #6366f1 "GO • WASM"
}

func ExampleRenderer_Render_unknownStyle() {
	r := banner.New(banner.WithFonts(fonts.NewRegistry(false)), banner.WithLogger(log.New(io.Discard)))
	err := r.Render(context.Background(), canvas.NewRecorder(canvas.Width, canvas.Height), banner.Config{Style: "neon"})
	fmt.Println(err)
	// Output:
	// unknown style "neon" (valid: modern, minimal, terminal, abstract, geometric, cyberpunk, brutalist, retro, corporate, glass)
}
