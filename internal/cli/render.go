package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/linkbanner/pkg/errors"
	"github.com/matzehuels/linkbanner/pkg/pipeline"
	"github.com/matzehuels/linkbanner/pkg/render/banner/sink"
)

// renderFlags holds the command-line flags shared by render and pick.
// Flags override values read from --config.
type renderFlags struct {
	config    string  // TOML config file
	name      string  // banner name line
	title     string  // banner title line
	stack     string  // stack tags line
	accent    string  // accent color
	textColor string  // text color
	font      string  // font family
	fontFile  string  // font file registered under --font
	style     string  // style id
	formats   string  // comma-separated output formats
	scale     float64 // raster scale factor
	quality   int     // JPEG quality
	seed      uint64  // random seed for random styles (0 = clock)
	output    string  // output file, or base path for multiple formats
	noCache   bool    // bypass the artifact cache
}

func (f *renderFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "TOML config file (flags override it)")
	fl.StringVar(&f.name, "name", "", "name line")
	fl.StringVar(&f.title, "title", "", "title line")
	fl.StringVar(&f.stack, "stack", "", "stack tags line")
	fl.StringVar(&f.accent, "accent", "", "accent color (CSS color)")
	fl.StringVar(&f.textColor, "text-color", "", "text color (CSS color)")
	fl.StringVar(&f.font, "font", "", "font family")
	fl.StringVar(&f.fontFile, "font-file", "", "TTF/OTF file to use for --font")
	fl.StringVarP(&f.style, "style", "s", "", "banner style (see 'linkbanner styles')")
	fl.StringVarP(&f.formats, "format", "f", "", "output format(s): png (default), jpeg, json (comma-separated)")
	fl.Float64Var(&f.scale, "scale", pipeline.DefaultScale, "raster scale factor")
	fl.IntVar(&f.quality, "quality", pipeline.DefaultQuality, "JPEG quality (1-100)")
	fl.Uint64Var(&f.seed, "seed", 0, "random seed for random styles (0 = random)")
	fl.StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	fl.BoolVar(&f.noCache, "no-cache", false, "bypass the artifact cache")

	_ = cmd.RegisterFlagCompletionFunc("style", completeStyles)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(sink.Formats, cobra.ShellCompDirectiveNoFileComp))
}

// options loads --config and applies every flag that was set explicitly.
func (f *renderFlags) options(cmd *cobra.Command) (pipeline.Options, error) {
	var opts pipeline.Options
	if f.config != "" {
		loaded, err := pipeline.LoadOptions(f.config)
		if err != nil {
			return pipeline.Options{}, err
		}
		opts = loaded
	}

	changed := cmd.Flags().Changed
	set := func(flag string, dst *string, v string) {
		if changed(flag) {
			*dst = v
		}
	}
	set("name", &opts.Name, f.name)
	set("title", &opts.Title, f.title)
	set("stack", &opts.Stack, f.stack)
	set("accent", &opts.Accent, f.accent)
	set("text-color", &opts.TextColor, f.textColor)
	set("font", &opts.Font, f.font)
	set("font-file", &opts.FontFile, f.fontFile)
	set("style", &opts.Style, f.style)
	if changed("format") {
		opts.Formats = splitList(f.formats)
	}
	if changed("scale") || opts.Scale == 0 {
		opts.Scale = f.scale
	}
	if changed("quality") || opts.Quality == 0 {
		opts.Quality = f.quality
	}
	if changed("seed") {
		opts.Seed = f.seed
	}
	opts.NoCache = f.noCache
	return opts, nil
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a banner to PNG, JPEG or a JSON draw trace",
		Example: `  linkbanner render --name "Ada Lovelace" --title Analyst --style retro
  linkbanner render -c banner.toml -f png,json -o out/banner
  linkbanner render --style terminal --seed 7 --scale 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, flags.output)
		},
	}
	flags.register(cmd)
	return cmd
}

// runRender executes the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	paths, err := outputPaths(output, opts.Formats)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.NoCache)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer runner.Close()

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s banner...", opts.Style))
	spinner.Start()
	result, err := runner.Execute(ctx, opts)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done("Rendered banner", "style", result.Style, "run", result.RunID, "cached", result.CacheInfo.RenderHit)

	for _, format := range opts.Formats {
		if err := writeFile(paths[format], result.Artifacts[format]); err != nil {
			return err
		}
	}

	printSuccess("Banner ready")
	for _, format := range opts.Formats {
		printFile(paths[format])
	}
	printStats(result)
	if result.Seed != 0 && !result.CacheInfo.Cacheable {
		printNextStep("Reproduce with", fmt.Sprintf("%s render --style %s --seed %d", appName, result.Style, result.Seed))
	}
	return nil
}

// outputPaths maps each format to its output file. Without output the
// default filenames are used; with several formats output is a base path
// whose known extension is replaced per format.
func outputPaths(output string, formats []string) (map[string]string, error) {
	paths := make(map[string]string, len(formats))
	if output == "" {
		for _, f := range formats {
			paths[f] = sink.Filename(f)
		}
		return paths, nil
	}
	if err := apperrors.ValidateOutputPath(output); err != nil {
		return nil, err
	}
	if len(formats) == 1 {
		paths[formats[0]] = output
		return paths, nil
	}

	base := output
	ext := strings.ToLower(filepath.Ext(output))
	if slices.Contains([]string{".png", ".jpg", ".jpeg", ".json"}, ext) {
		base = strings.TrimSuffix(output, filepath.Ext(output))
	}
	for _, f := range formats {
		paths[f] = base + sink.Extension(f)
	}
	return paths, nil
}

// writeFile writes data to path, creating parent directories.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
