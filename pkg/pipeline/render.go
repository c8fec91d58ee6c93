package pipeline

import (
	"context"
	"image"
	"time"

	apperrors "github.com/matzehuels/linkbanner/pkg/errors"
	"github.com/matzehuels/linkbanner/pkg/observability"
	"github.com/matzehuels/linkbanner/pkg/render/banner/sink"
	"github.com/matzehuels/linkbanner/pkg/render/canvas"
)

// Encode serializes a rendered banner in the requested formats. ops is the
// recorded draw trace and is required only for JSON.
func Encode(ctx context.Context, img image.Image, ops []canvas.Op, seed uint64, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		start := time.Now()
		var data []byte
		var err error

		switch format {
		case sink.FormatPNG:
			data, err = sink.RenderPNG(img, sink.WithScale(opts.Scale))
		case sink.FormatJPEG:
			data, err = sink.RenderJPEG(img, sink.WithScale(opts.Scale), sink.WithQuality(opts.Quality))
		case sink.FormatJSON:
			data, err = sink.RenderJSON(ops, sink.WithJSONStyle(opts.Style), sink.WithJSONSeed(seed))
		default:
			err = apperrors.New(apperrors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		observability.Pipeline().OnEncodeComplete(ctx, format, len(data), time.Since(start), err)
		if err != nil {
			if apperrors.GetCode(err) == "" {
				err = apperrors.Wrap(apperrors.ErrCodeEncodeFailed, err, "encode %s", format)
			}
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
