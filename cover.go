package coverart

import (
	"context"
	"errors"
	"image"

	"golang.org/x/sync/errgroup"

	"github.com/wbrown/coverart/imageutil"
)

// DefaultFallback is shown in place of art when no cover can be rendered.
const DefaultFallback = "No cover available."

// renderFunc matches Render; Cover holds one so tests can observe calls.
type renderFunc func(*imageutil.PixelBuffer, Config) (Block, error)

// Cover acquires a bitmap and renders it, collapsing every failure into a
// single fallback message.
type Cover struct {
	Config   Config
	Fallback string

	render renderFunc
}

// NewCover returns a Cover using the default config with opts applied.
func NewCover(opts ...Option) *Cover {
	return &Cover{
		Config:   NewConfig(opts...),
		Fallback: DefaultFallback,
		render:   Render,
	}
}

// Fetch acquires from src and renders the result. The renderer is not
// called when acquisition fails.
func (c *Cover) Fetch(ctx context.Context, src Source) (Block, error) {
	buf, err := c.acquire(ctx, src)
	if err != nil {
		return "", err
	}

	render := c.render
	if render == nil {
		render = Render
	}
	return render(buf, c.Config)
}

// Preview acquires from src and rasterizes it to an image at the given
// font scale.
func (c *Cover) Preview(ctx context.Context, src Source, scale int) (*image.RGBA, error) {
	buf, err := c.acquire(ctx, src)
	if err != nil {
		return nil, err
	}
	return Preview(buf, c.Config, scale)
}

// acquire validates the config before touching src, so nothing is fetched
// for a render that cannot succeed.
func (c *Cover) acquire(ctx context.Context, src Source) (*imageutil.PixelBuffer, error) {
	if err := c.Config.Validate(); err != nil {
		return nil, err
	}
	buf, err := src.Acquire(ctx)
	if err != nil {
		var acqErr *AcquisitionError
		if !errors.As(err, &acqErr) {
			err = &AcquisitionError{Source: src.String(), Err: err}
		}
		return nil, err
	}
	return buf, nil
}

// Show returns the rendered cover for src, or the fallback message.
func (c *Cover) Show(ctx context.Context, src Source) string {
	block, err := c.Fetch(ctx, src)
	if err != nil {
		return c.FallbackMessage()
	}
	return block.String()
}

// ShowLocation is Show for a URL or file path.
func (c *Cover) ShowLocation(ctx context.Context, location string) string {
	return c.Show(ctx, SourceFor(location))
}

// RenderMany renders each location concurrently, at most limit at a time
// (limit <= 0 means unbounded). Results keep the input order; failed
// entries hold the fallback message.
func (c *Cover) RenderMany(ctx context.Context, locations []string, limit int) []string {
	results := make([]string, len(locations))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, location := range locations {
		g.Go(func() error {
			results[i] = c.ShowLocation(gctx, location)
			return nil
		})
	}
	g.Wait()
	return results
}

// FallbackMessage returns the text shown when no cover can be rendered.
func (c *Cover) FallbackMessage() string {
	if c.Fallback == "" {
		return DefaultFallback
	}
	return c.Fallback
}
