package meme

import (
	"context"
	"fmt"

	"github.com/kdubovikov/testing-workshop/pkg/logger"
)

// Pipeline runs the four meme stages in strict sequence: fetch quote,
// split headings, render, write. Any stage failure aborts the run before
// later stages execute. There are no retries and no shared state between
// runs.
type Pipeline struct {
	fetcher  QuoteFetcher
	renderer MemeRenderer
	writer   MemeWriter
	log      *logger.Logger
}

// NewPipeline wires the pipeline stages together. All collaborators are
// injected; the logger may be nil.
func NewPipeline(fetcher QuoteFetcher, renderer MemeRenderer, writer MemeWriter, log *logger.Logger) *Pipeline {
	return &Pipeline{
		fetcher:  fetcher,
		renderer: renderer,
		writer:   writer,
		log:      log,
	}
}

// Run executes one pipeline pass.
func (p *Pipeline) Run(ctx context.Context) error {
	quote, err := p.fetcher.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch quote: %w", err)
	}
	p.debug("quote fetched", "length", len(quote))

	top, bottom := SplitHeadings(quote)
	p.debug("headings split", "top", top, "bottom", bottom)

	image, err := p.renderer.Render(ctx, top, bottom)
	if err != nil {
		return fmt.Errorf("render meme: %w", err)
	}
	p.debug("meme rendered", "bytes", len(image))

	if err := p.writer.Write(image); err != nil {
		return fmt.Errorf("write meme: %w", err)
	}
	p.debug("meme written")

	return nil
}

func (p *Pipeline) debug(msg string, keyvals ...interface{}) {
	if p.log != nil {
		p.log.Debug(msg, keyvals...)
	}
}
