package format

import "github.com/pkg/errors"

// run.go is the top-level driver: it runs the one-shot passes in
// their fixed order and owns the indent<->width fixed-point sub-loop,
// the one genuine cross-pass cycle in the cascade.

// maxIndentWidthIterations bounds the indent<->width loop.
const maxIndentWidthIterations = 3

// Config bundles everything Format needs beyond the raw chunk list:
// the passes to run in order (built by the caller so internal/format
// itself never imports every leaf pass package — internal/uncgo's
// Pipeline and tests own that wiring), plus which of those named passes form the
// indent<->width sub-loop.
type Config struct {
	// Passes runs once, in order, before the indent<->width loop.
	Passes []Pass
	// Indent and Width run repeatedly as a pair until the chunk
	// list's Changes counter stops advancing or the iteration cap is
	// reached.
	Indent Pass
	Width  Pass
	// Align and Tail run once, after the indent<->width loop settles.
	Align Pass
	Tail  []Pass
}

// Run executes cfg's full cascade against ctx: the one-shot passes,
// then the indent<->width fixed-point loop, then align and any tail
// passes.
// A panic inside a pass is recovered and returned as an error carrying
// the failing pass's stack, so one malformed file cannot take down a
// whole recursive `format -r` batch.
func (cfg Config) Run(ctx *Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("formatting %s: internal error: %v", ctx.File, r)
		}
	}()
	return cfg.run(ctx)
}

func (cfg Config) run(ctx *Context) error {
	for _, p := range cfg.Passes {
		if err := runOne(ctx, p); err != nil {
			return err
		}
	}

	if cfg.Indent != nil {
		for i := 0; i < maxIndentWidthIterations; i++ {
			ctx.beginWidthIteration(i)
			before := ctx.Changes
			if err := runOne(ctx, cfg.Indent); err != nil {
				return err
			}
			if cfg.Width != nil {
				if err := runOne(ctx, cfg.Width); err != nil {
					return err
				}
			}
			if ctx.Changes == before {
				break
			}
		}
	}

	if cfg.Align != nil {
		if err := runOne(ctx, cfg.Align); err != nil {
			return err
		}
	}

	for _, p := range cfg.Tail {
		if err := runOne(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func runOne(ctx *Context, p Pass) error {
	if ctx.Trace != nil {
		ctx.Trace(p.Name())
	}
	return p.Run(ctx)
}
