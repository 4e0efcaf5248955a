// Package format coordinates the sequential cascade of passes that
// turn a tokenized chunk list into formatted output: tokenize-cleanup,
// brace-cleanup, combine, pawn, braces, newlines, blanklines,
// semicolons/parens/returns/sort, space, the indent<->width loop,
// align, output.
package format

// Pass is one stage of the formatting cascade. A Pass is expected to
// mutate the chunk list in place (reclassify kinds, insert/remove
// virtual chunks,
// assign indent columns) rather than only annotate a read-only AST.
type Pass interface {
	// Name identifies the pass for logging and the --trace option.
	Name() string

	// Run executes the pass against the chunk list in ctx.
	// Returns an error only for fatal internal errors; per-token
	// problems are recorded on ctx.Diag instead.
	Run(ctx *Context) error
}

// Pipeline runs an ordered list of Passes.
type Pipeline struct {
	passes []Pass
}

// NewPipeline builds a Pipeline from passes, executed in the given order.
func NewPipeline(passes ...Pass) *Pipeline {
	return &Pipeline{passes: passes}
}

// Add appends a pass to run after every pass already registered.
func (p *Pipeline) Add(pass Pass) { p.passes = append(p.passes, pass) }

// Passes returns the registered passes in execution order.
func (p *Pipeline) Passes() []Pass { return p.passes }

// Run executes every pass against ctx in order, stopping immediately
// if a pass returns a fatal error.
func (p *Pipeline) Run(ctx *Context) error {
	for _, pass := range p.passes {
		if ctx.Trace != nil {
			ctx.Trace(pass.Name())
		}
		if err := pass.Run(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Func adapts a plain function into a Pass, for small passes that
// don't need their own named type (e.g. single-purpose rewrite steps).
type Func struct {
	FnName string
	Fn     func(ctx *Context) error
}

func (f Func) Name() string           { return f.FnName }
func (f Func) Run(ctx *Context) error { return f.Fn(ctx) }

var _ Pass = Func{}
