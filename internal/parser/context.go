package parser

// Context carries the grammar flags that change which productions are
// legal at the current position. It is threaded by value: callers save
// the current value, derive a new one for a sub-production, and restore
// the saved value afterwards, so flags can never leak across boundaries.
type Context uint8

const (
	// ctxIn permits the `in` binary operator. Cleared while parsing the
	// init clause of a for statement so `for (a in b;;)` is rejected.
	ctxIn Context = 1 << iota
	// ctxAwait makes `await` parse as a unary operator instead of an
	// identifier. Set inside async function bodies and at module top level.
	ctxAwait
	// ctxYield makes `yield` parse as a yield expression. Set inside
	// generator bodies.
	ctxYield
	// ctxReturn permits return statements. Set inside any function body.
	ctxReturn
	// ctxDecorator is set while parsing a decorator expression, where
	// certain member chains are restricted.
	ctxDecorator
	// ctxSuper permits `super` references. Set inside class method
	// bodies and static blocks.
	ctxSuper
)

// NewContext returns the context for the start of a file. Module code
// is implicitly await-legal at the top level.
func NewContext(module bool) Context {
	c := ctxIn
	if module {
		c |= ctxAwait
	}
	return c
}

func (c Context) HasIn() bool        { return c&ctxIn != 0 }
func (c Context) HasAwait() bool     { return c&ctxAwait != 0 }
func (c Context) HasYield() bool     { return c&ctxYield != 0 }
func (c Context) HasReturn() bool    { return c&ctxReturn != 0 }
func (c Context) HasDecorator() bool { return c&ctxDecorator != 0 }
func (c Context) HasSuper() bool     { return c&ctxSuper != 0 }

func (c Context) with(flag Context, on bool) Context {
	if on {
		return c | flag
	}
	return c &^ flag
}

func (c Context) WithIn(on bool) Context        { return c.with(ctxIn, on) }
func (c Context) WithAwait(on bool) Context     { return c.with(ctxAwait, on) }
func (c Context) WithYield(on bool) Context     { return c.with(ctxYield, on) }
func (c Context) WithReturn(on bool) Context    { return c.with(ctxReturn, on) }
func (c Context) WithDecorator(on bool) Context { return c.with(ctxDecorator, on) }
func (c Context) WithSuper(on bool) Context     { return c.with(ctxSuper, on) }

// ForFunction derives the context for a function body from the
// function's own async and generator flags. Everything else resets:
// `in` becomes legal again and return becomes permitted.
func (c Context) ForFunction(async, generator bool) Context {
	next := ctxIn | ctxReturn
	if async {
		next |= ctxAwait
	}
	if generator {
		next |= ctxYield
	}
	return next
}

// ForArrowFunction derives the context for an arrow body. Arrows have
// no own generator form and no own super binding, so ctxSuper carries
// over from the enclosing context.
func (c Context) ForArrowFunction(async bool) Context {
	next := ctxIn | ctxReturn | (c & ctxSuper)
	if async {
		next |= ctxAwait
	}
	return next
}
