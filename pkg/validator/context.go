package validator

import (
	"context"
	"strconv"
)

// Context locates a value inside the validated input and routes the errors
// reported for it. A Context never changes after creation; Property, Index and
// BufferErrors derive new ones.
type Context struct {
	ctx    context.Context
	path   string
	shared *Accumulator
	filter func(message string) bool

	// translate, when set, localizes built-in messages.
	translate func(key, fallback string, values map[string]any) string

	// buffer, when set, receives reports instead of shared.
	// flushTo is the write target that was active when buffering started.
	buffer  *Accumulator
	flushTo *Accumulator
}

// NewContext creates a root context writing to acc.
// A nil filter keeps every message.
func NewContext(ctx context.Context, acc *Accumulator, filter func(message string) bool) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Context{ctx: ctx, shared: acc, filter: filter}
}

// Path returns the location of the current value, "" for the root.
func (c *Context) Path() string { return c.path }

// Ctx returns the context.Context of the run, for rules that block.
func (c *Context) Ctx() context.Context { return c.ctx }

// Buffered reports whether errors are captured speculatively.
func (c *Context) Buffered() bool { return c.buffer != nil }

// ReportError records message at the current path.
func (c *Context) ReportError(message string) {
	if c.filter != nil && !c.filter(message) {
		return
	}
	c.target().Report(c.path, message)
}

// report records a message, translating built-in ones when the run has a
// translator.
func (c *Context) report(t text) {
	msg := t.msg
	if t.key != "" && c.translate != nil {
		msg = c.translate(t.key, t.msg, t.values)
	}
	c.ReportError(msg)
}

// Property returns the context of the named member.
func (c *Context) Property(name string) *Context {
	child := *c
	if c.path == "" {
		child.path = name
	} else {
		child.path = c.path + "." + name
	}
	return &child
}

// Index returns the context of the i-th element.
func (c *Context) Index(i int) *Context {
	child := *c
	child.path = c.path + "[" + strconv.Itoa(i) + "]"
	return &child
}

// BufferErrors returns a context with the same path whose reports go to a
// fresh isolated buffer. Nothing reaches the run result unless FlushErrors is called.
func (c *Context) BufferErrors() *Context {
	child := *c
	child.flushTo = c.target()
	child.buffer = NewAccumulator()
	return &child
}

// FlushErrors commits the buffered reports, in order, to the target that was
// active when BufferErrors was called, then empties the buffer.
func (c *Context) FlushErrors() {
	if c.buffer == nil {
		return
	}
	c.buffer.drainInto(c.flushTo)
}

func (c *Context) target() *Accumulator {
	if c.buffer != nil {
		return c.buffer
	}
	return c.shared
}
