package projection

/*
#include "proj_go.h"
*/
import "C"

import (
	"runtime"
	"sync/atomic"
)

// Definitions used by NewDefaultContext.
const (
	DefaultGeographicDefinition = "+proj=longlat +ellps=WGS84 +datum=WGS84 +no_defs"
	DefaultProjectedDefinition  = "+proj=lcc +lat_1=41 +lat_2=46 +lat_0=43 +lon_0=20 +x_0=0 +y_0=0 +ellps=WGS84 +datum=WGS84 +units=m +no_defs"
)

// Logger receives lifecycle messages of a Context.
// *log.Logger from github.com/labstack/gommon/log satisfies it.
type Logger interface {
	Debugf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}

var lastContextID uint64

// Option configures a Context.
type Option func(*Context)

// WithLogger makes the Context report definition creation and release to l.
func WithLogger(l Logger) Option {
	return func(ctx *Context) {
		if l != nil {
			ctx.logger = l
		}
	}
}

// A Context owns a PROJ context and exactly two projection definitions, one
// geographic and one projected. Both definitions stay valid until Close.
//
// The definitions are read-only after NewContext, but PROJ keeps error state
// inside them, so a Context must not be used by more than one goroutine at a
// time. No locking is done here.
//
// A Context that is never closed is released when it is garbage collected.
// Its definitions become unusable at that point even if still referenced.
type Context struct {
	id         uint64
	pj_context *C.PJ_CONTEXT
	opened     bool
	geographic *Definition
	projected  *Definition
	logger     Logger
}

// NewContext parses both definition strings. If either fails, everything
// created so far is released and an *InitError naming the failing role is
// returned.
func NewContext(geographic, projected string, options ...Option) (*Context, error) {
	ctx := &Context{
		id:         atomic.AddUint64(&lastContextID, 1),
		pj_context: C.proj_context_create(),
		opened:     true,
		logger:     nopLogger{},
	}
	for _, opt := range options {
		opt(ctx)
	}

	var err error
	ctx.geographic, err = newDefinition(ctx, RoleGeographic, geographic)
	if err != nil {
		ctx.Close()
		return nil, err
	}
	ctx.logger.Debugf("created %s definition %q", RoleGeographic, geographic)

	ctx.projected, err = newDefinition(ctx, RoleProjected, projected)
	if err != nil {
		ctx.Close()
		return nil, err
	}
	ctx.logger.Debugf("created %s definition %q", RoleProjected, projected)

	runtime.SetFinalizer(ctx, (*Context).Close)
	return ctx, nil
}

// NewDefaultContext creates a Context from DefaultGeographicDefinition and
// DefaultProjectedDefinition.
func NewDefaultContext(options ...Option) (*Context, error) {
	return NewContext(DefaultGeographicDefinition, DefaultProjectedDefinition, options...)
}

// Close releases both definitions and the PROJ context. Calling Close more
// than once is harmless.
func (ctx *Context) Close() {
	if !ctx.opened {
		return
	}
	runtime.SetFinalizer(ctx, nil)

	for _, d := range []*Definition{ctx.projected, ctx.geographic} {
		if d != nil && d.opened {
			d.close()
			ctx.logger.Debugf("released %s definition", d.role)
		}
	}

	C.proj_context_destroy(ctx.pj_context)
	ctx.pj_context = nil
	ctx.opened = false
}

// Geographic returns the geographic definition, nil once ctx is closed.
func (ctx *Context) Geographic() *Definition {
	if !ctx.opened {
		return nil
	}
	return ctx.geographic
}

// Projected returns the projected definition, nil once ctx is closed.
func (ctx *Context) Projected() *Definition {
	if !ctx.opened {
		return nil
	}
	return ctx.projected
}
