package projection

/*
#cgo darwin pkg-config: proj
#cgo !darwin LDFLAGS: -lproj
#include "proj_go.h"
*/
import "C"

import (
	"sync/atomic"
	"unsafe"
)

// Role tells which of the two definitions of a Context is meant.
type Role int

const (
	RoleGeographic Role = iota // longitude/latitude, no projection
	RoleProjected              // planar projection in meters
)

func (r Role) String() string {
	switch r {
	case RoleGeographic:
		return "geographic"
	case RoleProjected:
		return "projected"
	default:
		return "unknown"
	}
}

var liveDefinitions int64

// LiveDefinitions returns the number of definitions created and not yet
// released, over all contexts. A number that keeps growing points at contexts
// that are never closed.
func LiveDefinitions() int64 {
	return atomic.LoadInt64(&liveDefinitions)
}

// A Definition is a parsed projection definition. It is owned by the Context
// that created it and destroyed when that Context is closed or collected.
// A Definition does not keep its Context alive.
type Definition struct {
	pj         *C.PJ
	owner      uint64 // id of the owning Context
	role       Role
	definition string
	opened     bool
}

// Role returns the role of d within its Context.
func (d *Definition) Role() Role {
	return d.role
}

// String returns the definition string d was created from.
func (d *Definition) String() string {
	return d.definition
}

func newDefinition(ctx *Context, role Role, definition string) (*Definition, error) {
	if definition == "" {
		return nil, &InitError{
			Role:    role,
			Code:    ErrCodeEmptyDefinition,
			Message: "empty projection definition",
		}
	}

	cs := C.CString(definition)
	defer C.free(unsafe.Pointer(cs))
	pj := C.proj_create(ctx.pj_context, cs)
	if C.pjnull(pj) != 0 {
		errno := C.proj_context_errno(ctx.pj_context)
		return nil, &InitError{
			Role:       role,
			Definition: definition,
			Code:       int(errno),
			Message:    C.GoString(C.errno_string(ctx.pj_context, errno)),
		}
	}
	atomic.AddInt64(&liveDefinitions, 1)

	return &Definition{
		pj:         pj,
		owner:      ctx.id,
		role:       role,
		definition: definition,
		opened:     true,
	}, nil
}

func (d *Definition) close() {
	if d == nil || !d.opened {
		return
	}
	C.proj_destroy(d.pj)
	atomic.AddInt64(&liveDefinitions, -1)
	d.pj = nil
	d.opened = false
}
