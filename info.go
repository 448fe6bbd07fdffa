package projection

/*
#include "proj_go.h"
*/
import "C"

import (
	"runtime"
)

type LibInfo struct {
	Major      int    // Major version number.
	Minor      int    // Minor version number.
	Patch      int    // Patch level of release.
	Release    string // Release info, e.g. “Rel. 9.2.1, June 1st, 2023”.
	Version    string // Text representation of the full version number, e.g. “9.2.1”.
	Searchpath string // Search path for PROJ resource files.
}

type DefinitionInfo struct {
	Role        Role    // Role within the owning Context.
	ID          string  // What comes after +proj= in the definition, e.g. “lcc”.
	Description string  // Long description of the operation, e.g. “Lambert Conformal Conic”.
	Definition  string  // The definition string as normalised by PROJ.
	HasInverse  bool    // True if an inverse mapping exists. Both directions of a Context need one.
	Accuracy    float64 // Expected accuracy in meters, -1 if unknown.
}

// Get information about the current instance of the PROJ library
func Info() LibInfo {
	info := C.proj_info()
	return LibInfo{
		Major:      int(info.major),
		Minor:      int(info.minor),
		Patch:      int(info.patch),
		Release:    C.GoString(info.release),
		Version:    C.GoString(info.version),
		Searchpath: C.GoString(info.searchpath),
	}
}

// Info describes d as PROJ parsed it.
func (d *Definition) Info() (DefinitionInfo, error) {
	if d == nil || !d.opened {
		return DefinitionInfo{}, ErrContextClosed
	}
	info := C.proj_pj_info(d.pj)
	di := DefinitionInfo{
		Role:        d.role,
		ID:          C.GoString(info.id),
		Description: C.GoString(info.description),
		Definition:  C.GoString(info.definition),
		HasInverse:  info.has_inverse != 0,
		Accuracy:    float64(info.accuracy),
	}
	runtime.KeepAlive(d)
	return di, nil
}
