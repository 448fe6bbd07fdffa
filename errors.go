package projection

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrCodeEmptyDefinition is the code of an InitError for an empty
// definition string. PROJ is not consulted in that case.
const ErrCodeEmptyDefinition = -1

var (
	ErrContextClosed       = errors.New("projection context is closed")
	ErrForeignDefinition   = errors.New("projection definition belongs to another context")
	ErrUnsupportedGeometry = errors.New("unsupported geometry")
)

// InitError reports a projection definition that PROJ could not parse.
// Retrying with the same definition string always fails again.
type InitError struct {
	Role       Role   // Which of the two definitions failed.
	Definition string // The definition string as given.
	Code       int    // PROJ error number, or ErrCodeEmptyDefinition.
	Message    string // PROJ error message.
}

func (e *InitError) Error() string {
	return fmt.Sprintf("init %s projection %q: %s (code %d)", e.Role, e.Definition, e.Message, e.Code)
}

// TransformError reports a batch transform that PROJ refused. The whole
// batch is failed, no partial results are returned.
type TransformError struct {
	Code    int
	Message string
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform: %s (code %d)", e.Message, e.Code)
}
