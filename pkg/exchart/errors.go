package exchart

import (
	"errors"
	"fmt"

	"github.com/ukaji3/exchart-go/pkg/exchart/compiler"
)

// ErrFileNotFound indicates an input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidConfiguration is matched by every configuration error.
var ErrInvalidConfiguration = compiler.ErrInvalidConfiguration

// ErrInvalidDataShape is matched by every data shape error.
var ErrInvalidDataShape = compiler.ErrInvalidDataShape

// ConfigurationError reports an illegal or contradictory chart setting.
type ConfigurationError = compiler.ConfigurationError

// DataShapeError reports a data block that cannot be grouped into series.
type DataShapeError = compiler.DataShapeError

// SpecError represents an error while loading a chart spec or its data.
type SpecError struct {
	Source string
	Stage  string // "read", "parse", "schema", "decode", "data"
	Err    error
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("spec error in %q (%s): %v", e.Source, e.Stage, e.Err)
}

func (e *SpecError) Unwrap() error {
	return e.Err
}

// NewSpecError creates a new SpecError.
func NewSpecError(source, stage string, err error) *SpecError {
	return &SpecError{
		Source: source,
		Stage:  stage,
		Err:    err,
	}
}
