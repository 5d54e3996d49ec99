package compiler

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is matched by every ConfigurationError.
var ErrInvalidConfiguration = errors.New("invalid chart configuration")

// ErrInvalidDataShape is matched by every DataShapeError.
var ErrInvalidDataShape = errors.New("invalid data shape")

// ConfigurationError reports an illegal or contradictory chart setting.
type ConfigurationError struct {
	Field  string // dotted path of the offending setting, e.g. "series[1].data_label.position"
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("configuration error: %s", e.Reason)
	}
	return fmt.Sprintf("configuration error in %s: %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// NewConfigurationError creates a new ConfigurationError.
func NewConfigurationError(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}

// DataShapeError reports a data block that cannot be grouped into series.
type DataShapeError struct {
	Reason  string
	Columns int // columns available inside the bounds
	Rows    int // rows available inside the bounds
}

func (e *DataShapeError) Error() string {
	return fmt.Sprintf("data shape error (%d rows x %d columns): %s", e.Rows, e.Columns, e.Reason)
}

func (e *DataShapeError) Unwrap() error {
	return ErrInvalidDataShape
}

// NewDataShapeError creates a new DataShapeError.
func NewDataShapeError(rows, columns int, format string, args ...any) *DataShapeError {
	return &DataShapeError{
		Reason:  fmt.Sprintf(format, args...),
		Columns: columns,
		Rows:    rows,
	}
}
