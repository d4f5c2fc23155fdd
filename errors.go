package coverart

import (
	"errors"
	"fmt"
)

// ErrNoImage is returned when a source yields an empty image.
var ErrNoImage = errors.New("no renderable image")

// ConfigError reports an invalid render configuration or source
// dimensions. A render that fails with a ConfigError produces no output.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// AcquisitionError reports that a bitmap could not be fetched, read or
// decoded. The render pipeline is never run when acquisition fails.
type AcquisitionError struct {
	Source string
	Err    error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("acquire %s: %v", e.Source, e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

// IsNoCover reports whether err is one of the failures a consumer shows
// as "no cover available".
func IsNoCover(err error) bool {
	var cfgErr *ConfigError
	var acqErr *AcquisitionError
	return errors.As(err, &cfgErr) || errors.As(err, &acqErr) || errors.Is(err, ErrNoImage)
}
