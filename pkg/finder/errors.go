package finder

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every error the finder returns.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrEmptyGrid       = fmt.Errorf("%w: grid must be non-empty", ErrInvalidArgument)
	ErrGridTooLarge    = fmt.Errorf("%w: grid dimensions exceed %dx%d", ErrInvalidArgument, MaxRows, MaxCols)
	ErrRaggedGrid      = fmt.Errorf("%w: grid rows must have equal length", ErrInvalidArgument)
	ErrNilQueries      = fmt.Errorf("%w: query stream must be non-optional", ErrInvalidArgument)
	ErrUnknownStrategy = fmt.Errorf("%w: unknown strategy", ErrInvalidArgument)
)
