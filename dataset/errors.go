package dataset

import (
	"errors"
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var (
	ErrInvalidRange = fmt.Errorf("invalid range: %w", commerr.ErrOutOfRange)
	ErrFileNotFound = fmt.Errorf("file not found: %w", commerr.ErrNotFound)
	ErrIOFailure    = errors.New("io failure")
	ErrMalformed    = errors.New("malformed data")
	ErrLabelBreak   = fmt.Errorf("label has a line break: %w", commerr.ErrInvalidArgument)

	ErrReentrantMutation    = errors.New("dataset mutated from its own observer")
	ErrUncomparableObserver = errors.New("observer type is not comparable")
)
