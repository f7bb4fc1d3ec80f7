package location

import "errors"

var (
	ErrUnknownLevel    = errors.New("unknown location level")
	ErrInvalidParentID = errors.New("parent id must be a positive number")
)
