package checklist

import "errors"

var (
	ErrChecklistNotFound = errors.New("checklist not found")
)
