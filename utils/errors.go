package utils

import "errors"

var (
	ErrMarkerNotFound = errors.New("marker not found")
	ErrEmptyMarker    = errors.New("empty marker")
)
