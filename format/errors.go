package format

import "errors"

var (
	ErrFormat = errors.New("unknown format")
)
