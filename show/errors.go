package show

import "errors"

var (
	ErrValue = errors.New("invalid value")
)
