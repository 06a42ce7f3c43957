package access

import "errors"

var (
	ErrUnknownRole       = errors.New("unknown role")
	ErrUnknownCapability = errors.New("unknown capability")
)
