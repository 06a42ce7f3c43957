package plans

import "errors"

var (
	ErrUnknownPlan         = errors.New("unknown plan")
	ErrInvalidAccountCount = errors.New("account count must not be negative")
)
