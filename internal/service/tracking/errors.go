package tracking

import "errors"

var (
	ErrInvalidStatus      = errors.New("invalid tracking status")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrScheduleTerminal   = errors.New("schedule already in terminal status")
)
