package router

import "errors"

var (
	ErrNoRoutes          = errors.New("route table is empty")
	ErrEmptyRouteName    = errors.New("route name is empty")
	ErrPaddedRouteName   = errors.New("route name has surrounding whitespace")
	ErrDuplicateRoute    = errors.New("duplicate route name")
	ErrReservedRouteName = errors.New("route name is reserved")
	ErrNoExamples        = errors.New("route has no examples")
	ErrBlankExample      = errors.New("route example is blank")
)
