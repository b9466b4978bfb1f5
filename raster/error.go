package raster

import (
	"fmt"
	"rectq/common"
	"rectq/util"
)

// InvalidInputError is returned when a line is requested between two identical points.
type InvalidInputError struct {
	Message string       `json:"message"`
	Point   common.Point `json:"point"`
	stack   util.Stack
}

func invalidInput(p common.Point) *InvalidInputError {
	return &InvalidInputError{
		Message: fmt.Sprintf("Invalid input: Two distinct points required for a line but got %s twice.", p),
		Point:   p,
		stack:   util.CurrentStack(),
	}
}

func (e *InvalidInputError) Format(s fmt.State, verb rune) {
	util.FormatError(s, verb, e, e.stack)
}

func (e *InvalidInputError) Error() string {
	return e.Message
}
