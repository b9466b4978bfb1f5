package search

import (
	"fmt"
	"rectq/util"
)

// EmptyInputError is returned when fewer than two points are given, i.e. when there is no pair of corners at all.
type EmptyInputError struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
	stack   util.Stack
}

func emptyInput(count int) *EmptyInputError {
	return &EmptyInputError{
		Message: fmt.Sprintf("Empty input: At least two points required for a rectangle but got %d.", count),
		Count:   count,
		stack:   util.CurrentStack(),
	}
}

func (e *EmptyInputError) Format(s fmt.State, verb rune) {
	util.FormatError(s, verb, e, e.stack)
}

func (e *EmptyInputError) Error() string {
	return e.Message
}
