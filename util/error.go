package util

import (
	"fmt"
	"runtime"
	"strings"
)

// Stack holds the program counters of the frames that lead to the creation of an error.
type Stack *[]uintptr

// CurrentStack creates a new stack without the last three frames, because they are from the internal calls (e.g. to
// this function and the error constructor) and therefore irrelevant to the function creating the error.
func CurrentStack() Stack {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	var st = pcs[0:n]
	return &st
}

func PrintableStackTrace(stack Stack) string {
	var sb strings.Builder
	if stack == nil {
		return ""
	}

	for _, pc := range *stack {
		f := runtime.FuncForPC(pc)
		if f == nil {
			continue
		}
		file, line := f.FileLine(pc)
		sb.WriteString(fmt.Sprintf("%s\n\t%s:%d\n", f.Name(), file, line))
	}

	return sb.String()
}

// FormatError implements the fmt.Formatter behaviour shared by all errors carrying a stack: "%v" prints the message
// followed by the stack, "%s" only the message.
func FormatError(s fmt.State, verb rune, err error, stack Stack) {
	switch verb {
	case 'v':
		fmt.Fprintf(s, "%s\n%s", err.Error(), PrintableStackTrace(stack))
	case 's':
		fmt.Fprintf(s, "%s", err.Error())
	}
}
