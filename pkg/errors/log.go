package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler reports structured errors to a writer, stderr by default.
type LogHandler struct {
	// Verbose enables the error kind in the output.
	Verbose bool
	// Out is the destination writer; nil means stderr.
	Out io.Writer
}

// HandleError logs an Error.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	out := h.Out
	if out == nil {
		out = os.Stderr
	}
	if h.Verbose {
		fmt.Fprintf(out, "[squircle error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
	} else {
		fmt.Fprintf(out, "[squircle error] %s: %v\n", err.Op, err.Err)
	}
}
