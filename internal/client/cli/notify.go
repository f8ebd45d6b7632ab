package cli

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/devprofiler/internal/client/controller"
	"github.com/fatih/color"
)

// ResultError is returned by commands whose controller result was not ok,
// so the process exits non-zero after the message has been shown.
type ResultError struct {
	Result controller.Result
}

func (e *ResultError) Error() string {
	return e.Result.Message
}

// Notifier prints controller results as colored one-line notifications.
type Notifier struct {
	out     io.Writer
	success *color.Color
	failure *color.Color
	info    *color.Color
}

func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{
		out:     out,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		info:    color.New(color.FgCyan),
	}
}

// Result shows r and returns a *ResultError when r is not ok.
func (n *Notifier) Result(r controller.Result) error {
	if r.OK() {
		if r.Message != "" {
			n.success.Fprintln(n.out, "✓ "+r.Message)
		}
		return nil
	}
	n.failure.Fprintln(n.out, "✗ "+r.Message)
	return &ResultError{Result: r}
}

func (n *Notifier) Info(format string, args ...any) {
	n.info.Fprintln(n.out, fmt.Sprintf(format, args...))
}

func (n *Notifier) Error(err error) {
	n.failure.Fprintln(n.out, "Error: "+err.Error())
}
