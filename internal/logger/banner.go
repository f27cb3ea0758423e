package logger

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Endpoint is one line of the startup banner.
type Endpoint struct {
	Method string
	Path   string
	Note   string
}

// PrintBanner writes the listen address and the API surface.  Colour is
// dropped automatically when w is not a terminal.
func PrintBanner(w io.Writer, addr, webRoot string, endpoints []Endpoint) {
	title := color.New(color.FgCyan, color.Bold)
	method := color.New(color.FgGreen)
	faint := color.New(color.Faint)

	title.Fprintln(w, "Movie Ticket Booking")
	fmt.Fprintf(w, "  listening on %s, serving %s\n", addr, webRoot)
	for _, ep := range endpoints {
		method.Fprintf(w, "  %-7s", ep.Method)
		fmt.Fprintf(w, " %-26s", ep.Path)
		faint.Fprintln(w, ep.Note)
	}
}
