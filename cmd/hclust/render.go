package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorMuted  = lipgloss.Color("#2C4A54")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	countStyle  = lipgloss.NewStyle().Foreground(colorMuted)
)

// renderer prints cluster listings, styled only when writing to a terminal.
type renderer struct {
	w     io.Writer
	color bool
}

func newRenderer(w io.Writer) *renderer {
	return &renderer{w: w, color: isTerminal(w)}
}

// isTerminal reports whether w is a terminal (including Cygwin/MSYS ptys).
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// cluster prints one line: "<index>\t<size>\t<members separated by spaces>".
func (r *renderer) cluster(index int, members []string) error {
	head := fmt.Sprintf("%d", index)
	size := fmt.Sprintf("%d", len(members))
	if r.color {
		head = headerStyle.Render(head)
		size = countStyle.Render("(" + size + ")")
	}
	_, err := fmt.Fprintf(r.w, "%s\t%s\t%s\n", head, size, strings.Join(members, " "))

	return err
}

// line prints a plain line.
func (r *renderer) line(s string) error {
	_, err := fmt.Fprintln(r.w, s)
	return err
}
