// Package console prints user-facing progress lines.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/xambuild/internal/core/ports"
	"golang.org/x/term"
)

var _ ports.Reporter = (*Console)(nil)

// Console implements ports.Reporter on top of a termenv output.
type Console struct {
	out     *termenv.Output
	step    lipgloss.Style
	command lipgloss.Style
	done    lipgloss.Style
}

// New creates a Console writing to w. Colour is enabled only when w is a
// terminal and NO_COLOR is unset.
func New(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return NewWithProfile(w, ColorProfile(w))
}

// NewWithProfile creates a Console writing to w with a fixed colour profile.
func NewWithProfile(w io.Writer, profile termenv.Profile) *Console {
	out := termenv.NewOutput(w, termenv.WithProfile(profile))
	r := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	r.SetColorProfile(profile)

	return &Console{
		out:     out,
		step:    r.NewStyle().Foreground(Iris),
		command: r.NewStyle().Foreground(Slate),
		done:    r.NewStyle().Foreground(Green),
	}
}

// ColorProfile returns the colour profile for w.
func ColorProfile(w io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) { //nolint:gosec // fd fits in int
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// Step announces what is about to happen.
func (c *Console) Step(msg string) {
	c.println(c.step.Render(Dot) + " " + msg)
}

// Command echoes a command line before it runs.
func (c *Console) Command(cmdline string) {
	c.println(c.command.Render(Prompt + " " + cmdline))
}

// Line prints text unstyled.
func (c *Console) Line(text string) {
	c.println(text)
}

// Done announces the end of a successful invocation.
func (c *Console) Done() {
	c.println(c.done.Render(Check + " Done!"))
}

func (c *Console) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}
